package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/campreg/campreg/internal/domain"
	"github.com/campreg/campreg/internal/handler/dto"
	"github.com/campreg/campreg/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const (
	xlsxContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	filterDateLayout = "2006-01-02"
)

type FlowSvc interface {
	SubmitEmail(ctx context.Context, sessionID, email string) error
	PaymentOptions(ctx context.Context, sessionID string) (*domain.PaymentOptions, error)
	InitializePayment(ctx context.Context, sessionID string, zoneID int64, count int) (string, error)
	HandleCallback(ctx context.Context, sessionID, reference string) error
	RegistrationContext(ctx context.Context, sessionID string) (*domain.RegistrationContext, error)
	SubmitRegistrant(ctx context.Context, sessionID string, r domain.Registrant) (*domain.SubmitResult, error)
}

type AdminSvc interface {
	Login(ctx context.Context, adminID, username, password string) (*domain.Credential, error)
	Logout(ctx context.Context, adminID string) error
	Registrations(ctx context.Context, adminID string, f domain.RegistrationFilter) ([]domain.Registration, error)
	Stats(ctx context.Context, adminID string) (*domain.Stats, error)
	Export(ctx context.Context, adminID string, f domain.RegistrationFilter) ([]byte, error)
}

type Handler struct {
	flowService  FlowSvc
	adminService AdminSvc
}

func NewHandler(flowService FlowSvc, adminService AdminSvc) *Handler {
	return &Handler{
		flowService:  flowService,
		adminService: adminService,
	}
}

// Flow

func (h *Handler) SubmitEmail(c *ginext.Context) {
	var req dto.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "please enter your email address"})
		return
	}

	if err := h.flowService.SubmitEmail(c.Request.Context(), h.sessionID(c), req.Email); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

func (h *Handler) GetPayment(c *ginext.Context) {
	opts, err := h.flowService.PaymentOptions(c.Request.Context(), h.sessionID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, opts)
}

func (h *Handler) PostPayment(c *ginext.Context) {
	var req dto.InitializePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	url, err := h.flowService.InitializePayment(c.Request.Context(), h.sessionID(c), req.ZoneID, req.NumberOfRegistrants)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.InitializePaymentResponse{AuthorizationURL: url})
}

func (h *Handler) Callback(c *ginext.Context) {
	reference := c.Query("reference")

	if err := h.flowService.HandleCallback(c.Request.Context(), h.sessionID(c), reference); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "verified"})
}

func (h *Handler) GetRegistration(c *ginext.Context) {
	rc, err := h.flowService.RegistrationContext(c.Request.Context(), h.sessionID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, rc)
}

func (h *Handler) PostRegistration(c *ginext.Context) {
	var req dto.RegistrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.flowService.SubmitRegistrant(c.Request.Context(), h.sessionID(c), req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	msg := fmt.Sprintf("Registration %d submitted successfully!", res.Submitted)
	if res.Completed {
		msg = "All registrations completed successfully! A confirmation email has been sent."
	}

	c.JSON(http.StatusOK, dto.SubmitResponse{
		Completed: res.Completed,
		NextIndex: res.NextIndex,
		Submitted: res.Submitted,
		Message:   msg,
	})
}

// Admin

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "username and password are required"})
		return
	}

	adminID, err := c.Cookie(middleware.AdminCookie)
	if err != nil || adminID == "" {
		adminID = uuid.NewString()
	}

	cred, err := h.adminService.Login(c.Request.Context(), adminID, req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.SetCookie(middleware.AdminCookie, adminID, middleware.AdminCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, dto.LoginResponse{
		Username: cred.Username,
		Email:    cred.Email,
		IsAdmin:  cred.IsAdmin,
	})
}

func (h *Handler) Logout(c *ginext.Context) {
	adminID, err := c.Cookie(middleware.AdminCookie)
	if err == nil && adminID != "" {
		if err := h.adminService.Logout(c.Request.Context(), adminID); err != nil {
			h.handleError(c, err)
			return
		}
	}

	c.SetCookie(middleware.AdminCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

func (h *Handler) Registrations(c *ginext.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	regs, err := h.adminService.Registrations(c.Request.Context(), c.GetString(middleware.AdminKey), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		resp = append(resp, dto.ToRegistrationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Stats(c *ginext.Context) {
	stats, err := h.adminService.Stats(c.Request.Context(), c.GetString(middleware.AdminKey))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) Export(c *ginext.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	data, err := h.adminService.Export(c.Request.Context(), c.GetString(middleware.AdminKey), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	filename := fmt.Sprintf("registrations_%s.xlsx", time.Now().Format(filterDateLayout))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *Handler) sessionID(c *ginext.Context) string {
	return c.GetString(middleware.SessionKey)
}

func parseFilter(c *ginext.Context) (domain.RegistrationFilter, error) {
	var f domain.RegistrationFilter

	if v := c.Query("zoneId"); v != "" {
		var zoneID int64
		if _, err := fmt.Sscan(v, &zoneID); err != nil || zoneID <= 0 {
			return f, errors.New("invalid zoneId")
		}
		f.ZoneID = zoneID
	}
	if v := c.Query("startDate"); v != "" {
		t, err := time.Parse(filterDateLayout, v)
		if err != nil {
			return f, errors.New("invalid startDate, expected YYYY-MM-DD")
		}
		f.StartDate = t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := time.Parse(filterDateLayout, v)
		if err != nil {
			return f, errors.New("invalid endDate, expected YYYY-MM-DD")
		}
		f.EndDate = t
	}

	return f, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrFlowRestart):
		// Not an error from the visitor's side; the front sends them back to
		// the start of the flow.
		c.JSON(http.StatusConflict, dto.ErrorResponse{Redirect: "/"})

	case errors.Is(err, domain.ErrInvalidReference):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:    "Your payment session has expired. Please start again.",
			Redirect: "/",
		})

	case errors.Is(err, domain.ErrTooManyRegistrants):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrVerificationFailed):
		c.JSON(http.StatusPaymentRequired, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid credentials"})

	case errors.Is(err, domain.ErrBackend):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "registration service is unavailable, please try again"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
