package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/campreg/campreg/internal/domain"
	"github.com/campreg/campreg/internal/handler/dto"
	hmocks "github.com/campreg/campreg/internal/handler/mocks"
	"github.com/campreg/campreg/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type credentialReaderStub struct {
	cred *domain.Credential
}

func (s credentialReaderStub) Get(context.Context, string) (*domain.Credential, error) {
	return s.cred, nil
}

func setupRouter(t *testing.T, adminCred *domain.Credential) (*hmocks.MockFlowSvc, *hmocks.MockAdminSvc, http.Handler) {
	t.Helper()
	flowSvc := hmocks.NewMockFlowSvc(t)
	adminSvc := hmocks.NewMockAdminSvc(t)

	h := NewHandler(flowSvc, adminSvc)

	r := ginext.New("test")
	api := r.Group("/api")

	flow := api.Group("/flow")
	flow.Use(middleware.Session())
	{
		flow.POST("/email", h.SubmitEmail)
		flow.GET("/payment", h.GetPayment)
		flow.POST("/payment", h.PostPayment)
		flow.GET("/callback", h.Callback)
		flow.GET("/registration", h.GetRegistration)
		flow.POST("/registration", h.PostRegistration)
	}

	admin := api.Group("/admin")
	{
		admin.POST("/login", h.Login)
		admin.POST("/logout", h.Logout)

		protected := admin.Group("/registrations")
		protected.Use(middleware.AdminAuth(credentialReaderStub{cred: adminCred}))
		{
			protected.GET("", h.Registrations)
			protected.GET("/stats", h.Stats)
			protected.GET("/export", h.Export)
		}
	}

	return flowSvc, adminSvc, r
}

func flowRequest(method, path string, body []byte) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "sid"})
	return req
}

func adminRequest(method, path string, body []byte) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.AdminCookie, Value: "aid"})
	return req
}

// --- Flow ---

func TestHandler_SubmitEmail_Success(t *testing.T) {
	flowSvc, _, r := setupRouter(t, nil)

	flowSvc.EXPECT().SubmitEmail(mock.Anything, "sid", "a@b.com").Return(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, flowRequest(http.MethodPost, "/api/flow/email", []byte(`{"email":"a@b.com"}`)))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SubmitEmail_MintsSessionCookie(t *testing.T) {
	flowSvc, _, r := setupRouter(t, nil)

	flowSvc.EXPECT().SubmitEmail(mock.Anything, mock.Anything, "a@b.com").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/flow/email", bytes.NewReader([]byte(`{"email":"a@b.com"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	found := false
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "first contact sets the session cookie")
}

func TestHandler_SubmitEmail_Invalid(t *testing.T) {
	flowSvc, _, r := setupRouter(t, nil)

	flowSvc.EXPECT().SubmitEmail(mock.Anything, "sid", "nope").Return(domain.ErrInvalidEmail)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, flowRequest(http.MethodPost, "/api/flow/email", []byte(`{"email":"nope"}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SubmitEmail_MissingBody(t *testing.T) {
	_, _, r := setupRouter(t, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, flowRequest(http.MethodPost, "/api/flow/email", []byte(`{}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetPayment_Success(t *testing.T) {
	flowSvc, _, r := setupRouter(t, nil)

	flowSvc.EXPECT().PaymentOptions(mock.Anything, "sid").Return(&domain.PaymentOptions{
		Email: "a@b.com",
		Zones: []domain.Zone{{ID: 1, Name: "North", AmountPerRegistrant: 5000}},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, flowRequest(http.MethodGet, "/api/flow/payment", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.PaymentOptions
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a@b.com", resp.Email)
	require.Len(t, resp.Zones, 1)
	assert.Equal(t, "North", resp.Zones[0].Name)
}

func TestHandler_GetPayment_FlowRestart(t *testing.T) {
	flowSvc, _, r := setupRouter(t, nil)

	flowSvc.EXPECT().PaymentOptions(mock.Anything, "sid").Return(nil, domain.ErrFlowRestart)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, flowRequest(http.MethodGet, "/api/flow/payment", nil))

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/", resp.Redirect)
	assert.Empty(t, resp.Error)
}

func TestHandler_PostPayment_Success(t *testing.T) {
	flowSvc, _, r := setupRouter(t, nil)

	flowSvc.EXPECT().InitializePayment(mock.Anything, "sid", int64(1), 2).
		Return("https://pay.example/REF123", nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, flowRequest(http.MethodPost, "/api/flow/payment",
		[]byte(`{"zoneId":1,"numberOfRegistrants":2}`)))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.InitializePaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://pay.example/REF123", resp.AuthorizationURL)
}

func TestHandler_PostPayment_Validation(t *testing.T) {
	flowSvc, _, r := setupRouter(t, nil)

	flowSvc.EXPECT().InitializePayment(mock.Anything, "sid", int64(1), 11).
		Return("", domain.ErrValidation)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, flowRequest(http.MethodPost, "/api/flow/payment",
		[]byte(`{"zoneId":1,"numberOfRegistrants":11}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Callback_Success(t *testing.T) {
	flowSvc, _, r := setupRouter(t, nil)

	flowSvc.EXPECT().HandleCallback(mock.Anything, "sid", "REF123").Return(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, flowRequest(http.MethodGet, "/api/flow/callback?reference=REF123", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Callback_Failed(t *testing.T) {
	flowSvc, _, r := setupRouter(t, nil)

	flowSvc.EXPECT().HandleCallback(mock.Anything, "sid", "REF123").
		Return(domain.ErrVerificationFailed)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, flowRequest(http.MethodGet, "/api/flow/callback?reference=REF123", nil))

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestHandler_GetRegistration_Success(t *testing.T) {
	flowSvc, _, r := setupRouter(t, nil)

	flowSvc.EXPECT().RegistrationContext(mock.Anything, "sid").Return(&domain.RegistrationContext{
		ZoneID:              1,
		CurrentIndex:        3,
		NumberOfRegistrants: 5,
		Submitted:           2,
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, flowRequest(http.MethodGet, "/api/flow/registration", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.RegistrationContext
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.CurrentIndex)
	assert.Equal(t, 5, resp.NumberOfRegistrants)
}

func TestHandler_GetRegistration_InvalidReference(t *testing.T) {
	flowSvc, _, r := setupRouter(t, nil)

	flowSvc.EXPECT().RegistrationContext(mock.Anything, "sid").
		Return(nil, domain.ErrInvalidReference)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, flowRequest(http.MethodGet, "/api/flow/registration", nil))

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/", resp.Redirect)
	assert.NotEmpty(t, resp.Error)
}

func TestHandler_PostRegistration_Intermediate(t *testing.T) {
	flowSvc, _, r := setupRouter(t, nil)

	flowSvc.EXPECT().SubmitRegistrant(mock.Anything, "sid", mock.MatchedBy(func(reg domain.Registrant) bool {
		return reg.ChildName == "Ada Obi" && reg.ConsentGiven
	})).Return(&domain.SubmitResult{Completed: false, NextIndex: 2, Submitted: 1}, nil)

	body := []byte(`{
		"firstTimeAttendingCamp": "Yes",
		"registrationType": "Camper",
		"childName": "Ada Obi",
		"age": 9,
		"tcCenter": "Central",
		"zoneId": 1,
		"address": "12 Camp Road",
		"parentName": "Ngozi Obi",
		"parentPhone": "+2348012345678",
		"allergy": "None",
		"consentGiven": true
	}`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, flowRequest(http.MethodPost, "/api/flow/registration", body))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Completed)
	assert.Equal(t, "Registration 1 submitted successfully!", resp.Message)
}

func TestHandler_PostRegistration_Completed(t *testing.T) {
	flowSvc, _, r := setupRouter(t, nil)

	flowSvc.EXPECT().SubmitRegistrant(mock.Anything, "sid", mock.Anything).
		Return(&domain.SubmitResult{Completed: true, NextIndex: 3, Submitted: 2}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, flowRequest(http.MethodPost, "/api/flow/registration", []byte(`{"childName":"X"}`)))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Completed)
	assert.Equal(t, "All registrations completed successfully! A confirmation email has been sent.", resp.Message)
}

func TestHandler_PostRegistration_Overflow(t *testing.T) {
	flowSvc, _, r := setupRouter(t, nil)

	flowSvc.EXPECT().SubmitRegistrant(mock.Anything, "sid", mock.Anything).
		Return(nil, domain.ErrTooManyRegistrants)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, flowRequest(http.MethodPost, "/api/flow/registration", []byte(`{"childName":"X"}`)))

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Admin ---

func TestHandler_Login_Success(t *testing.T) {
	_, adminSvc, r := setupRouter(t, nil)

	adminSvc.EXPECT().Login(mock.Anything, mock.Anything, "admin", "secret").
		Return(&domain.Credential{Token: "tok", Username: "admin", Email: "admin@b.com", IsAdmin: true}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		bytes.NewReader([]byte(`{"username":"admin","password":"secret"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin", resp.Username)
	assert.True(t, resp.IsAdmin)

	found := false
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AdminCookie && c.Value != "" {
			found = true
			assert.Equal(t, middleware.AdminCookieMaxAge, c.MaxAge)
		}
	}
	assert.True(t, found, "login sets the durable admin cookie")
}

func TestHandler_Login_BadCredentials(t *testing.T) {
	_, adminSvc, r := setupRouter(t, nil)

	adminSvc.EXPECT().Login(mock.Anything, mock.Anything, "admin", "wrong").
		Return(nil, domain.ErrUnauthorized)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		bytes.NewReader([]byte(`{"username":"admin","password":"wrong"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Login_MissingFields(t *testing.T) {
	_, _, r := setupRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		bytes.NewReader([]byte(`{"username":"admin"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Logout(t *testing.T) {
	_, adminSvc, r := setupRouter(t, nil)

	adminSvc.EXPECT().Logout(mock.Anything, "aid").Return(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(http.MethodPost, "/api/admin/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AdminCookie {
			assert.Less(t, c.MaxAge, 0, "logout expires the admin cookie")
		}
	}
}

func TestHandler_Registrations_Filter(t *testing.T) {
	admin := &domain.Credential{Token: "tok", IsAdmin: true}
	_, adminSvc, r := setupRouter(t, admin)

	want := domain.RegistrationFilter{
		ZoneID:    2,
		StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	}
	adminSvc.EXPECT().Registrations(mock.Anything, "aid", want).
		Return([]domain.Registration{{ID: 1, Registrant: domain.Registrant{ChildName: "Ada Obi"}}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(http.MethodGet,
		"/api/admin/registrations?zoneId=2&startDate=2026-08-01&endDate=2026-08-31", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Ada Obi", resp[0].ChildName)
}

func TestHandler_Registrations_BadZone(t *testing.T) {
	admin := &domain.Credential{Token: "tok", IsAdmin: true}
	_, _, r := setupRouter(t, admin)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(http.MethodGet, "/api/admin/registrations?zoneId=abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Registrations_NoCredential(t *testing.T) {
	_, _, r := setupRouter(t, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(http.MethodGet, "/api/admin/registrations", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Registrations_NoCookie(t *testing.T) {
	admin := &domain.Credential{Token: "tok", IsAdmin: true}
	_, _, r := setupRouter(t, admin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/registrations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Stats(t *testing.T) {
	admin := &domain.Credential{Token: "tok", IsAdmin: true}
	_, adminSvc, r := setupRouter(t, admin)

	adminSvc.EXPECT().Stats(mock.Anything, "aid").
		Return(&domain.Stats{TotalRegistrations: 10, TotalPayments: 5, TotalRevenue: 50000}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(http.MethodGet, "/api/admin/registrations/stats", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(50000), resp.TotalRevenue)
}

func TestHandler_Export(t *testing.T) {
	admin := &domain.Credential{Token: "tok", IsAdmin: true}
	_, adminSvc, r := setupRouter(t, admin)

	adminSvc.EXPECT().Export(mock.Anything, "aid", domain.RegistrationFilter{}).
		Return([]byte("xlsx-bytes"), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(http.MethodGet, "/api/admin/registrations/export", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, "xlsx-bytes", w.Body.String())
}
