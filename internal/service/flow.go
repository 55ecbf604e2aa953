package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/campreg/campreg/internal/domain"
	"github.com/campreg/campreg/internal/flow"
	"github.com/campreg/campreg/internal/metrics"
	"github.com/campreg/campreg/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// FlowService drives one visitor through the registration flow. Every
// operation re-checks its entry guard against the stored session, so direct
// URL entry, reloads and browser history replay all land on the right step.
type FlowService struct {
	sessions ports.SessionStore
	backend  ports.FlowBackend
	notifier ports.FlowNotifier
	metrics  *metrics.Metrics
	logger   logger.Logger
}

func NewFlowService(
	sessions ports.SessionStore,
	backend ports.FlowBackend,
	notifier ports.FlowNotifier,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *FlowService {
	return &FlowService{
		sessions: sessions,
		backend:  backend,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// SubmitEmail starts (or restarts) a flow. Nothing is written when the email
// fails the check.
func (s *FlowService) SubmitEmail(ctx context.Context, sessionID, email string) error {
	email = strings.TrimSpace(email)
	if err := flow.ValidateEmail(email); err != nil {
		return err
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	if sess == nil {
		sess = &domain.FlowSession{}
	}
	sess.Email = email

	if err := s.sessions.Save(ctx, sessionID, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.metrics.FlowTransitions.WithLabelValues(string(flow.EventEmailCaptured)).Inc()
	s.logger.Info("email captured", logger.String("session_id", sessionID))
	return nil
}

// PaymentOptions serves the payment step: the captured email plus the zone
// list in server order.
func (s *FlowService) PaymentOptions(ctx context.Context, sessionID string) (*domain.PaymentOptions, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if flow.GuardEntry(flow.StepPayment, sess) != flow.StepPayment {
		return nil, domain.ErrFlowRestart
	}

	zones, err := s.backend.Zones(ctx)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}

	return &domain.PaymentOptions{Email: sess.Email, Zones: zones}, nil
}

// InitializePayment asks the backend for a payment session and records the
// reference, count and zone the visitor committed to. The returned URL is
// where the browser has to go next; the flow is suspended until the processor
// redirects back.
func (s *FlowService) InitializePayment(ctx context.Context, sessionID string, zoneID int64, count int) (string, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}
	if flow.GuardEntry(flow.StepPayment, sess) != flow.StepPayment {
		return "", domain.ErrFlowRestart
	}

	if err := flow.ValidateRegistrantCount(count); err != nil {
		return "", err
	}
	if zoneID <= 0 {
		return "", fmt.Errorf("%w: a zone must be selected", domain.ErrValidation)
	}

	ps, err := s.backend.InitializePayment(ctx, domain.PaymentRequest{
		Email:               sess.Email,
		NumberOfRegistrants: count,
		ZoneID:              zoneID,
	})
	if err != nil {
		return "", fmt.Errorf("initialize payment: %w", err)
	}

	sess.PaymentReference = ps.Reference
	sess.NumberOfRegistrants = count
	sess.SelectedZoneID = zoneID
	if err := s.sessions.Save(ctx, sessionID, sess); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	s.metrics.FlowTransitions.WithLabelValues(string(flow.EventPaymentInitialized)).Inc()
	s.logger.Info("payment initialized",
		logger.String("session_id", sessionID),
		logger.String("reference", ps.Reference),
		logger.Int("registrants", count),
	)
	return ps.AuthorizationURL, nil
}

// HandleCallback verifies the reference the payment processor redirected back
// with. Only the two observed success spellings count; anything else leaves
// the session exactly as it was.
func (s *FlowService) HandleCallback(ctx context.Context, sessionID, reference string) error {
	if reference == "" {
		s.metrics.FlowTransitions.WithLabelValues(string(flow.EventVerificationFailed)).Inc()
		return fmt.Errorf("%w: payment reference not found", domain.ErrVerificationFailed)
	}

	status, err := s.backend.VerifyPayment(ctx, reference)
	if err != nil {
		s.metrics.FlowTransitions.WithLabelValues(string(flow.EventVerificationFailed)).Inc()
		return fmt.Errorf("%w: %v", domain.ErrVerificationFailed, err)
	}
	if status != "SUCCESS" && status != "Success" {
		s.metrics.FlowTransitions.WithLabelValues(string(flow.EventVerificationFailed)).Inc()
		return fmt.Errorf("%w: payment status %q", domain.ErrVerificationFailed, status)
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	if sess == nil {
		sess = &domain.FlowSession{}
	}
	// Overwriting an existing reference is deliberate: the callback is the
	// authority on which payment this flow continues with.
	sess.PaymentReference = reference
	sess.PaymentVerified = true

	if err := s.sessions.Save(ctx, sessionID, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.metrics.FlowTransitions.WithLabelValues(string(flow.EventPaymentVerified)).Inc()
	s.logger.Info("payment verified",
		logger.String("session_id", sessionID),
		logger.String("reference", reference),
	)
	return nil
}

// RegistrationContext serves the registration step. The reference is
// re-validated against the backend first: a reference the backend no longer
// accepts clears the whole session. The registrant index is rebuilt from what
// the backend already holds, so a reload resumes instead of starting over.
func (s *FlowService) RegistrationContext(ctx context.Context, sessionID string) (*domain.RegistrationContext, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if flow.GuardEntry(flow.StepRegistration, sess) != flow.StepRegistration {
		return nil, domain.ErrFlowRestart
	}

	if err := s.backend.GetPayment(ctx, sess.PaymentReference); err != nil {
		s.logger.Warn("payment reference rejected",
			logger.String("session_id", sessionID),
			logger.String("reference", sess.PaymentReference),
		)
		if clearErr := s.sessions.Clear(ctx, sessionID); clearErr != nil {
			s.logger.Error("failed to clear session",
				logger.String("session_id", sessionID),
				logger.String("error", clearErr.Error()),
			)
		}
		s.metrics.FlowTransitions.WithLabelValues(string(flow.EventReferenceRejected)).Inc()
		return nil, domain.ErrInvalidReference
	}

	zones, err := s.backend.Zones(ctx)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}

	submitted, err := s.backend.RegistrationsByPayment(ctx, sess.PaymentReference)
	if err != nil {
		// The step still renders; worst case the index starts at 1 and the
		// backend rejects a duplicate on submit.
		s.logger.Warn("failed to load submitted registrations",
			logger.String("reference", sess.PaymentReference),
			logger.String("error", err.Error()),
		)
		submitted = nil
	}

	return &domain.RegistrationContext{
		Zones:               zones,
		ZoneID:              sess.SelectedZoneID,
		CurrentIndex:        len(submitted) + 1,
		NumberOfRegistrants: registrantTotal(sess),
		Submitted:           len(submitted),
	}, nil
}

// SubmitRegistrant persists one registrant under the shared reference. The
// submitted count is re-read from the backend on every call, which both
// resumes correctly and refuses overflow past what was paid for. Completing
// the final registrant clears the session; the next request starts a fresh
// flow.
func (s *FlowService) SubmitRegistrant(ctx context.Context, sessionID string, r domain.Registrant) (*domain.SubmitResult, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if flow.GuardEntry(flow.StepRegistration, sess) != flow.StepRegistration {
		return nil, domain.ErrFlowRestart
	}

	if err := flow.ValidateRegistrant(r); err != nil {
		return nil, err
	}

	submitted, err := s.backend.RegistrationsByPayment(ctx, sess.PaymentReference)
	if err != nil {
		return nil, fmt.Errorf("load submitted registrations: %w", err)
	}

	total := registrantTotal(sess)
	if len(submitted) >= total {
		return nil, domain.ErrTooManyRegistrants
	}

	if err := s.backend.CreateRegistration(ctx, domain.RegistrationSubmission{
		Registrant:       r,
		PaymentReference: sess.PaymentReference,
	}); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	count := len(submitted) + 1
	completed := count >= total

	if completed {
		go s.notifier.NotifyFlowCompleted(context.WithoutCancel(ctx), sess.Email, sess.PaymentReference, count)

		if err := s.sessions.Clear(ctx, sessionID); err != nil {
			s.logger.Error("failed to clear session after completion",
				logger.String("session_id", sessionID),
				logger.String("error", err.Error()),
			)
		}
		s.metrics.FlowTransitions.WithLabelValues(string(flow.EventAllSubmitted)).Inc()
		s.metrics.FlowsCompleted.Inc()
	} else {
		s.metrics.FlowTransitions.WithLabelValues(string(flow.EventRegistrantSubmitted)).Inc()
	}
	s.metrics.RegistrantsSubmitted.Inc()

	s.logger.Info("registrant submitted",
		logger.String("session_id", sessionID),
		logger.String("reference", sess.PaymentReference),
		logger.Int("submitted", count),
		logger.Int("total", total),
	)

	return &domain.SubmitResult{
		Completed: completed,
		NextIndex: count + 1,
		Submitted: count,
	}, nil
}

// registrantTotal defends against a session created by the callback alone,
// where the count was never captured.
func registrantTotal(sess *domain.FlowSession) int {
	if sess.NumberOfRegistrants < 1 {
		return 1
	}
	return sess.NumberOfRegistrants
}
