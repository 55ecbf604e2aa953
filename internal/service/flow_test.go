package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campreg/campreg/internal/domain"
	"github.com/campreg/campreg/internal/metrics"
	"github.com/campreg/campreg/internal/service/ports/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

type flowMocks struct {
	sessions *mocks.MockSessionStore
	backend  *mocks.MockFlowBackend
	notifier *mocks.MockFlowNotifier
}

func newFlowService(t *testing.T) (*FlowService, flowMocks) {
	t.Helper()
	m := flowMocks{
		sessions: mocks.NewMockSessionStore(t),
		backend:  mocks.NewMockFlowBackend(t),
		notifier: mocks.NewMockFlowNotifier(t),
	}
	svc := NewFlowService(m.sessions, m.backend, m.notifier, newTestMetrics(), newTestLogger(t))
	return svc, m
}

func verifiedSession(count int) *domain.FlowSession {
	return &domain.FlowSession{
		Email:               "a@b.com",
		PaymentReference:    "REF123",
		NumberOfRegistrants: count,
		SelectedZoneID:      1,
		PaymentVerified:     true,
	}
}

func validRegistrant() domain.Registrant {
	return domain.Registrant{
		FirstTimeAttendingCamp: "Yes",
		RegistrationType:       "Camper",
		ChildName:              "Ada Obi",
		Age:                    9,
		TCCenter:               "Central",
		ZoneID:                 1,
		Address:                "12 Camp Road",
		ParentName:             "Ngozi Obi",
		ParentPhone:            "+2348012345678",
		Allergy:                "None",
		ConsentGiven:           true,
	}
}

func TestFlowService_SubmitEmail(t *testing.T) {
	svc, m := newFlowService(t)

	m.sessions.EXPECT().Get(mock.Anything, "sid").Return(nil, nil)
	m.sessions.EXPECT().Save(mock.Anything, "sid", mock.MatchedBy(func(s *domain.FlowSession) bool {
		return s.Email == "a@b.com"
	})).Return(nil)

	err := svc.SubmitEmail(context.Background(), "sid", "  a@b.com  ")
	require.NoError(t, err)
}

func TestFlowService_SubmitEmail_InvalidWritesNothing(t *testing.T) {
	svc, _ := newFlowService(t)

	err := svc.SubmitEmail(context.Background(), "sid", "not-an-email")
	require.ErrorIs(t, err, domain.ErrInvalidEmail)
}

func TestFlowService_SubmitEmail_KeepsExistingSession(t *testing.T) {
	svc, m := newFlowService(t)

	existing := verifiedSession(2)
	m.sessions.EXPECT().Get(mock.Anything, "sid").Return(existing, nil)
	m.sessions.EXPECT().Save(mock.Anything, "sid", mock.MatchedBy(func(s *domain.FlowSession) bool {
		return s.Email == "new@b.com" && s.PaymentReference == "REF123"
	})).Return(nil)

	err := svc.SubmitEmail(context.Background(), "sid", "new@b.com")
	require.NoError(t, err)
}

func TestFlowService_PaymentOptions(t *testing.T) {
	svc, m := newFlowService(t)

	zones := []domain.Zone{{ID: 1, Name: "North", AmountPerRegistrant: 5000}}
	m.sessions.EXPECT().Get(mock.Anything, "sid").Return(&domain.FlowSession{Email: "a@b.com"}, nil)
	m.backend.EXPECT().Zones(mock.Anything).Return(zones, nil)

	opts, err := svc.PaymentOptions(context.Background(), "sid")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", opts.Email)
	assert.Equal(t, zones, opts.Zones)
}

func TestFlowService_PaymentOptions_NoEmailRestarts(t *testing.T) {
	svc, m := newFlowService(t)

	m.sessions.EXPECT().Get(mock.Anything, "sid").Return(nil, nil)

	_, err := svc.PaymentOptions(context.Background(), "sid")
	require.ErrorIs(t, err, domain.ErrFlowRestart)
}

func TestFlowService_InitializePayment(t *testing.T) {
	svc, m := newFlowService(t)

	m.sessions.EXPECT().Get(mock.Anything, "sid").Return(&domain.FlowSession{Email: "a@b.com"}, nil)
	m.backend.EXPECT().InitializePayment(mock.Anything, domain.PaymentRequest{
		Email:               "a@b.com",
		NumberOfRegistrants: 2,
		ZoneID:              1,
	}).Return(&domain.PaymentSession{Reference: "REF123", AuthorizationURL: "https://pay.example/REF123"}, nil)
	m.sessions.EXPECT().Save(mock.Anything, "sid", mock.MatchedBy(func(s *domain.FlowSession) bool {
		return s.PaymentReference == "REF123" && s.NumberOfRegistrants == 2 && s.SelectedZoneID == 1
	})).Return(nil)

	url, err := svc.InitializePayment(context.Background(), "sid", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/REF123", url)
}

func TestFlowService_InitializePayment_BadCount(t *testing.T) {
	svc, m := newFlowService(t)

	m.sessions.EXPECT().Get(mock.Anything, "sid").Return(&domain.FlowSession{Email: "a@b.com"}, nil).Twice()

	_, err := svc.InitializePayment(context.Background(), "sid", 1, 0)
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.InitializePayment(context.Background(), "sid", 1, 11)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestFlowService_InitializePayment_NoZone(t *testing.T) {
	svc, m := newFlowService(t)

	m.sessions.EXPECT().Get(mock.Anything, "sid").Return(&domain.FlowSession{Email: "a@b.com"}, nil)

	_, err := svc.InitializePayment(context.Background(), "sid", 0, 2)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestFlowService_HandleCallback(t *testing.T) {
	for _, status := range []string{"SUCCESS", "Success"} {
		t.Run(status, func(t *testing.T) {
			svc, m := newFlowService(t)

			m.backend.EXPECT().VerifyPayment(mock.Anything, "REF123").Return(status, nil)
			m.sessions.EXPECT().Get(mock.Anything, "sid").Return(&domain.FlowSession{Email: "a@b.com"}, nil)
			m.sessions.EXPECT().Save(mock.Anything, "sid", mock.MatchedBy(func(s *domain.FlowSession) bool {
				return s.PaymentReference == "REF123" && s.PaymentVerified
			})).Return(nil)

			err := svc.HandleCallback(context.Background(), "sid", "REF123")
			require.NoError(t, err)
		})
	}
}

func TestFlowService_HandleCallback_EmptyReference(t *testing.T) {
	svc, _ := newFlowService(t)

	err := svc.HandleCallback(context.Background(), "sid", "")
	require.ErrorIs(t, err, domain.ErrVerificationFailed)
}

func TestFlowService_HandleCallback_BadStatusLeavesSessionAlone(t *testing.T) {
	svc, m := newFlowService(t)

	// "success" in any other casing is not accepted.
	m.backend.EXPECT().VerifyPayment(mock.Anything, "REF123").Return("success", nil)

	err := svc.HandleCallback(context.Background(), "sid", "REF123")
	require.ErrorIs(t, err, domain.ErrVerificationFailed)
}

func TestFlowService_HandleCallback_VerifyError(t *testing.T) {
	svc, m := newFlowService(t)

	m.backend.EXPECT().VerifyPayment(mock.Anything, "REF123").Return("", errors.New("boom"))

	err := svc.HandleCallback(context.Background(), "sid", "REF123")
	require.ErrorIs(t, err, domain.ErrVerificationFailed)
}

func TestFlowService_HandleCallback_OverwritesReference(t *testing.T) {
	svc, m := newFlowService(t)

	m.backend.EXPECT().VerifyPayment(mock.Anything, "REF456").Return("SUCCESS", nil)
	m.sessions.EXPECT().Get(mock.Anything, "sid").Return(verifiedSession(2), nil)
	m.sessions.EXPECT().Save(mock.Anything, "sid", mock.MatchedBy(func(s *domain.FlowSession) bool {
		return s.PaymentReference == "REF456"
	})).Return(nil)

	err := svc.HandleCallback(context.Background(), "sid", "REF456")
	require.NoError(t, err)
}

func TestFlowService_RegistrationContext_ResumesIndex(t *testing.T) {
	svc, m := newFlowService(t)

	zones := []domain.Zone{{ID: 1, Name: "North"}}
	m.sessions.EXPECT().Get(mock.Anything, "sid").Return(verifiedSession(5), nil)
	m.backend.EXPECT().GetPayment(mock.Anything, "REF123").Return(nil)
	m.backend.EXPECT().Zones(mock.Anything).Return(zones, nil)
	m.backend.EXPECT().RegistrationsByPayment(mock.Anything, "REF123").
		Return([]domain.Registration{{ID: 1}, {ID: 2}}, nil)

	rc, err := svc.RegistrationContext(context.Background(), "sid")
	require.NoError(t, err)
	assert.Equal(t, 3, rc.CurrentIndex)
	assert.Equal(t, 5, rc.NumberOfRegistrants)
	assert.Equal(t, 2, rc.Submitted)
	assert.Equal(t, int64(1), rc.ZoneID)
	assert.Equal(t, zones, rc.Zones)
}

func TestFlowService_RegistrationContext_RejectedReferenceClearsSession(t *testing.T) {
	svc, m := newFlowService(t)

	m.sessions.EXPECT().Get(mock.Anything, "sid").Return(verifiedSession(2), nil)
	m.backend.EXPECT().GetPayment(mock.Anything, "REF123").Return(domain.ErrBackend)
	m.sessions.EXPECT().Clear(mock.Anything, "sid").Return(nil)

	_, err := svc.RegistrationContext(context.Background(), "sid")
	require.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestFlowService_RegistrationContext_Unverified(t *testing.T) {
	svc, m := newFlowService(t)

	sess := verifiedSession(2)
	sess.PaymentVerified = false
	m.sessions.EXPECT().Get(mock.Anything, "sid").Return(sess, nil)

	_, err := svc.RegistrationContext(context.Background(), "sid")
	require.ErrorIs(t, err, domain.ErrFlowRestart)
}

func TestFlowService_RegistrationContext_SubmittedLookupFailureTolerated(t *testing.T) {
	svc, m := newFlowService(t)

	m.sessions.EXPECT().Get(mock.Anything, "sid").Return(verifiedSession(2), nil)
	m.backend.EXPECT().GetPayment(mock.Anything, "REF123").Return(nil)
	m.backend.EXPECT().Zones(mock.Anything).Return([]domain.Zone{}, nil)
	m.backend.EXPECT().RegistrationsByPayment(mock.Anything, "REF123").Return(nil, errors.New("boom"))

	rc, err := svc.RegistrationContext(context.Background(), "sid")
	require.NoError(t, err)
	assert.Equal(t, 1, rc.CurrentIndex)
	assert.Equal(t, 0, rc.Submitted)
}

func TestFlowService_SubmitRegistrant_Intermediate(t *testing.T) {
	svc, m := newFlowService(t)

	m.sessions.EXPECT().Get(mock.Anything, "sid").Return(verifiedSession(2), nil)
	m.backend.EXPECT().RegistrationsByPayment(mock.Anything, "REF123").Return(nil, nil)
	m.backend.EXPECT().CreateRegistration(mock.Anything, mock.MatchedBy(func(sub domain.RegistrationSubmission) bool {
		return sub.PaymentReference == "REF123" && sub.ChildName == "Ada Obi"
	})).Return(nil)

	res, err := svc.SubmitRegistrant(context.Background(), "sid", validRegistrant())
	require.NoError(t, err)
	assert.False(t, res.Completed)
	assert.Equal(t, 1, res.Submitted)
	assert.Equal(t, 2, res.NextIndex)
}

func TestFlowService_SubmitRegistrant_CompletionClearsSession(t *testing.T) {
	svc, m := newFlowService(t)

	m.sessions.EXPECT().Get(mock.Anything, "sid").Return(verifiedSession(2), nil)
	m.backend.EXPECT().RegistrationsByPayment(mock.Anything, "REF123").
		Return([]domain.Registration{{ID: 1}}, nil)
	m.backend.EXPECT().CreateRegistration(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyFlowCompleted(mock.Anything, "a@b.com", "REF123", 2).Return()
	m.sessions.EXPECT().Clear(mock.Anything, "sid").Return(nil)

	res, err := svc.SubmitRegistrant(context.Background(), "sid", validRegistrant())
	require.NoError(t, err)
	assert.True(t, res.Completed)
	assert.Equal(t, 2, res.Submitted)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestFlowService_SubmitRegistrant_Overflow(t *testing.T) {
	svc, m := newFlowService(t)

	m.sessions.EXPECT().Get(mock.Anything, "sid").Return(verifiedSession(2), nil)
	m.backend.EXPECT().RegistrationsByPayment(mock.Anything, "REF123").
		Return([]domain.Registration{{ID: 1}, {ID: 2}}, nil)

	_, err := svc.SubmitRegistrant(context.Background(), "sid", validRegistrant())
	require.ErrorIs(t, err, domain.ErrTooManyRegistrants)
}

func TestFlowService_SubmitRegistrant_ValidationFailure(t *testing.T) {
	svc, m := newFlowService(t)

	m.sessions.EXPECT().Get(mock.Anything, "sid").Return(verifiedSession(2), nil)

	r := validRegistrant()
	r.ChildName = ""
	_, err := svc.SubmitRegistrant(context.Background(), "sid", r)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestFlowService_SubmitRegistrant_GuardRestart(t *testing.T) {
	svc, m := newFlowService(t)

	m.sessions.EXPECT().Get(mock.Anything, "sid").Return(nil, nil)

	_, err := svc.SubmitRegistrant(context.Background(), "sid", validRegistrant())
	require.ErrorIs(t, err, domain.ErrFlowRestart)
}

func TestFlowService_SubmitRegistrant_CountlessSessionDefaultsToOne(t *testing.T) {
	svc, m := newFlowService(t)

	// A callback on a fresh browser creates a session with no captured count.
	sess := &domain.FlowSession{
		Email:            "a@b.com",
		PaymentReference: "REF123",
		PaymentVerified:  true,
	}
	m.sessions.EXPECT().Get(mock.Anything, "sid").Return(sess, nil)
	m.backend.EXPECT().RegistrationsByPayment(mock.Anything, "REF123").Return(nil, nil)
	m.backend.EXPECT().CreateRegistration(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyFlowCompleted(mock.Anything, "a@b.com", "REF123", 1).Return()
	m.sessions.EXPECT().Clear(mock.Anything, "sid").Return(nil)

	res, err := svc.SubmitRegistrant(context.Background(), "sid", validRegistrant())
	require.NoError(t, err)
	assert.True(t, res.Completed)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}
