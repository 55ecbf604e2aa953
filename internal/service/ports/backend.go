package ports

import (
	"context"

	"github.com/campreg/campreg/internal/domain"
)

// FlowBackend is the slice of the remote registration API the public flow
// consumes.
type FlowBackend interface {
	Zones(ctx context.Context) ([]domain.Zone, error)
	InitializePayment(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentSession, error)
	VerifyPayment(ctx context.Context, reference string) (string, error)
	GetPayment(ctx context.Context, reference string) error
	CreateRegistration(ctx context.Context, sub domain.RegistrationSubmission) error
	RegistrationsByPayment(ctx context.Context, reference string) ([]domain.Registration, error)
}

// AdminBackend is the authenticated slice used by the reporting view.
type AdminBackend interface {
	Login(ctx context.Context, username, password string) (*domain.Credential, error)
	Registrations(ctx context.Context, token string, f domain.RegistrationFilter) ([]domain.Registration, error)
	Stats(ctx context.Context, token string) (*domain.Stats, error)
	Zones(ctx context.Context) ([]domain.Zone, error)
}
