package ports

import (
	"context"

	"github.com/campreg/campreg/internal/domain"
)

// SessionStore keeps per-visitor flow state. Get returns (nil, nil) when the
// visitor has no session yet.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*domain.FlowSession, error)
	Save(ctx context.Context, sessionID string, s *domain.FlowSession) error
	Clear(ctx context.Context, sessionID string) error
}

// CredentialStore keeps admin credentials across browser sessions until an
// explicit logout. Get returns (nil, nil) when no credential is stored.
type CredentialStore interface {
	Get(ctx context.Context, sessionID string) (*domain.Credential, error)
	Save(ctx context.Context, sessionID string, c *domain.Credential) error
	Clear(ctx context.Context, sessionID string) error
}
