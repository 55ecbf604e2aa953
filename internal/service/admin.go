package service

import (
	"context"
	"fmt"

	"github.com/campreg/campreg/internal/domain"
	"github.com/campreg/campreg/internal/export"
	"github.com/campreg/campreg/internal/metrics"
	"github.com/campreg/campreg/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// AdminService fronts the reporting view: login against the backend, the
// filtered listing, aggregate stats and the spreadsheet export. Authorization
// itself is the backend's job; this side only holds the token and refuses to
// use a credential that is absent or not an admin.
type AdminService struct {
	credentials ports.CredentialStore
	backend     ports.AdminBackend
	metrics     *metrics.Metrics
	logger      logger.Logger
}

func NewAdminService(
	credentials ports.CredentialStore,
	backend ports.AdminBackend,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *AdminService {
	return &AdminService{
		credentials: credentials,
		backend:     backend,
		metrics:     metrics,
		logger:      logger,
	}
}

func (s *AdminService) Login(ctx context.Context, adminID, username, password string) (*domain.Credential, error) {
	cred, err := s.backend.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := s.credentials.Save(ctx, adminID, cred); err != nil {
		return nil, fmt.Errorf("save credential: %w", err)
	}

	s.logger.Info("admin logged in",
		logger.String("username", cred.Username),
		logger.Any("is_admin", cred.IsAdmin),
	)
	return cred, nil
}

func (s *AdminService) Logout(ctx context.Context, adminID string) error {
	if err := s.credentials.Clear(ctx, adminID); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	s.logger.Info("admin logged out")
	return nil
}

func (s *AdminService) Registrations(ctx context.Context, adminID string, f domain.RegistrationFilter) ([]domain.Registration, error) {
	cred, err := s.authorize(ctx, adminID)
	if err != nil {
		return nil, err
	}

	regs, err := s.backend.Registrations(ctx, cred.Token, f)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}

func (s *AdminService) Stats(ctx context.Context, adminID string) (*domain.Stats, error) {
	cred, err := s.authorize(ctx, adminID)
	if err != nil {
		return nil, err
	}

	stats, err := s.backend.Stats(ctx, cred.Token)
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	return stats, nil
}

// Export renders the full filtered set to an xlsx workbook.
func (s *AdminService) Export(ctx context.Context, adminID string, f domain.RegistrationFilter) ([]byte, error) {
	cred, err := s.authorize(ctx, adminID)
	if err != nil {
		return nil, err
	}

	regs, err := s.backend.Registrations(ctx, cred.Token, f)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	zones, err := s.backend.Zones(ctx)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	names := make(map[int64]string, len(zones))
	for _, z := range zones {
		names[z.ID] = z.Name
	}

	data, err := export.Workbook(regs, names)
	if err != nil {
		return nil, fmt.Errorf("build workbook: %w", err)
	}

	s.metrics.ExportsGenerated.Inc()
	s.logger.Info("registrations exported",
		logger.Int("count", len(regs)),
	)
	return data, nil
}

func (s *AdminService) authorize(ctx context.Context, adminID string) (*domain.Credential, error) {
	cred, err := s.credentials.Get(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("get credential: %w", err)
	}
	if cred == nil || cred.Token == "" || !cred.IsAdmin {
		return nil, domain.ErrUnauthorized
	}
	return cred, nil
}
