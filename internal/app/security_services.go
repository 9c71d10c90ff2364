package app

import (
	"context"
	"fmt"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/security"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/infrastructure/seed"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/recovery"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/validators"
)

// securityService implements the SecurityService interface
type securityService struct {
	systemRepo security.SecuritySystemRepository
	client     security.SecurityCatalogClient
	recoverer  *recovery.Recoverer
	logger     logger.Logger
}

// NewSecurityService creates a new securityService instance
func NewSecurityService(
	systemRepo security.SecuritySystemRepository,
	client security.SecurityCatalogClient,
	recoverer *recovery.Recoverer,
	logger logger.Logger,
) (security.SecurityService, error) {
	return &securityService{
		systemRepo: systemRepo,
		client:     client,
		recoverer:  recoverer,
		logger:     logger,
	}, nil
}

func (s *securityService) List(ctx context.Context, query *security.SecuritySystemQuery) ([]*security.SecuritySystem, error) {
	systems, err := s.systemRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list security systems: %w", err)
	}
	return systems, nil
}

// Sync replaces the stored catalog with the API catalog, or with the
// built-in one when the API fails or returns nothing
func (s *securityService) Sync(ctx context.Context) (*security.SyncResult, error) {
	source := security.SourceAPI
	systems, err := recovery.Do(ctx, s.recoverer, "security.sync", s.client.FetchSystems)
	if err != nil || len(systems) == 0 {
		if err != nil {
			s.logger.Warn("Security API unavailable, using built-in catalog: ", err)
		} else {
			s.logger.Warn("Security API returned an empty catalog, using built-in catalog")
		}

		catalog, seedErr := seed.Security()
		if seedErr != nil {
			return nil, fmt.Errorf("failed to load built-in security catalog: %w", seedErr)
		}
		systems = catalog.Systems
		source = security.SourceFallback
	}

	if err := s.systemRepo.ReplaceAll(ctx, systems); err != nil {
		return nil, fmt.Errorf("failed to store security catalog: %w", err)
	}

	s.logger.Info(fmt.Sprintf("Synchronized %d security systems from %s", len(systems), source))
	return &security.SyncResult{Count: len(systems), Source: source}, nil
}

func (s *securityService) Coverage(ctx context.Context, postalCode string) (*security.Coverage, error) {
	if !validators.ValidatePostalCode(postalCode) {
		return nil, fmt.Errorf("%w: código postal %q no válido", domain.ErrInvalidInput, postalCode)
	}

	coverage, err := recovery.Do(ctx, s.recoverer, "security.coverage", func(ctx context.Context) (*security.Coverage, error) {
		return s.client.FetchCoverage(ctx, postalCode)
	})
	if err == nil {
		return coverage, nil
	}

	s.logger.Warn(fmt.Sprintf("Coverage API unavailable for %s, using national providers: %v", postalCode, err))
	catalog, seedErr := seed.Security()
	if seedErr != nil {
		return nil, fmt.Errorf("failed to load national providers: %w", seedErr)
	}
	return &security.Coverage{
		PostalCode: postalCode,
		Providers:  catalog.NationalProviders,
		Source:     security.SourceFallback,
	}, nil
}

// SeedSecurity stores the built-in catalog when no systems are stored yet
// and returns the number of systems created
func SeedSecurity(ctx context.Context, systemRepo security.SecuritySystemRepository, logger logger.Logger) (int, error) {
	count, err := systemRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count security systems: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	catalog, err := seed.Security()
	if err != nil {
		return 0, fmt.Errorf("failed to load built-in security catalog: %w", err)
	}
	if err := systemRepo.ReplaceAll(ctx, catalog.Systems); err != nil {
		return 0, fmt.Errorf("failed to seed security catalog: %w", err)
	}

	logger.Info(fmt.Sprintf("Seeded %d security systems", len(catalog.Systems)))
	return len(catalog.Systems), nil
}
