package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/tariffs"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/infrastructure/seed"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
)

// electricityCatalogService implements the ElectricityCatalogService interface
type electricityCatalogService struct {
	tariffRepo tariffs.ElectricityTariffRepository
	logger     logger.Logger
}

// NewElectricityCatalogService creates a new electricityCatalogService instance
func NewElectricityCatalogService(tariffRepo tariffs.ElectricityTariffRepository, logger logger.Logger) (tariffs.ElectricityCatalogService, error) {
	return &electricityCatalogService{
		tariffRepo: tariffRepo,
		logger:     logger,
	}, nil
}

func (s *electricityCatalogService) Create(ctx context.Context, tariff *tariffs.ElectricityTariff) (*tariffs.ElectricityTariff, error) {
	tariff.ID = uuid.New().String()
	tariff.DateTimeCreated = time.Now().UTC()

	if err := s.tariffRepo.Create(ctx, tariff); err != nil {
		return nil, fmt.Errorf("failed to create electricity tariff: %w", err)
	}
	return tariff, nil
}

func (s *electricityCatalogService) List(ctx context.Context, query *tariffs.ElectricityTariffQuery) ([]*tariffs.ElectricityTariff, error) {
	list, err := s.tariffRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list electricity tariffs: %w", err)
	}
	return list, nil
}

func (s *electricityCatalogService) GetByID(ctx context.Context, tariffID string) (*tariffs.ElectricityTariff, error) {
	tariff, err := s.tariffRepo.GetByID(ctx, tariffID)
	if err != nil {
		return nil, fmt.Errorf("failed to get electricity tariff: %w", err)
	}
	return tariff, nil
}

func (s *electricityCatalogService) DeleteByID(ctx context.Context, tariffID string) error {
	if err := s.tariffRepo.DeleteByID(ctx, tariffID); err != nil {
		return fmt.Errorf("failed to delete electricity tariff: %w", err)
	}
	return nil
}

// Compare ranks the whole stored catalog for req
func (s *electricityCatalogService) Compare(ctx context.Context, req tariffs.ElectricityComparisonRequest) ([]tariffs.ElectricityQuote, error) {
	if err := req.Usage.Validate(); err != nil {
		return nil, err
	}

	catalog, err := s.tariffRepo.List(ctx, &tariffs.ElectricityTariffQuery{})
	if err != nil {
		return nil, fmt.Errorf("failed to load electricity catalog: %w", err)
	}

	quotes := tariffs.CompareElectricity(catalog, req)
	s.logger.Debug(fmt.Sprintf("Ranked %d of %d electricity tariffs", len(quotes), len(catalog)))
	return quotes, nil
}

// internetCatalogService implements the InternetCatalogService interface
type internetCatalogService struct {
	tariffRepo tariffs.InternetTariffRepository
	logger     logger.Logger
}

// NewInternetCatalogService creates a new internetCatalogService instance
func NewInternetCatalogService(tariffRepo tariffs.InternetTariffRepository, logger logger.Logger) (tariffs.InternetCatalogService, error) {
	return &internetCatalogService{
		tariffRepo: tariffRepo,
		logger:     logger,
	}, nil
}

func (s *internetCatalogService) Create(ctx context.Context, tariff *tariffs.InternetTariff) (*tariffs.InternetTariff, error) {
	tariff.ID = uuid.New().String()
	tariff.DateTimeCreated = time.Now().UTC()

	if err := s.tariffRepo.Create(ctx, tariff); err != nil {
		return nil, fmt.Errorf("failed to create internet tariff: %w", err)
	}
	return tariff, nil
}

func (s *internetCatalogService) List(ctx context.Context, query *tariffs.InternetTariffQuery) ([]*tariffs.InternetTariff, error) {
	list, err := s.tariffRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list internet tariffs: %w", err)
	}
	return list, nil
}

func (s *internetCatalogService) GetByID(ctx context.Context, tariffID string) (*tariffs.InternetTariff, error) {
	tariff, err := s.tariffRepo.GetByID(ctx, tariffID)
	if err != nil {
		return nil, fmt.Errorf("failed to get internet tariff: %w", err)
	}
	return tariff, nil
}

func (s *internetCatalogService) DeleteByID(ctx context.Context, tariffID string) error {
	if err := s.tariffRepo.DeleteByID(ctx, tariffID); err != nil {
		return fmt.Errorf("failed to delete internet tariff: %w", err)
	}
	return nil
}

// Compare ranks the whole stored catalog for req
func (s *internetCatalogService) Compare(ctx context.Context, req tariffs.InternetComparisonRequest) ([]tariffs.InternetQuote, error) {
	catalog, err := s.tariffRepo.List(ctx, &tariffs.InternetTariffQuery{})
	if err != nil {
		return nil, fmt.Errorf("failed to load internet catalog: %w", err)
	}

	quotes := tariffs.CompareInternet(catalog, req)
	s.logger.Debug(fmt.Sprintf("Ranked %d of %d internet tariffs", len(quotes), len(catalog)))
	return quotes, nil
}

// SeedTariffs stores the embedded catalog in every empty tariff table and
// returns the number of tariffs created
func SeedTariffs(ctx context.Context, electricityRepo tariffs.ElectricityTariffRepository, internetRepo tariffs.InternetTariffRepository, logger logger.Logger) (int, error) {
	catalog, err := seed.Tariffs()
	if err != nil {
		return 0, fmt.Errorf("failed to load tariff seed: %w", err)
	}

	created := 0

	count, err := electricityRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count electricity tariffs: %w", err)
	}
	if count == 0 {
		for _, t := range catalog.Electricity {
			if err := electricityRepo.Create(ctx, t); err != nil {
				return created, fmt.Errorf("failed to seed electricity tariff %s: %w", t.Name, err)
			}
			created++
		}
	}

	count, err = internetRepo.Count(ctx)
	if err != nil {
		return created, fmt.Errorf("failed to count internet tariffs: %w", err)
	}
	if count == 0 {
		for _, t := range catalog.Internet {
			if err := internetRepo.Create(ctx, t); err != nil {
				return created, fmt.Errorf("failed to seed internet tariff %s: %w", t.Name, err)
			}
			created++
		}
	}

	if created > 0 {
		logger.Info(fmt.Sprintf("Seeded %d tariffs", created))
	}
	return created, nil
}
