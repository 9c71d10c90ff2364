package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/tariffs"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/infrastructure/persistence/models"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
)

type gormElectricityTariffRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormElectricityTariffRepository creates a new GORM-based ElectricityTariffRepository implementation
func NewGormElectricityTariffRepository(db *gorm.DB, logger logger.Logger) (tariffs.ElectricityTariffRepository, error) {
	return &gormElectricityTariffRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormElectricityTariffRepository) Create(ctx context.Context, tariff *tariffs.ElectricityTariff) error {
	if err := tariff.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ElectricityTariffModel{}
	model.FromDomain(tariff)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translate(err, "create", "electricity tariff")
	}

	r.logger.Info("Created electricity tariff with id ", tariff.ID)
	return nil
}

func (r *gormElectricityTariffRepository) List(ctx context.Context, query *tariffs.ElectricityTariffQuery) ([]*tariffs.ElectricityTariff, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ElectricityTariffModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ElectricityTariffModel{})

	if query.Provider != "" {
		dbQuery = dbQuery.Where("provider LIKE ?", "%"+query.Provider+"%")
	}
	if query.GreenEnergy != nil {
		dbQuery = dbQuery.Where("green_energy = ?", *query.GreenEnergy)
	}

	dbQuery = orderBy(dbQuery, query.SortBy, query.SortOrder, "provider asc, name asc")
	dbQuery = paginate(dbQuery, query.Limit, query.Offset)

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch electricity tariffs: %w", err)
	}

	domainList := make([]*tariffs.ElectricityTariff, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormElectricityTariffRepository) GetByID(ctx context.Context, tariffID string) (*tariffs.ElectricityTariff, error) {
	var model models.ElectricityTariffModel
	if err := r.db.WithContext(ctx).Where("id = ?", tariffID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("electricity tariff", tariffID)
		}
		return nil, fmt.Errorf("failed to fetch electricity tariff: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormElectricityTariffRepository) DeleteByID(ctx context.Context, tariffID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", tariffID).Delete(&models.ElectricityTariffModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete electricity tariff: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("electricity tariff", tariffID)
	}

	r.logger.Info("Deleted electricity tariff with id ", tariffID)
	return nil
}

func (r *gormElectricityTariffRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ElectricityTariffModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count electricity tariffs: %w", err)
	}
	return count, nil
}

type gormInternetTariffRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormInternetTariffRepository creates a new GORM-based InternetTariffRepository implementation
func NewGormInternetTariffRepository(db *gorm.DB, logger logger.Logger) (tariffs.InternetTariffRepository, error) {
	return &gormInternetTariffRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormInternetTariffRepository) Create(ctx context.Context, tariff *tariffs.InternetTariff) error {
	if err := tariff.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.InternetTariffModel{}
	model.FromDomain(tariff)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translate(err, "create", "internet tariff")
	}

	r.logger.Info("Created internet tariff with id ", tariff.ID)
	return nil
}

func (r *gormInternetTariffRepository) List(ctx context.Context, query *tariffs.InternetTariffQuery) ([]*tariffs.InternetTariff, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.InternetTariffModel
	dbQuery := r.db.WithContext(ctx).Model(&models.InternetTariffModel{})

	if query.Provider != "" {
		dbQuery = dbQuery.Where("provider LIKE ?", "%"+query.Provider+"%")
	}
	if query.Type != "" {
		dbQuery = dbQuery.Where("type = ?", query.Type)
	}

	dbQuery = orderBy(dbQuery, query.SortBy, query.SortOrder, "provider asc, name asc")
	dbQuery = paginate(dbQuery, query.Limit, query.Offset)

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch internet tariffs: %w", err)
	}

	domainList := make([]*tariffs.InternetTariff, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormInternetTariffRepository) GetByID(ctx context.Context, tariffID string) (*tariffs.InternetTariff, error) {
	var model models.InternetTariffModel
	if err := r.db.WithContext(ctx).Where("id = ?", tariffID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("internet tariff", tariffID)
		}
		return nil, fmt.Errorf("failed to fetch internet tariff: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormInternetTariffRepository) DeleteByID(ctx context.Context, tariffID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", tariffID).Delete(&models.InternetTariffModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete internet tariff: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("internet tariff", tariffID)
	}

	r.logger.Info("Deleted internet tariff with id ", tariffID)
	return nil
}

func (r *gormInternetTariffRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.InternetTariffModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count internet tariffs: %w", err)
	}
	return count, nil
}
