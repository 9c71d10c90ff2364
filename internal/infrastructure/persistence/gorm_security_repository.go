package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/security"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/infrastructure/persistence/models"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
)

type gormSecuritySystemRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSecuritySystemRepository creates a new GORM-based SecuritySystemRepository implementation
func NewGormSecuritySystemRepository(db *gorm.DB, logger logger.Logger) (security.SecuritySystemRepository, error) {
	return &gormSecuritySystemRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSecuritySystemRepository) List(ctx context.Context, query *security.SecuritySystemQuery) ([]*security.SecuritySystem, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.SecuritySystemModel
	dbQuery := r.db.WithContext(ctx).Model(&models.SecuritySystemModel{})

	if query.Type != "" {
		dbQuery = dbQuery.Where("type = ?", query.Type)
	}
	if query.Provider != "" {
		dbQuery = dbQuery.Where("provider LIKE ?", "%"+query.Provider+"%")
	}
	if query.MaxMonthlyFee > 0 {
		dbQuery = dbQuery.Where("monthly_fee <= ?", query.MaxMonthlyFee)
	}

	dbQuery = paginate(dbQuery.Order("monthly_fee asc, provider asc"), query.Limit, query.Offset)

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch security systems: %w", err)
	}

	domainList := make([]*security.SecuritySystem, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormSecuritySystemRepository) GetByID(ctx context.Context, systemID string) (*security.SecuritySystem, error) {
	var model models.SecuritySystemModel
	if err := r.db.WithContext(ctx).Where("id = ?", systemID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("security system", systemID)
		}
		return nil, fmt.Errorf("failed to fetch security system: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSecuritySystemRepository) ReplaceAll(ctx context.Context, systems []*security.SecuritySystem) error {
	modelList := make([]*models.SecuritySystemModel, len(systems))
	for i, system := range systems {
		if err := system.Validate(); err != nil {
			return fmt.Errorf("validation error: %w", err)
		}
		modelList[i] = &models.SecuritySystemModel{}
		modelList[i].FromDomain(system)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.SecuritySystemModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear security systems: %w", err)
		}
		if len(modelList) == 0 {
			return nil
		}
		if err := tx.Create(&modelList).Error; err != nil {
			return translate(err, "create", "security systems")
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info(fmt.Sprintf("Replaced security catalog with %d systems", len(systems)))
	return nil
}

func (r *gormSecuritySystemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SecuritySystemModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count security systems: %w", err)
	}
	return count, nil
}
