package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/properties"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/infrastructure/persistence/models"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
)

type gormPropertyRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPropertyRepository creates a new GORM-based PropertyRepository implementation
func NewGormPropertyRepository(db *gorm.DB, logger logger.Logger) (properties.PropertyRepository, error) {
	return &gormPropertyRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPropertyRepository) Create(ctx context.Context, property *properties.Property) error {
	if err := property.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PropertyModel{}
	model.FromDomain(property)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translate(err, "create", "property")
	}

	r.logger.Info("Created property with id ", property.ID)
	return nil
}

func (r *gormPropertyRepository) List(ctx context.Context, query *properties.PropertyQuery) ([]*properties.Property, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.PropertyModel
	dbQuery := r.db.WithContext(ctx).Model(&models.PropertyModel{})

	if query.Operation != "" {
		dbQuery = dbQuery.Where("operation = ?", query.Operation)
	}
	if query.PropertyType != "" {
		dbQuery = dbQuery.Where("property_type = ?", query.PropertyType)
	}
	if query.City != "" {
		dbQuery = dbQuery.Where("LOWER(city) = LOWER(?)", query.City)
	}
	if query.PostalCode != "" {
		dbQuery = dbQuery.Where("postal_code = ?", query.PostalCode)
	}
	if query.MinPrice > 0 {
		dbQuery = dbQuery.Where("price >= ?", query.MinPrice)
	}
	if query.MaxPrice > 0 {
		dbQuery = dbQuery.Where("price <= ?", query.MaxPrice)
	}
	if query.MinRooms > 0 {
		dbQuery = dbQuery.Where("rooms >= ?", query.MinRooms)
	}
	if query.OwnerID != "" {
		dbQuery = dbQuery.Where("owner_id = ?", query.OwnerID)
	}

	dbQuery = orderBy(dbQuery, query.SortBy, query.SortOrder, "date_time_created desc")
	dbQuery = paginate(dbQuery, query.Limit, query.Offset)

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch properties: %w", err)
	}

	domainList := make([]*properties.Property, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormPropertyRepository) GetByID(ctx context.Context, propertyID string) (*properties.Property, error) {
	var model models.PropertyModel
	if err := r.db.WithContext(ctx).Where("id = ?", propertyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("property", propertyID)
		}
		return nil, fmt.Errorf("failed to fetch property: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormPropertyRepository) DeleteByID(ctx context.Context, propertyID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", propertyID).Delete(&models.PropertyModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete property: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("property", propertyID)
	}

	r.logger.Info("Deleted property with id ", propertyID)
	return nil
}
