package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/news"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/infrastructure/persistence/models"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
)

type gormNewsRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormNewsRepository creates a new GORM-based NewsRepository implementation
func NewGormNewsRepository(db *gorm.DB, logger logger.Logger) (news.NewsRepository, error) {
	return &gormNewsRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormNewsRepository) Create(ctx context.Context, item *news.NewsItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.NewsItemModel{}
	model.FromDomain(item)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translate(err, "create", "news item")
	}

	r.logger.Debug("Created news item with id ", item.ID)
	return nil
}

func (r *gormNewsRepository) List(ctx context.Context, query *news.NewsQuery) ([]*news.NewsItem, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.NewsItemModel
	dbQuery := r.db.WithContext(ctx).Model(&models.NewsItemModel{})

	if query.Category != "" {
		dbQuery = dbQuery.Where("category = ?", query.Category)
	}
	if query.Source != "" {
		dbQuery = dbQuery.Where("source = ?", query.Source)
	}

	dbQuery = paginate(dbQuery.Order("published_at desc"), query.Limit, query.Offset)

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}

	domainList := make([]*news.NewsItem, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormNewsRepository) GetByID(ctx context.Context, itemID string) (*news.NewsItem, error) {
	var model models.NewsItemModel
	if err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("news item", itemID)
		}
		return nil, fmt.Errorf("failed to fetch news item: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormNewsRepository) DeleteByID(ctx context.Context, itemID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", itemID).Delete(&models.NewsItemModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete news item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("news item", itemID)
	}

	r.logger.Info("Deleted news item with id ", itemID)
	return nil
}

func (r *gormNewsRepository) ExistingURLs(ctx context.Context, urls []string) (map[string]bool, error) {
	existing := make(map[string]bool)
	if len(urls) == 0 {
		return existing, nil
	}

	var found []string
	if err := r.db.WithContext(ctx).Model(&models.NewsItemModel{}).Where("url IN ?", urls).Pluck("url", &found).Error; err != nil {
		return nil, fmt.Errorf("failed to look up news urls: %w", err)
	}
	for _, url := range found {
		existing[url] = true
	}
	return existing, nil
}
