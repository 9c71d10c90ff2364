package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/blog"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/infrastructure/persistence/models"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
)

type gormBlogRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBlogRepository creates a new GORM-based BlogRepository implementation
func NewGormBlogRepository(db *gorm.DB, logger logger.Logger) (blog.BlogRepository, error) {
	return &gormBlogRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormBlogRepository) Create(ctx context.Context, post *blog.BlogPost) error {
	if err := post.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BlogPostModel{}
	model.FromDomain(post)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translate(err, "create", "blog post")
	}

	r.logger.Info("Created blog post with id ", post.ID)
	return nil
}

func (r *gormBlogRepository) List(ctx context.Context, query *blog.BlogQuery) ([]*blog.BlogPost, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.BlogPostModel
	dbQuery := r.db.WithContext(ctx).Model(&models.BlogPostModel{})

	if query.AuthorID != "" {
		dbQuery = dbQuery.Where("author_id = ?", query.AuthorID)
	}
	if query.Tag != "" {
		// tags are stored as a JSON array of strings
		dbQuery = dbQuery.Where("tags LIKE ?", "%\""+query.Tag+"\"%")
	}

	dbQuery = paginate(dbQuery.Order("published_at desc"), query.Limit, query.Offset)

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch blog posts: %w", err)
	}

	domainList := make([]*blog.BlogPost, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormBlogRepository) GetByID(ctx context.Context, postID string) (*blog.BlogPost, error) {
	return r.first(ctx, "id = ?", postID)
}

func (r *gormBlogRepository) GetBySlug(ctx context.Context, slug string) (*blog.BlogPost, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *gormBlogRepository) first(ctx context.Context, cond, value string) (*blog.BlogPost, error) {
	var model models.BlogPostModel
	if err := r.db.WithContext(ctx).Where(cond, value).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("blog post %s: %w", value, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch blog post: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormBlogRepository) DeleteByID(ctx context.Context, postID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", postID).Delete(&models.BlogPostModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete blog post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("blog post", postID)
	}

	r.logger.Info("Deleted blog post with id ", postID)
	return nil
}
