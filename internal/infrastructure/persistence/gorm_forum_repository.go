package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/forum"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/infrastructure/persistence/models"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
)

type gormForumRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormForumRepository creates a new GORM-based ForumRepository implementation
func NewGormForumRepository(db *gorm.DB, logger logger.Logger) (forum.ForumRepository, error) {
	return &gormForumRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormForumRepository) CreatePost(ctx context.Context, post *forum.ForumPost) error {
	if err := post.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ForumPostModel{}
	model.FromDomain(post)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translate(err, "create", "forum post")
	}

	r.logger.Info("Created forum post with id ", post.ID)
	return nil
}

func (r *gormForumRepository) ListPosts(ctx context.Context, query *forum.ForumQuery) ([]*forum.ForumPost, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ForumPostModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ForumPostModel{})

	if query.Category != "" {
		dbQuery = dbQuery.Where("category = ?", query.Category)
	}
	if query.AuthorID != "" {
		dbQuery = dbQuery.Where("author_id = ?", query.AuthorID)
	}

	dbQuery = paginate(dbQuery.Order("date_time_created desc"), query.Limit, query.Offset)

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch forum posts: %w", err)
	}

	domainList := make([]*forum.ForumPost, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormForumRepository) GetPostByID(ctx context.Context, postID string) (*forum.ForumPost, error) {
	var model models.ForumPostModel
	if err := r.db.WithContext(ctx).Where("id = ?", postID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("forum post", postID)
		}
		return nil, fmt.Errorf("failed to fetch forum post: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormForumRepository) DeletePostByID(ctx context.Context, postID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.ForumReplyModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete forum replies: %w", err)
		}
		result := tx.Where("id = ?", postID).Delete(&models.ForumPostModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete forum post: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return notFound("forum post", postID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted forum post with id ", postID)
	return nil
}

func (r *gormForumRepository) CreateReply(ctx context.Context, reply *forum.ForumReply) error {
	if err := reply.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ForumReplyModel{}
	model.FromDomain(reply)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ForumPostModel{}).
			Where("id = ?", reply.PostID).
			UpdateColumn("reply_count", gorm.Expr("reply_count + ?", 1))
		if result.Error != nil {
			return fmt.Errorf("failed to update forum post: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return notFound("forum post", reply.PostID)
		}
		if err := tx.Create(model).Error; err != nil {
			return translate(err, "create", "forum reply")
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Created forum reply with id ", reply.ID, " on post ", reply.PostID)
	return nil
}

func (r *gormForumRepository) ListReplies(ctx context.Context, postID string) ([]*forum.ForumReply, error) {
	var modelList []*models.ForumReplyModel
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).Order("date_time_created asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch forum replies: %w", err)
	}

	domainList := make([]*forum.ForumReply, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}
