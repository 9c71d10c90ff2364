package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/blog"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
)

// blogService implements the BlogService interface
type blogService struct {
	blogRepo blog.BlogRepository
	logger   logger.Logger
}

// NewBlogService creates a new blogService instance
func NewBlogService(blogRepo blog.BlogRepository, logger logger.Logger) (blog.BlogService, error) {
	return &blogService{
		blogRepo: blogRepo,
		logger:   logger,
	}, nil
}

// Publish stores post for authorID. A slug already in use gets the first
// characters of the post ID appended.
func (s *blogService) Publish(ctx context.Context, authorID string, post *blog.BlogPost) (*blog.BlogPost, error) {
	post.ID = uuid.New().String()
	post.AuthorID = authorID
	post.PublishedAt = time.Now().UTC()
	if post.Slug == "" {
		post.Slug = blog.Slugify(post.Title)
	}

	_, err := s.blogRepo.GetBySlug(ctx, post.Slug)
	switch {
	case err == nil:
		post.Slug = fmt.Sprintf("%s-%s", post.Slug, post.ID[:8])
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}

	if err := s.blogRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to publish blog post: %w", err)
	}
	return post, nil
}

func (s *blogService) List(ctx context.Context, query *blog.BlogQuery) ([]*blog.BlogPost, error) {
	posts, err := s.blogRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return posts, nil
}

func (s *blogService) GetBySlug(ctx context.Context, slug string) (*blog.BlogPost, error) {
	post, err := s.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	return post, nil
}

func (s *blogService) DeleteByID(ctx context.Context, postID, userID string) error {
	post, err := s.blogRepo.GetByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to get blog post: %w", err)
	}
	if post.AuthorID != userID {
		return fmt.Errorf("blog post %s: %w", postID, domain.ErrForbidden)
	}

	if err := s.blogRepo.DeleteByID(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	s.logger.Info("Deleted blog post ", postID)
	return nil
}
