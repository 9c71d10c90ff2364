package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/forum"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
)

// forumService implements the ForumService interface
type forumService struct {
	forumRepo forum.ForumRepository
	logger    logger.Logger
}

// NewForumService creates a new forumService instance
func NewForumService(forumRepo forum.ForumRepository, logger logger.Logger) (forum.ForumService, error) {
	return &forumService{
		forumRepo: forumRepo,
		logger:    logger,
	}, nil
}

func (s *forumService) CreatePost(ctx context.Context, post *forum.ForumPost) (*forum.ForumPost, error) {
	post.ID = uuid.New().String()
	post.ReplyCount = 0
	post.DateTimeCreated = time.Now().UTC()
	if post.Category == "" {
		post.Category = forum.CategoryGeneral
	}

	if err := s.forumRepo.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create forum post: %w", err)
	}
	return post, nil
}

func (s *forumService) ListPosts(ctx context.Context, query *forum.ForumQuery) ([]*forum.ForumPost, error) {
	posts, err := s.forumRepo.ListPosts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list forum posts: %w", err)
	}
	return posts, nil
}

func (s *forumService) GetThread(ctx context.Context, postID string) (*forum.Thread, error) {
	post, err := s.forumRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get forum post: %w", err)
	}

	replies, err := s.forumRepo.ListReplies(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list forum replies: %w", err)
	}
	return &forum.Thread{Post: post, Replies: replies}, nil
}

func (s *forumService) Reply(ctx context.Context, reply *forum.ForumReply) (*forum.ForumReply, error) {
	reply.ID = uuid.New().String()
	reply.DateTimeCreated = time.Now().UTC()

	if err := s.forumRepo.CreateReply(ctx, reply); err != nil {
		return nil, fmt.Errorf("failed to reply to forum post: %w", err)
	}
	return reply, nil
}

func (s *forumService) DeletePost(ctx context.Context, postID, userID string) error {
	post, err := s.forumRepo.GetPostByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to get forum post: %w", err)
	}
	if post.AuthorID != userID {
		return fmt.Errorf("forum post %s: %w", postID, domain.ErrForbidden)
	}

	if err := s.forumRepo.DeletePostByID(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete forum post: %w", err)
	}
	s.logger.Info("Deleted forum post ", postID)
	return nil
}
