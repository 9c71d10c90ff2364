package blog

import "context"

// BlogRepository defines the interface for BlogPost-related operations
type BlogRepository interface {
	Create(ctx context.Context, post *BlogPost) error
	List(ctx context.Context, query *BlogQuery) ([]*BlogPost, error)
	GetByID(ctx context.Context, postID string) (*BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*BlogPost, error)
	DeleteByID(ctx context.Context, postID string) error
}

// BlogService defines methods for publishing and reading blog posts.
type BlogService interface {
	// Publish stores post on behalf of authorID, deriving the slug from the
	// title when none is set.
	Publish(ctx context.Context, authorID string, post *BlogPost) (*BlogPost, error)
	List(ctx context.Context, query *BlogQuery) ([]*BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*BlogPost, error)
	// DeleteByID removes a post. Only its author may delete it.
	DeleteByID(ctx context.Context, postID, userID string) error
}
