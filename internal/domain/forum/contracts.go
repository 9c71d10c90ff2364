package forum

import "context"

// ForumRepository defines the interface for forum post and reply operations
type ForumRepository interface {
	CreatePost(ctx context.Context, post *ForumPost) error
	ListPosts(ctx context.Context, query *ForumQuery) ([]*ForumPost, error)
	GetPostByID(ctx context.Context, postID string) (*ForumPost, error)
	// DeletePostByID removes the post and its replies
	DeletePostByID(ctx context.Context, postID string) error
	// CreateReply stores reply and increments the reply count of its post
	CreateReply(ctx context.Context, reply *ForumReply) error
	ListReplies(ctx context.Context, postID string) ([]*ForumReply, error)
}

// ForumService defines methods for the community forum.
type ForumService interface {
	CreatePost(ctx context.Context, post *ForumPost) (*ForumPost, error)
	ListPosts(ctx context.Context, query *ForumQuery) ([]*ForumPost, error)
	GetThread(ctx context.Context, postID string) (*Thread, error)
	Reply(ctx context.Context, reply *ForumReply) (*ForumReply, error)
	// DeletePost removes a post with its replies. Only its author may delete it.
	DeletePost(ctx context.Context, postID, userID string) error
}
