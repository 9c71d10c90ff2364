package news

import "context"

// NewsRepository defines the interface for NewsItem-related operations
type NewsRepository interface {
	Create(ctx context.Context, item *NewsItem) error
	List(ctx context.Context, query *NewsQuery) ([]*NewsItem, error)
	GetByID(ctx context.Context, itemID string) (*NewsItem, error)
	DeleteByID(ctx context.Context, itemID string) error
	// ExistingURLs returns the subset of urls already stored
	ExistingURLs(ctx context.Context, urls []string) (map[string]bool, error)
}

// NewsFetcher retrieves articles for a search query from a news provider
type NewsFetcher interface {
	Fetch(ctx context.Context, query string) ([]Article, error)
}

// NewsService defines methods for aggregating and reading news.
type NewsService interface {
	// Aggregate fetches every configured category concurrently, drops
	// articles whose URL is already stored and persists the rest.
	Aggregate(ctx context.Context) (*AggregationResult, error)
	List(ctx context.Context, query *NewsQuery) ([]*NewsItem, error)
	GetByID(ctx context.Context, itemID string) (*NewsItem, error)
	DeleteByID(ctx context.Context, itemID string) error
}
