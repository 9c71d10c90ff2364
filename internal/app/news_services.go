package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/news"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/config"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/recovery"
)

// maxConcurrentFetches bounds the category fetches running at once
const maxConcurrentFetches = 4

// newsService implements the NewsService interface
type newsService struct {
	newsRepo   news.NewsRepository
	fetcher    news.NewsFetcher
	categories []config.NewsCategorySettings
	recoverer  *recovery.Recoverer
	logger     logger.Logger
}

// NewNewsService creates a new newsService instance
func NewNewsService(
	newsRepo news.NewsRepository,
	fetcher news.NewsFetcher,
	categories []config.NewsCategorySettings,
	recoverer *recovery.Recoverer,
	logger logger.Logger,
) (news.NewsService, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("at least one news category is required")
	}
	return &newsService{
		newsRepo:   newsRepo,
		fetcher:    fetcher,
		categories: categories,
		recoverer:  recoverer,
		logger:     logger,
	}, nil
}

type categoryArticles struct {
	category string
	articles []news.Article
}

// Aggregate fetches all categories concurrently. A category whose fetch
// still fails after recovery is reported in FailedCategories and does not
// abort the others.
func (s *newsService) Aggregate(ctx context.Context) (*news.AggregationResult, error) {
	var (
		mu      sync.Mutex
		batches []categoryArticles
		failed  []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for _, category := range s.categories {
		g.Go(func() error {
			articles, err := recovery.Do(gctx, s.recoverer, "news.fetch."+category.Name, func(ctx context.Context) ([]news.Article, error) {
				return s.fetcher.Fetch(ctx, category.Query)
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.logger.Warn(fmt.Sprintf("Skipping news category %s: %v", category.Name, err))
				failed = append(failed, category.Name)
				return nil
			}
			batches = append(batches, categoryArticles{category: category.Name, articles: articles})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("news aggregation cancelled: %w", err)
	}

	// configuration order decides which category keeps an article found twice
	order := make(map[string]int, len(s.categories))
	for i, c := range s.categories {
		order[c.Name] = i
	}
	sort.Slice(batches, func(i, j int) bool { return order[batches[i].category] < order[batches[j].category] })
	sort.Slice(failed, func(i, j int) bool { return order[failed[i]] < order[failed[j]] })

	result := &news.AggregationResult{FailedCategories: failed}

	seen := make(map[string]bool)
	var items []*news.NewsItem
	var urls []string
	now := time.Now().UTC()
	for _, b := range batches {
		for _, a := range b.articles {
			result.Fetched++
			if seen[a.URL] {
				result.Duplicates++
				continue
			}
			seen[a.URL] = true
			items = append(items, articleToItem(a, b.category, now))
			urls = append(urls, a.URL)
		}
	}

	if len(items) == 0 {
		return result, nil
	}

	existing, err := s.newsRepo.ExistingURLs(ctx, urls)
	if err != nil {
		return nil, fmt.Errorf("failed to check stored news: %w", err)
	}

	for _, item := range items {
		if existing[item.URL] {
			result.Duplicates++
			continue
		}
		if err := s.newsRepo.Create(ctx, item); err != nil {
			switch {
			case errors.Is(err, domain.ErrConflict):
				result.Duplicates++
			case errors.Is(err, domain.ErrInvalidInput):
				s.logger.Warn(fmt.Sprintf("Skipping invalid article %s: %v", item.URL, err))
			default:
				return nil, fmt.Errorf("failed to store news item: %w", err)
			}
			continue
		}
		result.Stored++
	}

	s.logger.Info(fmt.Sprintf("News aggregation fetched %d, stored %d, duplicates %d, failed categories %v",
		result.Fetched, result.Stored, result.Duplicates, result.FailedCategories))
	return result, nil
}

func articleToItem(a news.Article, category string, now time.Time) *news.NewsItem {
	publishedAt := a.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = now
	}
	return &news.NewsItem{
		ID:              uuid.New().String(),
		Title:           truncate(a.Title, 300),
		Summary:         truncate(a.Description, 2000),
		URL:             a.URL,
		ImageURL:        a.ImageURL,
		Source:          truncate(a.Source, 100),
		Category:        category,
		PublishedAt:     publishedAt.UTC(),
		DateTimeCreated: now,
	}
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func (s *newsService) List(ctx context.Context, query *news.NewsQuery) ([]*news.NewsItem, error) {
	items, err := s.newsRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	return items, nil
}

func (s *newsService) GetByID(ctx context.Context, itemID string) (*news.NewsItem, error) {
	item, err := s.newsRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get news item: %w", err)
	}
	return item, nil
}

func (s *newsService) DeleteByID(ctx context.Context, itemID string) error {
	if err := s.newsRepo.DeleteByID(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete news item: %w", err)
	}
	return nil
}
