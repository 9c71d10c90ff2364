package connector

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/news"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/config"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
)

type newsAPIResponse struct {
	Status   string `json:"status"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		URL         string    `json:"url"`
		URLToImage  string    `json:"urlToImage"`
		PublishedAt time.Time `json:"publishedAt"`
	} `json:"articles"`
}

type newsAPIClient struct {
	httpClient *resty.Client
	language   string
	pageSize   int
	logger     logger.Logger
}

// NewNewsAPIClient creates a news.NewsFetcher for a NewsAPI compatible
// "everything" endpoint
func NewNewsAPIClient(settings *config.NewsSettings, logger logger.Logger) (news.NewsFetcher, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid news settings: %w", err)
	}

	client := newRestyClient(&settings.API)
	if settings.API.APIKey != "" {
		client.SetHeader("X-Api-Key", settings.API.APIKey)
	}

	return &newsAPIClient{
		httpClient: client,
		language:   settings.Language,
		pageSize:   settings.PageSize,
		logger:     logger,
	}, nil
}

func (c *newsAPIClient) Fetch(ctx context.Context, query string) ([]news.Article, error) {
	var response newsAPIResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":        query,
			"language": c.language,
			"pageSize": strconv.Itoa(c.pageSize),
			"sortBy":   "publishedAt",
		}).
		SetResult(&response).
		Get("/everything")
	if err := checkResponse("news.fetch", resp, err); err != nil {
		c.logger.Error("News API call failed: ", err)
		return nil, err
	}

	if response.Status != "" && response.Status != "ok" {
		return nil, fmt.Errorf("news API error: %s (%s)", response.Message, response.Code)
	}

	articles := make([]news.Article, 0, len(response.Articles))
	for _, a := range response.Articles {
		// removed articles come back as placeholders without a usable link
		if a.URL == "" || strings.TrimSpace(a.Title) == "" || a.Title == "[Removed]" {
			continue
		}
		articles = append(articles, news.Article{
			Title:       strings.TrimSpace(a.Title),
			Description: strings.TrimSpace(a.Description),
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			Source:      a.Source.Name,
			PublishedAt: a.PublishedAt,
		})
	}

	c.logger.Debug(fmt.Sprintf("Fetched %d articles for %q", len(articles), query))
	return articles, nil
}
