package news

import (
	"fmt"
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/validators"
)

// NewsItem entity
type NewsItem struct {
	ID              string    `validate:"required,uuid4"`
	Title           string    `validate:"required,min=1,max=300"`
	Summary         string    `validate:"max=2000"`
	URL             string    `validate:"required,url,max=1000"`
	ImageURL        string    `validate:"omitempty,url,max=1000"`
	Source          string    `validate:"max=100"`
	Category        string    `validate:"required,min=1,max=50"`
	PublishedAt     time.Time `validate:"required"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating NewsItem struct
func (n *NewsItem) Validate() error {
	if err := validators.Struct(n); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// Article is a news entry as returned by the news API, before it is stored
type Article struct {
	Title       string
	Description string
	URL         string
	ImageURL    string
	Source      string
	PublishedAt time.Time
}

// NewsQuery filters stored news. Results are always newest first.
type NewsQuery struct {
	Category string `validate:"omitempty,max=50"`
	Source   string `validate:"omitempty,max=100"`
	Limit    int    `validate:"gte=0,lte=200"`
	Offset   int    `validate:"gte=0"`
}

// NewNewsQuery creates a NewsQuery with default values
func NewNewsQuery() *NewsQuery {
	return &NewsQuery{Limit: 20}
}

// Validate for validating NewsQuery struct
func (q *NewsQuery) Validate() error {
	if err := validators.Struct(q); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// AggregationResult summarizes one aggregation run
type AggregationResult struct {
	Fetched    int
	Stored     int
	Duplicates int
	// FailedCategories lists the categories whose fetch failed after recovery
	FailedCategories []string
}
