package blog

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/validators"
)

// BlogPost entity
type BlogPost struct {
	ID          string    `validate:"required,uuid4"`
	Slug        string    `validate:"required,min=1,max=200"`
	Title       string    `validate:"required,min=1,max=200"`
	Summary     string    `validate:"max=500"`
	Content     string    `validate:"required,min=1"`
	AuthorID    string    `validate:"required,uuid4"`
	Tags        []string  `validate:"max=10,dive,min=1,max=40"`
	PublishedAt time.Time `validate:"required"`
}

// Validate for validating BlogPost struct
func (p *BlogPost) Validate() error {
	if err := validators.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !slugPattern.MatchString(p.Slug) {
		return fmt.Errorf("%w: Slug %q no es válido", domain.ErrInvalidInput, p.Slug)
	}
	return nil
}

var (
	slugPattern   = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	slugSeparator = regexp.MustCompile(`[^a-z0-9]+`)
	accentFolder  = strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n", "ç", "c",
		"à", "a", "è", "e", "ò", "o", "ï", "i",
	)
)

// Slugify derives a URL slug from a title: lower case ASCII words joined by
// hyphens, Spanish accents folded.
func Slugify(title string) string {
	s := accentFolder.Replace(strings.ToLower(title))
	s = slugSeparator.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 200 {
		s = strings.TrimRight(s[:200], "-")
	}
	return s
}

// BlogQuery filters published posts. Results are newest first.
type BlogQuery struct {
	Tag      string `validate:"omitempty,max=40"`
	AuthorID string `validate:"omitempty,uuid4"`
	Limit    int    `validate:"gte=0,lte=100"`
	Offset   int    `validate:"gte=0"`
}

// NewBlogQuery creates a BlogQuery with default values
func NewBlogQuery() *BlogQuery {
	return &BlogQuery{Limit: 20}
}

// Validate for validating BlogQuery struct
func (q *BlogQuery) Validate() error {
	if err := validators.Struct(q); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
