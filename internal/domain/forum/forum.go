package forum

import (
	"fmt"
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/validators"
)

// Forum categories
const (
	CategoryElectricity = "luz"
	CategoryInternet    = "internet"
	CategoryHousing     = "inmuebles"
	CategorySecurity    = "seguridad"
	CategoryGeneral     = "general"
)

// ForumPost entity
type ForumPost struct {
	ID              string    `validate:"required,uuid4"`
	AuthorID        string    `validate:"required,uuid4"`
	AuthorName      string    `validate:"required,min=1,max=100"`
	Category        string    `validate:"required,oneof=luz internet inmuebles seguridad general"`
	Title           string    `validate:"required,min=3,max=200"`
	Content         string    `validate:"required,min=1,max=10000"`
	ReplyCount      int       `validate:"gte=0"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating ForumPost struct
func (p *ForumPost) Validate() error {
	if err := validators.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// ForumReply entity
type ForumReply struct {
	ID              string    `validate:"required,uuid4"`
	PostID          string    `validate:"required,uuid4"`
	AuthorID        string    `validate:"required,uuid4"`
	AuthorName      string    `validate:"required,min=1,max=100"`
	Content         string    `validate:"required,min=1,max=10000"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating ForumReply struct
func (r *ForumReply) Validate() error {
	if err := validators.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// Thread is a post together with its replies, oldest reply first
type Thread struct {
	Post    *ForumPost
	Replies []*ForumReply
}

// ForumQuery filters posts. Results are newest first.
type ForumQuery struct {
	Category string `validate:"omitempty,oneof=luz internet inmuebles seguridad general"`
	AuthorID string `validate:"omitempty,uuid4"`
	Limit    int    `validate:"gte=0,lte=100"`
	Offset   int    `validate:"gte=0"`
}

// NewForumQuery creates a ForumQuery with default values
func NewForumQuery() *ForumQuery {
	return &ForumQuery{Limit: 20}
}

// Validate for validating ForumQuery struct
func (q *ForumQuery) Validate() error {
	if err := validators.Struct(q); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
