package models

import (
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/blog"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/forum"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/news"
)

// NewsItemModel is the GORM database model for aggregated news
type NewsItemModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Title           string    `gorm:"not null;type:varchar(300)"`
	Summary         string    `gorm:"type:text"`
	URL             string    `gorm:"not null;uniqueIndex;type:varchar(1000)"`
	ImageURL        string    `gorm:"type:varchar(1000)"`
	Source          string    `gorm:"type:varchar(100)"`
	Category        string    `gorm:"not null;index;type:varchar(50)"`
	PublishedAt     time.Time `gorm:"not null;index"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (NewsItemModel) TableName() string {
	return "news"
}

// ToDomain converts GORM model to domain entity
func (m *NewsItemModel) ToDomain() *news.NewsItem {
	return &news.NewsItem{
		ID:              m.ID,
		Title:           m.Title,
		Summary:         m.Summary,
		URL:             m.URL,
		ImageURL:        m.ImageURL,
		Source:          m.Source,
		Category:        m.Category,
		PublishedAt:     m.PublishedAt,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *NewsItemModel) FromDomain(n *news.NewsItem) {
	m.ID = n.ID
	m.Title = n.Title
	m.Summary = n.Summary
	m.URL = n.URL
	m.ImageURL = n.ImageURL
	m.Source = n.Source
	m.Category = n.Category
	m.PublishedAt = n.PublishedAt
	m.DateTimeCreated = n.DateTimeCreated
}

// BlogPostModel is the GORM database model for blog posts
type BlogPostModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	Slug        string    `gorm:"not null;uniqueIndex;type:varchar(200)"`
	Title       string    `gorm:"not null;type:varchar(200)"`
	Summary     string    `gorm:"type:varchar(500)"`
	Content     string    `gorm:"not null;type:text"`
	AuthorID    string    `gorm:"not null;index;type:uuid"`
	Tags        []string  `gorm:"serializer:json;type:text"`
	PublishedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (BlogPostModel) TableName() string {
	return "blog_posts"
}

// ToDomain converts GORM model to domain entity
func (m *BlogPostModel) ToDomain() *blog.BlogPost {
	return &blog.BlogPost{
		ID:          m.ID,
		Slug:        m.Slug,
		Title:       m.Title,
		Summary:     m.Summary,
		Content:     m.Content,
		AuthorID:    m.AuthorID,
		Tags:        m.Tags,
		PublishedAt: m.PublishedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BlogPostModel) FromDomain(p *blog.BlogPost) {
	m.ID = p.ID
	m.Slug = p.Slug
	m.Title = p.Title
	m.Summary = p.Summary
	m.Content = p.Content
	m.AuthorID = p.AuthorID
	m.Tags = p.Tags
	m.PublishedAt = p.PublishedAt
}

// ForumPostModel is the GORM database model for forum posts
type ForumPostModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	AuthorID        string    `gorm:"not null;index;type:uuid"`
	AuthorName      string    `gorm:"not null;type:varchar(100)"`
	Category        string    `gorm:"not null;index;type:varchar(20)"`
	Title           string    `gorm:"not null;type:varchar(200)"`
	Content         string    `gorm:"not null;type:text"`
	ReplyCount      int       `gorm:"not null;default:0"`
	DateTimeCreated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (ForumPostModel) TableName() string {
	return "forum_posts"
}

// ToDomain converts GORM model to domain entity
func (m *ForumPostModel) ToDomain() *forum.ForumPost {
	return &forum.ForumPost{
		ID:              m.ID,
		AuthorID:        m.AuthorID,
		AuthorName:      m.AuthorName,
		Category:        m.Category,
		Title:           m.Title,
		Content:         m.Content,
		ReplyCount:      m.ReplyCount,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ForumPostModel) FromDomain(p *forum.ForumPost) {
	m.ID = p.ID
	m.AuthorID = p.AuthorID
	m.AuthorName = p.AuthorName
	m.Category = p.Category
	m.Title = p.Title
	m.Content = p.Content
	m.ReplyCount = p.ReplyCount
	m.DateTimeCreated = p.DateTimeCreated
}

// ForumReplyModel is the GORM database model for forum replies
type ForumReplyModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	PostID          string    `gorm:"not null;index;type:uuid"`
	AuthorID        string    `gorm:"not null;type:uuid"`
	AuthorName      string    `gorm:"not null;type:varchar(100)"`
	Content         string    `gorm:"not null;type:text"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ForumReplyModel) TableName() string {
	return "forum_replies"
}

// ToDomain converts GORM model to domain entity
func (m *ForumReplyModel) ToDomain() *forum.ForumReply {
	return &forum.ForumReply{
		ID:              m.ID,
		PostID:          m.PostID,
		AuthorID:        m.AuthorID,
		AuthorName:      m.AuthorName,
		Content:         m.Content,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ForumReplyModel) FromDomain(r *forum.ForumReply) {
	m.ID = r.ID
	m.PostID = r.PostID
	m.AuthorID = r.AuthorID
	m.AuthorName = r.AuthorName
	m.Content = r.Content
	m.DateTimeCreated = r.DateTimeCreated
}
