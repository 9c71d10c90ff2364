package models

import (
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/accounts"
)

// UserModel is the GORM database model for accounts
type UserModel struct {
	ID                string    `gorm:"primaryKey;type:uuid"`
	Email             string    `gorm:"not null;uniqueIndex;type:varchar(254)"`
	DisplayName       string    `gorm:"not null;type:varchar(100)"`
	PasswordHash      string    `gorm:"not null;type:varchar(100)"`
	PostalCode        string    `gorm:"type:varchar(5)"`
	Phone             string    `gorm:"type:varchar(20)"`
	CUPS              string    `gorm:"column:cups;type:varchar(22)"`
	AvatarBlob        *string   `gorm:"type:varchar(255)"`
	AvatarContentType *string   `gorm:"type:varchar(100)"`
	DateTimeCreated   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *accounts.User {
	return &accounts.User{
		ID:                m.ID,
		Email:             m.Email,
		DisplayName:       m.DisplayName,
		PasswordHash:      m.PasswordHash,
		PostalCode:        m.PostalCode,
		Phone:             m.Phone,
		CUPS:              m.CUPS,
		AvatarBlob:        m.AvatarBlob,
		AvatarContentType: m.AvatarContentType,
		DateTimeCreated:   m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *accounts.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.DisplayName = u.DisplayName
	m.PasswordHash = u.PasswordHash
	m.PostalCode = u.PostalCode
	m.Phone = u.Phone
	m.CUPS = u.CUPS
	m.AvatarBlob = u.AvatarBlob
	m.AvatarContentType = u.AvatarContentType
	m.DateTimeCreated = u.DateTimeCreated
}

// SessionModel is the GORM database model for bearer sessions
type SessionModel struct {
	Token           string    `gorm:"primaryKey;type:uuid"`
	UserID          string    `gorm:"not null;index;type:uuid"`
	ExpiresAt       time.Time `gorm:"not null;index"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}

// ToDomain converts GORM model to domain entity
func (m *SessionModel) ToDomain() *accounts.Session {
	return &accounts.Session{
		Token:           m.Token,
		UserID:          m.UserID,
		ExpiresAt:       m.ExpiresAt,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SessionModel) FromDomain(s *accounts.Session) {
	m.Token = s.Token
	m.UserID = s.UserID
	m.ExpiresAt = s.ExpiresAt
	m.DateTimeCreated = s.DateTimeCreated
}
