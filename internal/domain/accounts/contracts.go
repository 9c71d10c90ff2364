package accounts

import (
	"context"
	"mime/multipart"
	"time"
)

// UserRepository defines the interface for User-related operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateByID(ctx context.Context, user *User) error
	DeleteByID(ctx context.Context, userID string) error
}

// SessionRepository defines the interface for Session-related operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteByUserID(ctx context.Context, userID string) error
	// DeleteExpired removes sessions expired at now and returns how many
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// AvatarConnector is an interface for storing profile pictures in blob storage
type AvatarConnector interface {
	Upload(ctx context.Context, blobName string, content []byte, contentType string) error
	Download(ctx context.Context, blobName string) ([]byte, error)
	Delete(ctx context.Context, blobName string) error
}

// AuthService defines methods for registration and session handling.
type AuthService interface {
	Register(ctx context.Context, reg *Registration) (*User, error)
	// Login checks the password and issues a new session
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context, token string) error
	// Authenticate resolves a bearer token to its user
	Authenticate(ctx context.Context, token string) (*User, error)
}

// ProfileService defines methods for managing the caller's profile.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*User, error)
	Update(ctx context.Context, userID string, update *ProfileUpdate) (*User, error)
	// Delete removes the account with its sessions and avatar
	Delete(ctx context.Context, userID string) error
	UploadAvatar(ctx context.Context, userID string, form *multipart.Form) (*User, error)
	DownloadAvatar(ctx context.Context, userID string) (*Avatar, error)
}
