package accounts

import (
	"errors"
	"fmt"
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/validators"
)

// ErrInvalidCredentials is returned when email and password do not match
var ErrInvalidCredentials = errors.New("credenciales inválidas")

// User entity
type User struct {
	ID                string    `validate:"required,uuid4"`
	Email             string    `validate:"required,email,max=254"`
	DisplayName       string    `validate:"required,min=1,max=100"`
	PasswordHash      string    `validate:"required"`
	PostalCode        string    `validate:"omitempty,postalcode"`
	Phone             string    `validate:"omitempty,phone_es"`
	CUPS              string    `validate:"omitempty,cups"`
	AvatarBlob        *string   `validate:"omitempty,min=1,max=255"`
	AvatarContentType *string   `validate:"omitempty,min=1,max=100"`
	DateTimeCreated   time.Time `validate:"required"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	if err := validators.Struct(u); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// Session is an issued bearer token
type Session struct {
	Token           string    `validate:"required,uuid4"`
	UserID          string    `validate:"required,uuid4"`
	ExpiresAt       time.Time `validate:"required"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Session struct
func (s *Session) Validate() error {
	if err := validators.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// Expired reports whether the session is no longer valid at now
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Registration is the input to create an account
type Registration struct {
	Email       string `validate:"required,email,max=254"`
	Password    string `validate:"required,min=8,max=72"`
	DisplayName string `validate:"required,min=1,max=100"`
	PostalCode  string `validate:"omitempty,postalcode"`
}

// Validate for validating Registration struct
func (r *Registration) Validate() error {
	if err := validators.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// ProfileUpdate changes the editable fields of a profile. Nil fields are
// left untouched and empty strings clear the field.
type ProfileUpdate struct {
	DisplayName *string `validate:"omitempty,min=1,max=100"`
	PostalCode  *string `validate:"omitempty,postalcode"`
	Phone       *string `validate:"omitempty,phone_es"`
	CUPS        *string `validate:"omitempty,cups"`
}

// Validate for validating ProfileUpdate struct
func (p *ProfileUpdate) Validate() error {
	if err := validators.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// Apply copies the set fields onto u, normalizing phone and CUPS
func (p *ProfileUpdate) Apply(u *User) {
	if p.DisplayName != nil {
		u.DisplayName = *p.DisplayName
	}
	if p.PostalCode != nil {
		u.PostalCode = *p.PostalCode
	}
	if p.Phone != nil {
		u.Phone = validators.NormalizePhone(*p.Phone)
	}
	if p.CUPS != nil {
		u.CUPS = validators.NormalizeCUPS(*p.CUPS)
	}
}

// Avatar is a stored profile picture
type Avatar struct {
	Content     []byte
	ContentType string
}
