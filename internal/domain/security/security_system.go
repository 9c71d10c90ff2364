package security

import (
	"fmt"
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/validators"
)

// Catalog and coverage sources
const (
	SourceAPI      = "api"
	SourceFallback = "fallback"
)

// SecuritySystem entity, an alarm or camera offer
type SecuritySystem struct {
	ID                string    `validate:"required,uuid4"`
	Provider          string    `validate:"required,min=1,max=100"`
	Name              string    `validate:"required,min=1,max=150"`
	Type              string    `validate:"required,oneof=alarma camara kit"`
	InstallationPrice float64   `validate:"gte=0"`
	MonthlyFee        float64   `validate:"gte=0"`
	Features          []string  `validate:"dive,min=1,max=100"`
	Rating            float64   `validate:"gte=0,lte=5"`
	DateTimeCreated   time.Time `validate:"required"`
}

// Validate for validating SecuritySystem struct
func (s *SecuritySystem) Validate() error {
	if err := validators.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// SecuritySystemQuery filters the stored catalog. Results are ordered by
// monthly fee, cheapest first.
type SecuritySystemQuery struct {
	Type          string  `validate:"omitempty,oneof=alarma camara kit"`
	Provider      string  `validate:"omitempty,max=100"`
	MaxMonthlyFee float64 `validate:"gte=0"`
	Limit         int     `validate:"gte=0,lte=200"`
	Offset        int     `validate:"gte=0"`
}

// NewSecuritySystemQuery creates a SecuritySystemQuery with default values
func NewSecuritySystemQuery() *SecuritySystemQuery {
	return &SecuritySystemQuery{}
}

// Validate for validating SecuritySystemQuery struct
func (q *SecuritySystemQuery) Validate() error {
	if err := validators.Struct(q); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// CoverageProvider is one provider able to install in an area
type CoverageProvider struct {
	Name             string
	Available        bool
	InstallationDays int
}

// Coverage lists the providers serving a postal code
type Coverage struct {
	PostalCode string
	Providers  []CoverageProvider
	// Source is SourceAPI or SourceFallback
	Source string
}

// SyncResult summarizes a catalog synchronization
type SyncResult struct {
	Count  int
	Source string
}
