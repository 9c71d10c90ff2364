package properties

import (
	"fmt"
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/validators"
)

// Listing operations
const (
	OperationSale = "venta"
	OperationRent = "alquiler"
)

// Property entity, a real-estate listing
type Property struct {
	ID              string    `validate:"required,uuid4"`
	OwnerID         string    `validate:"required,uuid4"`
	Title           string    `validate:"required,min=3,max=200"`
	Description     string    `validate:"max=5000"`
	Operation       string    `validate:"required,oneof=venta alquiler"`
	PropertyType    string    `validate:"required,oneof=piso casa chalet local oficina garaje"`
	Price           float64   `validate:"gt=0"`
	AreaM2          float64   `validate:"gt=0,lte=100000"`
	Rooms           int       `validate:"gte=0,lte=50"`
	Bathrooms       int       `validate:"gte=0,lte=20"`
	PostalCode      string    `validate:"required,postalcode"`
	City            string    `validate:"required,min=1,max=100"`
	EnergyRating    string    `validate:"omitempty,oneof=A B C D E F G"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Property struct
func (p *Property) Validate() error {
	if err := validators.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// PricePerM2 is the listing price divided by its area
func (p *Property) PricePerM2() float64 {
	if p.AreaM2 <= 0 {
		return 0
	}
	return p.Price / p.AreaM2
}

// PropertyQuery is a listing search
type PropertyQuery struct {
	Operation    string  `validate:"omitempty,oneof=venta alquiler"`
	PropertyType string  `validate:"omitempty,oneof=piso casa chalet local oficina garaje"`
	City         string  `validate:"omitempty,max=100"`
	PostalCode   string  `validate:"omitempty,postalcode"`
	MinPrice     float64 `validate:"gte=0"`
	MaxPrice     float64 `validate:"gte=0"`
	MinRooms     int     `validate:"gte=0"`
	OwnerID      string  `validate:"omitempty,uuid4"`
	Limit        int     `validate:"gte=0,lte=100"`
	Offset       int     `validate:"gte=0"`
	SortBy       string  `validate:"omitempty,oneof=price date_time_created area_m2"`
	SortOrder    string  `validate:"omitempty,oneof=asc desc"`
}

// NewPropertyQuery creates a PropertyQuery with default values
func NewPropertyQuery() *PropertyQuery {
	return &PropertyQuery{Limit: 20, SortBy: "date_time_created", SortOrder: "desc"}
}

// Validate for validating PropertyQuery struct
func (q *PropertyQuery) Validate() error {
	if err := validators.Struct(q); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if q.MaxPrice > 0 && q.MinPrice > q.MaxPrice {
		return fmt.Errorf("%w: MinPrice no puede superar MaxPrice", domain.ErrInvalidInput)
	}
	return nil
}
