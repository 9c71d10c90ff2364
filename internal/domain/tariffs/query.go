package tariffs

import (
	"fmt"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/validators"
)

// ElectricityTariffQuery filters the stored electricity catalog
type ElectricityTariffQuery struct {
	Provider    string
	GreenEnergy *bool
	Limit       int    `validate:"gte=0,lte=500"`
	Offset      int    `validate:"gte=0"`
	SortBy      string `validate:"omitempty,oneof=provider name fixed_rate date_time_created"`
	SortOrder   string `validate:"omitempty,oneof=asc desc"`
}

// NewElectricityTariffQuery creates an ElectricityTariffQuery with default values
func NewElectricityTariffQuery() *ElectricityTariffQuery {
	return &ElectricityTariffQuery{}
}

// Validate for validating ElectricityTariffQuery struct
func (q *ElectricityTariffQuery) Validate() error {
	if err := validators.Struct(q); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// InternetTariffQuery filters the stored internet catalog
type InternetTariffQuery struct {
	Provider  string
	Type      string `validate:"omitempty,oneof=fibra movil fibra_movil adsl"`
	Limit     int    `validate:"gte=0,lte=500"`
	Offset    int    `validate:"gte=0"`
	SortBy    string `validate:"omitempty,oneof=provider name monthly_price speed_mbps date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewInternetTariffQuery creates an InternetTariffQuery with default values
func NewInternetTariffQuery() *InternetTariffQuery {
	return &InternetTariffQuery{}
}

// Validate for validating InternetTariffQuery struct
func (q *InternetTariffQuery) Validate() error {
	if err := validators.Struct(q); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
