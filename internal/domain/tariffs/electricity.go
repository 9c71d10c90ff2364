package tariffs

import (
	"fmt"
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/validators"
)

// ElectricityTariff is a priced electricity plan. Rates are in euros: the
// fixed rate per contracted kW and day, energy rates per kWh.
type ElectricityTariff struct {
	ID               string    `validate:"required,uuid4"`
	Provider         string    `validate:"required,min=1,max=100"`
	Name             string    `validate:"required,min=1,max=150"`
	FixedRate        float64   `validate:"gte=0"`
	FlatRate         *float64  `validate:"omitempty,gte=0"`
	PeakRate         *float64  `validate:"omitempty,gte=0"`
	OffPeakRate      *float64  `validate:"omitempty,gte=0"`
	DiscountPercent  *float64  `validate:"omitempty,gte=0,lte=100"`
	PermanenceMonths int       `validate:"gte=0,lte=36"`
	GreenEnergy      bool
	DateTimeCreated  time.Time `validate:"required"`
}

// Validate for validating ElectricityTariff struct
func (t *ElectricityTariff) Validate() error {
	if err := validators.Struct(t); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// HasTimeDiscrimination reports whether the tariff prices peak and off-peak
// consumption separately instead of using a flat rate
func (t *ElectricityTariff) HasTimeDiscrimination() bool {
	return t.FlatRate == nil && (t.PeakRate != nil || t.OffPeakRate != nil)
}

// EnergyRate returns the euros per kWh applied to consumption of which
// peakShare (0..1) falls in the peak band. Missing rates count as zero.
func (t *ElectricityTariff) EnergyRate(peakShare float64) float64 {
	if t.FlatRate != nil {
		return *t.FlatRate
	}
	return valueOr(t.PeakRate)*peakShare + valueOr(t.OffPeakRate)*(1-peakShare)
}

// ElectricityUsage describes a customer's supply
type ElectricityUsage struct {
	ContractedPowerKW     float64  `validate:"gte=0,lte=100"`
	MonthlyConsumptionKWh float64  `validate:"gte=0,lte=100000"`
	PeakSharePercent      *float64 `validate:"omitempty,gte=0,lte=100"`
}

// Validate for validating ElectricityUsage struct
func (u *ElectricityUsage) Validate() error {
	if err := validators.Struct(u); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func (u ElectricityUsage) peakShare() float64 {
	if u.PeakSharePercent == nil {
		return DefaultPeakSharePercent / 100
	}
	return *u.PeakSharePercent / 100
}

// CostBreakdown is a monthly bill estimate in euros
type CostBreakdown struct {
	FixedTerm      float64
	EnergyTerm     float64
	Discount       float64
	ElectricityTax float64
	VAT            float64
	Total          float64
}

func valueOr(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
