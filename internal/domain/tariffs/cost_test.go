//go:build unit
// +build unit

package tariffs

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/utils"
)

func ptr[T any](v T) *T { return &v }

func newFlatTariff(provider, name string, fixed, flat float64) *ElectricityTariff {
	return &ElectricityTariff{
		ID:              uuid.NewString(),
		Provider:        provider,
		Name:            name,
		FixedRate:       fixed,
		FlatRate:        ptr(flat),
		DateTimeCreated: time.Now(),
	}
}

func TestElectricityCost(t *testing.T) {
	usage := ElectricityUsage{ContractedPowerKW: 4.6, MonthlyConsumptionKWh: 300}

	tests := []struct {
		name   string
		tariff *ElectricityTariff
		usage  ElectricityUsage
		want   CostBreakdown
	}{
		{
			name:   "flat rate",
			tariff: newFlatTariff("Luz SA", "Fija", 0.1, 0.15),
			usage:  usage,
			want: CostBreakdown{
				FixedTerm:      13.8,
				EnergyTerm:     45,
				Discount:       0,
				ElectricityTax: 3.01,
				VAT:            12.98,
				Total:          74.79,
			},
		},
		{
			name: "time discrimination with default peak share",
			tariff: &ElectricityTariff{
				ID: uuid.NewString(), Provider: "Luz SA", Name: "Tres periodos",
				FixedRate: 0.1, PeakRate: ptr(0.2), OffPeakRate: ptr(0.1),
				DateTimeCreated: time.Now(),
			},
			usage: usage,
			want: CostBreakdown{
				FixedTerm:      13.8,
				EnergyTerm:     45,
				ElectricityTax: 3.01,
				VAT:            12.98,
				Total:          74.79,
			},
		},
		{
			name: "discount applies before taxes",
			tariff: func() *ElectricityTariff {
				tariff := newFlatTariff("Luz SA", "Descuento", 0.1, 0.15)
				tariff.DiscountPercent = ptr(10.0)
				return tariff
			}(),
			usage: usage,
			want: CostBreakdown{
				FixedTerm:      13.8,
				EnergyTerm:     45,
				Discount:       5.88,
				ElectricityTax: 2.71,
				VAT:            11.68,
				Total:          67.31,
			},
		},
		{
			name:   "zero usage",
			tariff: newFlatTariff("Luz SA", "Fija", 0.1, 0.15),
			usage:  ElectricityUsage{},
			want:   CostBreakdown{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ElectricityCost(tt.tariff, tt.usage)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ElectricityCost() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestElectricityCostMatchesFormula(t *testing.T) {
	for _, fixed := range []float64{0, 0.08, 0.1234} {
		for _, rate := range []float64{0, 0.11, 0.2567} {
			for _, discount := range []float64{0, 7.5, 100} {
				for _, power := range []float64{0, 3.3, 9.9} {
					for _, consumption := range []float64{0, 150, 1234.5} {
						tariff := newFlatTariff("P", "N", fixed, rate)
						tariff.DiscountPercent = ptr(discount)
						usage := ElectricityUsage{ContractedPowerKW: power, MonthlyConsumptionKWh: consumption}

						want := utils.Round2((fixed*power*30 + rate*consumption) * (1 - discount/100) * 1.0511269632 * 1.21)
						assert.Equal(t, want, ElectricityCost(tariff, usage).Total,
							"fixed=%v rate=%v discount=%v power=%v consumption=%v", fixed, rate, discount, power, consumption)
					}
				}
			}
		}
	}
}

func TestEnergyRate(t *testing.T) {
	tariff := &ElectricityTariff{PeakRate: ptr(0.2), OffPeakRate: ptr(0.1)}
	assert.True(t, tariff.HasTimeDiscrimination())
	assert.InDelta(t, 0.18, tariff.EnergyRate(0.8), 1e-9)

	onlyPeak := &ElectricityTariff{PeakRate: ptr(0.2)}
	assert.InDelta(t, 0.1, onlyPeak.EnergyRate(0.5), 1e-9)

	flat := &ElectricityTariff{FlatRate: ptr(0.13), PeakRate: ptr(0.2)}
	assert.False(t, flat.HasTimeDiscrimination())
	assert.Equal(t, 0.13, flat.EnergyRate(0.8))

	assert.Equal(t, 0.0, (&ElectricityTariff{}).EnergyRate(0.5))
}

func TestPeakSharePercentOverridesDefault(t *testing.T) {
	tariff := &ElectricityTariff{PeakRate: ptr(0.2), OffPeakRate: ptr(0.1)}
	usage := ElectricityUsage{MonthlyConsumptionKWh: 100, PeakSharePercent: ptr(80.0)}
	assert.Equal(t, 18.0, ElectricityCost(tariff, usage).EnergyTerm)
}

func TestAnnualSavings(t *testing.T) {
	assert.Equal(t, 240.0, AnnualSavings(100, 80))
	assert.Equal(t, -120.0, AnnualSavings(50, 60))
	assert.Equal(t, 0.0, AnnualSavings(42.5, 42.5))
}

func TestElectricityTariffValidation(t *testing.T) {
	valid := newFlatTariff("Luz SA", "Fija", 0.1, 0.15)
	require.NoError(t, valid.Validate())

	invalid := newFlatTariff("", "Fija", -1, 0.15)
	invalid.DiscountPercent = ptr(150.0)
	err := invalid.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Provider")
	assert.Contains(t, err.Error(), "DiscountPercent")
}

func TestElectricityUsageValidation(t *testing.T) {
	require.NoError(t, (&ElectricityUsage{ContractedPowerKW: 3.45, MonthlyConsumptionKWh: 250}).Validate())

	err := (&ElectricityUsage{ContractedPowerKW: -1, MonthlyConsumptionKWh: 250}).Validate()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = (&ElectricityUsage{PeakSharePercent: ptr(120.0)}).Validate()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
