//go:build unit
// +build unit

package v1

import (
	"errors"
	"testing"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElectricityComparisonRequest_Validate(t *testing.T) {
	usage := UsageRequest{ContractedPowerKW: 4.6, MonthlyConsumptionKWh: 300}

	tests := []struct {
		name      string
		request   ElectricityComparisonRequest
		shouldErr bool
	}{
		{"Valid usage", ElectricityComparisonRequest{UsageRequest: usage}, false},
		{"Valid with bill and limit", ElectricityComparisonRequest{UsageRequest: usage, CurrentMonthlyBill: ptr(90.0), Limit: 5}, false},
		{"Zero contracted power", ElectricityComparisonRequest{UsageRequest: UsageRequest{MonthlyConsumptionKWh: 300}}, true},
		{"Peak share above 100", ElectricityComparisonRequest{UsageRequest: UsageRequest{ContractedPowerKW: 3, PeakSharePercent: ptr(120.0)}}, true},
		{"Negative bill", ElectricityComparisonRequest{UsageRequest: usage, CurrentMonthlyBill: ptr(-1.0)}, true},
		{"Limit too high", ElectricityComparisonRequest{UsageRequest: usage, Limit: 101}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
				assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestInternetComparisonRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   InternetComparisonRequest
		shouldErr bool
	}{
		{"Empty request", InternetComparisonRequest{}, false},
		{"Fiber by speed", InternetComparisonRequest{Type: "fibra", SortBy: "speed"}, false},
		{"Unknown type", InternetComparisonRequest{Type: "satelite"}, true},
		{"Unknown sort", InternetComparisonRequest{SortBy: "rating"}, true},
		{"Negative max price", InternetComparisonRequest{MaxPrice: -5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestCostRequest_ValidateNested(t *testing.T) {
	request := CostRequest{
		Tariff: ElectricityTariffRequest{Provider: "Luz SA", Name: "Fija", FixedRate: 0.1, FlatRate: ptr(0.15)},
		Usage:  UsageRequest{ContractedPowerKW: 4.6, MonthlyConsumptionKWh: 300},
	}
	require.NoError(t, request.Validate())

	request.Tariff.Provider = ""
	err := request.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Provider")
}

func TestPropertyRequest_Validate(t *testing.T) {
	valid := PropertyRequest{
		Title:        "Piso luminoso",
		Operation:    "alquiler",
		PropertyType: "piso",
		Price:        950,
		AreaM2:       70,
		Rooms:        2,
		Bathrooms:    1,
		PostalCode:   "28013",
		City:         "Madrid",
		EnergyRating: "C",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(r *PropertyRequest)
		field  string
	}{
		{"postal code", func(r *PropertyRequest) { r.PostalCode = "2801" }, "PostalCode"},
		{"operation", func(r *PropertyRequest) { r.Operation = "permuta" }, "Operation"},
		{"energy rating", func(r *PropertyRequest) { r.EnergyRating = "H" }, "EnergyRating"},
		{"price", func(r *PropertyRequest) { r.Price = 0 }, "Price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := valid
			tt.mutate(&request)
			err := request.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestBlogPostRequest_Validate(t *testing.T) {
	request := BlogPostRequest{Title: "Cómo leer tu factura", Content: "Texto", Tags: []string{"luz"}}
	require.NoError(t, request.Validate())

	request.Tags = []string{""}
	assert.Error(t, request.Validate())
}

func TestProfileUpdateRequest_ToDomain(t *testing.T) {
	request := ProfileUpdateRequest{Phone: ptr("+34 612 345 678")}
	update := request.ToDomain()

	require.NotNil(t, update.Phone)
	assert.Equal(t, "+34 612 345 678", *update.Phone)
	assert.Nil(t, update.DisplayName)
}
