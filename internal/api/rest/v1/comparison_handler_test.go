//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/tariffs"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/recovery"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newComparisonTestHandler() (ComparisonHandler, *MockElectricityCatalogService, *MockInternetCatalogService, *MockQuoteExporter) {
	electricity := new(MockElectricityCatalogService)
	internet := new(MockInternetCatalogService)
	exporter := new(MockQuoteExporter)
	return NewComparisonHandler(electricity, internet, exporter), electricity, internet, exporter
}

func sampleElectricityQuotes() []tariffs.ElectricityQuote {
	tariff := &tariffs.ElectricityTariff{
		ID: uuid.NewString(), Provider: "Verde", Name: "Eco",
		FixedRate: 0.1, FlatRate: ptr(0.14), GreenEnergy: true, DateTimeCreated: time.Now(),
	}
	return []tariffs.ElectricityQuote{{
		Tariff:         tariff,
		Cost:           tariffs.CostBreakdown{Total: 70.12},
		MonthlySavings: ptr(19.88),
		AnnualSavings:  ptr(238.56),
	}}
}

func TestComparisonHandler_CompareElectricity_Success(t *testing.T) {
	handler, electricity, _, _ := newComparisonTestHandler()

	electricity.On("Compare", mock.Anything, mock.MatchedBy(func(req tariffs.ElectricityComparisonRequest) bool {
		return req.Usage.MonthlyConsumptionKWh == 300 && req.GreenOnly && req.CurrentMonthlyBill != nil
	})).Return(sampleElectricityQuotes(), nil)

	c, w := newJSONContext(t, http.MethodPost, "/comparador-luz", map[string]interface{}{
		"contracted_power_kw":     4.6,
		"monthly_consumption_kwh": 300,
		"current_monthly_bill":    90,
		"green_only":              true,
	})
	handler.CompareElectricity(c)

	require.Equal(t, http.StatusOK, w.Code)
	quotes := decode[[]ElectricityQuoteResponse](t, w)
	require.Len(t, quotes, 1)
	assert.Equal(t, "Verde", quotes[0].Tariff.Provider)
	assert.False(t, quotes[0].Tariff.TimeDiscrimination)
	assert.Equal(t, 70.12, quotes[0].Cost.Total)
	require.NotNil(t, quotes[0].AnnualSavings)
	assert.Equal(t, 238.56, *quotes[0].AnnualSavings)
	electricity.AssertExpectations(t)
}

func TestComparisonHandler_CompareElectricity_InvalidUsage(t *testing.T) {
	handler, electricity, _, _ := newComparisonTestHandler()

	c, w := newJSONContext(t, http.MethodPost, "/comparador-luz", map[string]interface{}{
		"monthly_consumption_kwh": 300,
	})
	handler.CompareElectricity(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ContractedPowerKW")
	electricity.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
}

func TestComparisonHandler_CompareElectricity_MalformedBody(t *testing.T) {
	handler, _, _, _ := newComparisonTestHandler()

	c, w := newJSONContext(t, http.MethodPost, "/comparador-luz", "not an object")
	handler.CompareElectricity(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestComparisonHandler_ElectricityCost(t *testing.T) {
	handler, _, _, _ := newComparisonTestHandler()

	c, w := newJSONContext(t, http.MethodPost, "/comparador-luz/coste", CostRequest{
		Tariff: ElectricityTariffRequest{Provider: "Luz SA", Name: "Fija", FixedRate: 0.1, FlatRate: ptr(0.15)},
		Usage:  UsageRequest{ContractedPowerKW: 4.6, MonthlyConsumptionKWh: 300},
	})
	handler.ElectricityCost(c)

	require.Equal(t, http.StatusOK, w.Code)
	cost := decode[CostBreakdownResponse](t, w)
	assert.Equal(t, 13.8, cost.FixedTerm)
	assert.Equal(t, 45.0, cost.EnergyTerm)
	assert.Equal(t, 74.79, cost.Total)
}

func TestComparisonHandler_ExportElectricity(t *testing.T) {
	handler, electricity, _, exporter := newComparisonTestHandler()

	quotes := sampleElectricityQuotes()
	electricity.On("Compare", mock.Anything, mock.Anything).Return(quotes, nil)
	exporter.On("ExportElectricity", quotes).Return([]byte("PK-workbook"), nil)

	c, w := newJSONContext(t, http.MethodPost, "/comparador-luz/export", map[string]interface{}{
		"contracted_power_kw":     3.3,
		"monthly_consumption_kwh": 250,
	})
	handler.ExportElectricity(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PK-workbook", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "comparativa-luz-")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	exporter.AssertExpectations(t)
}

func TestComparisonHandler_CompareInternet(t *testing.T) {
	handler, _, internet, _ := newComparisonTestHandler()

	tariff := &tariffs.InternetTariff{
		ID: uuid.NewString(), Provider: "Fibranet", Name: "600Mb", Type: tariffs.InternetTypeFiber,
		SpeedMbps: 600, MonthlyPrice: 30, DateTimeCreated: time.Now(),
	}
	internet.On("Compare", mock.Anything, tariffs.InternetComparisonRequest{
		Type: tariffs.InternetTypeFiber, SortBy: tariffs.SortBySpeed, MinSpeedMbps: 300,
	}).Return([]tariffs.InternetQuote{{Tariff: tariff, EffectivePrice: 30, FirstYearCost: 360}}, nil)

	c, w := newJSONContext(t, http.MethodPost, "/comparador-internet", map[string]interface{}{
		"type":           "fibra",
		"sort_by":        "speed",
		"min_speed_mbps": 300,
	})
	handler.CompareInternet(c)

	require.Equal(t, http.StatusOK, w.Code)
	quotes := decode[[]InternetQuoteResponse](t, w)
	require.Len(t, quotes, 1)
	assert.Equal(t, 360.0, quotes[0].FirstYearCost)
	assert.Nil(t, quotes[0].AnnualSavings)
	internet.AssertExpectations(t)
}

func TestComparisonHandler_CompareInternet_UpstreamExhausted(t *testing.T) {
	handler, _, internet, _ := newComparisonTestHandler()

	internet.On("Compare", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("failed to list tariffs: %w", recovery.ErrRetriesExhausted))

	c, w := newJSONContext(t, http.MethodPost, "/comparador-internet", map[string]interface{}{})
	handler.CompareInternet(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, recovery.GenericFailureMessage, decode[ErrorResponse](t, w).Message)
}

func TestComparisonHandler_Savings(t *testing.T) {
	handler, _, _, _ := newComparisonTestHandler()

	c, w := newJSONContext(t, http.MethodPost, "/calculadora-ahorro", SavingsRequest{
		CurrentMonthlyCost: 80.5,
		NewMonthlyCost:     60.25,
	})
	handler.Savings(c)

	require.Equal(t, http.StatusOK, w.Code)
	savings := decode[SavingsResponse](t, w)
	assert.Equal(t, 20.25, savings.MonthlySavings)
	assert.Equal(t, 243.0, savings.AnnualSavings)
}

func TestComparisonHandler_Savings_Negative(t *testing.T) {
	handler, _, _, _ := newComparisonTestHandler()

	c, w := newJSONContext(t, http.MethodPost, "/calculadora-ahorro", SavingsRequest{
		CurrentMonthlyCost: 40,
		NewMonthlyCost:     55,
	})
	handler.Savings(c)

	require.Equal(t, http.StatusOK, w.Code)
	savings := decode[SavingsResponse](t, w)
	assert.Equal(t, -15.0, savings.MonthlySavings)
	assert.Equal(t, -180.0, savings.AnnualSavings)
}
