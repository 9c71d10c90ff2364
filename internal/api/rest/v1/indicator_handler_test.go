//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/indicators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIndicatorHandler_DailyPrices(t *testing.T) {
	prices := new(MockPriceService)
	handler := NewIndicatorHandler(prices, new(MockSpeedService))

	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	daily, err := indicators.NewDailyPrices(day, []indicators.HourlyPrice{
		{Hour: 0, PriceKWh: 0.1},
		{Hour: 1, PriceKWh: 0.05},
		{Hour: 2, PriceKWh: 0.2},
	})
	require.NoError(t, err)

	prices.On("DailyPrices", mock.Anything, mock.MatchedBy(func(d time.Time) bool {
		return d.Format(time.DateOnly) == "2024-03-10"
	})).Return(daily, nil)

	c, w := newJSONContext(t, http.MethodGet, "/precios-luz?fecha=2024-03-10", nil)
	handler.DailyPrices(c)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[DailyPricesResponse](t, w)
	assert.Equal(t, "2024-03-10", resp.Date)
	assert.Len(t, resp.Hours, 3)
	assert.Equal(t, 1, resp.Cheapest.Hour)
	assert.Equal(t, 2, resp.MostExpensive.Hour)
	prices.AssertExpectations(t)
}

func TestIndicatorHandler_DailyPrices_Errors(t *testing.T) {
	prices := new(MockPriceService)
	handler := NewIndicatorHandler(prices, new(MockSpeedService))

	c, w := newJSONContext(t, http.MethodGet, "/precios-luz?fecha=10/03/2024", nil)
	handler.DailyPrices(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	prices.On("DailyPrices", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("failed to build prices: %w", indicators.ErrNoPrices))

	c, w = newJSONContext(t, http.MethodGet, "/precios-luz", nil)
	handler.DailyPrices(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIndicatorHandler_SpeedReport(t *testing.T) {
	speeds := new(MockSpeedService)
	handler := NewIndicatorHandler(new(MockPriceService), speeds)

	speeds.On("Report", mock.Anything, "28013").Return(&indicators.SpeedReport{
		PostalCode: "28013",
		Providers:  []indicators.ProviderSpeed{{Provider: "Fibranet", DownloadMbps: 540.5, UploadMbps: 480, Samples: 120}},
	}, nil)

	c, w := newJSONContext(t, http.MethodGet, "/velocidad?codigo_postal=28013", nil)
	handler.SpeedReport(c)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[SpeedReportResponse](t, w)
	require.Len(t, resp.Providers, 1)
	assert.Equal(t, 540.5, resp.Providers[0].DownloadMbps)
	speeds.AssertExpectations(t)
}

func TestIndicatorHandler_SpeedReport_Validation(t *testing.T) {
	speeds := new(MockSpeedService)
	handler := NewIndicatorHandler(new(MockPriceService), speeds)

	c, w := newJSONContext(t, http.MethodGet, "/velocidad", nil)
	handler.SpeedReport(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	speeds.On("Report", mock.Anything, "2801").Return(nil, fmt.Errorf("%w: código postal", domain.ErrInvalidInput))

	c, w = newJSONContext(t, http.MethodGet, "/velocidad?codigo_postal=2801", nil)
	handler.SpeedReport(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
