//go:build unit
// +build unit

package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/indicators"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/recovery"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/testutil"
)

func newPriceServiceUnderTest(t *testing.T, now time.Time) (*priceService, *MockPriceClient) {
	t.Helper()
	client := new(MockPriceClient)
	service, err := NewPriceService(client, newTestRecoverer(t), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	ps := service.(*priceService)
	ps.now = func() time.Time { return now }
	return ps, client
}

var testHours = []indicators.HourlyPrice{
	{Hour: 0, PriceKWh: 0.12},
	{Hour: 1, PriceKWh: 0.08},
	{Hour: 2, PriceKWh: 0.15},
}

func TestPriceService_DailyPrices_CachesPastDays(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	service, client := newPriceServiceUnderTest(t, now)
	day := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	midnight := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	client.On("FetchDay", mock.Anything, midnight).Return(testHours, nil).Once()

	for i := 0; i < 3; i++ {
		prices, err := service.DailyPrices(context.Background(), day)
		require.NoError(t, err)
		assert.Equal(t, 1, prices.Cheapest.Hour)
		assert.Equal(t, 2, prices.MostExpensive.Hour)
		assert.InDelta(t, 0.11667, prices.Average, 1e-9)
	}

	// past days never expire
	service.now = func() time.Time { return now.Add(48 * time.Hour) }
	_, err := service.DailyPrices(context.Background(), day)
	require.NoError(t, err)

	client.AssertNumberOfCalls(t, "FetchDay", 1)
}

func TestPriceService_DailyPrices_CurrentDayExpires(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	service, client := newPriceServiceUnderTest(t, now)

	client.On("FetchDay", mock.Anything, mock.Anything).Return(testHours, nil)

	_, err := service.DailyPrices(context.Background(), now)
	require.NoError(t, err)
	_, err = service.DailyPrices(context.Background(), now)
	require.NoError(t, err)
	client.AssertNumberOfCalls(t, "FetchDay", 1)

	service.now = func() time.Time { return now.Add(CurrentDayPricesTTL) }
	_, err = service.DailyPrices(context.Background(), now)
	require.NoError(t, err)
	client.AssertNumberOfCalls(t, "FetchDay", 2)
}

func TestPriceService_DailyPrices_ConcurrentCallers(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	service, client := newPriceServiceUnderTest(t, now)

	release := make(chan time.Time)
	client.On("FetchDay", mock.Anything, mock.Anything).
		WaitUntil(release).
		Return(testHours, nil)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.DailyPrices(context.Background(), time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC))
			assert.NoError(t, err)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	client.AssertNumberOfCalls(t, "FetchDay", 1)
}

func TestPriceService_DailyPrices_CancelledCallerDoesNotFailOthers(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	service, client := newPriceServiceUnderTest(t, now)
	day := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)

	started := make(chan struct{})
	release := make(chan struct{})
	client.On("FetchDay", mock.Anything, day).
		Run(func(args mock.Arguments) {
			close(started)
			<-release
			assert.NoError(t, args.Get(0).(context.Context).Err())
		}).
		Return(testHours, nil).
		Once()

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := service.DailyPrices(firstCtx, day)
		firstErr <- err
	}()
	<-started

	type result struct {
		prices *indicators.DailyPrices
		err    error
	}
	second := make(chan result, 1)
	go func() {
		prices, err := service.DailyPrices(context.Background(), day)
		second <- result{prices, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	got := <-second
	require.NoError(t, got.err)
	assert.Equal(t, 1, got.prices.Cheapest.Hour)
	client.AssertNumberOfCalls(t, "FetchDay", 1)

	// the shared fetch still filled the cache
	_, err := service.DailyPrices(context.Background(), day)
	require.NoError(t, err)
	client.AssertNumberOfCalls(t, "FetchDay", 1)
}

func TestPriceService_DailyPrices_Errors(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("No prices", func(t *testing.T) {
		service, client := newPriceServiceUnderTest(t, now)
		client.On("FetchDay", mock.Anything, mock.Anything).Return([]indicators.HourlyPrice{}, nil)

		_, err := service.DailyPrices(context.Background(), now)
		assert.ErrorIs(t, err, indicators.ErrNoPrices)
	})

	t.Run("Retries exhausted", func(t *testing.T) {
		service, client := newPriceServiceUnderTest(t, now)
		client.On("FetchDay", mock.Anything, mock.Anything).Return(nil, unavailable("prices.fetch"))

		_, err := service.DailyPrices(context.Background(), now)
		assert.ErrorIs(t, err, recovery.ErrRetriesExhausted)
		client.AssertNumberOfCalls(t, "FetchDay", 2)
	})
}

func TestSpeedService_Report(t *testing.T) {
	client := new(MockSpeedClient)
	service, err := NewSpeedService(client, newTestRecoverer(t), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	client.On("FetchSpeeds", mock.Anything, "28001").Return([]indicators.ProviderSpeed{
		{Provider: "Orange", DownloadMbps: 300},
		{Provider: "Digi", DownloadMbps: 600},
		{Provider: "Avatel", DownloadMbps: 300},
	}, nil)

	report, err := service.Report(context.Background(), "28001")
	require.NoError(t, err)
	require.Len(t, report.Providers, 3)
	assert.Equal(t, "Digi", report.Providers[0].Provider)
	assert.Equal(t, "Avatel", report.Providers[1].Provider)
	assert.Equal(t, "Orange", report.Providers[2].Provider)

	_, err = service.Report(context.Background(), "abc")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
