package app

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/indicators"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/recovery"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/validators"
)

// CurrentDayPricesTTL is how long prices of the current or a future day
// stay cached. Past days never change and stay cached until eviction.
const CurrentDayPricesTTL = time.Hour

// maxCachedDays bounds the price cache
const maxCachedDays = 62

// priceFetchTimeout bounds a shared upstream fetch, which outlives the
// cancellation of the caller that started it.
const priceFetchTimeout = 30 * time.Second

type cachedPrices struct {
	prices    *indicators.DailyPrices
	expiresAt time.Time
}

// priceService implements the PriceService interface
type priceService struct {
	client    indicators.PriceClient
	recoverer *recovery.Recoverer
	logger    logger.Logger
	now       func() time.Time

	group singleflight.Group
	mu    sync.Mutex
	cache map[string]cachedPrices
}

// NewPriceService creates a new priceService instance
func NewPriceService(client indicators.PriceClient, recoverer *recovery.Recoverer, logger logger.Logger) (indicators.PriceService, error) {
	return &priceService{
		client:    client,
		recoverer: recoverer,
		logger:    logger,
		now:       time.Now,
		cache:     make(map[string]cachedPrices),
	}, nil
}

// DailyPrices serves day from the cache. Concurrent misses for the same day
// share one upstream call, which keeps running when a waiting caller gives
// up; each caller only observes its own ctx.
func (s *priceService) DailyPrices(ctx context.Context, day time.Time) (*indicators.DailyPrices, error) {
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	key := day.Format(time.DateOnly)

	if prices, ok := s.cached(key); ok {
		return prices, nil
	}

	results := s.group.DoChan(key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), priceFetchTimeout)
		defer cancel()

		hours, err := recovery.Do(fetchCtx, s.recoverer, "prices.fetch", func(ctx context.Context) ([]indicators.HourlyPrice, error) {
			return s.client.FetchDay(ctx, day)
		})
		if err != nil {
			return nil, err
		}

		prices, err := indicators.NewDailyPrices(day, hours)
		if err != nil {
			return nil, fmt.Errorf("prices for %s: %w", key, err)
		}
		s.store(key, day, prices)
		return prices, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("failed to get daily prices: %w", ctx.Err())
	case res := <-results:
		if res.Err != nil {
			return nil, fmt.Errorf("failed to get daily prices: %w", res.Err)
		}
		if res.Shared {
			s.logger.Debug("Shared price fetch for ", key)
		}
		return res.Val.(*indicators.DailyPrices), nil
	}
}

func (s *priceService) cached(key string) (*indicators.DailyPrices, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.cache[key]
	if !ok {
		return nil, false
	}
	if !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt) {
		delete(s.cache, key)
		return nil, false
	}
	return entry.prices, true
}

func (s *priceService) store(key string, day time.Time, prices *indicators.DailyPrices) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cache) >= maxCachedDays {
		s.cache = make(map[string]cachedPrices)
	}

	entry := cachedPrices{prices: prices}
	now := s.now().In(day.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, day.Location())
	if !day.Before(today) {
		entry.expiresAt = s.now().Add(CurrentDayPricesTTL)
	}
	s.cache[key] = entry
}

// speedService implements the SpeedService interface
type speedService struct {
	client    indicators.SpeedClient
	recoverer *recovery.Recoverer
	logger    logger.Logger
}

// NewSpeedService creates a new speedService instance
func NewSpeedService(client indicators.SpeedClient, recoverer *recovery.Recoverer, logger logger.Logger) (indicators.SpeedService, error) {
	return &speedService{
		client:    client,
		recoverer: recoverer,
		logger:    logger,
	}, nil
}

// Report returns provider speeds for postalCode, fastest download first
func (s *speedService) Report(ctx context.Context, postalCode string) (*indicators.SpeedReport, error) {
	if !validators.ValidatePostalCode(postalCode) {
		return nil, fmt.Errorf("%w: código postal %q no válido", domain.ErrInvalidInput, postalCode)
	}

	speeds, err := recovery.Do(ctx, s.recoverer, "speed.fetch", func(ctx context.Context) ([]indicators.ProviderSpeed, error) {
		return s.client.FetchSpeeds(ctx, postalCode)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get speed report: %w", err)
	}

	sort.SliceStable(speeds, func(i, j int) bool {
		if speeds[i].DownloadMbps != speeds[j].DownloadMbps {
			return speeds[i].DownloadMbps > speeds[j].DownloadMbps
		}
		return speeds[i].Provider < speeds[j].Provider
	})
	return &indicators.SpeedReport{PostalCode: postalCode, Providers: speeds}, nil
}
