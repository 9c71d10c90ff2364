package indicators

import (
	"context"
	"time"
)

// PriceClient reads hourly grid prices from the price indicator API
type PriceClient interface {
	FetchDay(ctx context.Context, day time.Time) ([]HourlyPrice, error)
}

// SpeedClient reads measured speeds from the telecom indicator API
type SpeedClient interface {
	FetchSpeeds(ctx context.Context, postalCode string) ([]ProviderSpeed, error)
}

// PriceService serves daily grid prices.
type PriceService interface {
	// DailyPrices returns the prices of day, cached per day.
	DailyPrices(ctx context.Context, day time.Time) (*DailyPrices, error)
}

// SpeedService serves the telecom speed indicator.
type SpeedService interface {
	Report(ctx context.Context, postalCode string) (*SpeedReport, error)
}
