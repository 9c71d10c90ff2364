package indicators

import (
	"errors"
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/utils"
)

// ErrNoPrices is returned when the price indicator has no data for a day
var ErrNoPrices = errors.New("no hay precios para la fecha indicada")

// HourlyPrice is the grid price of one hour in euros per kWh
type HourlyPrice struct {
	Hour     int
	PriceKWh float64
}

// DailyPrices summarizes the grid prices of one day
type DailyPrices struct {
	Date          time.Time
	Hours         []HourlyPrice
	Average       float64
	Cheapest      HourlyPrice
	MostExpensive HourlyPrice
}

// NewDailyPrices computes the daily summary of hours. Prices and the average
// are rounded to five decimals. Ties keep the earliest hour.
func NewDailyPrices(date time.Time, hours []HourlyPrice) (*DailyPrices, error) {
	if len(hours) == 0 {
		return nil, ErrNoPrices
	}

	d := &DailyPrices{
		Date:          date,
		Hours:         make([]HourlyPrice, len(hours)),
	}
	first := HourlyPrice{Hour: hours[0].Hour, PriceKWh: round5(hours[0].PriceKWh)}
	d.Cheapest, d.MostExpensive = first, first

	var sum float64
	for i, h := range hours {
		h.PriceKWh = round5(h.PriceKWh)
		d.Hours[i] = h
		sum += h.PriceKWh
		if h.PriceKWh < d.Cheapest.PriceKWh {
			d.Cheapest = h
		}
		if h.PriceKWh > d.MostExpensive.PriceKWh {
			d.MostExpensive = h
		}
	}
	d.Average = round5(sum / float64(len(hours)))

	return d, nil
}

// MWhToKWh converts a price in euros per MWh to euros per kWh
func MWhToKWh(priceMWh float64) float64 {
	return priceMWh / 1000
}

func round5(v float64) float64 {
	return utils.Round2(v*1000) / 1000
}

// ProviderSpeed is the measured average speed of one provider
type ProviderSpeed struct {
	Provider     string
	DownloadMbps float64
	UploadMbps   float64
	Samples      int
}

// SpeedReport lists provider speeds measured in a postal code, fastest
// download first
type SpeedReport struct {
	PostalCode string
	Providers  []ProviderSpeed
}
