package connector

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/indicators"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/config"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
)

// Indicator of the voluntary price for the small consumer (PVPC) and the
// geography of the Iberian peninsula
const (
	PVPCIndicatorID = 1001
	PeninsulaGeoID  = 8741
)

type esiosResponse struct {
	Indicator struct {
		Values []struct {
			Value    float64   `json:"value"`
			Datetime time.Time `json:"datetime"`
			GeoID    int       `json:"geo_id"`
		} `json:"values"`
	} `json:"indicator"`
}

type esiosPriceClient struct {
	httpClient *resty.Client
	logger     logger.Logger
}

// NewESIOSPriceClient creates an indicators.PriceClient reading the PVPC
// indicator of an ESIOS compatible API
func NewESIOSPriceClient(settings *config.APIConnectorSettings, logger logger.Logger) (indicators.PriceClient, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid price indicator settings: %w", err)
	}

	client := newRestyClient(settings).
		SetHeader("Accept", "application/json; application/vnd.esios-api-v1+json")
	if settings.APIKey != "" {
		client.SetHeader("x-api-key", settings.APIKey)
	}

	return &esiosPriceClient{httpClient: client, logger: logger}, nil
}

// FetchDay returns the hourly prices of day in euros per kWh. The hour of
// each price is taken in the time zone reported by the API.
func (c *esiosPriceClient) FetchDay(ctx context.Context, day time.Time) ([]indicators.HourlyPrice, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24*time.Hour - time.Second)

	var response esiosResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"start_date": start.Format(time.RFC3339),
			"end_date":   end.Format(time.RFC3339),
		}).
		SetResult(&response).
		Get(fmt.Sprintf("/indicators/%d", PVPCIndicatorID))
	if err := checkResponse("prices.fetch", resp, err); err != nil {
		c.logger.Error("Price indicator call failed: ", err)
		return nil, err
	}

	values := response.Indicator.Values
	peninsula := values[:0:0]
	for _, v := range values {
		if v.GeoID == PeninsulaGeoID {
			peninsula = append(peninsula, v)
		}
	}
	if len(peninsula) > 0 {
		values = peninsula
	}

	hours := make([]indicators.HourlyPrice, 0, len(values))
	for _, v := range values {
		hours = append(hours, indicators.HourlyPrice{
			Hour:     v.Datetime.Hour(),
			PriceKWh: indicators.MWhToKWh(v.Value),
		})
	}
	return hours, nil
}
