package connector

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/indicators"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/config"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
)

type speedResponse struct {
	Providers []struct {
		Provider     string  `json:"provider"`
		DownloadMbps float64 `json:"download_mbps"`
		UploadMbps   float64 `json:"upload_mbps"`
		Samples      int     `json:"samples"`
	} `json:"providers"`
}

type speedClient struct {
	httpClient *resty.Client
	logger     logger.Logger
}

// NewSpeedClient creates an indicators.SpeedClient for the telecom speed API
func NewSpeedClient(settings *config.APIConnectorSettings, logger logger.Logger) (indicators.SpeedClient, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid speed indicator settings: %w", err)
	}

	client := newRestyClient(settings)
	if settings.APIKey != "" {
		client.SetAuthToken(settings.APIKey)
	}

	return &speedClient{httpClient: client, logger: logger}, nil
}

func (c *speedClient) FetchSpeeds(ctx context.Context, postalCode string) ([]indicators.ProviderSpeed, error) {
	var response speedResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("postal_code", postalCode).
		SetResult(&response).
		Get("/speeds")
	if err := checkResponse("speed.fetch", resp, err); err != nil {
		c.logger.Error("Speed indicator call failed: ", err)
		return nil, err
	}

	speeds := make([]indicators.ProviderSpeed, 0, len(response.Providers))
	for _, p := range response.Providers {
		speeds = append(speeds, indicators.ProviderSpeed{
			Provider:     p.Provider,
			DownloadMbps: p.DownloadMbps,
			UploadMbps:   p.UploadMbps,
			Samples:      p.Samples,
		})
	}
	return speeds, nil
}
