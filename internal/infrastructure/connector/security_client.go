package connector

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/security"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/config"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
)

type securitySystemsResponse struct {
	Systems []struct {
		Provider          string   `json:"provider"`
		Name              string   `json:"name"`
		Type              string   `json:"type"`
		InstallationPrice float64  `json:"installation_price"`
		MonthlyFee        float64  `json:"monthly_fee"`
		Features          []string `json:"features"`
		Rating            float64  `json:"rating"`
	} `json:"systems"`
}

type coverageResponse struct {
	PostalCode string `json:"postal_code"`
	Providers  []struct {
		Name             string `json:"name"`
		Available        bool   `json:"available"`
		InstallationDays int    `json:"installation_days"`
	} `json:"providers"`
}

type securityAPIClient struct {
	httpClient *resty.Client
	logger     logger.Logger
}

// NewSecurityAPIClient creates a security.SecurityCatalogClient for the
// security provider API
func NewSecurityAPIClient(settings *config.APIConnectorSettings, logger logger.Logger) (security.SecurityCatalogClient, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid security API settings: %w", err)
	}

	client := newRestyClient(settings)
	if settings.APIKey != "" {
		client.SetHeader("X-Api-Key", settings.APIKey)
	}

	return &securityAPIClient{httpClient: client, logger: logger}, nil
}

// FetchSystems returns the catalog published by the API. Entries failing
// validation are skipped.
func (c *securityAPIClient) FetchSystems(ctx context.Context) ([]*security.SecuritySystem, error) {
	var response securitySystemsResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&response).
		Get("/systems")
	if err := checkResponse("security.systems", resp, err); err != nil {
		c.logger.Error("Security catalog call failed: ", err)
		return nil, err
	}

	now := time.Now().UTC()
	systems := make([]*security.SecuritySystem, 0, len(response.Systems))
	for _, s := range response.Systems {
		system := &security.SecuritySystem{
			ID:                uuid.NewString(),
			Provider:          s.Provider,
			Name:              s.Name,
			Type:              s.Type,
			InstallationPrice: s.InstallationPrice,
			MonthlyFee:        s.MonthlyFee,
			Features:          s.Features,
			Rating:            s.Rating,
			DateTimeCreated:   now,
		}
		if err := system.Validate(); err != nil {
			c.logger.Warn(fmt.Sprintf("Skipping security system %s/%s: %v", s.Provider, s.Name, err))
			continue
		}
		systems = append(systems, system)
	}
	return systems, nil
}

func (c *securityAPIClient) FetchCoverage(ctx context.Context, postalCode string) (*security.Coverage, error) {
	var response coverageResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("postal_code", postalCode).
		SetResult(&response).
		Get("/coverage")
	if err := checkResponse("security.coverage", resp, err); err != nil {
		c.logger.Error("Coverage call failed: ", err)
		return nil, err
	}

	coverage := &security.Coverage{
		PostalCode: postalCode,
		Providers:  make([]security.CoverageProvider, 0, len(response.Providers)),
		Source:     security.SourceAPI,
	}
	for _, p := range response.Providers {
		coverage.Providers = append(coverage.Providers, security.CoverageProvider{
			Name:             p.Name,
			Available:        p.Available,
			InstallationDays: p.InstallationDays,
		})
	}
	return coverage, nil
}
