package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AzureCloudProvider represents Microsoft Azure cloud provider
const AzureCloudProvider = "azure"

// LocalStorageProvider stores blobs on the local filesystem
const LocalStorageProvider = "local"

// BlobConnectorSettings holds the settings of the avatar blob storage
type BlobConnectorSettings struct {
	CloudProvider    string `mapstructure:"cloud_provider" validate:"required,oneof=azure local"`
	ConnectionString string `mapstructure:"connection_string"`
	ContainerName    string `mapstructure:"container_name" validate:"required"`
	LocalPath        string `mapstructure:"local_path"`
}

// Validate checks that all fields in BlobConnectorSettings are valid
func (s *BlobConnectorSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for BlobConnectorSettings: %w", err)
	}

	switch s.CloudProvider {
	case AzureCloudProvider:
		if s.ConnectionString == "" {
			return fmt.Errorf("connection string is required for azure blob storage")
		}
	case LocalStorageProvider:
		if s.LocalPath == "" {
			return fmt.Errorf("local path is required for local blob storage")
		}
	}

	return nil
}

// APIConnectorSettings holds the settings shared by the third-party REST clients
type APIConnectorSettings struct {
	BaseURL       string        `mapstructure:"base_url" validate:"required,url"`
	APIKey        string        `mapstructure:"api_key"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"required,gt=0"`
	RetryCount    int           `mapstructure:"retry_count" validate:"gte=0,lte=10"`
	RetryWaitTime time.Duration `mapstructure:"retry_wait_time" validate:"gte=0"`
}

// Validate checks that all fields in APIConnectorSettings are valid
func (s *APIConnectorSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for APIConnectorSettings: %w", err)
	}
	return nil
}

// NewsCategorySettings maps a news category to the search query sent upstream
type NewsCategorySettings struct {
	Name  string `mapstructure:"name" validate:"required"`
	Query string `mapstructure:"query" validate:"required"`
}

// NewsSettings configures the news aggregation route
type NewsSettings struct {
	API        APIConnectorSettings   `mapstructure:"api"`
	Language   string                 `mapstructure:"language" validate:"required,len=2"`
	PageSize   int                    `mapstructure:"page_size" validate:"required,min=1,max=100"`
	Categories []NewsCategorySettings `mapstructure:"categories" validate:"required,min=1,dive"`
}

// Validate checks that all fields in NewsSettings are valid
func (s *NewsSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for NewsSettings: %w", err)
	}
	return nil
}
