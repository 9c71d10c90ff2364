package tariffs

import "context"

// ElectricityTariffRepository defines the interface for ElectricityTariff-related operations
type ElectricityTariffRepository interface {
	Create(ctx context.Context, tariff *ElectricityTariff) error
	List(ctx context.Context, query *ElectricityTariffQuery) ([]*ElectricityTariff, error)
	GetByID(ctx context.Context, tariffID string) (*ElectricityTariff, error)
	DeleteByID(ctx context.Context, tariffID string) error
	Count(ctx context.Context) (int64, error)
}

// InternetTariffRepository defines the interface for InternetTariff-related operations
type InternetTariffRepository interface {
	Create(ctx context.Context, tariff *InternetTariff) error
	List(ctx context.Context, query *InternetTariffQuery) ([]*InternetTariff, error)
	GetByID(ctx context.Context, tariffID string) (*InternetTariff, error)
	DeleteByID(ctx context.Context, tariffID string) error
	Count(ctx context.Context) (int64, error)
}

// ElectricityCatalogService manages the electricity catalog and ranks it
// against a customer's usage.
type ElectricityCatalogService interface {
	// Create stores a new tariff and returns it with its generated ID.
	Create(ctx context.Context, tariff *ElectricityTariff) (*ElectricityTariff, error)
	List(ctx context.Context, query *ElectricityTariffQuery) ([]*ElectricityTariff, error)
	GetByID(ctx context.Context, tariffID string) (*ElectricityTariff, error)
	DeleteByID(ctx context.Context, tariffID string) error
	// Compare runs CompareElectricity over the whole stored catalog.
	Compare(ctx context.Context, req ElectricityComparisonRequest) ([]ElectricityQuote, error)
}

// InternetCatalogService manages the internet catalog and ranks it.
type InternetCatalogService interface {
	Create(ctx context.Context, tariff *InternetTariff) (*InternetTariff, error)
	List(ctx context.Context, query *InternetTariffQuery) ([]*InternetTariff, error)
	GetByID(ctx context.Context, tariffID string) (*InternetTariff, error)
	DeleteByID(ctx context.Context, tariffID string) error
	// Compare runs CompareInternet over the whole stored catalog.
	Compare(ctx context.Context, req InternetComparisonRequest) ([]InternetQuote, error)
}

// QuoteExporter renders a ranked comparison as a downloadable document
type QuoteExporter interface {
	ExportElectricity(quotes []ElectricityQuote) ([]byte, error)
	ExportInternet(quotes []InternetQuote) ([]byte, error)
	ContentType() string
	FileExtension() string
}
