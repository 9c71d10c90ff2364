package security

import "context"

// SecuritySystemRepository defines the interface for SecuritySystem-related operations
type SecuritySystemRepository interface {
	List(ctx context.Context, query *SecuritySystemQuery) ([]*SecuritySystem, error)
	GetByID(ctx context.Context, systemID string) (*SecuritySystem, error)
	// ReplaceAll swaps the stored catalog for systems in one transaction
	ReplaceAll(ctx context.Context, systems []*SecuritySystem) error
	Count(ctx context.Context) (int64, error)
}

// SecurityCatalogClient talks to the security provider API
type SecurityCatalogClient interface {
	FetchSystems(ctx context.Context) ([]*SecuritySystem, error)
	FetchCoverage(ctx context.Context, postalCode string) (*Coverage, error)
}

// SecurityService defines methods for the security systems catalog.
type SecurityService interface {
	List(ctx context.Context, query *SecuritySystemQuery) ([]*SecuritySystem, error)
	// Sync refreshes the stored catalog from the provider API, falling back
	// to the built-in catalog when the API fails or returns nothing.
	Sync(ctx context.Context) (*SyncResult, error)
	// Coverage reports providers for postalCode, falling back to the
	// national providers when the API fails.
	Coverage(ctx context.Context, postalCode string) (*Coverage, error)
}
