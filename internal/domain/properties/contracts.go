package properties

import "context"

// PropertyRepository defines the interface for Property-related operations
type PropertyRepository interface {
	Create(ctx context.Context, property *Property) error
	List(ctx context.Context, query *PropertyQuery) ([]*Property, error)
	GetByID(ctx context.Context, propertyID string) (*Property, error)
	DeleteByID(ctx context.Context, propertyID string) error
}

// PropertyService defines methods for publishing and searching listings.
type PropertyService interface {
	Create(ctx context.Context, ownerID string, property *Property) (*Property, error)
	Search(ctx context.Context, query *PropertyQuery) ([]*Property, error)
	GetByID(ctx context.Context, propertyID string) (*Property, error)
	// DeleteByID removes a listing. Only its owner may delete it.
	DeleteByID(ctx context.Context, propertyID, userID string) error
}
