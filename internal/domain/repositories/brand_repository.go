package repositories

import (
	"context"

	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
)

// BrandRepository defines the interface for brand data operations
type BrandRepository interface {
	// Create creates a new brand listing
	Create(ctx context.Context, brand *entities.Brand) error

	// GetByID retrieves a brand by ID
	GetByID(ctx context.Context, id string) (*entities.Brand, error)

	// GetByIDs retrieves multiple brands by their IDs
	GetByIDs(ctx context.Context, ids []string) ([]*entities.Brand, error)

	// Update updates a brand listing
	Update(ctx context.Context, brand *entities.Brand) error

	// Delete retires a brand listing (soft delete)
	Delete(ctx context.Context, id string) error

	// List retrieves brands with filters
	List(ctx context.Context, filter BrandFilter) ([]*entities.Brand, error)

	// IncrementViewCount bumps a brand's view counter
	IncrementViewCount(ctx context.Context, id string) error
}

// BrandFilter defines filters for listing brands
type BrandFilter struct {
	Category string
	IsActive *bool
	Limit    int
	Offset   int
}
