package repositories

import (
	"context"

	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
)

// FavoriteRepository defines the interface for favorite persistence
type FavoriteRepository interface {
	// Add stores a favorite; adding the same brand twice is a no-op
	Add(ctx context.Context, favorite *entities.Favorite) error

	// Remove deletes a session's favorite for a brand
	Remove(ctx context.Context, sessionID, brandID string) error

	// ListBySession retrieves a session's favorites, newest first
	ListBySession(ctx context.Context, sessionID string) ([]*entities.Favorite, error)
}
