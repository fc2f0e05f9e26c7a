package repositories

import (
	"context"

	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
)

// BrandViewRepository defines the interface for per-session view tracking
type BrandViewRepository interface {
	// Record stores one brand view for a session
	Record(ctx context.Context, view *entities.BrandView) error

	// RecentBySession retrieves a session's most recent distinct views
	RecentBySession(ctx context.Context, sessionID string, limit int) ([]*entities.BrandView, error)
}
