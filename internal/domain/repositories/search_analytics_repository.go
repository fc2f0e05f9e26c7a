package repositories

import (
	"context"

	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
)

// SearchAnalyticsRepository defines the interface for search analytics
type SearchAnalyticsRepository interface {
	// LogEvent records one search request
	LogEvent(ctx context.Context, event *entities.SearchEvent) error

	// GetZeroResultQueries retrieves recent searches that found nothing
	GetZeroResultQueries(ctx context.Context, limit int) ([]*entities.SearchEvent, error)
}
