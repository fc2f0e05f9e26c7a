package providers

import (
	"context"

	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to
// brand interaction events
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.BrandEvent) error

	// Subscribe subscribes to events on a channel
	Subscribe(ctx context.Context, channel string) (<-chan *entities.BrandEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// Event channel constants
const (
	// EventChannelBrandUpdates is the channel for all brand interaction events
	EventChannelBrandUpdates = "brand:updates"

	// EventChannelBrandPrefix is the prefix for brand-specific channels
	EventChannelBrandPrefix = "brand:"
)

// GetBrandChannel returns the channel name for a specific brand
func GetBrandChannel(brandID string) string {
	return EventChannelBrandPrefix + brandID
}
