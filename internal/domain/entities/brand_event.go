package entities

import "time"

// BrandEventType names the interaction events published on the bus.
type BrandEventType string

const (
	// BrandViewed fires when a brand detail page is opened.
	BrandViewed BrandEventType = "brand.viewed"
	// BrandFavorited fires when a brand is added to favorites.
	BrandFavorited BrandEventType = "brand.favorited"
	// BrandInquired fires when an inquiry is submitted for a brand.
	BrandInquired BrandEventType = "brand.inquired"
)

// BrandEvent is the payload published on the event bus for brand
// interaction events; consumers use it for cache invalidation and
// engagement counters.
type BrandEvent struct {
	ID        string         `json:"id"`
	Type      BrandEventType `json:"type"`
	BrandID   string         `json:"brand_id"`
	SessionID string         `json:"session_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
