package entities

import "time"

// BrandSnapshot is the partial copy of a brand kept in a user's
// interaction history. Snapshots are independently owned; a brand may
// be retired from the store without its snapshots being pruned.
type BrandSnapshot struct {
	BrandID       string   `json:"brand_id"`
	BrandName     string   `json:"brand_name"`
	Category      string   `json:"category"`
	Industries    []string `json:"industries,omitempty"`
	BusinessModel string   `json:"business_model,omitempty"`
	Investment    float64  `json:"investment,omitempty"`
	SpaceRequired float64  `json:"space_required,omitempty"`
}

// SnapshotOf copies the comparison-relevant fields of a brand into an
// independently owned snapshot.
func SnapshotOf(b *Brand) BrandSnapshot {
	if b == nil {
		return BrandSnapshot{}
	}
	snap := BrandSnapshot{
		BrandID:       b.ID,
		BrandName:     b.BrandName,
		Category:      b.Category,
		Industries:    append([]string(nil), b.Industries...),
		Investment:    b.InvestmentValue(),
		SpaceRequired: b.SpaceRequired,
	}
	if len(b.BusinessModels) > 0 {
		snap.BusinessModel = b.BusinessModels[0]
	}
	return snap
}

// UserHistory holds the three interaction collections that personalize
// recommendations. The core only reads it.
type UserHistory struct {
	RecentlyViewed []BrandSnapshot `json:"recently_viewed"`
	Favorited      []BrandSnapshot `json:"favorited"`
	Inquired       []BrandSnapshot `json:"inquired"`
}

// IsEmpty reports whether the history carries no interactions at all.
func (h UserHistory) IsEmpty() bool {
	return len(h.RecentlyViewed) == 0 && len(h.Favorited) == 0 && len(h.Inquired) == 0
}

// Recommendation is one personalized candidate with its cumulative
// score and deduplicated, human-readable reasons.
type Recommendation struct {
	Brand   *Brand   `json:"brand"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

// Favorite is a persisted user bookmark of a brand.
type Favorite struct {
	ID        string    `json:"id" db:"id"`
	SessionID string    `json:"session_id" db:"session_id"`
	BrandID   string    `json:"brand_id" db:"brand_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// BrandView is a persisted record of one session viewing a brand.
type BrandView struct {
	ID        string    `json:"id" db:"id"`
	SessionID string    `json:"session_id" db:"session_id"`
	BrandID   string    `json:"brand_id" db:"brand_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Inquiry is a persisted franchise inquiry against a brand.
type Inquiry struct {
	ID        string    `json:"id" db:"id"`
	SessionID string    `json:"session_id" db:"session_id"`
	BrandID   string    `json:"brand_id" db:"brand_id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
