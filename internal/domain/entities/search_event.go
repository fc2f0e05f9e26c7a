package entities

import "time"

// SearchEvent records one search request for analytics; zero-result
// queries feed the admin "what are users not finding" view.
type SearchEvent struct {
	ID              string    `json:"id" db:"id"`
	Query           string    `json:"query" db:"query"`
	NormalizedQuery string    `json:"normalized_query" db:"normalized_query"`
	ResultCount     int       `json:"result_count" db:"result_count"`
	Suggestion      string    `json:"suggestion,omitempty" db:"suggestion"`
	LatencyMs       int64     `json:"latency_ms" db:"latency_ms"`
	SessionID       string    `json:"session_id,omitempty" db:"session_id"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
