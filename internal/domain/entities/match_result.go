package entities

// MatchType names how a query matched a brand field.
type MatchType string

const (
	// MatchExact is a substring hit of the whole normalized query.
	MatchExact MatchType = "exact"
	// MatchFuzzyField is an edit-distance match against the whole field.
	MatchFuzzyField MatchType = "fuzzy_field"
	// MatchExactKeyword is an identical query-token/field-token pair.
	MatchExactKeyword MatchType = "exact_keyword"
	// MatchFuzzyKeyword is a near-identical query-token/field-token pair.
	MatchFuzzyKeyword MatchType = "fuzzy_keyword"
	// MatchPartial is a query token contained inside the field text.
	MatchPartial MatchType = "partial"
)

// FieldMatch records one scoring candidate that fired for a field.
type FieldMatch struct {
	Field       string    `json:"field"`
	Score       float64   `json:"score"`
	MatchType   MatchType `json:"match_type"`
	MatchedText string    `json:"matched_text"`
}

// MatchResult is a scored brand in a ranked search result set.
// Score is the best single-field score in [0,1]; Relevance adjusts it
// upward when several fields matched.
type MatchResult struct {
	Brand        *Brand       `json:"brand"`
	Score        float64      `json:"score"`
	Relevance    float64      `json:"relevance"`
	FieldMatches []FieldMatch `json:"field_matches,omitempty"`
}
