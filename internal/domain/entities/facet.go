package entities

// FacetType tags how a facet dimension reads brand fields.
type FacetType string

const (
	// FacetScalar counts one value per brand.
	FacetScalar FacetType = "scalar"
	// FacetList counts every list element of the field.
	FacetList FacetType = "list"
	// FacetBracket counts brands into half-open numeric brackets.
	FacetBracket FacetType = "bracket"
)

// FacetDef describes one filterable dimension for aggregation.
type FacetDef struct {
	Name     string    `json:"name"`
	Field    string    `json:"field"`
	Type     FacetType `json:"type"`
	Brackets []Bracket `json:"brackets,omitempty"`
}

// Bracket is a half-open numeric interval [Min, Max). A Max of zero
// means unbounded; the top bracket of a partition must be unbounded.
type Bracket struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Contains reports whether v falls inside the bracket.
func (b Bracket) Contains(v float64) bool {
	if v < b.Min {
		return false
	}
	return b.Max == 0 || v < b.Max
}

// FacetValue is one observed value of a facet with its brand count.
type FacetValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FacetSelections maps facet names to the values a user has selected.
// Values within one dimension combine with OR, dimensions with AND; an
// empty selection leaves the dimension inactive.
type FacetSelections map[string][]string
