package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
)

// FacetService aggregates facet counts over a brand collection and
// applies multi-select filter predicates. Counts are derived fresh on
// every call; there is no cached facet state to keep consistent.
type FacetService struct{}

// NewFacetService creates a new facet service
func NewFacetService() *FacetService {
	return &FacetService{}
}

// DefaultFacetDefs returns the marketplace's filter dimensions.
func DefaultFacetDefs() []entities.FacetDef {
	return []entities.FacetDef{
		{Name: "category", Field: "category", Type: entities.FacetScalar},
		{Name: "industries", Field: "industries", Type: entities.FacetList},
		{Name: "businessModels", Field: "businessModels", Type: entities.FacetList},
		{Name: "locations", Field: "locations", Type: entities.FacetList},
		{Name: "investment", Field: "investment", Type: entities.FacetBracket, Brackets: InvestmentBrackets()},
	}
}

// InvestmentBrackets partitions the investment domain into half-open
// INR bands; the top bracket is unbounded.
func InvestmentBrackets() []entities.Bracket {
	return []entities.Bracket{
		{Label: "Under 10 Lakh", Min: 0, Max: 1_000_000},
		{Label: "10-25 Lakh", Min: 1_000_000, Max: 2_500_000},
		{Label: "25-50 Lakh", Min: 2_500_000, Max: 5_000_000},
		{Label: "50 Lakh - 1 Crore", Min: 5_000_000, Max: 10_000_000},
		{Label: "Above 1 Crore", Min: 10_000_000, Max: 0},
	}
}

// Aggregate computes per-value brand counts for every facet dimension
// in a single forward pass per facet. Scalar facets count one value per
// brand, list facets count every element, bracket facets count the
// containing interval. A facet whose field resolves on no brand simply
// reports zero values.
func (s *FacetService) Aggregate(brands []*entities.Brand, defs []entities.FacetDef) map[string][]entities.FacetValue {
	result := make(map[string][]entities.FacetValue, len(defs))

	for _, def := range defs {
		counts := make(map[string]int)
		var order []string
		bump := func(value string) {
			if value == "" {
				return
			}
			if _, seen := counts[value]; !seen {
				order = append(order, value)
			}
			counts[value]++
		}

		for _, brand := range brands {
			if brand == nil {
				continue
			}
			for _, value := range facetValuesOf(brand, def) {
				bump(value)
			}
		}

		values := make([]entities.FacetValue, 0, len(order))
		for _, v := range order {
			values = append(values, entities.FacetValue{Value: v, Count: counts[v]})
		}
		// Descending by count; first-observation order breaks ties.
		sort.SliceStable(values, func(i, j int) bool {
			return values[i].Count > values[j].Count
		})
		result[def.Name] = values
	}

	return result
}

// ApplyFilters keeps brands whose facet values intersect every active
// selection: OR within a dimension, AND across dimensions. A dimension
// with no selected values is inactive.
func (s *FacetService) ApplyFilters(brands []*entities.Brand, defs []entities.FacetDef, selections entities.FacetSelections) []*entities.Brand {
	active := make([]entities.FacetDef, 0, len(defs))
	for _, def := range defs {
		if len(selections[def.Name]) > 0 {
			active = append(active, def)
		}
	}
	if len(active) == 0 {
		return brands
	}

	filtered := make([]*entities.Brand, 0, len(brands))
	for _, brand := range brands {
		if brand == nil {
			continue
		}
		keep := true
		for _, def := range active {
			if !intersects(facetValuesOf(brand, def), selections[def.Name]) {
				keep = false
				break
			}
		}
		if keep {
			filtered = append(filtered, brand)
		}
	}
	return filtered
}

// facetValuesOf resolves the facet values a brand contributes to one
// dimension.
func facetValuesOf(brand *entities.Brand, def entities.FacetDef) []string {
	switch def.Type {
	case entities.FacetScalar:
		value := brand.Field(def.Field)
		if value.Kind != entities.FieldScalar {
			return nil
		}
		return []string{strings.TrimSpace(value.Scalar)}

	case entities.FacetList:
		value := brand.Field(def.Field)
		if value.Kind != entities.FieldList {
			return nil
		}
		out := make([]string, 0, len(value.List))
		for _, v := range value.List {
			out = append(out, strings.TrimSpace(v))
		}
		return out

	case entities.FacetBracket:
		v, ok := facetNumeric(brand, def.Field)
		if !ok {
			return nil
		}
		for _, bracket := range def.Brackets {
			if bracket.Contains(v) {
				return []string{bracket.Label}
			}
		}
		return nil
	}

	return nil
}

func facetNumeric(brand *entities.Brand, field string) (float64, bool) {
	if field == "investment" {
		v := brand.InvestmentValue()
		return v, v > 0
	}

	value := brand.Field(field)
	if value.Kind != entities.FieldScalar {
		return 0, false
	}
	v, err := strconv.ParseFloat(value.Scalar, 64)
	return v, err == nil
}

func intersects(values, selected []string) bool {
	for _, v := range values {
		for _, s := range selected {
			if v == s {
				return true
			}
		}
	}
	return false
}
