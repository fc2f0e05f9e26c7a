package services

import (
	"fmt"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
	"github.com/KAMASDM/franchise-sub002/pkg/textmatch"
)

// Scoring thresholds and weights. Tuning parameters, not contracts.
const (
	fuzzyFieldThreshold   = 0.7
	fuzzyKeywordThreshold = 0.8
	fuzzyKeywordWeight    = 0.8
	exactKeywordScore     = 0.9
	partialMatchScore     = 0.6

	relevanceBonusPerField = 0.1
	relevanceBonusCap      = 0.3

	// A spelling suggestion is surfaced only when the closest indexed
	// term sits within this normalized edit distance of the query.
	suggestionMaxDistance = 0.3
	minSuggestionQueryLen = 3

	defaultSearchThreshold  = 0.3
	defaultSearchMaxResults = 50
	defaultSuggestLimit     = 5

	fieldCacheSize = 4096
)

// SearchConfig tunes one search invocation. Zero values fall back to
// marketplace defaults rather than erroring.
type SearchConfig struct {
	Threshold        float64
	MaxResults       int
	Fields           []string
	SuggestionFields []string
	AllowPartial     bool
}

// DefaultSearchConfig returns the configuration used by the public
// search endpoint.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Threshold:        defaultSearchThreshold,
		MaxResults:       defaultSearchMaxResults,
		Fields:           []string{"brandName", "category", "industries", "tagline", "description", "locations"},
		SuggestionFields: []string{"brandName", "category", "industries"},
		AllowPartial:     true,
	}
}

func (c SearchConfig) withDefaults() SearchConfig {
	def := DefaultSearchConfig()
	if c.Threshold <= 0 {
		c.Threshold = def.Threshold
	}
	if c.MaxResults <= 0 {
		c.MaxResults = def.MaxResults
	}
	if len(c.Fields) == 0 {
		c.Fields = def.Fields
	}
	if len(c.SuggestionFields) == 0 {
		c.SuggestionFields = def.SuggestionFields
	}
	return c
}

// fieldElement is one scorable text element of a brand field, prepared
// once per (brand, field) pair.
type fieldElement struct {
	raw    string
	norm   string
	tokens []string
}

// BrandSearchService ranks brand collections against free-text queries.
// All scoring reads its arguments only; the memo cache is the one piece
// of shared state and holds derived text, never results.
type BrandSearchService struct {
	fieldCache *lru.Cache[string, []fieldElement]
}

// NewBrandSearchService creates a new brand search service
func NewBrandSearchService() *BrandSearchService {
	cache, _ := lru.New[string, []fieldElement](fieldCacheSize)
	return &BrandSearchService{fieldCache: cache}
}

// Search scores every brand against the query across the configured
// fields and returns a relevance-ranked result set. An empty query is
// a pass-through: the first MaxResults brands in input order, unscored.
func (s *BrandSearchService) Search(brands []*entities.Brand, query string, cfg SearchConfig) []entities.MatchResult {
	cfg = cfg.withDefaults()

	if strings.TrimSpace(query) == "" {
		n := len(brands)
		if n > cfg.MaxResults {
			n = cfg.MaxResults
		}
		results := make([]entities.MatchResult, 0, n)
		for _, b := range brands[:n] {
			results = append(results, entities.MatchResult{Brand: b})
		}
		return results
	}

	normQuery := textmatch.Normalize(query)
	queryTokens := textmatch.Tokenize(query, 0)

	results := make([]entities.MatchResult, 0, len(brands))
	for _, brand := range brands {
		if brand == nil {
			continue
		}

		var (
			best          float64
			fieldMatches  []entities.FieldMatch
			matchedFields int
		)
		for _, field := range cfg.Fields {
			score, matches := s.scoreField(brand, field, normQuery, queryTokens, cfg.AllowPartial)
			if score > best {
				best = score
			}
			if score > cfg.Threshold {
				matchedFields++
				for i := range matches {
					matches[i].Field = field
				}
				fieldMatches = append(fieldMatches, matches...)
			}
		}

		if best < cfg.Threshold {
			continue
		}

		bonus := relevanceBonusPerField * float64(matchedFields)
		if bonus > relevanceBonusCap {
			bonus = relevanceBonusCap
		}
		relevance := best + bonus
		if relevance > 1.0 {
			relevance = 1.0
		}

		results = append(results, entities.MatchResult{
			Brand:        brand,
			Score:        best,
			Relevance:    relevance,
			FieldMatches: fieldMatches,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Relevance != results[j].Relevance {
			return results[i].Relevance > results[j].Relevance
		}
		return results[i].Score > results[j].Score
	})

	if len(results) > cfg.MaxResults {
		results = results[:cfg.MaxResults]
	}
	return results
}

// DidYouMean proposes a spelling correction for a query that found
// nothing: the closest distinct term across the suggestion fields,
// within the suggestion distance budget. Returns "" when the query is
// too short, already matches a term, or nothing is close enough.
func (s *BrandSearchService) DidYouMean(brands []*entities.Brand, query string, cfg SearchConfig) string {
	cfg = cfg.withDefaults()

	normQuery := textmatch.Normalize(query)
	if len(normQuery) < minSuggestionQueryLen {
		return ""
	}

	var (
		bestTerm  string
		bestRatio = suggestionMaxDistance
	)
	for _, term := range s.termIndex(brands, cfg.SuggestionFields) {
		if term.norm == normQuery {
			return ""
		}
		maxLen := len(term.norm)
		if len(normQuery) > maxLen {
			maxLen = len(normQuery)
		}
		ratio := float64(textmatch.Distance(normQuery, term.norm)) / float64(maxLen)
		if ratio < bestRatio {
			bestRatio = ratio
			bestTerm = term.raw
		}
	}

	return bestTerm
}

// Suggest returns autocomplete candidates: distinct suggestion-field
// values whose normalized form starts with the query or contains it at
// a word boundary.
func (s *BrandSearchService) Suggest(brands []*entities.Brand, query string, limit int, cfg SearchConfig) []string {
	cfg = cfg.withDefaults()
	if limit <= 0 {
		limit = defaultSuggestLimit
	}

	normQuery := textmatch.Normalize(query)
	if normQuery == "" {
		return nil
	}

	var suggestions []string
	for _, term := range s.termIndex(brands, cfg.SuggestionFields) {
		if strings.HasPrefix(term.norm, normQuery) || strings.Contains(term.norm, " "+normQuery) {
			suggestions = append(suggestions, term.raw)
			if len(suggestions) == limit {
				break
			}
		}
	}
	return suggestions
}

// scoreField scores one brand field against the query, combining the
// candidate signals by max:
//   - whole normalized query contained in the field text: exact, 1.0
//   - whole-field similarity above the fuzzy threshold: fuzzy_field
//   - identical query/field token pair: exact_keyword, 0.9
//   - near-identical token pair: fuzzy_keyword, similarity * 0.8
//   - query token contained in the field text: partial, 0.6
//
// List-valued fields score as the max over their elements. Every
// candidate that fired is reported, not just the winner. Absent fields
// score zero with no matches.
func (s *BrandSearchService) scoreField(brand *entities.Brand, field, normQuery string, queryTokens []string, allowPartial bool) (float64, []entities.FieldMatch) {
	elems := s.fieldElements(brand, field)
	if len(elems) == 0 {
		return 0, nil
	}

	var (
		best    float64
		matches []entities.FieldMatch
	)
	record := func(score float64, matchType entities.MatchType, text string) {
		matches = append(matches, entities.FieldMatch{
			Score:       score,
			MatchType:   matchType,
			MatchedText: text,
		})
		if score > best {
			best = score
		}
	}

	for _, el := range elems {
		if el.norm == "" {
			continue
		}

		if normQuery != "" && strings.Contains(el.norm, normQuery) {
			record(1.0, entities.MatchExact, el.raw)
		}

		if sim := textmatch.Similarity(normQuery, el.norm); sim > fuzzyFieldThreshold {
			record(sim, entities.MatchFuzzyField, el.raw)
		}

		for _, qt := range queryTokens {
			for _, ft := range el.tokens {
				sim := textmatch.Similarity(qt, ft)
				switch {
				case sim == 1.0:
					record(exactKeywordScore, entities.MatchExactKeyword, ft)
				case sim >= fuzzyKeywordThreshold:
					record(sim*fuzzyKeywordWeight, entities.MatchFuzzyKeyword, ft)
				}
			}

			if allowPartial && strings.Contains(el.norm, qt) {
				record(partialMatchScore, entities.MatchPartial, el.raw)
			}
		}
	}

	return best, matches
}

// fieldElements resolves and normalizes a brand field, memoized per
// (brand, update generation, field) so repeated searches over a stable
// collection skip re-normalization.
func (s *BrandSearchService) fieldElements(brand *entities.Brand, field string) []fieldElement {
	key := fmt.Sprintf("%s|%d|%s", brand.ID, brand.UpdatedAt.UnixNano(), field)
	if cached, ok := s.fieldCache.Get(key); ok {
		return cached
	}

	value := brand.Field(field)
	var raws []string
	switch value.Kind {
	case entities.FieldScalar:
		raws = []string{value.Scalar}
	case entities.FieldList:
		raws = value.List
	default:
		raws = nil
	}

	elems := make([]fieldElement, 0, len(raws))
	for _, raw := range raws {
		norm := textmatch.Normalize(raw)
		if norm == "" {
			continue
		}
		elems = append(elems, fieldElement{
			raw:    raw,
			norm:   norm,
			tokens: strings.Fields(norm),
		})
	}

	s.fieldCache.Add(key, elems)
	return elems
}

type indexedTerm struct {
	raw  string
	norm string
}

// termIndex collects the distinct normalized values across the
// suggestion fields of the collection, in scan order.
func (s *BrandSearchService) termIndex(brands []*entities.Brand, fields []string) []indexedTerm {
	seen := make(map[string]struct{})
	var terms []indexedTerm
	for _, brand := range brands {
		if brand == nil {
			continue
		}
		for _, field := range fields {
			for _, el := range s.fieldElements(brand, field) {
				if _, ok := seen[el.norm]; ok {
					continue
				}
				seen[el.norm] = struct{}{}
				terms = append(terms, indexedTerm{raw: el.raw, norm: el.norm})
			}
		}
	}
	return terms
}
