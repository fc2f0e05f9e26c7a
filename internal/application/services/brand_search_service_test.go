package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
)

func searchFixture() []*entities.Brand {
	return []*entities.Brand{
		{ID: "b1", BrandName: "Pizza Hut", Category: "Food"},
		{ID: "b2", BrandName: "Pizza Palace", Category: "Food"},
		{ID: "b3", BrandName: "Shoe Store", Category: "Retail"},
	}
}

func TestSearch_EmptyQueryPassesThrough(t *testing.T) {
	svc := NewBrandSearchService()
	brands := searchFixture()

	results := svc.Search(brands, "   ", SearchConfig{MaxResults: 2})

	assert.Equal(t, 2, len(results))
	assert.Equal(t, "b1", results[0].Brand.ID) // input order preserved
	assert.Equal(t, "b2", results[1].Brand.ID)
	assert.Zero(t, results[0].Score)
}

func TestSearch_ExactSubstringScoresOne(t *testing.T) {
	svc := NewBrandSearchService()
	brands := []*entities.Brand{
		{ID: "b1", BrandName: "The Exact Brand Name", Category: "Food"},
	}

	results := svc.Search(brands, "Exact Brand", DefaultSearchConfig())

	assert.Equal(t, 1, len(results))
	assert.Equal(t, 1.0, results[0].Score)
	assert.LessOrEqual(t, results[0].Relevance, 1.0)

	var types []entities.MatchType
	for _, m := range results[0].FieldMatches {
		types = append(types, m.MatchType)
	}
	assert.Contains(t, types, entities.MatchExact)
}

func TestSearch_TypoRanksFuzzyMatchesAndDropsUnrelated(t *testing.T) {
	svc := NewBrandSearchService()

	results := svc.Search(searchFixture(), "piza hutt", DefaultSearchConfig())

	assert.Equal(t, 2, len(results))
	assert.Equal(t, "b1", results[0].Brand.ID) // whole-field fuzzy beats keyword fuzzy
	assert.Equal(t, "b2", results[1].Brand.ID)
	assert.Greater(t, results[0].Score, results[1].Score)

	// Pizza Hut matches on whole-field edit distance.
	var sawFuzzyField bool
	for _, m := range results[0].FieldMatches {
		if m.MatchType == entities.MatchFuzzyField {
			sawFuzzyField = true
		}
	}
	assert.True(t, sawFuzzyField)

	// Pizza Palace only gets there through the token pair piza/pizza.
	var sawFuzzyKeyword bool
	for _, m := range results[1].FieldMatches {
		if m.MatchType == entities.MatchFuzzyKeyword {
			sawFuzzyKeyword = true
		}
	}
	assert.True(t, sawFuzzyKeyword)
}

func TestSearch_ThresholdExcludes(t *testing.T) {
	svc := NewBrandSearchService()

	results := svc.Search(searchFixture(), "piza hutt", SearchConfig{Threshold: 0.7})

	assert.Equal(t, 1, len(results))
	assert.Equal(t, "b1", results[0].Brand.ID)
}

func TestSearch_RelevanceRewardsMultipleFields(t *testing.T) {
	svc := NewBrandSearchService()
	brands := []*entities.Brand{
		{ID: "b1", BrandName: "Grill Master", Tagline: "Master of the grill"},
		{ID: "b2", BrandName: "Grill House"},
	}

	// "grll" only fires the fuzzy keyword candidate, so both brands get
	// the same best score and only the per-field bonus separates them.
	results := svc.Search(brands, "grll", DefaultSearchConfig())

	assert.Equal(t, 2, len(results))
	assert.Equal(t, "b1", results[0].Brand.ID)
	assert.Greater(t, results[0].Relevance, results[1].Relevance)
	// Same best score on both; only the per-field bonus separates them.
	assert.Equal(t, results[0].Score, results[1].Score)
}

func TestDidYouMean_SuggestsClosestTerm(t *testing.T) {
	svc := NewBrandSearchService()
	brands := []*entities.Brand{
		{ID: "b1", BrandName: "Restaurant Royale", Category: "Restaurant"},
	}

	got := svc.DidYouMean(brands, "restarant", DefaultSearchConfig())
	assert.Equal(t, "Restaurant", got)
}

func TestDidYouMean_NoSuggestionForExactOrShortQueries(t *testing.T) {
	svc := NewBrandSearchService()
	brands := []*entities.Brand{
		{ID: "b1", BrandName: "Pizza Hut", Category: "Food"},
	}
	cfg := DefaultSearchConfig()

	assert.Empty(t, svc.DidYouMean(brands, "Food", cfg))   // already a term
	assert.Empty(t, svc.DidYouMean(brands, "pi", cfg))     // too short
	assert.Empty(t, svc.DidYouMean(brands, "xyzzyq", cfg)) // nothing close
}

func TestSuggest_PrefixAndWordBoundary(t *testing.T) {
	svc := NewBrandSearchService()
	brands := []*entities.Brand{
		{ID: "b1", BrandName: "Pizza Hut", Category: "Food"},
		{ID: "b2", BrandName: "Pizza Palace", Category: "Food"},
		{ID: "b3", BrandName: "Burger Barn", Category: "Food"},
	}
	cfg := DefaultSearchConfig()

	got := svc.Suggest(brands, "piz", 10, cfg)
	assert.Equal(t, []string{"Pizza Hut", "Pizza Palace"}, got)

	got = svc.Suggest(brands, "palace", 10, cfg)
	assert.Equal(t, []string{"Pizza Palace"}, got)

	got = svc.Suggest(brands, "piz", 1, cfg)
	assert.Equal(t, 1, len(got))

	assert.Empty(t, svc.Suggest(brands, "  ", cfg.MaxResults, cfg))
}

func TestSearch_ListFieldsScoreByElement(t *testing.T) {
	svc := NewBrandSearchService()
	brands := []*entities.Brand{
		{ID: "b1", BrandName: "Fit Republic", Industries: []string{"Fitness", "Wellness"}},
		{ID: "b2", BrandName: "Bookworm", Industries: []string{"Education"}},
	}

	results := svc.Search(brands, "fitness", DefaultSearchConfig())

	assert.Equal(t, 1, len(results))
	assert.Equal(t, "b1", results[0].Brand.ID)
	assert.Equal(t, 1.0, results[0].Score)
}
