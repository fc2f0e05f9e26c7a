package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
)

func recommendFixture() (viewed *entities.Brand, candidates []*entities.Brand) {
	viewed = &entities.Brand{
		ID:              "a",
		BrandName:       "Curry Leaf",
		Category:        "Food",
		Industries:      []string{"Food & Beverage"},
		BusinessModels:  []string{"FOFO"},
		InvestmentRange: entities.InvestmentRange{Min: 2_000_000},
		SpaceRequired:   1000,
	}
	candidates = []*entities.Brand{
		viewed,
		{
			ID:              "b",
			BrandName:       "Spice Route",
			Category:        "Food",
			Industries:      []string{"Food & Beverage"},
			BusinessModels:  []string{"FOFO", "FICO"},
			InvestmentRange: entities.InvestmentRange{Min: 2_200_000},
			SpaceRequired:   1200,
		},
		{
			ID:              "c",
			BrandName:       "Shoe Stop",
			Category:        "Retail",
			Industries:      []string{"Footwear"},
			InvestmentRange: entities.InvestmentRange{Min: 5_000_000},
		},
	}
	return viewed, candidates
}

func TestSimilarity_AddsUpMatchingSignals(t *testing.T) {
	svc := NewRecommendationService()
	viewed, candidates := recommendFixture()

	// category 40 + industry 25 + investment within 30% 20 +
	// space within 500 10 + business model 15
	assert.Equal(t, 110, svc.Similarity(viewed, candidates[1]))

	// Nothing in common.
	assert.Equal(t, 0, svc.Similarity(viewed, candidates[2]))

	// Identity never scores.
	assert.Equal(t, 0, svc.Similarity(viewed, viewed))
}

func TestRecommend_RanksByHistoryAndExcludesSeen(t *testing.T) {
	svc := NewRecommendationService()
	viewed, candidates := recommendFixture()
	history := entities.UserHistory{
		RecentlyViewed: []entities.BrandSnapshot{entities.SnapshotOf(viewed)},
	}

	recs := svc.Recommend(candidates, history, RecommendOptions{})

	// The viewed brand is excluded; the unrelated one scores zero and
	// is dropped, not ranked low.
	assert.Equal(t, 1, len(recs))
	assert.Equal(t, "b", recs[0].Brand.ID)
	assert.InDelta(t, 110*0.3, recs[0].Score, 0.001)
	assert.Contains(t, recs[0].Reasons, "Similar to Curry Leaf")
}

func TestRecommend_ReasonsAreDeduplicated(t *testing.T) {
	svc := NewRecommendationService()
	viewed, candidates := recommendFixture()
	snap := entities.SnapshotOf(viewed)
	history := entities.UserHistory{
		RecentlyViewed: []entities.BrandSnapshot{snap},
		Favorited:      []entities.BrandSnapshot{snap},
	}

	recs := svc.Recommend(candidates, history, RecommendOptions{})

	assert.Equal(t, 1, len(recs))
	count := 0
	for _, r := range recs[0].Reasons {
		if r == "Similar to Curry Leaf" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRecommend_MarketplaceBoostsWithEmptyHistory(t *testing.T) {
	svc := NewRecommendationService()
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	candidate := &entities.Brand{
		ID:              "d",
		BrandName:       "Fresh Bowl",
		Category:        "Food",
		ViewCount:       600,
		ROIPercent:      25,
		InvestmentRange: entities.InvestmentRange{Min: 500_000},
		CreatedAt:       now.Add(-24 * time.Hour),
	}

	recs := svc.Recommend([]*entities.Brand{candidate}, entities.UserHistory{}, RecommendOptions{})

	assert.Equal(t, 1, len(recs))
	// trending 600/10*0.1 + recent 2 + ROI 15 + low investment 10
	assert.InDelta(t, 6+2+15+10, recs[0].Score, 0.001)
	assert.Equal(t, []string{
		"Popular choice",
		"Recently added",
		"High ROI potential",
		"Low investment",
	}, recs[0].Reasons)
}

func TestRecommend_RespectsLimitAndExclusions(t *testing.T) {
	svc := NewRecommendationService()

	var brands []*entities.Brand
	for _, id := range []string{"x1", "x2", "x3"} {
		brands = append(brands, &entities.Brand{
			ID:              id,
			BrandName:       id,
			Category:        "Food",
			InvestmentRange: entities.InvestmentRange{Min: 500_000},
		})
	}

	recs := svc.Recommend(brands, entities.UserHistory{}, RecommendOptions{
		Limit:           1,
		ExcludeBrandIDs: []string{"x1"},
	})

	assert.Equal(t, 1, len(recs))
	assert.NotEqual(t, "x1", recs[0].Brand.ID)
}
