package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
)

// Pairwise similarity contributions. Tuning parameters, not contracts.
const (
	categoryMatchPoints   = 40
	industryMatchPoints   = 25
	investmentClosePoints = 20 // relative difference under 30%
	investmentNearPoints  = 10 // relative difference under 50%
	spaceMatchPoints      = 10 // within 500 sqft
	modelMatchPoints      = 15

	investmentCloseRatio = 0.3
	investmentNearRatio  = 0.5
	spaceMatchDelta      = 500
)

// Boosts applied on top of history similarity.
const (
	strongMatchThreshold = 40

	historyWeightViewed    = 0.3
	historyWeightFavorited = 0.4
	historyWeightInquired  = 0.4

	trendingViewCount = 100
	popularViewCount  = 500
	trendingBoostRate = 0.1

	recentWindow = 30 * 24 * time.Hour
	recentBoost  = 2

	highROIPercent = 20
	highROIBoost   = 15

	lowInvestmentCutoff = 1_000_000 // INR
	lowInvestmentBoost  = 10

	defaultRecommendLimit = 6
)

// RecommendOptions tunes one recommendation invocation.
type RecommendOptions struct {
	Limit           int
	ExcludeBrandIDs []string
}

// RecommendationService proposes brands a user is likely to inquire
// about, scored against their interaction history plus marketplace
// signals (trending, recency, ROI, entry cost).
type RecommendationService struct {
	now func() time.Time
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService() *RecommendationService {
	return &RecommendationService{now: time.Now}
}

// Similarity computes the additive pairwise similarity between two
// brands. The score is unbounded and not normalized; identity or a
// missing ID on either side yields 0.
func (s *RecommendationService) Similarity(a, b *entities.Brand) int {
	if a == nil || b == nil {
		return 0
	}
	return s.pairScore(entities.SnapshotOf(a), b)
}

func (s *RecommendationService) pairScore(snap entities.BrandSnapshot, candidate *entities.Brand) int {
	if snap.BrandID == "" || candidate.ID == "" || snap.BrandID == candidate.ID {
		return 0
	}

	score := 0

	if snap.Category != "" && snap.Category == candidate.Category {
		score += categoryMatchPoints
	}

	if sharesIndustry(snap.Industries, candidate.Industries) {
		score += industryMatchPoints
	}

	if ratio, ok := relativeDiff(snap.Investment, candidate.InvestmentValue()); ok {
		switch {
		case ratio < investmentCloseRatio:
			score += investmentClosePoints
		case ratio < investmentNearRatio:
			score += investmentNearPoints
		}
	}

	if snap.SpaceRequired > 0 && candidate.SpaceRequired > 0 {
		delta := snap.SpaceRequired - candidate.SpaceRequired
		if delta < 0 {
			delta = -delta
		}
		if delta < spaceMatchDelta {
			score += spaceMatchPoints
		}
	}

	if snap.BusinessModel != "" && containsString(candidate.BusinessModels, snap.BusinessModel) {
		score += modelMatchPoints
	}

	return score
}

// scoreParts keeps the numeric accumulation separate from the
// presentation-only reason strings.
type scoreParts struct {
	score         float64
	similarTo     []string
	popular       bool
	recentlyAdded bool
	highROI       bool
	lowInvestment bool
}

func (s *RecommendationService) scoreCandidate(candidate *entities.Brand, history entities.UserHistory) scoreParts {
	var parts scoreParts

	weighted := []struct {
		snaps  []entities.BrandSnapshot
		weight float64
	}{
		{history.RecentlyViewed, historyWeightViewed},
		{history.Favorited, historyWeightFavorited},
		{history.Inquired, historyWeightInquired},
	}
	for _, group := range weighted {
		for _, snap := range group.snaps {
			pair := s.pairScore(snap, candidate)
			parts.score += float64(pair) * group.weight
			if pair > strongMatchThreshold && snap.BrandName != "" {
				parts.similarTo = append(parts.similarTo, snap.BrandName)
			}
		}
	}

	if candidate.ViewCount > trendingViewCount {
		parts.score += float64(candidate.ViewCount) / 10 * trendingBoostRate
	}
	parts.popular = candidate.ViewCount > popularViewCount

	if !candidate.CreatedAt.IsZero() && s.now().Sub(candidate.CreatedAt) <= recentWindow {
		parts.score += recentBoost
		parts.recentlyAdded = true
	}

	if candidate.ROIPercent > highROIPercent {
		parts.score += highROIBoost
		parts.highROI = true
	}

	if inv := candidate.InvestmentValue(); inv > 0 && inv < lowInvestmentCutoff {
		parts.score += lowInvestmentBoost
		parts.lowInvestment = true
	}

	return parts
}

// buildReasons renders the presentation-only reason strings for a
// scored candidate, deduplicated, in signal order.
func buildReasons(parts scoreParts) []string {
	seen := make(map[string]struct{})
	var reasons []string
	add := func(r string) {
		if _, ok := seen[r]; ok {
			return
		}
		seen[r] = struct{}{}
		reasons = append(reasons, r)
	}

	for _, name := range parts.similarTo {
		add(fmt.Sprintf("Similar to %s", name))
	}
	if parts.popular {
		add("Popular choice")
	}
	if parts.recentlyAdded {
		add("Recently added")
	}
	if parts.highROI {
		add("High ROI potential")
	}
	if parts.lowInvestment {
		add("Low investment")
	}
	return reasons
}

// Recommend ranks candidate brands for a user. Candidates in the
// exclusion set or already present in the history are skipped, and
// candidates whose cumulative score is not positive are dropped
// entirely rather than ranked low.
func (s *RecommendationService) Recommend(brands []*entities.Brand, history entities.UserHistory, opts RecommendOptions) []entities.Recommendation {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultRecommendLimit
	}

	excluded := make(map[string]struct{}, len(opts.ExcludeBrandIDs))
	for _, id := range opts.ExcludeBrandIDs {
		excluded[id] = struct{}{}
	}
	for _, group := range [][]entities.BrandSnapshot{history.RecentlyViewed, history.Favorited, history.Inquired} {
		for _, snap := range group {
			excluded[snap.BrandID] = struct{}{}
		}
	}

	var recs []entities.Recommendation
	for _, candidate := range brands {
		if candidate == nil || candidate.ID == "" {
			continue
		}
		if _, skip := excluded[candidate.ID]; skip {
			continue
		}

		parts := s.scoreCandidate(candidate, history)
		if parts.score <= 0 {
			continue
		}

		recs = append(recs, entities.Recommendation{
			Brand:   candidate,
			Score:   parts.score,
			Reasons: buildReasons(parts),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

func sharesIndustry(a, b []string) bool {
	for _, x := range a {
		if containsString(b, x) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// relativeDiff returns |a-b| / max(a,b); ok is false when either side
// is missing.
func relativeDiff(a, b float64) (float64, bool) {
	if a <= 0 || b <= 0 {
		return 0, false
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	maxVal := a
	if b > maxVal {
		maxVal = b
	}
	return diff / maxVal, true
}
