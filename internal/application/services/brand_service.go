package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
	"github.com/KAMASDM/franchise-sub002/internal/domain/providers"
	"github.com/KAMASDM/franchise-sub002/internal/domain/repositories"
)

// BrandSearchResult is the full payload of one search request: ranked
// matches, facet counts over the filtered collection, and a spelling
// suggestion when nothing matched.
type BrandSearchResult struct {
	Results    []entities.MatchResult           `json:"results"`
	Facets     map[string][]entities.FacetValue `json:"facets"`
	DidYouMean string                           `json:"did_you_mean,omitempty"`
	TotalCount int                              `json:"total_count"`
}

// BrandService orchestrates brand listing, the search pipeline, and
// view tracking.
type BrandService struct {
	repo      repositories.BrandRepository
	views     repositories.BrandViewRepository
	analytics repositories.SearchAnalyticsRepository
	search    *BrandSearchService
	facets    *FacetService
	eventBus  providers.EventBus
}

// NewBrandService creates a new brand service
func NewBrandService(
	repo repositories.BrandRepository,
	views repositories.BrandViewRepository,
	analytics repositories.SearchAnalyticsRepository,
	search *BrandSearchService,
	facets *FacetService,
) *BrandService {
	return &BrandService{
		repo:      repo,
		views:     views,
		analytics: analytics,
		search:    search,
		facets:    facets,
	}
}

// SetEventBus enables interaction event publishing.
func (s *BrandService) SetEventBus(bus providers.EventBus) {
	s.eventBus = bus
}

// GetByID retrieves a brand by ID
func (s *BrandService) GetByID(ctx context.Context, id string) (*entities.Brand, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves brands with repository-level filters
func (s *BrandService) List(ctx context.Context, filter repositories.BrandFilter) ([]*entities.Brand, error) {
	return s.repo.List(ctx, filter)
}

// Search runs the full pipeline: load the active collection, narrow it
// by facet selections, rank by the query, aggregate facet counts over
// the narrowed set, and fall back to a spelling suggestion when the
// ranked set is empty. The search event is logged fire-and-forget.
func (s *BrandService) Search(ctx context.Context, query string, selections entities.FacetSelections, cfg SearchConfig, sessionID string) (*BrandSearchResult, error) {
	start := time.Now()

	active := true
	brands, err := s.repo.List(ctx, repositories.BrandFilter{IsActive: &active})
	if err != nil {
		return nil, err
	}

	defs := DefaultFacetDefs()
	narrowed := s.facets.ApplyFilters(brands, defs, selections)
	results := s.search.Search(narrowed, query, cfg)

	result := &BrandSearchResult{
		Results:    results,
		Facets:     s.facets.Aggregate(narrowed, defs),
		TotalCount: len(results),
	}

	if strings.TrimSpace(query) != "" && len(results) == 0 {
		result.DidYouMean = s.search.DidYouMean(narrowed, query, cfg)
	}

	s.logSearchEvent(query, sessionID, len(results), result.DidYouMean, time.Since(start))

	return result, nil
}

// Suggest returns autocomplete candidates over the active collection.
func (s *BrandService) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	active := true
	brands, err := s.repo.List(ctx, repositories.BrandFilter{IsActive: &active})
	if err != nil {
		return nil, err
	}
	return s.search.Suggest(brands, query, limit, DefaultSearchConfig()), nil
}

// Facets aggregates filter counts over the active collection.
func (s *BrandService) Facets(ctx context.Context) (map[string][]entities.FacetValue, error) {
	active := true
	brands, err := s.repo.List(ctx, repositories.BrandFilter{IsActive: &active})
	if err != nil {
		return nil, err
	}
	return s.facets.Aggregate(brands, DefaultFacetDefs()), nil
}

// RecordView bumps the brand's view counter, stores the session view
// for history, and publishes a brand.viewed event.
func (s *BrandService) RecordView(ctx context.Context, brandID, sessionID string) error {
	if err := s.repo.IncrementViewCount(ctx, brandID); err != nil {
		return err
	}

	if s.views != nil && sessionID != "" {
		view := &entities.BrandView{
			ID:        uuid.New().String(),
			SessionID: sessionID,
			BrandID:   brandID,
			CreatedAt: time.Now(),
		}
		if err := s.views.Record(ctx, view); err != nil {
			log.Warn().Err(err).Str("brand_id", brandID).Msg("failed to record brand view")
		}
	}

	s.publishEvent(ctx, entities.BrandViewed, brandID, sessionID)
	return nil
}

func (s *BrandService) publishEvent(ctx context.Context, eventType entities.BrandEventType, brandID, sessionID string) {
	if s.eventBus == nil {
		return
	}
	event := &entities.BrandEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		BrandID:   brandID,
		SessionID: sessionID,
		CreatedAt: time.Now(),
	}
	if err := s.eventBus.Publish(ctx, providers.EventChannelBrandUpdates, event); err != nil {
		log.Warn().Err(err).Str("brand_id", brandID).Msg("failed to publish brand event")
	}
}

func (s *BrandService) logSearchEvent(query, sessionID string, resultCount int, suggestion string, latency time.Duration) {
	if s.analytics == nil || strings.TrimSpace(query) == "" {
		return
	}

	event := &entities.SearchEvent{
		ID:              uuid.New().String(),
		Query:           query,
		NormalizedQuery: strings.ToLower(strings.TrimSpace(query)),
		ResultCount:     resultCount,
		Suggestion:      suggestion,
		LatencyMs:       latency.Milliseconds(),
		SessionID:       sessionID,
		CreatedAt:       time.Now(),
	}

	// Analytics must never slow down or fail a search response.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.analytics.LogEvent(ctx, event); err != nil {
			log.Warn().Err(err).Str("query", query).Msg("failed to log search event")
		}
	}()
}

// ZeroResultQueries retrieves recent searches that found nothing.
func (s *BrandService) ZeroResultQueries(ctx context.Context, limit int) ([]*entities.SearchEvent, error) {
	if s.analytics == nil {
		return nil, nil
	}
	return s.analytics.GetZeroResultQueries(ctx, limit)
}
