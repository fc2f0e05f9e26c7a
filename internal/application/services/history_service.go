package services

import (
	"context"

	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
	"github.com/KAMASDM/franchise-sub002/internal/domain/repositories"
)

// Engagement point values per interaction kind.
const (
	pointsPerView     = 1
	pointsPerFavorite = 5
	pointsPerInquiry  = 20

	recentViewLimit = 20
)

// EngagementSummary is a session's gamification tally.
type EngagementSummary struct {
	Points    int `json:"points"`
	Views     int `json:"views"`
	Favorites int `json:"favorites"`
	Inquiries int `json:"inquiries"`
}

// HistoryService assembles a session's interaction history for the
// recommendation engine and computes its engagement points.
type HistoryService struct {
	favorites repositories.FavoriteRepository
	inquiries repositories.InquiryRepository
	views     repositories.BrandViewRepository
	brands    repositories.BrandRepository
}

// NewHistoryService creates a new history service
func NewHistoryService(
	favorites repositories.FavoriteRepository,
	inquiries repositories.InquiryRepository,
	views repositories.BrandViewRepository,
	brands repositories.BrandRepository,
) *HistoryService {
	return &HistoryService{
		favorites: favorites,
		inquiries: inquiries,
		views:     views,
		brands:    brands,
	}
}

// BySession builds the snapshot history for a session. Interactions
// whose brand has since been retired still count: the snapshots are
// taken from the surviving brand rows, so retired brands simply drop
// out of the comparison set.
func (s *HistoryService) BySession(ctx context.Context, sessionID string) (entities.UserHistory, error) {
	var history entities.UserHistory
	if sessionID == "" {
		return history, nil
	}

	views, err := s.views.RecentBySession(ctx, sessionID, recentViewLimit)
	if err != nil {
		return history, err
	}
	favorites, err := s.favorites.ListBySession(ctx, sessionID)
	if err != nil {
		return history, err
	}
	inquiries, err := s.inquiries.ListBySession(ctx, sessionID)
	if err != nil {
		return history, err
	}

	idSet := make(map[string]struct{})
	var ids []string
	collect := func(id string) {
		if _, ok := idSet[id]; ok {
			return
		}
		idSet[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, v := range views {
		collect(v.BrandID)
	}
	for _, f := range favorites {
		collect(f.BrandID)
	}
	for _, i := range inquiries {
		collect(i.BrandID)
	}
	if len(ids) == 0 {
		return history, nil
	}

	brands, err := s.brands.GetByIDs(ctx, ids)
	if err != nil {
		return history, err
	}
	snapByID := make(map[string]entities.BrandSnapshot, len(brands))
	for _, b := range brands {
		snapByID[b.ID] = entities.SnapshotOf(b)
	}

	for _, v := range views {
		if snap, ok := snapByID[v.BrandID]; ok {
			history.RecentlyViewed = append(history.RecentlyViewed, snap)
		}
	}
	for _, f := range favorites {
		if snap, ok := snapByID[f.BrandID]; ok {
			history.Favorited = append(history.Favorited, snap)
		}
	}
	for _, i := range inquiries {
		if snap, ok := snapByID[i.BrandID]; ok {
			history.Inquired = append(history.Inquired, snap)
		}
	}
	return history, nil
}

// Engagement tallies a session's interaction counts into points:
// views are worth 1, favorites 5, inquiries 20.
func (s *HistoryService) Engagement(ctx context.Context, sessionID string) (EngagementSummary, error) {
	var summary EngagementSummary
	if sessionID == "" {
		return summary, nil
	}

	views, err := s.views.RecentBySession(ctx, sessionID, 0)
	if err != nil {
		return summary, err
	}
	favorites, err := s.favorites.ListBySession(ctx, sessionID)
	if err != nil {
		return summary, err
	}
	inquiries, err := s.inquiries.ListBySession(ctx, sessionID)
	if err != nil {
		return summary, err
	}

	summary.Views = len(views)
	summary.Favorites = len(favorites)
	summary.Inquiries = len(inquiries)
	summary.Points = summary.Views*pointsPerView +
		summary.Favorites*pointsPerFavorite +
		summary.Inquiries*pointsPerInquiry
	return summary, nil
}
