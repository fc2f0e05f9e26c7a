package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
	"github.com/KAMASDM/franchise-sub002/internal/domain/providers"
	"github.com/KAMASDM/franchise-sub002/internal/domain/repositories"
	apperrors "github.com/KAMASDM/franchise-sub002/pkg/errors"
)

// FavoriteService manages per-session brand bookmarks.
type FavoriteService struct {
	favorites repositories.FavoriteRepository
	brands    repositories.BrandRepository
	eventBus  providers.EventBus
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(favorites repositories.FavoriteRepository, brands repositories.BrandRepository) *FavoriteService {
	return &FavoriteService{favorites: favorites, brands: brands}
}

// SetEventBus enables interaction event publishing.
func (s *FavoriteService) SetEventBus(bus providers.EventBus) {
	s.eventBus = bus
}

// Add bookmarks a brand for a session. Bookmarking the same brand twice
// is a no-op at the repository level.
func (s *FavoriteService) Add(ctx context.Context, sessionID, brandID string) (*entities.Favorite, error) {
	if sessionID == "" {
		return nil, apperrors.NewValidationError("session ID is required")
	}

	if _, err := s.brands.GetByID(ctx, brandID); err != nil {
		return nil, err
	}

	favorite := &entities.Favorite{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		BrandID:   brandID,
		CreatedAt: time.Now(),
	}
	if err := s.favorites.Add(ctx, favorite); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, brandID, sessionID)
	return favorite, nil
}

// Remove deletes a session's bookmark for a brand.
func (s *FavoriteService) Remove(ctx context.Context, sessionID, brandID string) error {
	if sessionID == "" {
		return apperrors.NewValidationError("session ID is required")
	}
	return s.favorites.Remove(ctx, sessionID, brandID)
}

// List returns the session's bookmarked brands, newest bookmark first.
// Brands retired since bookmarking are silently dropped.
func (s *FavoriteService) List(ctx context.Context, sessionID string) ([]*entities.Brand, error) {
	favorites, err := s.favorites.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(favorites) == 0 {
		return []*entities.Brand{}, nil
	}

	ids := make([]string, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.BrandID)
	}

	brands, err := s.brands.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entities.Brand, len(brands))
	for _, b := range brands {
		byID[b.ID] = b
	}

	ordered := make([]*entities.Brand, 0, len(favorites))
	for _, f := range favorites {
		if b, ok := byID[f.BrandID]; ok {
			ordered = append(ordered, b)
		}
	}
	return ordered, nil
}

func (s *FavoriteService) publishEvent(ctx context.Context, brandID, sessionID string) {
	if s.eventBus == nil {
		return
	}
	event := &entities.BrandEvent{
		ID:        uuid.New().String(),
		Type:      entities.BrandFavorited,
		BrandID:   brandID,
		SessionID: sessionID,
		CreatedAt: time.Now(),
	}
	if err := s.eventBus.Publish(ctx, providers.EventChannelBrandUpdates, event); err != nil {
		log.Warn().Err(err).Str("brand_id", brandID).Msg("failed to publish favorite event")
	}
}
