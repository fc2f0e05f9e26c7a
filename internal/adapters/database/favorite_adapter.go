package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
	"github.com/KAMASDM/franchise-sub002/internal/domain/repositories"
	"github.com/KAMASDM/franchise-sub002/internal/infrastructure/clients/postgres"
	apperrors "github.com/KAMASDM/franchise-sub002/pkg/errors"
)

// FavoriteAdapter implements favorite persistence in Postgres.
type FavoriteAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewFavoriteAdapter creates a new favorite adapter
func NewFavoriteAdapter(client *postgres.Client) repositories.FavoriteRepository {
	return &FavoriteAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Add stores a favorite. The (session_id, brand_id) pair is unique, so
// adding the same brand twice is a no-op.
func (a *FavoriteAdapter) Add(ctx context.Context, favorite *entities.Favorite) error {
	if favorite == nil {
		return apperrors.NewValidationError("favorite is nil")
	}

	record := goqu.Record{
		"id":         favorite.ID,
		"session_id": favorite.SessionID,
		"brand_id":   favorite.BrandID,
		"created_at": favorite.CreatedAt,
	}

	query, args, err := a.db.Insert("favorites").
		Rows(record).
		OnConflict(goqu.DoNothing()).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build favorite insert query", err)
	}
	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to add favorite", err)
	}
	return nil
}

// Remove deletes a session's favorite for a brand.
func (a *FavoriteAdapter) Remove(ctx context.Context, sessionID, brandID string) error {
	query := `DELETE FROM favorites WHERE session_id = $1 AND brand_id = $2`

	if _, err := a.client.DB().ExecContext(ctx, query, sessionID, brandID); err != nil {
		return apperrors.NewInternalError("failed to remove favorite", err)
	}
	return nil
}

// ListBySession retrieves a session's favorites, newest first.
func (a *FavoriteAdapter) ListBySession(ctx context.Context, sessionID string) ([]*entities.Favorite, error) {
	query := `
		SELECT id, session_id, brand_id, created_at
		FROM favorites
		WHERE session_id = $1
		ORDER BY created_at DESC
	`

	rows, err := a.client.DB().QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list favorites", err)
	}
	defer rows.Close()

	favorites := []*entities.Favorite{}
	for rows.Next() {
		f := &entities.Favorite{}
		if err := rows.Scan(&f.ID, &f.SessionID, &f.BrandID, &f.CreatedAt); err != nil {
			return nil, apperrors.NewInternalError("failed to scan favorite", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate favorites", err)
	}
	return favorites, nil
}
