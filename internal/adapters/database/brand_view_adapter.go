package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
	"github.com/KAMASDM/franchise-sub002/internal/domain/repositories"
	"github.com/KAMASDM/franchise-sub002/internal/infrastructure/clients/postgres"
	apperrors "github.com/KAMASDM/franchise-sub002/pkg/errors"
)

// BrandViewAdapter implements per-session view tracking in Postgres.
type BrandViewAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewBrandViewAdapter creates a new brand view adapter
func NewBrandViewAdapter(client *postgres.Client) repositories.BrandViewRepository {
	return &BrandViewAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Record stores one brand view for a session.
func (a *BrandViewAdapter) Record(ctx context.Context, view *entities.BrandView) error {
	if view == nil {
		return apperrors.NewValidationError("view is nil")
	}

	record := goqu.Record{
		"id":         view.ID,
		"session_id": view.SessionID,
		"brand_id":   view.BrandID,
		"created_at": view.CreatedAt,
	}

	query, args, err := a.db.Insert("brand_views").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build view insert query", err)
	}
	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to record brand view", err)
	}
	return nil
}

// RecentBySession retrieves a session's most recent views, one row per
// distinct brand, newest first.
func (a *BrandViewAdapter) RecentBySession(ctx context.Context, sessionID string, limit int) ([]*entities.BrandView, error) {
	query := `
		SELECT DISTINCT ON (brand_id) id, session_id, brand_id, created_at
		FROM brand_views
		WHERE session_id = $1
		ORDER BY brand_id, created_at DESC
	`
	args := []any{sessionID}
	if limit > 0 {
		query = `SELECT id, session_id, brand_id, created_at FROM (` + query + `) v
		ORDER BY created_at DESC LIMIT $2`
		args = append(args, limit)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list brand views", err)
	}
	defer rows.Close()

	views := []*entities.BrandView{}
	for rows.Next() {
		v := &entities.BrandView{}
		if err := rows.Scan(&v.ID, &v.SessionID, &v.BrandID, &v.CreatedAt); err != nil {
			return nil, apperrors.NewInternalError("failed to scan brand view", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate brand views", err)
	}
	return views, nil
}
