package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"

	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
	"github.com/KAMASDM/franchise-sub002/internal/domain/repositories"
	"github.com/KAMASDM/franchise-sub002/internal/infrastructure/clients/postgres"
	apperrors "github.com/KAMASDM/franchise-sub002/pkg/errors"
)

// SearchAnalyticsAdapter implements search analytics persistence in
// Postgres.
type SearchAnalyticsAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewSearchAnalyticsAdapter creates a new search analytics adapter
func NewSearchAnalyticsAdapter(client *postgres.Client) repositories.SearchAnalyticsRepository {
	return &SearchAnalyticsAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// LogEvent records one search request.
func (a *SearchAnalyticsAdapter) LogEvent(ctx context.Context, event *entities.SearchEvent) error {
	if event == nil {
		return apperrors.NewValidationError("search event is nil")
	}

	record := goqu.Record{
		"id":               event.ID,
		"query":            event.Query,
		"normalized_query": event.NormalizedQuery,
		"result_count":     event.ResultCount,
		"suggestion":       sql.NullString{String: event.Suggestion, Valid: event.Suggestion != ""},
		"latency_ms":       event.LatencyMs,
		"session_id":       sql.NullString{String: event.SessionID, Valid: event.SessionID != ""},
		"created_at":       event.CreatedAt,
	}

	query, args, err := a.db.Insert("search_events").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build search event insert query", err)
	}
	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to log search event", err)
	}
	return nil
}

// GetZeroResultQueries retrieves recent searches that found nothing,
// newest first.
func (a *SearchAnalyticsAdapter) GetZeroResultQueries(ctx context.Context, limit int) ([]*entities.SearchEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, query, normalized_query, result_count,
		       COALESCE(suggestion, ''), latency_ms, COALESCE(session_id, ''), created_at
		FROM search_events
		WHERE result_count = 0
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := a.client.DB().QueryContext(ctx, query, limit)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list zero-result queries", err)
	}
	defer rows.Close()

	events := []*entities.SearchEvent{}
	for rows.Next() {
		e := &entities.SearchEvent{}
		if err := rows.Scan(&e.ID, &e.Query, &e.NormalizedQuery, &e.ResultCount,
			&e.Suggestion, &e.LatencyMs, &e.SessionID, &e.CreatedAt); err != nil {
			return nil, apperrors.NewInternalError("failed to scan search event", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate search events", err)
	}
	return events, nil
}
