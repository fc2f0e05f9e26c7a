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

// InquiryAdapter implements inquiry persistence in Postgres.
type InquiryAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewInquiryAdapter creates a new inquiry adapter
func NewInquiryAdapter(client *postgres.Client) repositories.InquiryRepository {
	return &InquiryAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create stores a franchise inquiry.
func (a *InquiryAdapter) Create(ctx context.Context, inquiry *entities.Inquiry) error {
	if inquiry == nil {
		return apperrors.NewValidationError("inquiry is nil")
	}

	record := goqu.Record{
		"id":         inquiry.ID,
		"session_id": inquiry.SessionID,
		"brand_id":   inquiry.BrandID,
		"name":       inquiry.Name,
		"email":      inquiry.Email,
		"phone":      sql.NullString{String: inquiry.Phone, Valid: inquiry.Phone != ""},
		"message":    sql.NullString{String: inquiry.Message, Valid: inquiry.Message != ""},
		"created_at": inquiry.CreatedAt,
	}

	query, args, err := a.db.Insert("inquiries").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build inquiry insert query", err)
	}
	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create inquiry", err)
	}
	return nil
}

// ListBySession retrieves a session's inquiries, newest first.
func (a *InquiryAdapter) ListBySession(ctx context.Context, sessionID string) ([]*entities.Inquiry, error) {
	query := `
		SELECT id, session_id, brand_id, name, email,
		       COALESCE(phone, ''), COALESCE(message, ''), created_at
		FROM inquiries
		WHERE session_id = $1
		ORDER BY created_at DESC
	`

	rows, err := a.client.DB().QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list inquiries", err)
	}
	defer rows.Close()

	inquiries := []*entities.Inquiry{}
	for rows.Next() {
		i := &entities.Inquiry{}
		if err := rows.Scan(&i.ID, &i.SessionID, &i.BrandID, &i.Name, &i.Email, &i.Phone, &i.Message, &i.CreatedAt); err != nil {
			return nil, apperrors.NewInternalError("failed to scan inquiry", err)
		}
		inquiries = append(inquiries, i)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate inquiries", err)
	}
	return inquiries, nil
}
