package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
	"github.com/KAMASDM/franchise-sub002/internal/domain/repositories"
	"github.com/KAMASDM/franchise-sub002/internal/infrastructure/clients/postgres"
	apperrors "github.com/KAMASDM/franchise-sub002/pkg/errors"
)

const brandColumns = `
	id, brand_name, slug, category, industries, business_models,
	tagline, description, investment_min, investment_max,
	franchise_fee, roi_percent, space_required, locations,
	contact_email, contact_phone, contact_website,
	view_count, is_active, created_at, updated_at
`

// BrandAdapter implements the BrandRepository interface on Postgres.
type BrandAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewBrandAdapter creates a new brand adapter
func NewBrandAdapter(client *postgres.Client) repositories.BrandRepository {
	return &BrandAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

func brandRecord(brand *entities.Brand) goqu.Record {
	return goqu.Record{
		"id":              brand.ID,
		"brand_name":      brand.BrandName,
		"slug":            brand.Slug,
		"category":        brand.Category,
		"industries":      pq.Array(brand.Industries),
		"business_models": pq.Array(brand.BusinessModels),
		"tagline":         brand.Tagline,
		"description":     brand.Description,
		"investment_min":  brand.InvestmentRange.Min,
		"investment_max":  brand.InvestmentRange.Max,
		"franchise_fee":   brand.FranchiseFee,
		"roi_percent":     brand.ROIPercent,
		"space_required":  brand.SpaceRequired,
		"locations":       pq.Array(brand.Locations),
		"contact_email":   brand.Contact.Email,
		"contact_phone":   brand.Contact.Phone,
		"contact_website": brand.Contact.Website,
		"view_count":      brand.ViewCount,
		"is_active":       brand.IsActive,
		"created_at":      brand.CreatedAt,
		"updated_at":      brand.UpdatedAt,
	}
}

func scanBrand(row interface{ Scan(...any) error }) (*entities.Brand, error) {
	brand := &entities.Brand{}
	err := row.Scan(
		&brand.ID,
		&brand.BrandName,
		&brand.Slug,
		&brand.Category,
		pq.Array(&brand.Industries),
		pq.Array(&brand.BusinessModels),
		&brand.Tagline,
		&brand.Description,
		&brand.InvestmentRange.Min,
		&brand.InvestmentRange.Max,
		&brand.FranchiseFee,
		&brand.ROIPercent,
		&brand.SpaceRequired,
		pq.Array(&brand.Locations),
		&brand.Contact.Email,
		&brand.Contact.Phone,
		&brand.Contact.Website,
		&brand.ViewCount,
		&brand.IsActive,
		&brand.CreatedAt,
		&brand.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return brand, nil
}

// Create inserts a new brand listing.
func (a *BrandAdapter) Create(ctx context.Context, brand *entities.Brand) error {
	if brand == nil {
		return apperrors.NewValidationError("brand is nil")
	}

	now := time.Now()
	if brand.CreatedAt.IsZero() {
		brand.CreatedAt = now
	}
	brand.UpdatedAt = now

	query, args, err := a.db.Insert("brands").Rows(brandRecord(brand)).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build brand insert query", err)
	}
	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create brand", err)
	}
	return nil
}

// GetByID retrieves a brand by ID.
func (a *BrandAdapter) GetByID(ctx context.Context, id string) (*entities.Brand, error) {
	query := `SELECT ` + brandColumns + ` FROM brands WHERE id = $1`

	brand, err := scanBrand(a.client.DB().QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("brand with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get brand", err)
	}
	return brand, nil
}

// GetByIDs retrieves multiple brands by their IDs. Missing IDs are
// silently absent from the result.
func (a *BrandAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.Brand, error) {
	if len(ids) == 0 {
		return []*entities.Brand{}, nil
	}

	query := `SELECT ` + brandColumns + ` FROM brands WHERE id = ANY($1)`

	rows, err := a.client.DB().QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get brands", err)
	}
	defer rows.Close()

	return collectBrands(rows)
}

// Update updates a brand listing.
func (a *BrandAdapter) Update(ctx context.Context, brand *entities.Brand) error {
	if brand == nil {
		return apperrors.NewValidationError("brand is nil")
	}

	brand.UpdatedAt = time.Now()
	record := brandRecord(brand)
	delete(record, "id")
	delete(record, "created_at")
	delete(record, "view_count")

	query, args, err := a.db.Update("brands").
		Set(record).
		Where(goqu.C("id").Eq(brand.ID)).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build brand update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update brand", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("brand with id %s not found", brand.ID))
	}
	return nil
}

// Delete retires a brand listing. The row survives so existing
// favorites and inquiries keep their reference.
func (a *BrandAdapter) Delete(ctx context.Context, id string) error {
	query := `UPDATE brands SET is_active = false, updated_at = $2 WHERE id = $1`

	result, err := a.client.DB().ExecContext(ctx, query, id, time.Now())
	if err != nil {
		return apperrors.NewInternalError("failed to delete brand", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("brand with id %s not found", id))
	}
	return nil
}

// List retrieves brands matching the filter, newest first.
func (a *BrandAdapter) List(ctx context.Context, filter repositories.BrandFilter) ([]*entities.Brand, error) {
	ds := a.db.From("brands").Select(goqu.L(brandColumns)).Order(goqu.C("created_at").Desc())
	if filter.IsActive != nil {
		ds = ds.Where(goqu.C("is_active").Eq(*filter.IsActive))
	}
	if filter.Category != "" {
		ds = ds.Where(goqu.C("category").Eq(filter.Category))
	}
	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}
	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build brand list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list brands", err)
	}
	defer rows.Close()

	return collectBrands(rows)
}

// IncrementViewCount bumps a brand's view counter.
func (a *BrandAdapter) IncrementViewCount(ctx context.Context, id string) error {
	query := `UPDATE brands SET view_count = view_count + 1 WHERE id = $1`

	result, err := a.client.DB().ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.NewInternalError("failed to increment view count", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("brand with id %s not found", id))
	}
	return nil
}

func collectBrands(rows *sql.Rows) ([]*entities.Brand, error) {
	brands := []*entities.Brand{}
	for rows.Next() {
		brand, err := scanBrand(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan brand", err)
		}
		brands = append(brands, brand)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate brands", err)
	}
	return brands, nil
}
