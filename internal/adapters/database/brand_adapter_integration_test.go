//go:build integration

package database_test

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KAMASDM/franchise-sub002/internal/adapters/database"
	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
	"github.com/KAMASDM/franchise-sub002/internal/domain/repositories"
	"github.com/KAMASDM/franchise-sub002/internal/infrastructure/clients/postgres"
	"github.com/KAMASDM/franchise-sub002/pkg/config"
	apperrors "github.com/KAMASDM/franchise-sub002/pkg/errors"
)

func newTestPostgresClient(t *testing.T) *postgres.Client {
	t.Helper()

	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("Skipping integration test: TEST_DB_HOST not set")
	}

	port := 5432
	if raw := os.Getenv("TEST_DB_PORT"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			port = v
		}
	}

	cfg := &config.DatabaseConfig{
		Host:     os.Getenv("TEST_DB_HOST"),
		Port:     port,
		User:     envOr("TEST_DB_USER", "postgres"),
		Password: os.Getenv("TEST_DB_PASSWORD"),
		Database: envOr("TEST_DB_NAME", "franchise_marketplace_test"),
		SSLMode:  "disable",
	}

	client, err := postgres.NewClient(cfg)
	require.NoError(t, err, "failed to create postgres client")

	runMigration(t, client, "../../../migrations/001_initial_schema.sql")
	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func runMigration(t *testing.T, client *postgres.Client, path string) {
	t.Helper()

	schema, err := os.ReadFile(filepath.Clean(path))
	require.NoError(t, err)
	_, err = client.DB().ExecContext(context.Background(), string(schema))
	require.NoError(t, err)
}

func cleanTables(t *testing.T, client *postgres.Client) {
	t.Helper()

	_, err := client.DB().ExecContext(context.Background(),
		`TRUNCATE TABLE search_events, brand_views, favorites, inquiries, brands CASCADE`)
	require.NoError(t, err)
}

func testBrand(name, slug string) *entities.Brand {
	return &entities.Brand{
		ID:              uuid.New().String(),
		BrandName:       name,
		Slug:            slug,
		Category:        "Food & Beverage",
		Industries:      []string{"Quick Service Restaurant"},
		BusinessModels:  []string{"FOFO"},
		Tagline:         "Test tagline",
		InvestmentRange: entities.InvestmentRange{Min: 1000000, Max: 2000000},
		Locations:       []string{"Mumbai", "Pune"},
		Contact:         entities.Contact{Email: "owner@example.com"},
		IsActive:        true,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}

func TestBrandAdapterRoundTrip(t *testing.T) {
	client := newTestPostgresClient(t)
	defer client.Close()
	cleanTables(t, client)

	adapter := database.NewBrandAdapter(client)
	ctx := context.Background()

	brand := testBrand("Pizza Hut", "pizza-hut")
	require.NoError(t, adapter.Create(ctx, brand))

	got, err := adapter.GetByID(ctx, brand.ID)
	require.NoError(t, err)
	assert.Equal(t, brand.BrandName, got.BrandName)
	assert.Equal(t, brand.Industries, got.Industries)
	assert.Equal(t, brand.Locations, got.Locations)
	assert.InDelta(t, brand.InvestmentRange.Min, got.InvestmentRange.Min, 0.01)

	require.NoError(t, adapter.IncrementViewCount(ctx, brand.ID))
	got, err = adapter.GetByID(ctx, brand.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ViewCount)
}

func TestBrandAdapterListFiltersInactive(t *testing.T) {
	client := newTestPostgresClient(t)
	defer client.Close()
	cleanTables(t, client)

	adapter := database.NewBrandAdapter(client)
	ctx := context.Background()

	active := testBrand("Active Brand", "active-brand")
	retired := testBrand("Retired Brand", "retired-brand")
	retired.IsActive = false

	require.NoError(t, adapter.Create(ctx, active))
	require.NoError(t, adapter.Create(ctx, retired))

	isActive := true
	brands, err := adapter.List(ctx, repositories.BrandFilter{IsActive: &isActive})
	require.NoError(t, err)
	require.Len(t, brands, 1)
	assert.Equal(t, "Active Brand", brands[0].BrandName)
}

func TestBrandAdapterDeleteIsSoft(t *testing.T) {
	client := newTestPostgresClient(t)
	defer client.Close()
	cleanTables(t, client)

	adapter := database.NewBrandAdapter(client)
	ctx := context.Background()

	brand := testBrand("Short Lived", "short-lived")
	require.NoError(t, adapter.Create(ctx, brand))
	require.NoError(t, adapter.Delete(ctx, brand.ID))

	got, err := adapter.GetByID(ctx, brand.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestFavoriteAdapterIdempotentAdd(t *testing.T) {
	client := newTestPostgresClient(t)
	defer client.Close()
	cleanTables(t, client)

	brands := database.NewBrandAdapter(client)
	favorites := database.NewFavoriteAdapter(client)
	ctx := context.Background()

	brand := testBrand("Favorite Me", "favorite-me")
	require.NoError(t, brands.Create(ctx, brand))

	fav := &entities.Favorite{
		ID:        uuid.New().String(),
		SessionID: "session-1",
		BrandID:   brand.ID,
		CreatedAt: time.Now(),
	}
	require.NoError(t, favorites.Add(ctx, fav))

	dup := *fav
	dup.ID = uuid.New().String()
	require.NoError(t, favorites.Add(ctx, &dup))

	list, err := favorites.ListBySession(ctx, "session-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBrandAdapterUpdateUnknownBrand(t *testing.T) {
	client := newTestPostgresClient(t)
	defer client.Close()
	cleanTables(t, client)

	adapter := database.NewBrandAdapter(client)

	brand := testBrand("Ghost", "ghost")
	err := adapter.Update(context.Background(), brand)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
