package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_EmailConfig(t *testing.T) {
	os.Setenv("EMAIL_API_URL", "https://email.test.local")
	os.Setenv("EMAIL_API_KEY", "test-key")
	defer func() {
		os.Unsetenv("EMAIL_API_URL")
		os.Unsetenv("EMAIL_API_KEY")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "https://email.test.local", cfg.Email.BaseURL)
	assert.Equal(t, "test-key", cfg.Email.APIKey)
}

func TestLoad_SearchConfig(t *testing.T) {
	os.Setenv("SEARCH_THRESHOLD", "0.5")
	os.Setenv("SEARCH_MAX_RESULTS", "25")
	defer func() {
		os.Unsetenv("SEARCH_THRESHOLD")
		os.Unsetenv("SEARCH_MAX_RESULTS")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Search.Threshold)
	assert.Equal(t, 25, cfg.Search.MaxResults)
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("SEARCH_THRESHOLD")
	os.Unsetenv("SEARCH_MAX_RESULTS")
	os.Unsetenv("DB_NAME")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, 0.3, cfg.Search.Threshold)
	assert.Equal(t, 50, cfg.Search.MaxResults)
	assert.Equal(t, "franchise_marketplace", cfg.Database.Database)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "db", Port: 5432, User: "app", Password: "secret",
		Database: "franchise_marketplace", SSLMode: "disable",
	}

	assert.Equal(t,
		"host=db port=5432 user=app password=secret dbname=franchise_marketplace sslmode=disable",
		cfg.DatabaseDSN(),
	)
}
