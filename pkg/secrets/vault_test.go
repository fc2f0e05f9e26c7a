package secrets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHydrateEnv_Disabled(t *testing.T) {
	result, err := HydrateEnv(context.Background(), VaultOptions{Enabled: false})
	require.NoError(t, err)
	assert.False(t, result.Enabled)
	assert.Zero(t, result.Loaded)
}

func TestHydrateEnv_IncompleteConfig(t *testing.T) {
	_, err := HydrateEnv(context.Background(), VaultOptions{Enabled: true})
	assert.Error(t, err)
}

func TestHydrateEnv_LoadsKVv2Secret(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/secret/data/franchise/api", r.URL.Path)
		assert.Equal(t, "test-token", r.Header.Get("X-Vault-Token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"data":{"TEST_VAULT_DB_PASSWORD":"hunter2","TEST_VAULT_PORT":5432}}}`))
	}))
	defer server.Close()

	t.Setenv("TEST_VAULT_DB_PASSWORD", "")
	t.Setenv("TEST_VAULT_PORT", "")

	result, err := HydrateEnv(context.Background(), VaultOptions{
		Enabled:   true,
		Addr:      server.URL,
		Token:     "test-token",
		Mount:     "secret",
		Path:      "franchise/api",
		KVVersion: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Loaded)
	assert.Equal(t, "hunter2", os.Getenv("TEST_VAULT_DB_PASSWORD"))
	assert.Equal(t, "5432", os.Getenv("TEST_VAULT_PORT"))
}

func TestHydrateEnv_ExistingValuesWin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"data":{"TEST_VAULT_KEEP":"from-vault"}}}`))
	}))
	defer server.Close()

	t.Setenv("TEST_VAULT_KEEP", "from-env")

	result, err := HydrateEnv(context.Background(), VaultOptions{
		Enabled:   true,
		Addr:      server.URL,
		Token:     "test-token",
		Mount:     "secret",
		Path:      "franchise/api",
		KVVersion: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, "from-env", os.Getenv("TEST_VAULT_KEEP"))
}
