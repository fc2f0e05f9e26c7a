// Package secrets hydrates the process environment from a HashiCorp
// Vault KV store before configuration is read. Deployments that keep
// DB_PASSWORD, REDIS_PASSWORD, or EMAIL_API_KEY in Vault set
// VAULT_ENABLED=true and the usual VAULT_* variables; everything else
// continues to read plain environment variables.
package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// VaultOptions describes how to reach the KV secret that backs the
// environment.
type VaultOptions struct {
	Enabled   bool
	Addr      string
	Token     string
	Namespace string
	Mount     string
	Path      string
	KVVersion int
	Timeout   time.Duration
	Overwrite bool
}

// HydrateResult reports what a hydration run did.
type HydrateResult struct {
	Enabled bool
	Path    string
	Loaded  int
	Skipped int
}

// OptionsFromEnv assembles VaultOptions from VAULT_* environment
// variables. Hydration is off unless VAULT_ENABLED=true.
func OptionsFromEnv() VaultOptions {
	mount := os.Getenv("VAULT_MOUNT")
	if mount == "" {
		mount = "secret"
	}

	kvVersion := 2
	if raw := os.Getenv("VAULT_KV_VERSION"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			kvVersion = v
		}
	}

	timeout := 5 * time.Second
	if raw := os.Getenv("VAULT_TIMEOUT_MS"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			timeout = time.Duration(v) * time.Millisecond
		}
	}

	return VaultOptions{
		Enabled:   strings.EqualFold(os.Getenv("VAULT_ENABLED"), "true"),
		Addr:      os.Getenv("VAULT_ADDR"),
		Token:     os.Getenv("VAULT_TOKEN"),
		Namespace: os.Getenv("VAULT_NAMESPACE"),
		Mount:     mount,
		Path:      os.Getenv("VAULT_PATH"),
		KVVersion: kvVersion,
		Timeout:   timeout,
		Overwrite: strings.EqualFold(os.Getenv("VAULT_OVERWRITE"), "true"),
	}
}

// HydrateEnv fetches the configured KV secret and exports each key as
// an environment variable. Existing variables win unless Overwrite is
// set.
func HydrateEnv(ctx context.Context, opts VaultOptions) (HydrateResult, error) {
	result := HydrateResult{Enabled: opts.Enabled, Path: opts.Path}
	if !opts.Enabled {
		return result, nil
	}
	if opts.Addr == "" || opts.Token == "" || opts.Path == "" {
		return result, errors.New("vault configuration incomplete (VAULT_ADDR, VAULT_TOKEN, VAULT_PATH)")
	}

	url, err := secretURL(opts)
	if err != nil {
		return result, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return result, err
	}
	req.Header.Set("X-Vault-Token", opts.Token)
	if opts.Namespace != "" {
		req.Header.Set("X-Vault-Namespace", opts.Namespace)
	}

	client := &http.Client{Timeout: opts.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return result, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return result, fmt.Errorf("vault fetch failed: %s %s", resp.Status, strings.TrimSpace(string(body)))
	}

	data, err := secretData(body, opts.KVVersion)
	if err != nil {
		return result, err
	}

	for key, value := range data {
		if !opts.Overwrite && os.Getenv(key) != "" {
			result.Skipped++
			continue
		}
		if err := os.Setenv(key, stringify(value)); err != nil {
			return result, err
		}
		result.Loaded++
	}

	return result, nil
}

func secretURL(opts VaultOptions) (string, error) {
	addr := strings.TrimRight(opts.Addr, "/")
	mount := strings.Trim(opts.Mount, "/")
	path := strings.TrimLeft(opts.Path, "/")
	if addr == "" || mount == "" || path == "" {
		return "", errors.New("vault address, mount, and path must be set")
	}
	if opts.KVVersion == 1 {
		return fmt.Sprintf("%s/v1/%s/%s", addr, mount, path), nil
	}
	return fmt.Sprintf("%s/v1/%s/data/%s", addr, mount, path), nil
}

// secretData unwraps the KV payload. KV v2 nests the secret one level
// deeper than v1.
func secretData(body []byte, kvVersion int) (map[string]interface{}, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	data, ok := payload["data"].(map[string]interface{})
	if !ok {
		return nil, errors.New("vault response missing data")
	}
	if kvVersion == 1 {
		return data, nil
	}
	if inner, ok := data["data"].(map[string]interface{}); ok {
		return inner, nil
	}
	return nil, errors.New("vault response missing data for KV v2")
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}
