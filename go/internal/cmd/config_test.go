package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	for _, key := range []string{"PORT", "MATCH_PAGE_SIZE", "STATS_BATCH_SIZE", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	clearConfigEnv(t)

	config, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 100, config.Query.MatchPageSize)
	assert.Equal(t, 500, config.Query.StatsBatchSize)
	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, []string{"*"}, config.Server.AllowedOrigins)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	clearConfigEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
query:
  match_page_size: 25
server:
  port: "9000"
  allowed_origins:
    - https://club.example
`), 0o600))
	t.Setenv("STATS_BATCH_SIZE", "50")

	config, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 25, config.Query.MatchPageSize)
	assert.Equal(t, 50, config.Query.StatsBatchSize)
	assert.Equal(t, "9000", config.Server.Port)
	assert.Equal(t, []string{"https://club.example"}, config.Server.AllowedOrigins)
}

func TestLoadConfig_Invalid(t *testing.T) {
	clearConfigEnv(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("query: [unterminated"), 0o600))
	_, err := loadConfig(bad)
	assert.Error(t, err)

	zero := filepath.Join(dir, "zero.yaml")
	require.NoError(t, os.WriteFile(zero, []byte("query:\n  match_page_size: -1\n"), 0o600))
	_, err = loadConfig(zero)
	assert.Error(t, err)
}
