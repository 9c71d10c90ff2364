//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRestConfig = `
port: "9090"
database:
  type: sqlite
  dsn: ":memory:"
logger:
  log_level: debug
  log_type: console
rate_limit:
  max_requests: 5
  window: 1m
news:
  api:
    base_url: https://newsapi.org/v2
    api_key: test-key
  categories:
    - name: energia
      query: tarifas luz
price_indicator:
  base_url: https://api.esios.ree.es
speed_indicator:
  base_url: https://speed.example.com
security_api:
  base_url: https://security.example.com
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig(t *testing.T) {
	cfg, err := InitializeRestConfig(writeConfig(t, testRestConfig))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "trifasicko-rest-api", cfg.Logger.Service())
	assert.Equal(t, 5, cfg.RateLimit.MaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, time.Hour, cfg.RateLimit.BlockDuration)
	assert.Equal(t, RateLimitStoreMemory, cfg.RateLimit.Store)
	assert.Equal(t, 10*time.Second, cfg.PriceIndicator.Timeout)
	assert.Equal(t, "es", cfg.News.Language)
	require.Len(t, cfg.News.Categories, 1)
	assert.Equal(t, "energia", cfg.News.Categories[0].Name)
	assert.Equal(t, LocalStorageProvider, cfg.AvatarStorage.CloudProvider)
}

func TestInitializeRestConfig_EnvOverride(t *testing.T) {
	t.Setenv("TRIFASICKO_PORT", "7070")

	cfg, err := InitializeRestConfig(writeConfig(t, testRestConfig))
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
}

func TestInitializeRestConfig_MissingFile(t *testing.T) {
	_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestInitializeRestConfig_InvalidSection(t *testing.T) {
	_, err := InitializeRestConfig(writeConfig(t, `
database:
  type: mysql
`))
	require.Error(t, err)
}
