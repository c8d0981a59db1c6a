package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	content := `
server:
  addr: ":9090"
feed:
  url: "https://partner.example.com/feed.xml"
  proxy_url: "https://partner.example.com/feed?key={key}"
  fetch_timeout_seconds: 10
  startup_tries: 3
postgres:
  host: "db"
  port: "5432"
  user: "catalog"
  password: "secret"
  dbname: "b2b_db"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "https://partner.example.com/feed.xml", cfg.Feed.URL)
	assert.Equal(t, 10*time.Second, cfg.Feed.FetchTimeout())
	assert.Equal(t, 3, cfg.Feed.StartupTries)
	// Непрописанные значения добираются дефолтами.
	assert.Equal(t, 2*time.Second, cfg.Feed.StartupDelay())
	assert.Equal(t, float64(1), cfg.Feed.RatePerSecond)
	assert.Equal(t, "host=db port=5432 user=catalog password=secret dbname=b2b_db sslmode=disable",
		cfg.Postgres.GetConnectionString())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
