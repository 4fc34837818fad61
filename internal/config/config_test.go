package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(DefaultConfigPath)
	require.NoError(t, err)

	assert.Equal(t, 2323, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDev())
	assert.Contains(t, cfg.DSN, "parseTime=true")
	assert.NotEmpty(t, cfg.SiteURL)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 8080
env: production
site_url: https://blog.example.com/
database:
  host: db.internal
  name: blog
  user: writer
  password: hunter2
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.IsDev())
	// trailing slash is trimmed so URL joins stay predictable
	assert.Equal(t, "https://blog.example.com", cfg.SiteURL)
	assert.Contains(t, cfg.DSN, "writer:hunter2@tcp(db.internal:3306)/blog")
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestExplicitDSNWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dsn: "root@tcp(localhost:3306)/custom?parseTime=true"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "root@tcp(localhost:3306)/custom?parseTime=true", cfg.DSN)
}
