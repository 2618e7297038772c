package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "content", cfg.Content.Dir)
	assert.Equal(t, "zones.yaml", cfg.Content.ZoneConfig)
	assert.Equal(t, 2, cfg.Display.MinimapDistance)
	assert.Equal(t, "settings.json", cfg.Display.SettingsFile)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	data := `
content:
  dir: /srv/rooms
display:
  minimap_distance: 4
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/rooms", cfg.Content.Dir)
	assert.Equal(t, "zones.yaml", cfg.Content.ZoneConfig, "unset keys keep defaults")
	assert.Equal(t, 4, cfg.Display.MinimapDistance)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/game.yaml")
	assert.Error(t, err)
}

func TestValidate_BadLevel(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Logging.Level = "loud"
	assert.ErrorContains(t, cfg.Validate(), "logging.level")
}

func TestValidate_BadFormat(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Logging.Format = "xml"
	assert.ErrorContains(t, cfg.Validate(), "logging.format")
}

func TestValidate_NegativeMinimapDistance(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Display.MinimapDistance = -1
	assert.ErrorContains(t, cfg.Validate(), "minimap_distance")
}

func TestValidate_EmptyContentDir(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Content.Dir = ""
	assert.ErrorContains(t, cfg.Validate(), "content.dir")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MUDDY_LOGGING_LEVEL", "warn")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}
