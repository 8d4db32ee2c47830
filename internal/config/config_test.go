package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Praveen-pk-pro/Portfolio-pk/internal/content"
	"github.com/Praveen-pk-pro/Portfolio-pk/internal/sphere"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "GIN_MODE", "LOG_LEVEL", "DATABASE_PATH", "ADMIN_USERNAME", "ADMIN_PASSWORD", "CONTENT_FILE", "SPHERE_FILE", "SPHERE_FPS"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "portfolio.db", cfg.DatabasePath)
	assert.Equal(t, 60, cfg.SphereFPS)
	assert.True(t, cfg.UsesDefaultAdmin())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SPHERE_FPS", "30")
	t.Setenv("ADMIN_PASSWORD", "s3cret")

	cfg := FromEnv()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 30, cfg.SphereFPS)
	assert.False(t, cfg.UsesDefaultAdmin())

	t.Setenv("SPHERE_FPS", "fast")
	assert.Equal(t, 60, FromEnv().SphereFPS)
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadSphere(t *testing.T) {
	cfg, err := LoadSphere("")
	require.NoError(t, err)
	assert.Equal(t, sphere.DefaultViewConfig(), cfg)

	path := writeFile(t, "sphere.yaml", `
hover_scale: 1.3
friction: 0.08
breakpoints:
  - max_width: 700
    radius: 120
default_radius: 200
`)
	cfg, err = LoadSphere(path)
	require.NoError(t, err)
	assert.Equal(t, 1.3, cfg.HoverScale)
	assert.Equal(t, 0.08, cfg.Friction)
	assert.Equal(t, 400.0, cfg.PerspectiveDistance)
	assert.Equal(t, 120.0, cfg.RadiusForWidth(500))
	assert.Equal(t, 200.0, cfg.RadiusForWidth(800))
}

func TestLoadSphere_Invalid(t *testing.T) {
	path := writeFile(t, "sphere.yaml", "default_radius: 500\n")
	_, err := LoadSphere(path)
	assert.ErrorIs(t, err, sphere.ErrInvalidConfig)

	_, err = LoadSphere(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadContent(t *testing.T) {
	site, err := LoadContent("")
	require.NoError(t, err)
	assert.Equal(t, content.Default(), site)

	path := writeFile(t, "content.yaml", "profile:\n  name: Someone Else\n")
	site, err = LoadContent(path)
	require.NoError(t, err)
	assert.Equal(t, "Someone Else", site.Profile.Name)

	path = writeFile(t, "bad.yaml", "tech_icons: []\n")
	_, err = LoadContent(path)
	assert.ErrorIs(t, err, content.ErrInvalidContent)
}
