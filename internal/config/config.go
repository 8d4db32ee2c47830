// Package config reads the server configuration from the environment and
// the optional YAML files it points at.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Praveen-pk-pro/Portfolio-pk/internal/content"
	"github.com/Praveen-pk-pro/Portfolio-pk/internal/sphere"
)

// Config holds all environment-driven settings.
type Config struct {
	Port          string
	Mode          string
	LogLevel      string
	DatabasePath  string
	AdminUsername string
	AdminPassword string
	ContentFile   string
	SphereFile    string
	SphereFPS     int
}

// FromEnv reads the configuration with development defaults for anything unset.
func FromEnv() Config {
	return Config{
		Port:          getenv("PORT", "8080"),
		Mode:          getenv("GIN_MODE", "debug"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		DatabasePath:  getenv("DATABASE_PATH", "portfolio.db"),
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		ContentFile:   os.Getenv("CONTENT_FILE"),
		SphereFile:    os.Getenv("SPHERE_FILE"),
		SphereFPS:     getenvInt("SPHERE_FPS", 60),
	}
}

// UsesDefaultAdmin reports whether the admin credentials are the built-in
// development ones.
func (c Config) UsesDefaultAdmin() bool {
	return c.AdminUsername == "admin" && c.AdminPassword == "admin123"
}

// LoadSphere returns the default sphere tuning overlaid with path, if set.
func LoadSphere(path string) (sphere.ViewConfig, error) {
	cfg := sphere.DefaultViewConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return sphere.ViewConfig{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return sphere.ViewConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return sphere.ViewConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadContent returns the default content overlaid with path, if set.
func LoadContent(path string) (content.Site, error) {
	if path == "" {
		return content.Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return content.Site{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	site, err := content.LoadYAML(f, content.Default())
	if err != nil {
		return content.Site{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return site, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
