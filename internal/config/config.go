// Package config resolves the client configuration: a YAML file under
// the user's config directory, overridden by environment variables,
// overridden in turn by command-line flags (applied by cmd).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/giftolexia/screenterm/internal/langs"
)

const defaultConfigYAML = `# screenterm configuration
# Base URL of the screening service (question bank + scoring).
api_base_url: https://api.giftolexia.com

# HTTP timeout for fetch and submit, in seconds.
timeout_seconds: 30

# Language preselected on the contact form. Run "screenterm langs" for codes.
default_language: eng
`

// fileConfig models the YAML file.
type fileConfig struct {
	APIBaseURL      string `yaml:"api_base_url"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	DefaultLanguage string `yaml:"default_language"`
}

// Config is the resolved runtime configuration.
type Config struct {
	APIBaseURL      string
	Timeout         time.Duration
	DefaultLanguage string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIBaseURL:      "https://api.giftolexia.com",
		Timeout:         30 * time.Second,
		DefaultLanguage: langs.Default,
	}
}

// DefaultPath returns the standard config file location,
// $XDG_CONFIG_HOME/screenterm/config.yaml or the OS equivalent.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "screenterm", "config.yaml"), nil
}

// Load resolves configuration from the file at path (written with
// defaults if absent) and then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if err := ensureFile(path); err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.APIBaseURL != "" {
		cfg.APIBaseURL = fc.APIBaseURL
	}
	if fc.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(fc.TimeoutSeconds) * time.Second
	}
	if fc.DefaultLanguage != "" {
		cfg.DefaultLanguage = fc.DefaultLanguage
	}

	applyEnv(&cfg)
	return cfg, cfg.Validate()
}

// applyEnv overlays SCREENTERM_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SCREENTERM_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("SCREENTERM_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("SCREENTERM_LANG"); v != "" {
		cfg.DefaultLanguage = v
	}
}

// Validate rejects configurations the wizard cannot run with.
func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("api_base_url must not be empty")
	}
	if !langs.IsSupported(c.DefaultLanguage) {
		return fmt.Errorf("unsupported default language %q", c.DefaultLanguage)
	}
	return nil
}

// ensureFile writes the default config when none exists yet.
func ensureFile(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}
