package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWritesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screenterm", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	_, err = os.Stat(path)
	assert.NoError(t, err, "default config file should have been written")
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"api_base_url: http://localhost:5000\n"+
			"timeout_seconds: 5\n"+
			"default_language: hindi\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "hindi", cfg.DefaultLanguage)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_language: tam\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Default().APIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, Default().Timeout, cfg.Timeout)
	assert.Equal(t, "tam", cfg.DefaultLanguage)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"api_base_url: http://file.example\ndefault_language: eng\n"), 0o644))

	t.Setenv("SCREENTERM_API_BASE_URL", "http://env.example")
	t.Setenv("SCREENTERM_TIMEOUT_SECONDS", "7")
	t.Setenv("SCREENTERM_LANG", "mal")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://env.example", cfg.APIBaseURL)
	assert.Equal(t, 7*time.Second, cfg.Timeout)
	assert.Equal(t, "mal", cfg.DefaultLanguage)
}

func TestValidate(t *testing.T) {
	t.Run("unsupported language rejected", func(t *testing.T) {
		cfg := Default()
		cfg.DefaultLanguage = "xx"
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty base url rejected", func(t *testing.T) {
		cfg := Default()
		cfg.APIBaseURL = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("api_base_url: [broken\n"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}
