package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 9090,
		"database_url": "postgres://localhost/resumes",
		"model": "gemini-2.5-flash",
		"allowed_origins": ["https://app.example.com"],
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/resumes", cfg.DatabaseURL)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.AllowedOrigins)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_PortOutOfRange(t *testing.T) {
	cfg := &Config{Port: 70000}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{AITimeoutSecs: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ai_timeout_secs")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Port:           8080,
		AITimeoutSecs:  30,
		MaxSuggestions: 5,
	}

	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Port:          8080,
		DatabaseURL:   "postgres://localhost/default",
		Model:         "gemini-2.5-flash",
		AITimeoutSecs: 30,
	}

	partial := Config{
		DatabaseURL: "postgres://localhost/custom",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "postgres://localhost/custom", merged.DatabaseURL)

	// Default values should fill in empty fields
	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, "gemini-2.5-flash", merged.Model)
	assert.Equal(t, 30, merged.AITimeoutSecs)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Port:   3000,
		APIKey: "test-key",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, 3000, merged.Port)
	assert.Equal(t, "test-key", merged.APIKey)
}
