package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/v1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, 15, cfg.API.TimeoutSeconds)
	assert.False(t, cfg.IsProduction())
	assert.NotEmpty(t, cfg.Session.Secret)
}

func TestLoadRequiresBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadProductionRequiresSessionSecret(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/v1")
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestCORSOriginsParsed(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/v1")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
}
