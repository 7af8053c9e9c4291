package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")

	assert.Equal(t, "combined", cfg.Label.QRPayloadMode)
	assert.Equal(t, 2, cfg.Label.DefaultCopies)
	assert.Equal(t, "LABELFORGE", cfg.Label.BrandCaption)

	assert.False(t, cfg.Auth.Enabled)
	assert.Empty(t, cfg.Auth.APIKeys)
	assert.Empty(t, cfg.Auth.JWTSecretKey)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "label_service", cfg.Database.DatabaseName)
	assert.Equal(t, 30*24*time.Hour, cfg.Database.LogsTTL)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, 5, cfg.Database.CircuitBreakerFailureThreshold)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT", "50")
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("LABEL_QR_PAYLOAD", "barcode")
	t.Setenv("LABEL_DEFAULT_COPIES", "4")
	t.Setenv("LABEL_BRAND_CAPTION", "ACME")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("API_KEYS", "key-1, key-2")
	t.Setenv("API_KEY_HASHES", "$2a$10$abc, $2a$10$def")
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("MONGODB_DATABASE", "labels_test")
	t.Setenv("MONGODB_ENABLED", "true")
	t.Setenv("CORS_ORIGINS", "https://app.example.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 50, cfg.Server.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
	assert.Contains(t, cfg.Server.CORSOrigins, "https://app.example.com")

	assert.Equal(t, "barcode", cfg.Label.QRPayloadMode)
	assert.Equal(t, 4, cfg.Label.DefaultCopies)
	assert.Equal(t, "ACME", cfg.Label.BrandCaption)

	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, map[string]bool{"key-1": true, "key-2": true}, cfg.Auth.APIKeys)
	assert.Equal(t, []string{"$2a$10$abc", "$2a$10$def"}, cfg.Auth.HashedAPIKeys)
	assert.Equal(t, "secret", cfg.Auth.JWTSecretKey)

	assert.Equal(t, "mongodb://db:27017", cfg.Database.URI)
	assert.Equal(t, "labels_test", cfg.Database.DatabaseName)
	assert.True(t, cfg.Database.Enabled)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT", "not-a-number")
	t.Setenv("RATE_WINDOW", "not-a-duration")
	t.Setenv("AUTH_ENABLED", "not-a-bool")

	cfg := Load()

	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.False(t, cfg.Auth.Enabled)
}

func TestParseAPIKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]bool
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "single key",
			input:    "key-1",
			expected: map[string]bool{"key-1": true},
		},
		{
			name:     "multiple keys with whitespace",
			input:    " key-1 , key-2 ",
			expected: map[string]bool{"key-1": true, "key-2": true},
		},
		{
			name:     "empty segments are dropped",
			input:    "key-1,,key-2,",
			expected: map[string]bool{"key-1": true, "key-2": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseAPIKeys(tt.input))
		})
	}
}

func TestParseStringSlice(t *testing.T) {
	assert.Nil(t, parseStringSlice(""))
	assert.Equal(t, []string{"a", "b"}, parseStringSlice("a, b"))
	assert.Equal(t, []string{"a"}, parseStringSlice("a,,"))
}
