package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTenantKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{
			name:     "empty input returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "single entry",
			input:    "tenant1:key-abc",
			expected: map[string]string{"tenant1": "key-abc"},
		},
		{
			name:  "multiple entries with whitespace",
			input: " tenant1:key-abc , tenant2:key-def ",
			expected: map[string]string{
				"tenant1": "key-abc",
				"tenant2": "key-def",
			},
		},
		{
			name:     "malformed entries are skipped",
			input:    "tenant1:key-abc,notakeypair,:empty-tenant,tenant3:",
			expected: map[string]string{"tenant1": "key-abc"},
		},
		{
			name:     "only malformed entries returns nil",
			input:    "nope,also-nope",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseTenantKeys(tt.input))
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "translation_service", cfg.Database.DatabaseName)
	assert.Equal(t, 5, cfg.Database.CircuitBreakerFailureThreshold)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT", "41")
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("API_KEYS", "acme:secret-1,globex:secret-2")
	t.Setenv("MONGODB_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 41, cfg.Server.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
	assert.Equal(t, map[string]string{"acme": "secret-1", "globex": "secret-2"}, cfg.Auth.APIKeys)
	assert.True(t, cfg.Database.Enabled)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_INT", "not-a-number")
	assert.Equal(t, 7, getEnvInt("TEST_INT", 7))

	t.Setenv("TEST_BOOL", "maybe")
	assert.True(t, getEnvBool("TEST_BOOL", true))

	t.Setenv("TEST_DURATION", "bogus")
	assert.Equal(t, time.Minute, getEnvDuration("TEST_DURATION", time.Minute))
}

func TestParseCORSOrigins(t *testing.T) {
	origins := parseCORSOrigins("https://app.example.com")
	assert.Contains(t, origins, "http://localhost:3000")
	assert.Contains(t, origins, "https://app.example.com")
}
