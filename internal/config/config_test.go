package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"go duration", "250ms", 250 * time.Millisecond},
		{"bare milliseconds", "1500", 1500 * time.Millisecond},
		{"zero disables", "0", 0},
		{"garbage falls back", "soon", time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DELAY", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DELAY", time.Second))
		})
	}

	assert.Equal(t, time.Second, getEnvAsDuration("TEST_DELAY_UNSET", time.Second))
}

func TestGetEnvAsSize(t *testing.T) {
	t.Setenv("TEST_SIZE", "50MB")
	assert.Equal(t, int64(50<<20), getEnvAsSize("TEST_SIZE", 1))

	t.Setenv("TEST_SIZE", "lots")
	assert.Equal(t, int64(1), getEnvAsSize("TEST_SIZE", 1))

	assert.Equal(t, int64(7), getEnvAsSize("TEST_SIZE_UNSET", 7))
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("TOKEN_STORE", "Redis")

	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "redis", cfg.Storage.TokenStore)
	assert.Equal(t, "docintel_token", cfg.Auth.TokenKey)
	assert.Equal(t, int64(50<<20), cfg.Storage.MaxUploadSize)
}
