package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "DB_DRIVER", "EVENT_BUS", "OTEL_ENABLED", "IDENTITY_SERVICE_URL"} {
		t.Setenv(key, "")
	}
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("OTEL_ENABLED", "not-a-bool")

	cfg := Load()

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "", cfg.Identity.ServiceURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("EVENT_BUS", "nats")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "nats", cfg.Events.Bus)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "s3cret", cfg.Auth.JwtSecret)
}
