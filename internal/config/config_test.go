package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LIBRA_PORT", "NATS_URL", "NATS_TOKEN", "LOG_LEVEL",
		"OPENAI_API_KEY", "LIBRA_TAGLINE_MODEL", "LIBRA_API_TOKEN",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, 8760, cfg.Port)
	assert.Empty(t, cfg.NatsURL)
	assert.Empty(t, cfg.NatsToken)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.TaglineModel)
	assert.Empty(t, cfg.APIToken)
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("LIBRA_PORT", "9999")
	t.Setenv("NATS_URL", "nats://custom:4222")
	t.Setenv("NATS_TOKEN", "s3cr3t-token")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OPENAI_API_KEY", "sk-test-key")
	t.Setenv("LIBRA_TAGLINE_MODEL", "gpt-4o")
	t.Setenv("LIBRA_API_TOKEN", "libra-secret-token")

	cfg := Load()

	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "nats://custom:4222", cfg.NatsURL)
	assert.Equal(t, "s3cr3t-token", cfg.NatsToken)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "sk-test-key", cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-4o", cfg.TaglineModel)
	assert.Equal(t, "libra-secret-token", cfg.APIToken)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("LIBRA_PORT", "notanumber")

	cfg := Load()

	assert.Equal(t, 8760, cfg.Port)
}
