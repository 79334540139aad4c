package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	// no config.yaml exists in the package directory
	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "data/email_analysis.json", cfg.Data.File)
	assert.Equal(t, "analyzer/email_analysis.json", cfg.Data.LegacyFile)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Empty(t, cfg.OpenAI.APIKey)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("DATA_FILE", "/tmp/analysis.json")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, "/tmp/analysis.json", cfg.Data.File)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestInvalidRedisDBEnvIgnored(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()

	assert.Equal(t, 0, cfg.Redis.DB)
}
