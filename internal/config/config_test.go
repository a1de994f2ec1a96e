package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yaml := `
app:
  port: "9000"
redis:
  addr: "cache:6379"
  ttl: 10m
kafka:
  brokers: ["k1:9092", "k2:9092"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PROFILE_API_URL", "http://api.internal")
	t.Setenv("PROFILE_API_TIMEOUT", "45s")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenLifespan)
	assert.Equal(t, int64(5<<20), cfg.Avatar.MaxBytes)
	assert.Equal(t, "http://api.internal", cfg.Client.APIURL)
	assert.Equal(t, 45*time.Second, cfg.Client.Timeout)
}

func TestLoadConfig_EnvOnly(t *testing.T) {
	t.Setenv("APP_PORT", "7070")
	t.Setenv("DB_DSN", "postgres://u:p@db/profiles")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.App.Port)
	assert.Equal(t, "postgres://u:p@db/profiles", cfg.DB.DSN)
	assert.Zero(t, cfg.Client.Timeout)
}
