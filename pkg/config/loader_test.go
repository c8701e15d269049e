package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_ExpandEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
port: "8080"
grpc_port: "9090"
catalog_source: static
storage: memory
session_ttl: 30m
save_debounce: 300ms
gemini:
  api_key: ${TEST_GEMINI_KEY}
  fast_model: gemini-3-flash-preview
redis:
  redis_db: 2
`
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "gamerflow_test.yaml"), []byte(yaml), 0644))
	t.Setenv("TEST_GEMINI_KEY", "secret-key")

	cfg := LoadConfig[GamerFlow]("gamerflow_test", dir)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "9090", cfg.GRPCPort)
	assert.Equal(t, "memory", cfg.Storage)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 300*time.Millisecond, cfg.SaveDebounce)
	assert.Equal(t, "secret-key", cfg.Gemini.APIKey)
	assert.Equal(t, 2, cfg.Redis.RedisDB)
}

func TestGetRedisSetting(t *testing.T) {
	t.Setenv("REDIS_SENTINEL1_IP", "10.0.0.1")
	t.Setenv("REDIS_SENTINEL1_PORT", "26379")
	t.Setenv("REDIS_MASTER_NAME", "")

	master, addrs := GetRedisSetting()
	assert.Equal(t, "mymaster", master)
	assert.Contains(t, addrs, "10.0.0.1:26379")
}

func TestGetPath_NotFound(t *testing.T) {
	_, err := GetPath("definitely-missing.file", 2)
	assert.Error(t, err)
}
