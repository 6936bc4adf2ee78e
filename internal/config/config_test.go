package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-catalog/internal/config"
)

const testYAML = `
app:
  addr: ":7070"
log:
  format: text
  level: debug
storage:
  driver: redis
redis:
  addr: "redis:6379"
  db: 2
`

func TestLoad_FromFileWithDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config_test.yaml"), []byte(testYAML), 0o600))
	t.Setenv("APP_ENV", "test")

	cfg, err := config.Load(config.LoadOptions{ConfigPath: dir, EnvPrefix: "SCG"})
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.App.Env)
	assert.Equal(t, ":7070", cfg.App.Addr)
	assert.EqualValues(t, 10<<20, cfg.App.MaxUploadBytes)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, config.DriverRedis, cfg.Storage.Driver)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "scg:documents:", cfg.Redis.KeyPrefix)
}

func TestLoad_EnvOverridesWithoutFile(t *testing.T) {
	t.Setenv("APP_ENV", "missing")
	t.Setenv("SCG_APP_ADDR", ":9999")
	t.Setenv("SCG_LOG_LEVEL", "warn")

	cfg, err := config.Load(config.LoadOptions{ConfigPath: t.TempDir(), EnvPrefix: "SCG", AllowNoConfig: true})
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.App.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, config.DriverMemory, cfg.Storage.Driver)
}

func TestLoad_MissingFileIsErrorUnlessAllowed(t *testing.T) {
	t.Setenv("APP_ENV", "missing")

	_, err := config.Load(config.LoadOptions{ConfigPath: t.TempDir()})
	assert.Error(t, err)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "custom.env")
	require.NoError(t, os.WriteFile(envFile, []byte("SCG_STORAGE_DRIVER=redis\n"), 0o600))
	t.Setenv("ENV_FILE", envFile)
	t.Setenv("APP_ENV", "missing")
	t.Cleanup(func() { _ = os.Unsetenv("SCG_STORAGE_DRIVER") })

	cfg, err := config.Load(config.LoadOptions{ConfigPath: dir, EnvPrefix: "SCG", AllowNoConfig: true})
	require.NoError(t, err)
	assert.Equal(t, config.DriverRedis, cfg.Storage.Driver)
}

func TestEnv_Default(t *testing.T) {
	t.Setenv("APP_ENV", "")
	assert.Equal(t, "dev", config.Env())
}
