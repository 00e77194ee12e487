package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("")

	assert.Equal(t, "tripstats", cfg.App.Name)
	assert.Equal(t, "test", cfg.App.Environment)
	assert.Equal(t, 9995, cfg.Server.Port)
	assert.Equal(t, "pgx", cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "tripstats", cfg.NATS.QueueGroup)
	assert.Equal(t, 10*time.Minute, cfg.Summary.CacheTTL)
	assert.Equal(t, 500, cfg.Summary.InsertBatch)
	assert.Equal(t, 1, cfg.Summary.RetryAttempts)
	assert.Equal(t, 200*time.Millisecond, cfg.Summary.RetryBaseDelay)
	assert.Equal(t, 180, cfg.Quality.MaxDurationMinutes)
	assert.Equal(t, 1000, cfg.Loader.BatchSize)
}

func TestInitConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("SUMMARY_CACHE_TTL", "90s")
	t.Setenv("QUALITY_MAX_DURATION_MINUTES", "240")
	t.Setenv("SCHEDULER_API_KEY", "sched-key")

	cfg := InitConfig("")

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, 90*time.Second, cfg.Summary.CacheTTL)
	assert.Equal(t, 240, cfg.Quality.MaxDurationMinutes)
	assert.Equal(t, "sched-key", cfg.APIKey.Scheduler)
}

func TestInitConfig_LoadsEnvFileLocally(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tripstats.env")
	require.NoError(t, os.WriteFile(path, []byte("REDIS_HOST=cache.local\nLOG_LEVEL=debug\n"), 0o600))

	t.Setenv("APP_ENV", "local")
	// godotenv never overrides variables that are already set, so start from a clean slate.
	t.Setenv("REDIS_HOST", "")
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("REDIS_HOST")
	os.Unsetenv("LOG_LEVEL")
	t.Cleanup(func() {
		os.Unsetenv("REDIS_HOST")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg := InitConfig(path)

	assert.Equal(t, "cache.local", cfg.Redis.Host)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestInitConfigWithFlags(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_HOST", "db.env")
	t.Setenv("LOG_LEVEL", "warn")

	flags := pflag.NewFlagSet("tripctl", pflag.ContinueOnError)
	flags.String("db-host", "", "")
	flags.String("log-level", "", "")
	flags.Int("loader-batch-size", 0, "")
	require.NoError(t, flags.Parse([]string{"--db-host=db.flag", "--loader-batch-size=50"}))

	cfg, err := InitConfigWithFlags("", flags)

	require.NoError(t, err)
	assert.Equal(t, "db.flag", cfg.Database.Host)
	assert.Equal(t, 50, cfg.Loader.BatchSize)
	// unset flags keep the environment value
	assert.Equal(t, "warn", cfg.Logger.Level)
}
