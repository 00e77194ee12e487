package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/piresc/tripstats/internal/pkg/models"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// InitConfig loads configPath into the environment when running locally and
// builds the application config from environment variables.
func InitConfig(configPath string) *models.Config {
	v := newViper()
	loadEnvFile(v, configPath)
	return loadConfig(v)
}

// InitConfigWithFlags is InitConfig with command-line overrides. A flag named
// "db-host" overrides DB_HOST; unset flags leave the environment value in place.
func InitConfigWithFlags(configPath string, flags *pflag.FlagSet) (*models.Config, error) {
	v := newViper()
	loadEnvFile(v, configPath)

	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return nil, bindErr
	}
	return loadConfig(v), nil
}

func loadEnvFile(v *viper.Viper, configPath string) {
	if v.GetString("APP_ENV") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "tripstats")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "development")

	v.SetDefault("SERVER_PORT", 9995)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 60)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_DATABASE", "tripstats")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NATS_URL", "nats://localhost:4222")
	v.SetDefault("NATS_QUEUE_GROUP", "tripstats")

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("SUMMARY_CACHE_TTL", "10m")
	v.SetDefault("SUMMARY_ADVISORY_LOCK_ID", 7_401_001)
	v.SetDefault("SUMMARY_INSERT_BATCH", 500)
	v.SetDefault("SUMMARY_REFRESH_TIMEOUT", "5m")
	v.SetDefault("SUMMARY_RETRY_ATTEMPTS", 1)
	v.SetDefault("SUMMARY_RETRY_BASE_DELAY", "200ms")
	v.SetDefault("SUMMARY_CACHE_BREAKER_THRESHOLD", 5)
	v.SetDefault("SUMMARY_CACHE_BREAKER_TIMEOUT", "30s")
	v.SetDefault("SUMMARY_RATE_LIMIT", 6)
	v.SetDefault("SUMMARY_RATE_WINDOW", "1m")

	v.SetDefault("QUALITY_MAX_DURATION_MINUTES", 180)
	v.SetDefault("LOADER_BATCH_SIZE", 1000)
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NATS config
	configs.NATS.URL = v.GetString("NATS_URL")
	configs.NATS.QueueGroup = v.GetString("NATS_QUEUE_GROUP")

	// API keys for internal routes
	configs.APIKey.Scheduler = v.GetString("SCHEDULER_API_KEY")
	configs.APIKey.Admin = v.GetString("ADMIN_API_KEY")

	// NewRelic config
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	// Summary refresh
	configs.Summary.CacheTTL = v.GetDuration("SUMMARY_CACHE_TTL")
	configs.Summary.AdvisoryLockID = v.GetInt64("SUMMARY_ADVISORY_LOCK_ID")
	configs.Summary.InsertBatch = v.GetInt("SUMMARY_INSERT_BATCH")
	configs.Summary.RefreshTimeout = v.GetDuration("SUMMARY_REFRESH_TIMEOUT")
	configs.Summary.RetryAttempts = v.GetInt("SUMMARY_RETRY_ATTEMPTS")
	configs.Summary.RetryBaseDelay = v.GetDuration("SUMMARY_RETRY_BASE_DELAY")
	configs.Summary.CacheBreakerThreshold = v.GetInt("SUMMARY_CACHE_BREAKER_THRESHOLD")
	configs.Summary.CacheBreakerTimeout = v.GetDuration("SUMMARY_CACHE_BREAKER_TIMEOUT")
	configs.Summary.RateLimit = v.GetInt("SUMMARY_RATE_LIMIT")
	configs.Summary.RateWindow = v.GetDuration("SUMMARY_RATE_WINDOW")

	configs.Quality.MaxDurationMinutes = v.GetInt("QUALITY_MAX_DURATION_MINUTES")
	configs.Loader.BatchSize = v.GetInt("LOADER_BATCH_SIZE")

	return configs
}
