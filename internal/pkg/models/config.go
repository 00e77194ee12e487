package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	APIKey   APIKeyConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	Summary  SummaryConfig
	Quality  QualityConfig
	Loader   LoaderConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL        string
	QueueGroup string
}

// APIKeyConfig holds the keys accepted on internal routes
type APIKeyConfig struct {
	Scheduler string
	Admin     string
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// SummaryConfig tunes the daily summary refresh
type SummaryConfig struct {
	CacheTTL       time.Duration
	AdvisoryLockID int64
	InsertBatch    int
	RefreshTimeout time.Duration
	RetryAttempts  int
	RetryBaseDelay time.Duration

	// Consecutive Redis failures before cache calls are skipped for CacheBreakerTimeout
	CacheBreakerThreshold int
	CacheBreakerTimeout   time.Duration

	// Refresh triggers allowed per RateWindow on the HTTP route; zero disables the limit
	RateLimit  int
	RateWindow time.Duration
}

// QualityConfig tunes the data-quality checks
type QualityConfig struct {
	MaxDurationMinutes int
}

// LoaderConfig tunes the CSV bulk loader
type LoaderConfig struct {
	BatchSize int
}
