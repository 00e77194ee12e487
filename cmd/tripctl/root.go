package main

import (
	"encoding/json"
	"fmt"

	natsgo "github.com/nats-io/nats.go"
	"github.com/piresc/tripstats/internal/pkg/config"
	"github.com/piresc/tripstats/internal/pkg/database"
	"github.com/piresc/tripstats/internal/pkg/logger"
	"github.com/piresc/tripstats/internal/pkg/models"
	"github.com/piresc/tripstats/internal/pkg/nats"
	"github.com/piresc/tripstats/services/summary"
	summaryGateway "github.com/piresc/tripstats/services/summary/gateway"
	summaryRepository "github.com/piresc/tripstats/services/summary/repository"
	summaryUsecase "github.com/piresc/tripstats/services/summary/usecase"
	tripsRepository "github.com/piresc/tripstats/services/trips/repository"
	"github.com/spf13/cobra"
)

var rootFlags struct {
	configPath string
}

// app holds the connections a command opened; each is opened on first use
type app struct {
	cfg      *models.Config
	log      *logger.ZapLogger
	postgres *database.PostgresClient
	redis    *database.RedisClient
	nats     *nats.Client
}

var cli = &app{}

var rootCmd = &cobra.Command{
	Use:   "tripctl",
	Short: "Operate the tripstats trip store and daily summaries",
	Long: `tripctl manages the trip request store and the derived daily summaries.

Every command prints its result as JSON on stdout; logs go to stderr.
Configuration comes from the environment (and the --config env file when
APP_ENV=local); the persistent flags below override single settings.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return cli.init(cmd) },
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.configPath, "config", "config/tripstats.env", "env file loaded when APP_ENV=local")
	pf.String("log-level", "", "log level, overrides LOG_LEVEL")
	pf.String("db-host", "", "postgres host, overrides DB_HOST")
	pf.String("db-database", "", "postgres database, overrides DB_DATABASE")
	pf.String("redis-host", "", "redis host, overrides REDIS_HOST")
	pf.String("nats-url", "", "NATS url, overrides NATS_URL")
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.InitConfigWithFlags(rootFlags.configPath, cmd.Root().PersistentFlags())
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	a.cfg = cfg

	zl, err := logger.NewZapLogger(logger.ZapConfig{
		Level:    cfg.Logger.Level,
		FilePath: cfg.Logger.FilePath,
		Service:  "tripctl",
		Stderr:   true,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.log = zl
	logger.SetGlobalLogger(zl)
	return nil
}

func (a *app) close() {
	if a.nats != nil {
		a.nats.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			logger.Warn("Error closing Redis connection", logger.Err(err))
		}
	}
	if a.postgres != nil {
		if err := a.postgres.Close(); err != nil {
			logger.Warn("Error closing PostgreSQL connection", logger.Err(err))
		}
	}
	if a.log != nil {
		_ = a.log.Close()
	}
}

func (a *app) postgresClient() (*database.PostgresClient, error) {
	if a.postgres == nil {
		pg, err := database.NewPostgresClient(a.cfg.Database)
		if err != nil {
			return nil, err
		}
		a.postgres = pg
	}
	return a.postgres, nil
}

// redisClient returns nil when Redis is unreachable
func (a *app) redisClient() *database.RedisClient {
	if a.redis == nil {
		rc, err := database.NewRedisClient(a.cfg.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, summary cache not updated", logger.Err(err))
			return nil
		}
		a.redis = rc
	}
	return a.redis
}

func (a *app) natsClient() (*nats.Client, error) {
	if a.nats == nil {
		nc, err := nats.NewClient(a.cfg.NATS.URL, natsgo.Name("tripctl"), natsgo.MaxReconnects(0))
		if err != nil {
			return nil, err
		}
		a.nats = nc
	}
	return a.nats, nil
}

// summaryUC builds the summary use case. Redis and NATS are optional here: a refresh
// run from the CLI still updates the cache and announces itself when they are up.
func (a *app) summaryUC() (summary.SummaryUC, error) {
	pg, err := a.postgresClient()
	if err != nil {
		return nil, err
	}
	db := pg.GetDB()

	var cache summary.SummaryCache
	if rc := a.redisClient(); rc != nil {
		cache = summaryRepository.NewSummaryCache(a.cfg, rc.GetClient())
	}

	var gw summary.SummaryGW
	if nc, err := a.natsClient(); err != nil {
		logger.Warn("NATS unavailable, refresh events not published", logger.Err(err))
	} else {
		gw = summaryGateway.NewSummaryGW(nc)
	}

	return summaryUsecase.NewSummaryUC(a.cfg,
		summaryRepository.NewSummaryRepository(a.cfg, db),
		tripsRepository.NewTripRepository(a.cfg, db),
		cache, gw)
}

func (a *app) tripRepo() (*tripsRepository.TripRepo, error) {
	pg, err := a.postgresClient()
	if err != nil {
		return nil, err
	}
	return tripsRepository.NewTripRepository(a.cfg, pg.GetDB()), nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
