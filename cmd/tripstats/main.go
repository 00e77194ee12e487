package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tripstats/internal/pkg/config"
	"github.com/piresc/tripstats/internal/pkg/constants"
	"github.com/piresc/tripstats/internal/pkg/database"
	"github.com/piresc/tripstats/internal/pkg/health"
	"github.com/piresc/tripstats/internal/pkg/logger"
	"github.com/piresc/tripstats/internal/pkg/middleware"
	"github.com/piresc/tripstats/internal/pkg/nats"
	nrpkg "github.com/piresc/tripstats/internal/pkg/newrelic"
	"github.com/piresc/tripstats/internal/pkg/server"
	"github.com/piresc/tripstats/services/summary"
	summaryGateway "github.com/piresc/tripstats/services/summary/gateway"
	summaryHandler "github.com/piresc/tripstats/services/summary/handler"
	summaryRepository "github.com/piresc/tripstats/services/summary/repository"
	summaryUsecase "github.com/piresc/tripstats/services/summary/usecase"
	tripsHandler "github.com/piresc/tripstats/services/trips/handler"
	tripsRepository "github.com/piresc/tripstats/services/trips/repository"
	tripsUsecase "github.com/piresc/tripstats/services/trips/usecase"
)

// the trip repository is the aggregator's input
var _ summary.TripSource = (*tripsRepository.TripRepo)(nil)

func main() {
	appName := "tripstats-service"
	configPath := "config/tripstats.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	logger.Info("NATS client initialized",
		logger.String("url", configs.NATS.URL),
		logger.Bool("connected", natsClient.IsConnected()))

	// Repositories
	tripRepo := tripsRepository.NewTripRepository(configs, postgresClient.GetDB())
	summaryRepo := summaryRepository.NewSummaryRepository(configs, postgresClient.GetDB())
	summaryCache := summaryRepository.NewSummaryCache(configs, redisClient.GetClient())

	// Gateway
	summaryGW := summaryGateway.NewSummaryGW(natsClient)

	// Use cases
	summaryUC, err := summaryUsecase.NewSummaryUC(configs, summaryRepo, tripRepo, summaryCache, summaryGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize summary use case", logger.Err(err))
	}
	loaderUC := tripsUsecase.NewLoaderUC(configs, tripRepo)
	reportUC := tripsUsecase.NewReportUC(tripRepo)
	qualityUC := tripsUsecase.NewQualityUC(configs, tripRepo)

	// Handlers
	summaryHandlers := summaryHandler.NewHandler(summaryUC, natsClient, configs, nrApp)
	tripsHandlers := tripsHandler.NewHandler(loaderUC, reportUC, qualityUC, configs)

	if err := summaryHandlers.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true

	// Panic recovery goes first
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestID())
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.PingChecker(postgresClient))
	healthService.AddChecker("redis", health.PingChecker(redisClient))
	healthService.AddChecker("nats", health.ConnChecker("nats", natsClient.IsConnected))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	refreshLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: redisClient.GetClient(),
		Key:         constants.KeyRateLimitPrefix,
		Limit:       configs.Summary.RateLimit,
		Period:      configs.Summary.RateWindow,
	})
	summaryHandlers.RegisterRoutes(e, refreshLimiter)
	tripsHandlers.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server)

	// Components stop in reverse order: consumers first, New Relic last
	if nrApp != nil {
		srv.OnShutdown("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}
	srv.OnShutdown("postgres", func(context.Context) error { return postgresClient.Close() })
	srv.OnShutdown("redis", func(context.Context) error { return redisClient.Close() })
	srv.OnShutdown("nats", func(context.Context) error {
		natsClient.Close()
		return nil
	})
	srv.OnShutdown("nats-consumers", func(context.Context) error {
		summaryHandlers.Close()
		return nil
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		zapLogger.Error("Server exited with errors", logger.Err(err))
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
