package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/tripstats/internal/pkg/middleware"
	"github.com/piresc/tripstats/internal/pkg/models"
	natspkg "github.com/piresc/tripstats/internal/pkg/nats"
	"github.com/piresc/tripstats/services/summary"
	httpHandler "github.com/piresc/tripstats/services/summary/handler/http"
	natsHandler "github.com/piresc/tripstats/services/summary/handler/nats"
)

// Handler combines all handlers for the summary service
type Handler struct {
	summaryHTTP *httpHandler.SummaryHandler
	summaryNATS *natsHandler.SummaryHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler. natsClient may be nil, in which case no consumer starts.
func NewHandler(
	summaryUC summary.SummaryUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
	nrApp *newrelic.Application,
) *Handler {
	h := &Handler{
		summaryHTTP: httpHandler.NewSummaryHandler(summaryUC),
		cfg:         cfg,
	}
	if natsClient != nil {
		h.summaryNATS = natsHandler.NewSummaryHandler(summaryUC, natsClient, cfg, nrApp)
	}
	return h
}

// RegisterRoutes registers the summary HTTP routes. refreshLimiter guards the refresh trigger.
func (h *Handler) RegisterRoutes(e *echo.Echo, refreshLimiter echo.MiddlewareFunc) {
	v1 := e.Group("/v1")
	v1.GET("/summary", h.summaryHTTP.GetSummaries)

	// Internal routes for schedulers and operators (API key required)
	internal := e.Group("/internal", middleware.ValidateAPIKey(middleware.APIKeysFromConfig(h.cfg.APIKey), "scheduler", "admin"))
	var guards []echo.MiddlewareFunc
	if refreshLimiter != nil {
		guards = append(guards, refreshLimiter)
	}
	internal.POST("/summary/refresh", h.summaryHTTP.Refresh, guards...)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	if h.summaryNATS == nil {
		return nil
	}
	return h.summaryNATS.InitNATSConsumers()
}

// Close stops the NATS consumers
func (h *Handler) Close() {
	if h.summaryNATS != nil {
		h.summaryNATS.Close()
	}
}
