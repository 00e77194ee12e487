package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/tripstats/internal/pkg/middleware"
	"github.com/piresc/tripstats/internal/pkg/models"
	"github.com/piresc/tripstats/services/trips"
	httpHandler "github.com/piresc/tripstats/services/trips/handler/http"
)

// Handler combines all handlers for the trips service
type Handler struct {
	tripsHTTP *httpHandler.TripsHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	loaderUC trips.LoaderUC,
	reportUC trips.ReportUC,
	qualityUC trips.QualityUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		tripsHTTP: httpHandler.NewTripsHandler(loaderUC, reportUC, qualityUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers the report, quality and load routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/v1")
	v1.GET("/reports", h.tripsHTTP.ListReports)
	v1.GET("/reports/:name", h.tripsHTTP.GetReport)
	v1.GET("/quality", h.tripsHTTP.ListChecks)
	v1.GET("/quality/:check", h.tripsHTTP.GetQualityCheck)

	// Bulk loads are operator-only
	internal := e.Group("/internal/trips", middleware.ValidateAPIKey(middleware.APIKeysFromConfig(h.cfg.APIKey), "admin"))
	internal.POST("/load", h.tripsHTTP.LoadTrips)
}
