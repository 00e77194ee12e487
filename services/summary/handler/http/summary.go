package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tripstats/internal/pkg/logger"
	"github.com/piresc/tripstats/internal/pkg/middleware"
	"github.com/piresc/tripstats/internal/pkg/models"
	nrpkg "github.com/piresc/tripstats/internal/pkg/newrelic"
	"github.com/piresc/tripstats/internal/utils"
	"github.com/piresc/tripstats/services/summary"
)

// SummaryHandler handles HTTP requests for daily summaries
type SummaryHandler struct {
	summaryUC summary.SummaryUC
}

// NewSummaryHandler creates a new summary HTTP handler
func NewSummaryHandler(summaryUC summary.SummaryUC) *SummaryHandler {
	return &SummaryHandler{
		summaryUC: summaryUC,
	}
}

// GetSummaries handles GET /v1/summary?from=yyyy-mm-dd&to=yyyy-mm-dd
func (h *SummaryHandler) GetSummaries(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Summary.GetSummaries")

	rng, err := models.ParseDateRange(c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	rows, err := h.summaryUC.GetSummaries(c.Request().Context(), rng)
	if err != nil {
		if errors.Is(err, summary.ErrInvalidDateRange) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.ErrorCtx(c.Request().Context(), "Failed to read daily summaries", logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to read daily summaries")
	}

	return utils.ListResponse(c, "Daily summaries retrieved", rows)
}

// Refresh handles POST /internal/summary/refresh
func (h *SummaryHandler) Refresh(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Summary.Refresh")

	caller, _ := c.Get(middleware.ContextKeyCaller).(string)
	logger.InfoCtx(c.Request().Context(), "Received summary refresh request",
		logger.String("caller", caller),
		logger.String("client_ip", c.RealIP()))

	result, err := h.summaryUC.Refresh(c.Request().Context())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		switch {
		case errors.Is(err, summary.ErrRefreshCancelled):
			return utils.ServiceUnavailableResponse(c, "Refresh cancelled while another refresh was running")
		case errors.Is(err, summary.ErrInputRead):
			return utils.InternalServerErrorResponse(c, "Failed to read trip requests; summaries unchanged")
		case errors.Is(err, summary.ErrPersistence):
			return utils.InternalServerErrorResponse(c, "Failed to store daily summaries; previous summaries kept")
		}
		return utils.InternalServerErrorResponse(c, "Failed to refresh daily summaries")
	}

	nrpkg.AddTransactionAttribute(txn, "summary.rows_written", result.RowsWritten)
	return utils.SuccessResponse(c, http.StatusOK, "Daily summaries refreshed", result)
}
