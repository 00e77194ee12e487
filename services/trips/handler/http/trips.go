package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tripstats/internal/pkg/logger"
	"github.com/piresc/tripstats/internal/pkg/middleware"
	nrpkg "github.com/piresc/tripstats/internal/pkg/newrelic"
	"github.com/piresc/tripstats/internal/utils"
	"github.com/piresc/tripstats/services/trips"
)

// TripsHandler handles HTTP requests for trip loading, reports and quality checks
type TripsHandler struct {
	loaderUC  trips.LoaderUC
	reportUC  trips.ReportUC
	qualityUC trips.QualityUC
}

// NewTripsHandler creates a new trips HTTP handler
func NewTripsHandler(loaderUC trips.LoaderUC, reportUC trips.ReportUC, qualityUC trips.QualityUC) *TripsHandler {
	return &TripsHandler{
		loaderUC:  loaderUC,
		reportUC:  reportUC,
		qualityUC: qualityUC,
	}
}

// ListReports handles GET /v1/reports
func (h *TripsHandler) ListReports(c echo.Context) error {
	return utils.ListResponse(c, "Available reports", h.reportUC.ReportNames())
}

// GetReport handles GET /v1/reports/:name?limit=n
func (h *TripsHandler) GetReport(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	name := c.Param("name")
	nrpkg.SetTransactionName(txn, "Trips.Report")
	nrpkg.AddTransactionAttribute(txn, "report.name", name)

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "limit must be an integer")
		}
		limit = n
	}

	data, err := h.reportUC.Report(c.Request().Context(), name, limit)
	if err != nil {
		switch {
		case errors.Is(err, trips.ErrUnknownReport):
			return utils.NotFoundResponse(c, err.Error())
		case errors.Is(err, trips.ErrInvalidLimit):
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.ErrorCtx(c.Request().Context(), "Failed to run report",
			logger.String("report", name),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to run report")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Report "+name, data)
}

// ListChecks handles GET /v1/quality
func (h *TripsHandler) ListChecks(c echo.Context) error {
	return utils.ListResponse(c, "Available quality checks", h.qualityUC.CheckNames())
}

// GetQualityCheck handles GET /v1/quality/:check
func (h *TripsHandler) GetQualityCheck(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	check := c.Param("check")
	nrpkg.SetTransactionName(txn, "Trips.QualityCheck")
	nrpkg.AddTransactionAttribute(txn, "quality.check", check)

	data, err := h.qualityUC.Check(c.Request().Context(), check)
	if err != nil {
		if errors.Is(err, trips.ErrUnknownCheck) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.ErrorCtx(c.Request().Context(), "Failed to run quality check",
			logger.String("check", check),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to run quality check")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Quality check "+check, data)
}

// LoadTrips handles POST /internal/trips/load. The extract is either the raw request body
// or the "file" field of a multipart form.
func (h *TripsHandler) LoadTrips(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.Load")
	ctx := c.Request().Context()

	var body io.Reader = c.Request().Body
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		fh, err := c.FormFile("file")
		if err != nil {
			return utils.BadRequestResponse(c, "multipart upload needs a file field")
		}
		f, err := fh.Open()
		if err != nil {
			return utils.BadRequestResponse(c, "cannot open uploaded file")
		}
		defer f.Close()
		body = f
	}

	caller, _ := c.Get(middleware.ContextKeyCaller).(string)
	logger.InfoCtx(ctx, "Received trip load request", logger.String("caller", caller))

	result, err := h.loaderUC.LoadCSV(ctx, body)
	if err != nil {
		if errors.Is(err, trips.ErrMalformedCSV) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.ErrorCtx(ctx, "Trip load failed", logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		if result != nil {
			return c.JSON(http.StatusInternalServerError, utils.Response{
				Success: false,
				Message: "Trip load stopped part way",
				Data:    result,
				Error:   err.Error(),
			})
		}
		return utils.InternalServerErrorResponse(c, "Failed to load trips")
	}

	nrpkg.AddTransactionAttribute(txn, "trips.rows_inserted", result.RowsInserted)
	return utils.SuccessResponse(c, http.StatusOK, "Trips loaded", result)
}
