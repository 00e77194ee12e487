package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/piresc/tripstats/internal/pkg/logger"
	"github.com/piresc/tripstats/internal/pkg/models"
	"github.com/piresc/tripstats/services/trips"
)

const defaultLoadBatch = 1000

// Accepted request/drop timestamp layouts, tried in order
var timestampLayouts = []string{
	"2/1/2006 15:04",
	"2/1/2006 15:04:05",
	"02-01-2006 15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// extract columns, keyed by normalised header name
const (
	colRequestID   = "request_id"
	colPickupPoint = "pickup_point"
	colDriverID    = "driver_id"
	colStatus      = "status"
	colRequestTS   = "request_timestamp"
	colDropTS      = "drop_timestamp"
)

var requiredColumns = []string{colRequestID, colPickupPoint, colRequestTS}

// loaderUC implements trips.LoaderUC
type loaderUC struct {
	cfg      *models.Config
	tripRepo trips.TripRepo
}

// NewLoaderUC creates a new CSV loader use case
func NewLoaderUC(cfg *models.Config, tripRepo trips.TripRepo) trips.LoaderUC {
	return &loaderUC{
		cfg:      cfg,
		tripRepo: tripRepo,
	}
}

// LoadCSV parses a trip extract and inserts its rows in batches. Rejected rows are
// reported in the result; only read and insert failures abort the load.
func (uc *loaderUC) LoadCSV(ctx context.Context, r io.Reader) (*models.LoadResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty input", trips.ErrMalformedCSV)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", trips.ErrMalformedCSV, err)
	}
	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	batchSize := uc.cfg.Loader.BatchSize
	if batchSize <= 0 {
		batchSize = defaultLoadBatch
	}

	result := &models.LoadResult{}
	seen := make(map[int64]struct{})
	batch := make([]models.TripRequest, 0, batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		inserted, err := uc.tripRepo.InsertTrips(ctx, batch)
		if err != nil {
			return err
		}
		result.RowsInserted += inserted
		batch = batch[:0]
		return nil
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				result.RowsRead++
				result.RowErrors = append(result.RowErrors, models.RowError{Line: parseErr.Line, Reason: parseErr.Err.Error()})
				continue
			}
			return result, fmt.Errorf("failed to read trip extract: %w", err)
		}
		if isBlank(record) {
			continue
		}
		result.RowsRead++
		line, _ := reader.FieldPos(0)

		trip, malformedDrop, err := parseRecord(record, columns)
		if err != nil {
			result.RowErrors = append(result.RowErrors, models.RowError{Line: line, Reason: err.Error()})
			continue
		}
		if malformedDrop {
			result.MalformedDrops++
		}
		if _, dup := seen[trip.RequestID]; dup {
			result.DuplicateIDs = append(result.DuplicateIDs, trip.RequestID)
			continue
		}
		seen[trip.RequestID] = struct{}{}

		batch = append(batch, trip)
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				result.RowsSkipped = result.RowsRead - result.RowsInserted
				return result, fmt.Errorf("failed to insert trip batch: %w", err)
			}
		}
	}

	if err := flush(); err != nil {
		result.RowsSkipped = result.RowsRead - result.RowsInserted
		return result, fmt.Errorf("failed to insert trip batch: %w", err)
	}
	result.RowsSkipped = result.RowsRead - result.RowsInserted

	// the load itself succeeded, so a ledger failure only costs the audit trail
	if len(result.DuplicateIDs) > 0 {
		if err := uc.tripRepo.RecordDuplicates(ctx, result.DuplicateIDs); err != nil {
			logger.WarnCtx(ctx, "Failed to record duplicate request ids",
				logger.Err(err),
				logger.Int("duplicate_ids", len(result.DuplicateIDs)))
		}
	}

	logger.InfoCtx(ctx, "Trip extract loaded",
		logger.Int("rows_read", result.RowsRead),
		logger.Int("rows_inserted", result.RowsInserted),
		logger.Int("rows_skipped", result.RowsSkipped),
		logger.Int("row_errors", len(result.RowErrors)),
		logger.Int("duplicate_ids", len(result.DuplicateIDs)),
		logger.Int("malformed_drops", result.MalformedDrops))

	return result, nil
}

// mapColumns resolves header names to record indexes
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[normaliseHeader(name)] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := columns[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", trips.ErrMalformedCSV, strings.Join(missing, ", "))
	}
	return columns, nil
}

// normaliseHeader turns "Request id" and "request_id" into the same key
func normaliseHeader(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	}), "_")
}

func parseRecord(record []string, columns map[string]int) (trip models.TripRequest, malformedDrop bool, err error) {
	field := func(col string) string {
		i, ok := columns[col]
		if !ok || i >= len(record) {
			return ""
		}
		return nullable(record[i])
	}

	raw := field(colRequestID)
	if raw == "" {
		return trip, false, fmt.Errorf("missing request id")
	}
	if trip.RequestID, err = strconv.ParseInt(raw, 10, 64); err != nil {
		return trip, false, fmt.Errorf("invalid request id %q", raw)
	}

	if trip.PickupPoint, err = models.ParsePickupPoint(field(colPickupPoint)); err != nil {
		return trip, false, err
	}

	if raw = field(colDriverID); raw != "" {
		driverID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return trip, false, fmt.Errorf("invalid driver id %q", raw)
		}
		trip.DriverID = &driverID
	}

	trip.Status = field(colStatus)

	raw = field(colRequestTS)
	if raw == "" {
		return trip, false, fmt.Errorf("missing request timestamp")
	}
	if trip.RequestTimestamp, err = parseTimestamp(raw); err != nil {
		return trip, false, err
	}

	if raw = field(colDropTS); raw != "" {
		drop, err := parseTimestamp(raw)
		if err != nil {
			return trip, true, nil
		}
		trip.DropTimestamp = &drop
	}

	return trip, false, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", raw)
}

// nullable maps the extract's null markers to the empty string
func nullable(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "NA") || strings.EqualFold(v, "NULL") {
		return ""
	}
	return v
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
