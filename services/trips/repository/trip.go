package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/tripstats/internal/pkg/logger"
	"github.com/piresc/tripstats/internal/pkg/models"
)

const (
	selectTripsQuery = `
		SELECT request_id, pickup_point, driver_id, COALESCE(status, '') AS status, request_timestamp, drop_timestamp
		FROM trip_requests`

	insertTripsQuery = `
		INSERT INTO trip_requests (
			request_id, pickup_point, driver_id, status, request_timestamp, drop_timestamp
		) VALUES (
			:request_id, CAST(:pickup_point AS pickup_point), :driver_id, NULLIF(:status, ''), :request_timestamp, :drop_timestamp
		)
		ON CONFLICT (request_id) DO NOTHING`

	recordDuplicatesQuery = `
		INSERT INTO trip_request_duplicates (request_id, repeats) VALUES %s
		ON CONFLICT (request_id) DO UPDATE
		SET repeats = trip_request_duplicates.repeats + EXCLUDED.repeats, last_seen_at = now()`
)

const defaultInsertBatch = 1000

// TripRepo implements trip storage, reports and quality checks on Postgres
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

// ScanTrips streams trips whose request date is within rng, in request order
func (r *TripRepo) ScanTrips(ctx context.Context, rng models.DateRange, fn func(models.TripRequest) error) error {
	var conds []string
	var args []interface{}
	if !rng.From.IsZero() {
		args = append(args, models.DateOf(rng.From))
		conds = append(conds, fmt.Sprintf("request_timestamp >= $%d", len(args)))
	}
	if !rng.To.IsZero() {
		args = append(args, models.DateOf(rng.To).AddDate(0, 0, 1))
		conds = append(conds, fmt.Sprintf("request_timestamp < $%d", len(args)))
	}

	query := selectTripsQuery
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY request_timestamp, request_id"

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to query trip requests: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var trip models.TripRequest
		if err := rows.StructScan(&trip); err != nil {
			return fmt.Errorf("failed to scan trip request: %w", err)
		}
		if err := fn(trip); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed reading trip requests: %w", err)
	}
	return nil
}

// InsertTrips inserts trips in batches inside one transaction, skipping existing request ids
func (r *TripRepo) InsertTrips(ctx context.Context, trips []models.TripRequest) (inserted int, err error) {
	if len(trips) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Error("Failed to roll back trip insert", logger.Err(rbErr))
			}
		}
	}()

	batch := r.cfg.Loader.BatchSize
	if batch <= 0 {
		batch = defaultInsertBatch
	}
	for start := 0; start < len(trips); start += batch {
		end := min(start+batch, len(trips))
		res, execErr := tx.NamedExecContext(ctx, insertTripsQuery, trips[start:end])
		if execErr != nil {
			err = fmt.Errorf("failed to insert trip requests %d-%d: %w", start, end, execErr)
			return 0, err
		}
		n, raErr := res.RowsAffected()
		if raErr != nil {
			err = fmt.Errorf("failed to count inserted trip requests: %w", raErr)
			return 0, err
		}
		inserted += int(n)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit trip insert: %w", err)
	}
	return inserted, nil
}

// RecordDuplicates adds every repeat of an id within one extract to the duplicate ledger
func (r *TripRepo) RecordDuplicates(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	repeats := make(map[int64]int, len(ids))
	order := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := repeats[id]; !ok {
			order = append(order, id)
		}
		repeats[id]++
	}

	values := make([]string, 0, len(order))
	args := make([]interface{}, 0, 2*len(order))
	for _, id := range order {
		args = append(args, id, repeats[id])
		values = append(values, fmt.Sprintf("($%d, $%d)", len(args)-1, len(args)))
	}

	query := fmt.Sprintf(recordDuplicatesQuery, strings.Join(values, ", "))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to record duplicate request ids: %w", err)
	}
	return nil
}
