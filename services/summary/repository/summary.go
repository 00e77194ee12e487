package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/tripstats/internal/pkg/logger"
	"github.com/piresc/tripstats/internal/pkg/models"
)

const (
	refreshLockQuery   = `SELECT pg_advisory_lock($1)`
	refreshUnlockQuery = `SELECT pg_advisory_unlock($1)`

	deleteSummariesQuery = `DELETE FROM daily_summary`

	insertSummariesQuery = `
		INSERT INTO daily_summary (
			summary_date, total_trips, airport_trips, city_trips, avg_duration_minutes, last_updated
		) VALUES (
			:summary_date, :total_trips, :airport_trips, :city_trips, :avg_duration_minutes, :last_updated
		)`

	selectSummariesQuery = `
		SELECT summary_date, total_trips, airport_trips, city_trips, avg_duration_minutes, last_updated
		FROM daily_summary`
)

const defaultInsertBatch = 500

// SummaryRepo stores daily summaries in Postgres
type SummaryRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewSummaryRepository creates a new summary repository
func NewSummaryRepository(cfg *models.Config, db *sqlx.DB) *SummaryRepo {
	return &SummaryRepo{
		cfg: cfg,
		db:  db,
	}
}

// AcquireRefreshLock takes the session-level advisory lock that serialises refreshes across
// processes. The lock lives on a connection reserved for it, so it spans the trip scan and the
// replace. The returned func unlocks and hands the connection back.
func (r *SummaryRepo) AcquireRefreshLock(ctx context.Context) (func(context.Context) error, error) {
	conn, err := r.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve lock connection: %w", err)
	}

	lockID := r.cfg.Summary.AdvisoryLockID
	if _, err := conn.ExecContext(ctx, refreshLockQuery, lockID); err != nil {
		discard(conn)
		return nil, fmt.Errorf("failed to acquire summary refresh lock: %w", err)
	}

	release := func(ctx context.Context) error {
		if _, err := conn.ExecContext(ctx, refreshUnlockQuery, lockID); err != nil {
			discard(conn)
			return fmt.Errorf("failed to release summary refresh lock: %w", err)
		}
		return conn.Close()
	}
	return release, nil
}

// discard closes the session behind conn instead of pooling it; Postgres drops its locks with it
func discard(conn *sqlx.Conn) {
	_ = conn.Raw(func(interface{}) error { return driver.ErrBadConn })
	_ = conn.Close()
}

// ReplaceAll swaps the whole daily_summary table for rows inside one transaction. Readers
// keep seeing the previous rows until commit. Callers hold the refresh lock.
func (r *SummaryRepo) ReplaceAll(ctx context.Context, rows []models.DailySummary) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Error("Failed to roll back summary replace", logger.Err(rbErr))
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteSummariesQuery); err != nil {
		return fmt.Errorf("failed to clear daily summaries: %w", err)
	}

	batch := r.cfg.Summary.InsertBatch
	if batch <= 0 {
		batch = defaultInsertBatch
	}
	for start := 0; start < len(rows); start += batch {
		end := min(start+batch, len(rows))
		if _, err = tx.NamedExecContext(ctx, insertSummariesQuery, rows[start:end]); err != nil {
			return fmt.Errorf("failed to insert daily summaries %d-%d: %w", start, end, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit summary replace: %w", err)
	}
	return nil
}

// ReadAll returns the stored summaries within rng ordered by date
func (r *SummaryRepo) ReadAll(ctx context.Context, rng models.DateRange) ([]models.DailySummary, error) {
	query, args := withDateRange(selectSummariesQuery, "summary_date", rng)
	query += " ORDER BY summary_date"

	rows := []models.DailySummary{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to read daily summaries: %w", err)
	}
	return rows, nil
}

// withDateRange appends date bounds on column to query as positional parameters
func withDateRange(query, column string, rng models.DateRange) (string, []interface{}) {
	var conds []string
	var args []interface{}
	if !rng.From.IsZero() {
		args = append(args, rng.From)
		conds = append(conds, fmt.Sprintf("%s >= $%d", column, len(args)))
	}
	if !rng.To.IsZero() {
		args = append(args, rng.To)
		conds = append(conds, fmt.Sprintf("%s <= $%d", column, len(args)))
	}
	if len(conds) == 0 {
		return query, nil
	}
	return query + " WHERE " + strings.Join(conds, " AND "), args
}
