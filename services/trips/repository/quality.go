package repository

import (
	"context"
	"fmt"

	"github.com/piresc/tripstats/internal/pkg/models"
)

const (
	durationAnomaliesQuery = `
		SELECT request_id, request_timestamp, drop_timestamp, duration_minutes,
			CASE WHEN drop_timestamp < request_timestamp THEN $2 ELSE $3 END AS reason
		FROM (
			SELECT request_id, request_timestamp, drop_timestamp,
				TRUNC(EXTRACT(EPOCH FROM (drop_timestamp - request_timestamp)) / 60)::bigint AS duration_minutes
			FROM trip_requests
			WHERE drop_timestamp IS NOT NULL
		) durations
		WHERE drop_timestamp < request_timestamp OR duration_minutes > $1
		ORDER BY request_id`

	nullAuditQuery = `
		SELECT
			COUNT(*) AS total_rows,
			COUNT(*) - COUNT(driver_id) AS null_driver_id,
			COUNT(*) - COUNT(status) AS null_status,
			COUNT(*) - COUNT(drop_timestamp) AS null_drop_timestamp,
			COUNT(*) - COUNT(request_timestamp) AS null_request_timestamp
		FROM trip_requests`

	duplicateKeysQuery = `
		SELECT request_id, repeats + 1 AS occurrences
		FROM trip_request_duplicates
		ORDER BY request_id`
)

// DurationAnomalies returns trips that end before they start or last longer than maxMinutes
func (r *TripRepo) DurationAnomalies(ctx context.Context, maxMinutes int) ([]models.DurationAnomaly, error) {
	rows := []models.DurationAnomaly{}
	err := r.db.SelectContext(ctx, &rows, durationAnomaliesQuery,
		maxMinutes, models.AnomalyNegativeDuration, models.AnomalyExcessDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to find duration anomalies: %w", err)
	}
	return rows, nil
}

// NullAudit counts missing values per nullable column
func (r *TripRepo) NullAudit(ctx context.Context) (*models.NullFieldAudit, error) {
	var audit models.NullFieldAudit
	if err := r.db.GetContext(ctx, &audit, nullAuditQuery); err != nil {
		return nil, fmt.Errorf("failed to audit null fields: %w", err)
	}
	return &audit, nil
}

// DuplicateKeys returns request ids that loads have seen repeated. trip_requests keys on
// request_id, so repeats never reach it; occurrences counts the stored row plus every rejected repeat.
func (r *TripRepo) DuplicateKeys(ctx context.Context) ([]models.DuplicateKey, error) {
	rows := []models.DuplicateKey{}
	if err := r.db.SelectContext(ctx, &rows, duplicateKeysQuery); err != nil {
		return nil, fmt.Errorf("failed to find duplicate keys: %w", err)
	}
	return rows, nil
}
