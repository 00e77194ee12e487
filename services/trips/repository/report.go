package repository

import (
	"context"
	"fmt"

	"github.com/piresc/tripstats/internal/pkg/models"
)

const (
	pickupCountsQuery = `
		SELECT pickup_point, COUNT(*) AS total_trips
		FROM trip_requests
		GROUP BY pickup_point
		ORDER BY pickup_point`

	pickupDurationsQuery = `
		SELECT pickup_point, completed_trips, avg_duration_minutes
		FROM v_pickup_point_stats
		ORDER BY pickup_point`

	hourlyDemandQuery = `
		SELECT EXTRACT(HOUR FROM request_timestamp)::int AS hour, COUNT(*) AS requests
		FROM trip_requests
		GROUP BY 1
		ORDER BY 1`

	topDriversQuery = `
		SELECT driver_id, COUNT(*) AS total_trips
		FROM trip_requests
		WHERE driver_id IS NOT NULL
		GROUP BY driver_id
		ORDER BY total_trips DESC, driver_id
		LIMIT $1`

	driverUtilizationQuery = `
		SELECT driver_id, total_trips, completed_trips, total_minutes, avg_duration_minutes
		FROM v_driver_utilization
		ORDER BY total_minutes DESC, driver_id
		LIMIT $1`

	// gap = this request minus the previous drop of the same driver
	driverGapsQuery = `
		SELECT driver_id, COUNT(gap_minutes) AS gaps, ROUND(AVG(gap_minutes)::numeric, 2) AS avg_gap_minutes
		FROM (
			SELECT driver_id,
				TRUNC(EXTRACT(EPOCH FROM (
					request_timestamp - LAG(drop_timestamp) OVER (PARTITION BY driver_id ORDER BY request_timestamp, request_id)
				)) / 60) AS gap_minutes
			FROM trip_requests
			WHERE driver_id IS NOT NULL
		) driver_gaps
		GROUP BY driver_id
		HAVING COUNT(gap_minutes) > 0
		ORDER BY avg_gap_minutes DESC, driver_id
		LIMIT $1`

	peakDatesQuery = `
		SELECT request_timestamp::date AS date, COUNT(*) AS requests
		FROM trip_requests
		GROUP BY 1
		ORDER BY requests DESC, date
		LIMIT $1`
)

// PickupCounts returns the number of trips per pickup point
func (r *TripRepo) PickupCounts(ctx context.Context) ([]models.PickupPointCount, error) {
	rows := []models.PickupPointCount{}
	if err := r.db.SelectContext(ctx, &rows, pickupCountsQuery); err != nil {
		return nil, fmt.Errorf("failed to count trips by pickup point: %w", err)
	}
	return rows, nil
}

// PickupDurations returns the average duration per pickup point
func (r *TripRepo) PickupDurations(ctx context.Context) ([]models.PickupPointDuration, error) {
	rows := []models.PickupPointDuration{}
	if err := r.db.SelectContext(ctx, &rows, pickupDurationsQuery); err != nil {
		return nil, fmt.Errorf("failed to read pickup point durations: %w", err)
	}
	return rows, nil
}

// HourlyDemand returns request counts for the hours that have requests
func (r *TripRepo) HourlyDemand(ctx context.Context) ([]models.HourlyDemand, error) {
	rows := []models.HourlyDemand{}
	if err := r.db.SelectContext(ctx, &rows, hourlyDemandQuery); err != nil {
		return nil, fmt.Errorf("failed to read hourly demand: %w", err)
	}
	return rows, nil
}

// TopDrivers returns the drivers with the most trips
func (r *TripRepo) TopDrivers(ctx context.Context, limit int) ([]models.DriverTripCount, error) {
	rows := []models.DriverTripCount{}
	if err := r.db.SelectContext(ctx, &rows, topDriversQuery, limit); err != nil {
		return nil, fmt.Errorf("failed to read top drivers: %w", err)
	}
	return rows, nil
}

// DriverUtilization returns the drivers with the most minutes on trips
func (r *TripRepo) DriverUtilization(ctx context.Context, limit int) ([]models.DriverUtilization, error) {
	rows := []models.DriverUtilization{}
	if err := r.db.SelectContext(ctx, &rows, driverUtilizationQuery, limit); err != nil {
		return nil, fmt.Errorf("failed to read driver utilization: %w", err)
	}
	return rows, nil
}

// DriverGaps returns the drivers with the longest average idle time between trips
func (r *TripRepo) DriverGaps(ctx context.Context, limit int) ([]models.DriverGap, error) {
	rows := []models.DriverGap{}
	if err := r.db.SelectContext(ctx, &rows, driverGapsQuery, limit); err != nil {
		return nil, fmt.Errorf("failed to read driver gaps: %w", err)
	}
	return rows, nil
}

// PeakDates returns the dates with the most requests
func (r *TripRepo) PeakDates(ctx context.Context, limit int) ([]models.PeakDate, error) {
	rows := []models.PeakDate{}
	if err := r.db.SelectContext(ctx, &rows, peakDatesQuery, limit); err != nil {
		return nil, fmt.Errorf("failed to read peak dates: %w", err)
	}
	return rows, nil
}
