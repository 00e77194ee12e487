package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// DailySummary is the derived per-date aggregate of trip requests
type DailySummary struct {
	SummaryDate        time.Time           `json:"summary_date" db:"summary_date"`
	TotalTrips         int                 `json:"total_trips" db:"total_trips"`
	AirportTrips       int                 `json:"airport_trips" db:"airport_trips"`
	CityTrips          int                 `json:"city_trips" db:"city_trips"`
	AvgDurationMinutes decimal.NullDecimal `json:"avg_duration_minutes" db:"avg_duration_minutes"`
	LastUpdated        time.Time           `json:"last_updated" db:"last_updated"`
}

// DateRange bounds reads by calendar date. Zero values mean unbounded; To is inclusive.
type DateRange struct {
	From time.Time `json:"from,omitempty"`
	To   time.Time `json:"to,omitempty"`
}

// ParseDateRange builds a DateRange from optional yyyy-mm-dd strings
func ParseDateRange(from, to string) (DateRange, error) {
	var rng DateRange
	if from != "" {
		t, err := time.Parse(DateLayout, from)
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid from date %q: %w", from, err)
		}
		rng.From = t
	}
	if to != "" {
		t, err := time.Parse(DateLayout, to)
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid to date %q: %w", to, err)
		}
		rng.To = t
	}
	if !rng.From.IsZero() && !rng.To.IsZero() && rng.To.Before(rng.From) {
		return DateRange{}, fmt.Errorf("to date %s is before from date %s", to, from)
	}
	return rng, nil
}

// IsZero reports whether the range is unbounded on both ends
func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// Contains reports whether the calendar date of ts falls within the range
func (r DateRange) Contains(ts time.Time) bool {
	d := DateOf(ts)
	if !r.From.IsZero() && d.Before(DateOf(r.From)) {
		return false
	}
	if !r.To.IsZero() && d.After(DateOf(r.To)) {
		return false
	}
	return true
}

// RefreshResult describes one completed refresh run
type RefreshResult struct {
	RunID        uuid.UUID     `json:"run_id"`
	TripsScanned int           `json:"trips_scanned"`
	RowsWritten  int           `json:"rows_written"`
	StartedAt    time.Time     `json:"started_at"`
	FinishedAt   time.Time     `json:"finished_at"`
	Duration     time.Duration `json:"duration"`
}

// SummaryRefreshedEvent is published after a refresh commits
type SummaryRefreshedEvent struct {
	RunID        string    `json:"run_id"`
	TripsScanned int       `json:"trips_scanned"`
	RowsWritten  int       `json:"rows_written"`
	FirstDate    string    `json:"first_date,omitempty"`
	LastDate     string    `json:"last_date,omitempty"`
	RefreshedAt  time.Time `json:"refreshed_at"`
	DurationMs   int64     `json:"duration_ms"`
}

// SummaryRefreshRequest is the payload of a refresh trigger message
type SummaryRefreshRequest struct {
	RequestedBy string `json:"requested_by,omitempty"`
}
