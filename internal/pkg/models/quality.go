package models

import "time"

// DurationAnomaly is a trip whose duration is negative or implausibly long
type DurationAnomaly struct {
	RequestID        int64     `json:"request_id" db:"request_id"`
	RequestTimestamp time.Time `json:"request_timestamp" db:"request_timestamp"`
	DropTimestamp    time.Time `json:"drop_timestamp" db:"drop_timestamp"`
	DurationMinutes  int64     `json:"duration_minutes" db:"duration_minutes"`
	Reason           string    `json:"reason" db:"reason"`
}

// Anomaly reasons
const (
	AnomalyNegativeDuration = "drop_before_request"
	AnomalyExcessDuration   = "duration_exceeds_limit"
)

// NullFieldAudit counts missing values per nullable column
type NullFieldAudit struct {
	TotalRows            int `json:"total_rows" db:"total_rows"`
	NullDriverID         int `json:"null_driver_id" db:"null_driver_id"`
	NullStatus           int `json:"null_status" db:"null_status"`
	NullDropTimestamp    int `json:"null_drop_timestamp" db:"null_drop_timestamp"`
	NullRequestTimestamp int `json:"null_request_timestamp" db:"null_request_timestamp"`
}

// DuplicateKey is a request id that occurs more than once
type DuplicateKey struct {
	RequestID   int64 `json:"request_id" db:"request_id"`
	Occurrences int   `json:"occurrences" db:"occurrences"`
}

// LoadResult reports the outcome of a bulk trip load
type LoadResult struct {
	RowsRead       int        `json:"rows_read"`
	RowsInserted   int        `json:"rows_inserted"`
	RowsSkipped    int        `json:"rows_skipped"`
	DuplicateIDs   []int64    `json:"duplicate_ids,omitempty"`
	MalformedDrops int        `json:"malformed_drop_timestamps"`
	RowErrors      []RowError `json:"row_errors,omitempty"`
}

// RowError describes a rejected input row
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}
