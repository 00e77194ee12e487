package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// PickupPoint is the origin of a trip request. Only Airport and City exist.
type PickupPoint string

const (
	PickupAirport PickupPoint = "Airport"
	PickupCity    PickupPoint = "City"
)

// PickupPoints lists every valid pickup point
var PickupPoints = []PickupPoint{PickupAirport, PickupCity}

// ParsePickupPoint parses a pickup point case-insensitively
func ParsePickupPoint(s string) (PickupPoint, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "airport":
		return PickupAirport, nil
	case "city":
		return PickupCity, nil
	}
	return "", fmt.Errorf("invalid pickup point %q", s)
}

// Valid reports whether p is one of the known pickup points
func (p PickupPoint) Valid() bool {
	return p == PickupAirport || p == PickupCity
}

// Scan implements sql.Scanner and rejects unknown values
func (p *PickupPoint) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		return fmt.Errorf("pickup point is null")
	default:
		return fmt.Errorf("cannot scan %T into PickupPoint", src)
	}

	parsed, err := ParsePickupPoint(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Value implements driver.Valuer
func (p PickupPoint) Value() (driver.Value, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid pickup point %q", string(p))
	}
	return string(p), nil
}

// UnmarshalJSON rejects unknown pickup points
func (p *PickupPoint) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParsePickupPoint(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Trip status labels found in the trip extract. Status is free text; these are the known values.
const (
	TripStatusCompleted      = "Trip Completed"
	TripStatusCancelled      = "Cancelled"
	TripStatusNoCarAvailable = "No Cars Available"
)

// TripRequest represents one ride-hailing request from the trip extract
type TripRequest struct {
	RequestID        int64       `json:"request_id" db:"request_id"`
	PickupPoint      PickupPoint `json:"pickup_point" db:"pickup_point"`
	DriverID         *int64      `json:"driver_id,omitempty" db:"driver_id"`
	Status           string      `json:"status" db:"status"`
	RequestTimestamp time.Time   `json:"request_timestamp" db:"request_timestamp"`
	DropTimestamp    *time.Time  `json:"drop_timestamp,omitempty" db:"drop_timestamp"`
}

// TripDurationMinutes returns the whole minutes between request and drop, truncated toward zero.
// The result is negative when drop precedes request; ok is false when there is no drop timestamp.
func (t TripRequest) TripDurationMinutes() (minutes int64, ok bool) {
	if t.DropTimestamp == nil {
		return 0, false
	}
	return int64(t.DropTimestamp.Sub(t.RequestTimestamp) / time.Minute), true
}

// RequestDate returns the calendar date of the request timestamp, at midnight UTC
func (t TripRequest) RequestDate() time.Time {
	return DateOf(t.RequestTimestamp)
}

// DateOf truncates a naive timestamp to its calendar date
func DateOf(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
