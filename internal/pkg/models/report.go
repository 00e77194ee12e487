package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PickupPointCount is the number of trips per pickup point
type PickupPointCount struct {
	PickupPoint PickupPoint `json:"pickup_point" db:"pickup_point"`
	TotalTrips  int         `json:"total_trips" db:"total_trips"`
}

// PickupPointDuration is the average trip duration per pickup point
type PickupPointDuration struct {
	PickupPoint        PickupPoint         `json:"pickup_point" db:"pickup_point"`
	CompletedTrips     int                 `json:"completed_trips" db:"completed_trips"`
	AvgDurationMinutes decimal.NullDecimal `json:"avg_duration_minutes" db:"avg_duration_minutes"`
}

// HourlyDemand is the number of requests made in one hour of the day
type HourlyDemand struct {
	Hour     int `json:"hour" db:"hour"`
	Requests int `json:"requests" db:"requests"`
}

// DriverTripCount is the number of trips assigned to a driver
type DriverTripCount struct {
	DriverID   int64 `json:"driver_id" db:"driver_id"`
	TotalTrips int   `json:"total_trips" db:"total_trips"`
}

// DriverUtilization summarises how much a driver was on trips
type DriverUtilization struct {
	DriverID           int64               `json:"driver_id" db:"driver_id"`
	TotalTrips         int                 `json:"total_trips" db:"total_trips"`
	CompletedTrips     int                 `json:"completed_trips" db:"completed_trips"`
	TotalMinutes       int64               `json:"total_minutes" db:"total_minutes"`
	AvgDurationMinutes decimal.NullDecimal `json:"avg_duration_minutes" db:"avg_duration_minutes"`
}

// DriverGap is the average idle time between a driver's consecutive trips
type DriverGap struct {
	DriverID      int64               `json:"driver_id" db:"driver_id"`
	Gaps          int                 `json:"gaps" db:"gaps"`
	AvgGapMinutes decimal.NullDecimal `json:"avg_gap_minutes" db:"avg_gap_minutes"`
}

// PeakDate is a calendar date and its request volume
type PeakDate struct {
	Date     time.Time `json:"date" db:"date"`
	Requests int       `json:"requests" db:"requests"`
}
