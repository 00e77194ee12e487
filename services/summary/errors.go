package summary

import "errors"

var (
	// ErrInputRead means the trip scan failed; nothing was written
	ErrInputRead = errors.New("failed to read trip requests")
	// ErrPersistence means the summary replace failed and was rolled back
	ErrPersistence = errors.New("failed to persist daily summaries")
	// ErrRefreshCancelled means the caller gave up waiting for a running refresh
	ErrRefreshCancelled = errors.New("refresh cancelled while waiting for the running refresh")
	ErrInvalidDateRange = errors.New("invalid date range")
	// ErrUnknownPickupPoint means a trip carried a pickup point outside Airport and City
	ErrUnknownPickupPoint = errors.New("unknown pickup point")
)
