package summary

import (
	"context"

	"github.com/piresc/tripstats/internal/pkg/models"
)

// SummaryRepo defines the interface for daily summary storage
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/tripstats/services/summary SummaryRepo,TripSource
type SummaryRepo interface {
	// AcquireRefreshLock blocks until no other process is refreshing and returns the release func
	AcquireRefreshLock(ctx context.Context) (func(context.Context) error, error)
	// ReplaceAll atomically swaps the whole summary set for rows
	ReplaceAll(ctx context.Context, rows []models.DailySummary) error
	ReadAll(ctx context.Context, rng models.DateRange) ([]models.DailySummary, error)
}

// TripSource streams trip requests to fn in request order. A non-nil error from fn stops the scan.
type TripSource interface {
	ScanTrips(ctx context.Context, rng models.DateRange, fn func(models.TripRequest) error) error
}
