package trips

import (
	"context"

	"github.com/piresc/tripstats/internal/pkg/models"
)

// TripRepo defines the interface for trip request storage
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/tripstats/services/trips TripRepo,ReportRepo,QualityRepo
type TripRepo interface {
	ScanTrips(ctx context.Context, rng models.DateRange, fn func(models.TripRequest) error) error
	// InsertTrips stores trips, ignoring ids that already exist, and returns how many were new
	InsertTrips(ctx context.Context, trips []models.TripRequest) (int, error)
	// RecordDuplicates notes request ids an extract repeated
	RecordDuplicates(ctx context.Context, ids []int64) error
}

// ReportRepo defines the read-only reporting queries
type ReportRepo interface {
	PickupCounts(ctx context.Context) ([]models.PickupPointCount, error)
	PickupDurations(ctx context.Context) ([]models.PickupPointDuration, error)
	HourlyDemand(ctx context.Context) ([]models.HourlyDemand, error)
	TopDrivers(ctx context.Context, limit int) ([]models.DriverTripCount, error)
	DriverUtilization(ctx context.Context, limit int) ([]models.DriverUtilization, error)
	DriverGaps(ctx context.Context, limit int) ([]models.DriverGap, error)
	PeakDates(ctx context.Context, limit int) ([]models.PeakDate, error)
}

// QualityRepo defines the read-only data-quality queries
type QualityRepo interface {
	DurationAnomalies(ctx context.Context, maxMinutes int) ([]models.DurationAnomaly, error)
	NullAudit(ctx context.Context) (*models.NullFieldAudit, error)
	DuplicateKeys(ctx context.Context) ([]models.DuplicateKey, error)
}
