package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/tripstats/internal/pkg/models"
	nrpkg "github.com/piresc/tripstats/internal/pkg/newrelic"
	"github.com/piresc/tripstats/services/trips"
)

// Quality check names
const (
	CheckAnomalies  = "anomalies"
	CheckNulls      = "nulls"
	CheckDuplicates = "duplicates"
)

// DefaultMaxDurationMinutes flags trips longer than three hours
const DefaultMaxDurationMinutes = 180

// qualityUC implements trips.QualityUC
type qualityUC struct {
	cfg         *models.Config
	qualityRepo trips.QualityRepo
}

// NewQualityUC creates a new data-quality use case
func NewQualityUC(cfg *models.Config, qualityRepo trips.QualityRepo) trips.QualityUC {
	return &qualityUC{
		cfg:         cfg,
		qualityRepo: qualityRepo,
	}
}

// CheckNames lists the available checks
func (uc *qualityUC) CheckNames() []string {
	return []string{CheckAnomalies, CheckNulls, CheckDuplicates}
}

// Check runs the named data-quality check
func (uc *qualityUC) Check(ctx context.Context, name string) (interface{}, error) {
	out, err := nrpkg.WithSegmentAndReturn(ctx, "Quality."+name, func() (interface{}, error) {
		switch name {
		case CheckAnomalies:
			return uc.qualityRepo.DurationAnomalies(ctx, uc.maxDuration())
		case CheckNulls:
			return uc.qualityRepo.NullAudit(ctx)
		case CheckDuplicates:
			return uc.qualityRepo.DuplicateKeys(ctx)
		}
		return nil, fmt.Errorf("%w: %q", trips.ErrUnknownCheck, name)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *qualityUC) maxDuration() int {
	if uc.cfg.Quality.MaxDurationMinutes > 0 {
		return uc.cfg.Quality.MaxDurationMinutes
	}
	return DefaultMaxDurationMinutes
}
