package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/tripstats/internal/pkg/models"
	nrpkg "github.com/piresc/tripstats/internal/pkg/newrelic"
	"github.com/piresc/tripstats/services/trips"
)

// Report names
const (
	ReportPickupCounts      = "pickup-counts"
	ReportPickupDurations   = "pickup-durations"
	ReportHourlyDemand      = "hourly-demand"
	ReportTopDrivers        = "top-drivers"
	ReportDriverUtilization = "driver-utilization"
	ReportDriverGaps        = "driver-gaps"
	ReportPeakDates         = "peak-dates"
)

// DefaultReportLimit applies to top-N reports called with limit 0
const DefaultReportLimit = 10

type reportFunc func(ctx context.Context, limit int) (interface{}, error)

// reportUC implements trips.ReportUC
type reportUC struct {
	reportRepo trips.ReportRepo
	reports    map[string]reportFunc
	names      []string
}

// NewReportUC creates a new report use case
func NewReportUC(reportRepo trips.ReportRepo) trips.ReportUC {
	uc := &reportUC{reportRepo: reportRepo}
	uc.names = []string{
		ReportPickupCounts,
		ReportPickupDurations,
		ReportHourlyDemand,
		ReportTopDrivers,
		ReportDriverUtilization,
		ReportDriverGaps,
		ReportPeakDates,
	}
	uc.reports = map[string]reportFunc{
		ReportPickupCounts: func(ctx context.Context, _ int) (interface{}, error) {
			return uc.reportRepo.PickupCounts(ctx)
		},
		ReportPickupDurations: func(ctx context.Context, _ int) (interface{}, error) {
			return uc.reportRepo.PickupDurations(ctx)
		},
		ReportHourlyDemand: func(ctx context.Context, _ int) (interface{}, error) {
			return uc.hourlyDemand(ctx)
		},
		ReportTopDrivers: func(ctx context.Context, limit int) (interface{}, error) {
			return uc.reportRepo.TopDrivers(ctx, limit)
		},
		ReportDriverUtilization: func(ctx context.Context, limit int) (interface{}, error) {
			return uc.reportRepo.DriverUtilization(ctx, limit)
		},
		ReportDriverGaps: func(ctx context.Context, limit int) (interface{}, error) {
			return uc.reportRepo.DriverGaps(ctx, limit)
		},
		ReportPeakDates: func(ctx context.Context, limit int) (interface{}, error) {
			return uc.reportRepo.PeakDates(ctx, limit)
		},
	}
	return uc
}

// ReportNames lists the available reports in display order
func (uc *reportUC) ReportNames() []string {
	return append([]string(nil), uc.names...)
}

// Report runs the named report
func (uc *reportUC) Report(ctx context.Context, name string, limit int) (interface{}, error) {
	run, ok := uc.reports[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", trips.ErrUnknownReport, name)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", trips.ErrInvalidLimit, limit)
	}
	if limit == 0 {
		limit = DefaultReportLimit
	}

	out, err := nrpkg.WithSegmentAndReturn(ctx, "Report."+name, func() (interface{}, error) {
		return run(ctx, limit)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// hourlyDemand returns all 24 hours, with zero for hours that had no requests
func (uc *reportUC) hourlyDemand(ctx context.Context) ([]models.HourlyDemand, error) {
	rows, err := uc.reportRepo.HourlyDemand(ctx)
	if err != nil {
		return nil, err
	}
	hours := make([]models.HourlyDemand, 24)
	for h := range hours {
		hours[h].Hour = h
	}
	for _, row := range rows {
		if row.Hour < 0 || row.Hour > 23 {
			continue
		}
		hours[row.Hour].Requests += row.Requests
	}
	return hours, nil
}
