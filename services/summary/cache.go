package summary

import (
	"context"
	"time"

	"github.com/piresc/tripstats/internal/pkg/models"
)

// SummaryCache holds the full summary set of the latest refresh
// go:generate mockgen -destination=mocks/mock_cache.go -package=mocks github.com/piresc/tripstats/services/summary SummaryCache
type SummaryCache interface {
	// Get returns the cached set; ok is false on a miss
	Get(ctx context.Context) (rows []models.DailySummary, ok bool, err error)
	// Fill stores rows only when nothing is cached; it reports whether it wrote
	Fill(ctx context.Context, rows []models.DailySummary, refreshedAt time.Time) (bool, error)
	// Put stores rows unless the cache already holds a newer refresh
	Put(ctx context.Context, rows []models.DailySummary, refreshedAt time.Time) error
	Invalidate(ctx context.Context) error
}
