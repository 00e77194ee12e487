package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/tripstats/internal/pkg/database"
	"github.com/piresc/tripstats/internal/pkg/logger"
	"github.com/piresc/tripstats/internal/pkg/models"
	nrpkg "github.com/piresc/tripstats/internal/pkg/newrelic"
	"github.com/piresc/tripstats/internal/pkg/retry"
	"github.com/piresc/tripstats/services/summary"
)

// detachedTimeout bounds work that must finish after the caller's ctx has ended
const detachedTimeout = 10 * time.Second

// summaryUC implements summary.SummaryUC
type summaryUC struct {
	cfg     *models.Config
	repo    summary.SummaryRepo
	trips   summary.TripSource
	cache   summary.SummaryCache
	gw      summary.SummaryGW
	retrier *retry.Retrier
	// single refresh slot; holding the token means owning the refresh
	slot chan struct{}
	now  func() time.Time
}

// Option customises the summary use case
type Option func(*summaryUC)

// WithClock replaces time.Now, mostly for tests
func WithClock(now func() time.Time) Option {
	return func(uc *summaryUC) {
		uc.now = now
	}
}

// NewSummaryUC creates a new summary use case. cache and gw may be nil.
func NewSummaryUC(
	cfg *models.Config,
	repo summary.SummaryRepo,
	trips summary.TripSource,
	cache summary.SummaryCache,
	gw summary.SummaryGW,
	opts ...Option,
) (summary.SummaryUC, error) {
	if repo == nil || trips == nil {
		return nil, fmt.Errorf("summary use case needs a summary repository and a trip source")
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.Summary.RetryAttempts
	if cfg.Summary.RetryBaseDelay > 0 {
		retryCfg.BaseDelay = cfg.Summary.RetryBaseDelay
	}
	retryCfg.RetryableFunc = database.IsTransient

	uc := &summaryUC{
		cfg:     cfg,
		repo:    repo,
		trips:   trips,
		cache:   cache,
		gw:      gw,
		retrier: retry.New(retryCfg, logger.GetGlobalLogger()),
		slot:    make(chan struct{}, 1),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc, nil
}

// Refresh recomputes the daily summaries and swaps them in. Concurrent callers queue on
// the refresh slot; a caller whose ctx ends while queued gets ErrRefreshCancelled.
func (uc *summaryUC) Refresh(ctx context.Context) (*models.RefreshResult, error) {
	if err := uc.acquire(ctx); err != nil {
		return nil, err
	}
	defer uc.release()

	if timeout := uc.cfg.Summary.RefreshTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	release, err := uc.repo.AcquireRefreshLock(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", summary.ErrRefreshCancelled, ctxErr)
		}
		return nil, fmt.Errorf("%w: %w", summary.ErrPersistence, err)
	}
	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), detachedTimeout)
		defer cancel()
		if err := release(releaseCtx); err != nil {
			logger.ErrorCtx(ctx, "Failed to release summary refresh lock", logger.Err(err))
		}
	}()

	// stamped under the lock so start order matches commit order across processes
	runID := uuid.New()
	startedAt := uc.now()
	logger.InfoCtx(ctx, "Starting daily summary refresh", logger.String("run_id", runID.String()))

	acc := NewAccumulator()
	err = nrpkg.WithSegment(ctx, "Summary.ScanTrips", func() error {
		return uc.trips.ScanTrips(ctx, models.DateRange{}, acc.Add)
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Trip scan failed, summary store left untouched",
			logger.String("run_id", runID.String()),
			logger.Int("trips_scanned", acc.Trips()),
			logger.Err(err))
		return nil, fmt.Errorf("%w: %w", summary.ErrInputRead, err)
	}

	rows := acc.Result(startedAt)

	err = nrpkg.WithSegment(ctx, "Summary.ReplaceAll", func() error {
		return uc.retrier.Execute(ctx, func(ctx context.Context) error {
			return uc.repo.ReplaceAll(ctx, rows)
		})
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Summary replace failed, previous summaries kept",
			logger.String("run_id", runID.String()),
			logger.Int("rows", len(rows)),
			logger.Err(err))
		return nil, fmt.Errorf("%w: %w", summary.ErrPersistence, err)
	}

	finishedAt := uc.now()
	result := &models.RefreshResult{
		RunID:        runID,
		TripsScanned: acc.Trips(),
		RowsWritten:  len(rows),
		StartedAt:    startedAt,
		FinishedAt:   finishedAt,
		Duration:     finishedAt.Sub(startedAt),
	}

	logger.InfoCtx(ctx, "Daily summary refresh committed",
		logger.String("run_id", runID.String()),
		logger.Int("trips_scanned", result.TripsScanned),
		logger.Int("rows_written", result.RowsWritten),
		logger.Duration("duration", result.Duration))

	// the commit has landed, so the cache must follow it even if the caller is gone
	afterCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), detachedTimeout)
	defer cancel()
	uc.afterCommit(afterCtx, rows, result)
	return result, nil
}

// GetSummaries returns the stored summaries within rng, preferring the cache
func (uc *summaryUC) GetSummaries(ctx context.Context, rng models.DateRange) ([]models.DailySummary, error) {
	if !rng.From.IsZero() && !rng.To.IsZero() && rng.To.Before(rng.From) {
		return nil, fmt.Errorf("%w: to %s is before from %s", summary.ErrInvalidDateRange,
			rng.To.Format(models.DateLayout), rng.From.Format(models.DateLayout))
	}

	if uc.cache == nil {
		return uc.repo.ReadAll(ctx, rng)
	}

	cached, ok, err := uc.cache.Get(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Summary cache read failed, falling back to database", logger.Err(err))
	} else if ok {
		return filterRange(cached, rng), nil
	}

	rows, err := uc.repo.ReadAll(ctx, models.DateRange{})
	if err != nil {
		return nil, err
	}

	if _, err := uc.cache.Fill(ctx, rows, latestUpdate(rows)); err != nil {
		logger.WarnCtx(ctx, "Failed to fill summary cache", logger.Err(err))
	}

	return filterRange(rows, rng), nil
}

func (uc *summaryUC) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", summary.ErrRefreshCancelled, err)
	}
	select {
	case uc.slot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", summary.ErrRefreshCancelled, ctx.Err())
	}
}

func (uc *summaryUC) release() {
	<-uc.slot
}

// afterCommit pushes the new set to the cache and announces it. Failures are only logged.
func (uc *summaryUC) afterCommit(ctx context.Context, rows []models.DailySummary, result *models.RefreshResult) {
	if uc.cache != nil {
		if err := uc.cache.Put(ctx, rows, result.StartedAt); err != nil {
			logger.WarnCtx(ctx, "Failed to write summaries to cache, invalidating", logger.Err(err))
			if err := uc.cache.Invalidate(ctx); err != nil {
				logger.ErrorCtx(ctx, "Failed to invalidate summary cache", logger.Err(err))
			}
		}
	}

	if uc.gw != nil {
		event := models.SummaryRefreshedEvent{
			RunID:        result.RunID.String(),
			TripsScanned: result.TripsScanned,
			RowsWritten:  result.RowsWritten,
			RefreshedAt:  result.FinishedAt,
			DurationMs:   result.Duration.Milliseconds(),
		}
		if len(rows) > 0 {
			event.FirstDate = rows[0].SummaryDate.Format(models.DateLayout)
			event.LastDate = rows[len(rows)-1].SummaryDate.Format(models.DateLayout)
		}
		if err := uc.gw.PublishSummaryRefreshed(ctx, event); err != nil {
			logger.WarnCtx(ctx, "Failed to publish summary refreshed event",
				logger.String("run_id", event.RunID),
				logger.Err(err))
		}
	}
}

func filterRange(rows []models.DailySummary, rng models.DateRange) []models.DailySummary {
	if rng.IsZero() {
		return rows
	}
	filtered := make([]models.DailySummary, 0, len(rows))
	for _, row := range rows {
		if rng.Contains(row.SummaryDate) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func latestUpdate(rows []models.DailySummary) time.Time {
	var latest time.Time
	for _, row := range rows {
		if row.LastUpdated.After(latest) {
			latest = row.LastUpdated
		}
	}
	return latest
}
