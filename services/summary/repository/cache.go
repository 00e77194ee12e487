package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/tripstats/internal/pkg/circuitbreaker"
	"github.com/piresc/tripstats/internal/pkg/constants"
	"github.com/piresc/tripstats/internal/pkg/models"
)

const defaultCacheTTL = 10 * time.Minute

type cachedSummaries struct {
	RefreshedAt time.Time             `json:"refreshed_at"`
	Rows        []models.DailySummary `json:"rows"`
}

// SummaryCache keeps the latest summary set in Redis under a single key.
// Calls go through a circuit breaker; while it is open every method fails fast
// with circuitbreaker.ErrCircuitBreakerOpen and readers fall back to Postgres.
type SummaryCache struct {
	client  *redis.Client
	key     string
	ttl     time.Duration
	breaker *circuitbreaker.CircuitBreaker
}

// NewSummaryCache creates a new Redis-backed summary cache
func NewSummaryCache(cfg *models.Config, client *redis.Client) *SummaryCache {
	ttl := cfg.Summary.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &SummaryCache{
		client: client,
		key:    constants.KeyDailySummaryAll,
		ttl:    ttl,
		breaker: circuitbreaker.New(circuitbreaker.Config{
			Name:             "summary-cache",
			FailureThreshold: uint32(max(cfg.Summary.CacheBreakerThreshold, 0)),
			Timeout:          cfg.Summary.CacheBreakerTimeout,
		}, nil),
	}
}

// BreakerState reports whether Redis calls are currently being skipped
func (c *SummaryCache) BreakerState() circuitbreaker.State {
	return c.breaker.State()
}

// Get returns the cached summary set
func (c *SummaryCache) Get(ctx context.Context) ([]models.DailySummary, bool, error) {
	var data []byte
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		data, err = c.client.Get(ctx, c.key).Bytes()
		if err == redis.Nil {
			data = nil
			return nil
		}
		return err
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to read summary cache: %w", err)
	}
	if data == nil {
		return nil, false, nil
	}

	var entry cachedSummaries
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false, fmt.Errorf("failed to decode summary cache: %w", err)
	}
	return entry.Rows, true, nil
}

// Fill stores rows only if the key is absent, so a late reader never overwrites a refresh
func (c *SummaryCache) Fill(ctx context.Context, rows []models.DailySummary, refreshedAt time.Time) (bool, error) {
	data, err := encode(rows, refreshedAt)
	if err != nil {
		return false, err
	}
	var ok bool
	err = c.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		ok, err = c.client.SetNX(ctx, c.key, data, c.ttl).Result()
		return err
	})
	if err != nil {
		return false, fmt.Errorf("failed to fill summary cache: %w", err)
	}
	return ok, nil
}

// Put stores rows unless the cached entry comes from a later refresh
func (c *SummaryCache) Put(ctx context.Context, rows []models.DailySummary, refreshedAt time.Time) error {
	data, err := encode(rows, refreshedAt)
	if err != nil {
		return err
	}

	err = c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.put(ctx, data, refreshedAt)
	})
	if err != nil {
		return fmt.Errorf("failed to write summary cache: %w", err)
	}
	return nil
}

func (c *SummaryCache) put(ctx context.Context, data []byte, refreshedAt time.Time) error {
	return c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, c.key).Bytes()
		if err != nil && err != redis.Nil {
			return err
		}
		if err == nil {
			var existing cachedSummaries
			if json.Unmarshal(current, &existing) == nil && existing.RefreshedAt.After(refreshedAt) {
				return nil
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, c.key, data, c.ttl)
			return nil
		})
		return err
	}, c.key)
}

// Invalidate drops the cached set
func (c *SummaryCache) Invalidate(ctx context.Context) error {
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.client.Del(ctx, c.key).Err()
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate summary cache: %w", err)
	}
	return nil
}

func encode(rows []models.DailySummary, refreshedAt time.Time) ([]byte, error) {
	if rows == nil {
		rows = []models.DailySummary{}
	}
	data, err := json.Marshal(cachedSummaries{RefreshedAt: refreshedAt, Rows: rows})
	if err != nil {
		return nil, fmt.Errorf("failed to encode summaries: %w", err)
	}
	return data, nil
}
