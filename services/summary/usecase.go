package summary

import (
	"context"

	"github.com/piresc/tripstats/internal/pkg/models"
)

// SummaryUC defines the interface for the daily summary business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/tripstats/services/summary SummaryUC
type SummaryUC interface {
	// Refresh recomputes every daily summary from the trip requests and replaces the stored set
	Refresh(ctx context.Context) (*models.RefreshResult, error)
	GetSummaries(ctx context.Context, rng models.DateRange) ([]models.DailySummary, error)
}
