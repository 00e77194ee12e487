package summary

import (
	"context"

	"github.com/piresc/tripstats/internal/pkg/models"
)

// SummaryGW defines the interface for summary event publishing
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/tripstats/services/summary SummaryGW
type SummaryGW interface {
	PublishSummaryRefreshed(ctx context.Context, event models.SummaryRefreshedEvent) error
}
