package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/tripstats/internal/pkg/constants"
	"github.com/piresc/tripstats/internal/pkg/models"
	natspkg "github.com/piresc/tripstats/internal/pkg/nats"
	nrpkg "github.com/piresc/tripstats/internal/pkg/newrelic"
	"github.com/piresc/tripstats/services/summary"
)

// SummaryGW handles NATS publishing for summary events
type SummaryGW struct {
	natsClient *natspkg.Client
}

// NewSummaryGW creates a new summary gateway
func NewSummaryGW(client *natspkg.Client) summary.SummaryGW {
	return &SummaryGW{
		natsClient: client,
	}
}

// PublishSummaryRefreshed announces a committed refresh on summary.refreshed
func (g *SummaryGW) PublishSummaryRefreshed(ctx context.Context, event models.SummaryRefreshedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal summary refreshed event: %w", err)
	}

	return nrpkg.WithSegment(ctx, "NATS.Publish."+constants.SubjectSummaryRefreshed, func() error {
		return g.natsClient.Publish(constants.SubjectSummaryRefreshed, data)
	})
}
