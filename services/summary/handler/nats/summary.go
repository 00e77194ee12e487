package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/tripstats/internal/pkg/constants"
	"github.com/piresc/tripstats/internal/pkg/logger"
	"github.com/piresc/tripstats/internal/pkg/models"
	natspkg "github.com/piresc/tripstats/internal/pkg/nats"
	nrpkg "github.com/piresc/tripstats/internal/pkg/newrelic"
	"github.com/piresc/tripstats/services/summary"
)

// RefreshReply is sent back to requesters that set a reply subject
type RefreshReply struct {
	Success bool                  `json:"success"`
	Result  *models.RefreshResult `json:"result,omitempty"`
	Error   string                `json:"error,omitempty"`
}

// SummaryHandler consumes refresh triggers from NATS
type SummaryHandler struct {
	summaryUC  summary.SummaryUC
	natsClient *natspkg.Client
	cfg        *models.Config
	nrApp      *newrelic.Application
	subs       []*nats.Subscription
}

// NewSummaryHandler creates a new summary NATS handler
func NewSummaryHandler(
	summaryUC summary.SummaryUC,
	client *natspkg.Client,
	cfg *models.Config,
	nrApp *newrelic.Application,
) *SummaryHandler {
	return &SummaryHandler{
		summaryUC:  summaryUC,
		natsClient: client,
		cfg:        cfg,
		nrApp:      nrApp,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers subscribes to refresh triggers in the service's queue group
func (h *SummaryHandler) InitNATSConsumers() error {
	queue := h.cfg.NATS.QueueGroup
	sub, err := h.natsClient.QueueSubscribe(constants.SubjectSummaryRefreshRequested, queue, h.handleRefreshRequested)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", constants.SubjectSummaryRefreshRequested, err)
	}
	h.subs = append(h.subs, sub)

	logger.Info("Listening for summary refresh requests",
		logger.String("subject", constants.SubjectSummaryRefreshRequested),
		logger.String("queue", queue))
	return nil
}

// Close unsubscribes every consumer
func (h *SummaryHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.String("subject", sub.Subject), logger.Err(err))
		}
	}
	h.subs = nil
}

func (h *SummaryHandler) handleRefreshRequested(msg *nats.Msg) {
	ctx, txn := nrpkg.StartTransaction(context.Background(), h.nrApp, "NATS."+constants.SubjectSummaryRefreshRequested)
	defer nrpkg.EndTransaction(txn)

	var req models.SummaryRefreshRequest
	if len(msg.Data) > 0 {
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			logger.Warn("Ignoring malformed refresh request", logger.Err(err))
			h.reply(msg, RefreshReply{Error: "malformed refresh request: " + err.Error()})
			return
		}
	}

	timeout := h.cfg.Summary.RefreshTimeout
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logger.InfoCtx(ctx, "Summary refresh requested over NATS", logger.String("requested_by", req.RequestedBy))

	result, err := h.summaryUC.Refresh(ctx)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.ErrorCtx(ctx, "NATS-triggered summary refresh failed", logger.Err(err))
		h.reply(msg, RefreshReply{Error: err.Error()})
		return
	}

	h.reply(msg, RefreshReply{Success: true, Result: result})
}

func (h *SummaryHandler) reply(msg *nats.Msg, reply RefreshReply) {
	if msg.Reply == "" {
		return
	}
	data, err := json.Marshal(reply)
	if err != nil {
		logger.Error("Failed to marshal refresh reply", logger.Err(err))
		return
	}
	if err := msg.Respond(data); err != nil {
		logger.Warn("Failed to send refresh reply", logger.Err(err))
	}
}
