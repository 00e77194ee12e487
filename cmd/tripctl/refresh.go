package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/tripstats/internal/pkg/constants"
	httpclient "github.com/piresc/tripstats/internal/pkg/http"
	"github.com/piresc/tripstats/internal/pkg/middleware"
	"github.com/piresc/tripstats/internal/pkg/models"
	"github.com/piresc/tripstats/internal/pkg/nats"
	summaryNATS "github.com/piresc/tripstats/services/summary/handler/nats"
	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Recompute the daily summaries",
	Long: `Recomputes daily_summary from every trip request and swaps it in atomically.

By default the refresh runs in this process. With --remote the request is sent
over NATS to a running tripstats service and the command waits for its reply.
With --url it is sent to the service's HTTP refresh route instead, using
ADMIN_API_KEY (or SCHEDULER_API_KEY) unless --api-key is given.`,
	Example: "  tripctl refresh\n  tripctl refresh --remote --timeout 2m\n  tripctl refresh --url http://tripstats:9995",
	Args:    cobra.NoArgs,
	RunE:    runRefresh,
}

var refreshFlags struct {
	remote      bool
	url         string
	apiKey      string
	timeout     time.Duration
	requestedBy string
}

func init() {
	refreshCmd.Flags().BoolVar(&refreshFlags.remote, "remote", false, "ask a running service to refresh over NATS")
	refreshCmd.Flags().StringVar(&refreshFlags.url, "url", "", "base url of a running service to refresh over HTTP")
	refreshCmd.Flags().StringVar(&refreshFlags.apiKey, "api-key", "", "API key for --url, defaults to ADMIN_API_KEY")
	refreshCmd.MarkFlagsMutuallyExclusive("remote", "url")
	refreshCmd.Flags().DurationVar(&refreshFlags.timeout, "timeout", 5*time.Minute, "how long to wait for a remote refresh")
	refreshCmd.Flags().StringVar(&refreshFlags.requestedBy, "requested-by", "tripctl", "caller name recorded with a remote refresh")
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, _ []string) error {
	if refreshFlags.url != "" {
		apiKey := refreshFlags.apiKey
		if apiKey == "" {
			apiKey = cli.cfg.APIKey.Admin
		}
		if apiKey == "" {
			apiKey = cli.cfg.APIKey.Scheduler
		}
		client := httpclient.NewAPIKeyClient(refreshFlags.url, apiKey, refreshFlags.timeout)
		result, err := httpRefresh(cmd.Context(), client)
		if err != nil {
			return err
		}
		return printJSON(cmd, result)
	}

	if refreshFlags.remote {
		nc, err := cli.natsClient()
		if err != nil {
			return err
		}
		result, err := remoteRefresh(nc, refreshFlags.requestedBy, refreshFlags.timeout)
		if err != nil {
			return err
		}
		return printJSON(cmd, result)
	}

	uc, err := cli.summaryUC()
	if err != nil {
		return err
	}
	result, err := uc.Refresh(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(cmd, result)
}

// remoteRefresh triggers a refresh on whichever service instance picks up the request
func remoteRefresh(nc *nats.Client, requestedBy string, timeout time.Duration) (*models.RefreshResult, error) {
	payload, err := json.Marshal(models.SummaryRefreshRequest{RequestedBy: requestedBy})
	if err != nil {
		return nil, err
	}

	msg, err := nc.Request(constants.SubjectSummaryRefreshRequested, payload, timeout)
	if err != nil {
		return nil, err
	}

	var reply summaryNATS.RefreshReply
	if err := json.Unmarshal(msg.Data, &reply); err != nil {
		return nil, fmt.Errorf("malformed refresh reply: %w", err)
	}
	if !reply.Success {
		return nil, errors.New("remote refresh failed: " + reply.Error)
	}
	return reply.Result, nil
}

// httpRefresh calls the service's refresh route and waits for the run to finish
func httpRefresh(ctx context.Context, client *httpclient.APIKeyClient) (*models.RefreshResult, error) {
	ctx = middleware.WithRequestID(ctx, uuid.NewString())

	var result models.RefreshResult
	if err := client.PostJSON(ctx, "/internal/summary/refresh", nil, &result); err != nil {
		return nil, fmt.Errorf("remote refresh failed: %w", err)
	}
	return &result, nil
}
