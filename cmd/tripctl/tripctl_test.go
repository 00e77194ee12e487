package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	httpclient "github.com/piresc/tripstats/internal/pkg/http"
	natstest "github.com/nats-io/nats-server/v2/test"
	"github.com/piresc/tripstats/internal/pkg/models"
	natspkg "github.com/piresc/tripstats/internal/pkg/nats"
	summaryHandler "github.com/piresc/tripstats/services/summary/handler"
	summaryNATS "github.com/piresc/tripstats/services/summary/handler/nats"
	"github.com/piresc/tripstats/services/summary/mocks"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startService(t *testing.T, uc *mocks.MockSummaryUC) *natspkg.Client {
	t.Helper()

	opts := natstest.DefaultTestOptions
	opts.Port = -1
	srv := natstest.RunServer(&opts)
	t.Cleanup(srv.Shutdown)

	serviceConn, err := natspkg.NewClient(srv.ClientURL())
	require.NoError(t, err)
	t.Cleanup(serviceConn.Close)

	cfg := &models.Config{
		NATS:    models.NATSConfig{QueueGroup: "tripstats"},
		Summary: models.SummaryConfig{RefreshTimeout: time.Second},
	}
	h := summaryNATS.NewSummaryHandler(uc, serviceConn, cfg, nil)
	require.NoError(t, h.InitNATSConsumers())
	t.Cleanup(h.Close)
	require.NoError(t, serviceConn.Flush())

	cliConn, err := natspkg.NewClient(srv.ClientURL())
	require.NoError(t, err)
	t.Cleanup(cliConn.Close)
	return cliConn
}

func TestRemoteRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockSummaryUC(ctrl)
	want := &models.RefreshResult{RunID: uuid.New(), TripsScanned: 6745, RowsWritten: 5}
	uc.EXPECT().Refresh(gomock.Any()).Return(want, nil)

	nc := startService(t, uc)

	got, err := remoteRefresh(nc, "cron", 2*time.Second)

	require.NoError(t, err)
	assert.Equal(t, want.RunID, got.RunID)
	assert.Equal(t, 5, got.RowsWritten)
}

func TestRemoteRefresh_ServiceReportsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockSummaryUC(ctrl)
	uc.EXPECT().Refresh(gomock.Any()).Return(nil, errors.New("persistence failure"))

	nc := startService(t, uc)

	got, err := remoteRefresh(nc, "cron", 2*time.Second)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "persistence failure")
}

func TestRemoteRefresh_NoResponder(t *testing.T) {
	opts := natstest.DefaultTestOptions
	opts.Port = -1
	srv := natstest.RunServer(&opts)
	defer srv.Shutdown()

	nc, err := natspkg.NewClient(srv.ClientURL())
	require.NoError(t, err)
	defer nc.Close()

	_, err = remoteRefresh(nc, "cron", 200*time.Millisecond)
	require.Error(t, err)
}

func startHTTPService(t *testing.T, uc *mocks.MockSummaryUC) string {
	t.Helper()

	cfg := &models.Config{APIKey: models.APIKeyConfig{Admin: "admin-key"}}
	e := echo.New()
	summaryHandler.NewHandler(uc, nil, cfg, nil).RegisterRoutes(e, nil)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestHTTPRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockSummaryUC(ctrl)
	want := &models.RefreshResult{RunID: uuid.New(), TripsScanned: 6745, RowsWritten: 5}
	uc.EXPECT().Refresh(gomock.Any()).Return(want, nil)

	url := startHTTPService(t, uc)

	got, err := httpRefresh(context.Background(), httpclient.NewAPIKeyClient(url, "admin-key", time.Second))

	require.NoError(t, err)
	assert.Equal(t, want.RunID, got.RunID)
	assert.Equal(t, 6745, got.TripsScanned)
}

func TestHTTPRefresh_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	url := startHTTPService(t, mocks.NewMockSummaryUC(ctrl))

	got, err := httpRefresh(context.Background(), httpclient.NewAPIKeyClient(url, "nope", time.Second))

	assert.Nil(t, got)
	var statusErr *httpclient.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
}

func TestOpenInput(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("Request id\n"))

	in, err := openInput(cmd, "-")
	require.NoError(t, err)
	b, err := io.ReadAll(in)
	require.NoError(t, err)
	assert.Equal(t, "Request id\n", string(b))
	require.NoError(t, in.Close())

	_, err = openInput(cmd, t.TempDir()+"/missing.csv")
	assert.Error(t, err)
}

func TestPrintJSON(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, printJSON(cmd, map[string]int{"rows_read": 2}))
	assert.Equal(t, "{\n  \"rows_read\": 2\n}\n", out.String())
}

func TestArgsValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown report", args: []string{"report", "revenue"}},
		{name: "report without name", args: []string{"report"}},
		{name: "unknown check", args: []string{"quality", "orphans"}},
		{name: "load without file", args: []string{"load"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			rootCmd.SetOut(io.Discard)
			rootCmd.SetErr(io.Discard)
			t.Cleanup(func() { rootCmd.SetArgs(nil) })

			assert.Error(t, rootCmd.Execute())
		})
	}
}
