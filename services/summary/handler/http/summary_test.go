package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/tripstats/internal/pkg/models"
	"github.com/piresc/tripstats/internal/utils"
	"github.com/piresc/tripstats/services/summary"
	"github.com/piresc/tripstats/services/summary/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetSummaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSummaryUC(ctrl)
	h := NewSummaryHandler(mockUC)

	t.Run("with range", func(t *testing.T) {
		want := models.DateRange{
			From: time.Date(2016, 7, 11, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2016, 7, 15, 0, 0, 0, 0, time.UTC),
		}
		mockUC.EXPECT().GetSummaries(gomock.Any(), want).Return([]models.DailySummary{
			{SummaryDate: want.From, TotalTrips: 2, AirportTrips: 2},
		}, nil)

		c, rec := newRequest(http.MethodGet, "/v1/summary?from=2016-07-11&to=2016-07-15")
		require.NoError(t, h.GetSummaries(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp utils.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 1, resp.Meta.Count)
	})

	t.Run("bad date", func(t *testing.T) {
		c, rec := newRequest(http.MethodGet, "/v1/summary?from=11-07-2016")
		require.NoError(t, h.GetSummaries(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("inverted range from use case", func(t *testing.T) {
		mockUC.EXPECT().GetSummaries(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: to before from", summary.ErrInvalidDateRange))

		c, rec := newRequest(http.MethodGet, "/v1/summary")
		require.NoError(t, h.GetSummaries(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockUC.EXPECT().GetSummaries(gomock.Any(), models.DateRange{}).Return(nil, errors.New("db down"))

		c, rec := newRequest(http.MethodGet, "/v1/summary")
		require.NoError(t, h.GetSummaries(c))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestRefresh(t *testing.T) {
	tests := []struct {
		name       string
		result     *models.RefreshResult
		err        error
		wantStatus int
	}{
		{
			name:       "success",
			result:     &models.RefreshResult{RunID: uuid.New(), TripsScanned: 6745, RowsWritten: 5},
			wantStatus: http.StatusOK,
		},
		{
			name:       "scan failure",
			err:        fmt.Errorf("%w: %w", summary.ErrInputRead, errors.New("timeout")),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "persistence failure",
			err:        fmt.Errorf("%w: %w", summary.ErrPersistence, errors.New("deadlock")),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "cancelled while waiting",
			err:        fmt.Errorf("%w: %w", summary.ErrRefreshCancelled, context.Canceled),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUC := mocks.NewMockSummaryUC(ctrl)
			h := NewSummaryHandler(mockUC)

			mockUC.EXPECT().Refresh(gomock.Any()).Return(tt.result, tt.err)

			c, rec := newRequest(http.MethodPost, "/internal/summary/refresh")
			require.NoError(t, h.Refresh(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.result != nil {
				var resp struct {
					Success bool                 `json:"success"`
					Data    models.RefreshResult `json:"data"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, tt.result.RunID, resp.Data.RunID)
				assert.Equal(t, 5, resp.Data.RowsWritten)
			}
		})
	}
}
