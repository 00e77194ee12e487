package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/tripstats/internal/pkg/models"
	"github.com/piresc/tripstats/services/trips"
	"github.com/piresc/tripstats/services/trips/mocks"
	"github.com/piresc/tripstats/services/trips/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const extractHeader = "Request id,Pickup point,Driver id,Status,Request timestamp,Drop timestamp\n"

func loaderConfig(batch int) *models.Config {
	return &models.Config{Loader: models.LoaderConfig{BatchSize: batch}}
}

// collect records every batch handed to the repository and reports them all as inserted
func collect(batches *[][]models.TripRequest) func(context.Context, []models.TripRequest) (int, error) {
	return func(_ context.Context, trips []models.TripRequest) (int, error) {
		*batches = append(*batches, append([]models.TripRequest(nil), trips...))
		return len(trips), nil
	}
}

func TestLoadCSV_ParsesExtractFormats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	var batches [][]models.TripRequest
	repo.EXPECT().InsertTrips(gomock.Any(), gomock.Any()).DoAndReturn(collect(&batches)).Times(1)

	input := extractHeader +
		"619,Airport,1,Trip Completed,11/7/2016 11:51,11/7/2016 13:00\n" +
		"1807,City,1,Trip Completed,13-07-2016 08:33:16,13-07-2016 09:25:47\n" +
		"2532,Airport,NA,No Cars Available,2016-07-15 21:01:00,NA\n" +
		"3112,city,,Cancelled,2016-07-15T05:00:00Z,\n"

	uc := usecase.NewLoaderUC(loaderConfig(100), repo)
	result, err := uc.LoadCSV(context.Background(), strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 4, result.RowsRead)
	assert.Equal(t, 4, result.RowsInserted)
	assert.Zero(t, result.RowsSkipped)
	assert.Empty(t, result.RowErrors)

	require.Len(t, batches, 1)
	got := batches[0]
	require.Len(t, got, 4)

	assert.Equal(t, int64(619), got[0].RequestID)
	assert.Equal(t, models.PickupAirport, got[0].PickupPoint)
	assert.Equal(t, time.Date(2016, 7, 11, 11, 51, 0, 0, time.UTC), got[0].RequestTimestamp)
	require.NotNil(t, got[0].DropTimestamp)
	minutes, ok := got[0].TripDurationMinutes()
	assert.True(t, ok)
	assert.Equal(t, int64(69), minutes)

	assert.Equal(t, time.Date(2016, 7, 13, 8, 33, 16, 0, time.UTC), got[1].RequestTimestamp)

	assert.Nil(t, got[2].DriverID)
	assert.Nil(t, got[2].DropTimestamp)
	assert.Equal(t, models.TripStatusNoCarAvailable, got[2].Status)

	assert.Equal(t, models.PickupCity, got[3].PickupPoint)
	assert.Nil(t, got[3].DriverID)
}

func TestLoadCSV_RejectsBadRowsAndSkipsDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	var batches [][]models.TripRequest
	repo.EXPECT().InsertTrips(gomock.Any(), gomock.Any()).DoAndReturn(collect(&batches)).AnyTimes()
	repo.EXPECT().RecordDuplicates(gomock.Any(), []int64{1}).Return(nil)

	input := extractHeader +
		"1,Airport,1,Trip Completed,11/7/2016 11:51,11/7/2016 13:00\n" +
		"2,Harbour,1,Trip Completed,11/7/2016 11:51,11/7/2016 13:00\n" +
		"3,City,1,Trip Completed,yesterday,11/7/2016 13:00\n" +
		"1,Airport,1,Trip Completed,11/7/2016 12:00,11/7/2016 13:00\n" +
		"4,City,1,Trip Completed,11/7/2016 12:00,not a time\n" +
		"x,City,1,Trip Completed,11/7/2016 12:00,\n"

	uc := usecase.NewLoaderUC(loaderConfig(100), repo)
	result, err := uc.LoadCSV(context.Background(), strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 6, result.RowsRead)
	assert.Equal(t, 2, result.RowsInserted)
	assert.Equal(t, 4, result.RowsSkipped)
	assert.Equal(t, []int64{1}, result.DuplicateIDs)
	assert.Equal(t, 1, result.MalformedDrops)

	require.Len(t, result.RowErrors, 3)
	assert.Equal(t, 3, result.RowErrors[0].Line)
	assert.Contains(t, result.RowErrors[0].Reason, "pickup point")
	assert.Equal(t, 4, result.RowErrors[1].Line)
	assert.Contains(t, result.RowErrors[1].Reason, "timestamp")
	assert.Equal(t, 7, result.RowErrors[2].Line)

	require.Len(t, batches, 1)
	require.Len(t, batches[0], 2)
	assert.Nil(t, batches[0][1].DropTimestamp)
}

func TestLoadCSV_InsertsInBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	var batches [][]models.TripRequest
	repo.EXPECT().InsertTrips(gomock.Any(), gomock.Any()).DoAndReturn(collect(&batches)).Times(3)

	var b strings.Builder
	b.WriteString(extractHeader)
	for i := 1; i <= 5; i++ {
		b.WriteString(strings.Replace("ID,City,NA,Cancelled,11/7/2016 0:10,NA\n", "ID", string(rune('0'+i)), 1))
	}

	uc := usecase.NewLoaderUC(loaderConfig(2), repo)
	result, err := uc.LoadCSV(context.Background(), strings.NewReader(b.String()))

	require.NoError(t, err)
	assert.Equal(t, 5, result.RowsInserted)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 2)
	assert.Len(t, batches[1], 2)
	assert.Len(t, batches[2], 1)
}

func TestLoadCSV_ExistingRowsCountAsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	repo.EXPECT().InsertTrips(gomock.Any(), gomock.Len(2)).Return(1, nil)

	input := extractHeader +
		"1,City,NA,Cancelled,11/7/2016 0:10,NA\n" +
		"2,City,NA,Cancelled,11/7/2016 0:20,NA\n"

	uc := usecase.NewLoaderUC(loaderConfig(10), repo)
	result, err := uc.LoadCSV(context.Background(), strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 1, result.RowsInserted)
	assert.Equal(t, 1, result.RowsSkipped)
}

func TestLoadCSV_InsertFailureReturnsPartialResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	dbErr := errors.New("connection refused")
	gomock.InOrder(
		repo.EXPECT().InsertTrips(gomock.Any(), gomock.Any()).Return(1, nil),
		repo.EXPECT().InsertTrips(gomock.Any(), gomock.Any()).Return(0, dbErr),
	)

	input := extractHeader +
		"1,City,NA,Cancelled,11/7/2016 0:10,NA\n" +
		"2,City,NA,Cancelled,11/7/2016 0:20,NA\n"

	uc := usecase.NewLoaderUC(loaderConfig(1), repo)
	result, err := uc.LoadCSV(context.Background(), strings.NewReader(input))

	assert.ErrorIs(t, err, dbErr)
	require.NotNil(t, result)
	assert.Equal(t, 1, result.RowsInserted)
}

func TestLoadCSV_DuplicateLedgerFailureKeepsLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	repo.EXPECT().InsertTrips(gomock.Any(), gomock.Len(2)).Return(2, nil)
	repo.EXPECT().RecordDuplicates(gomock.Any(), []int64{5, 5}).Return(errors.New("relation does not exist"))

	input := extractHeader +
		"5,City,NA,Cancelled,11/7/2016 0:10,NA\n" +
		"6,City,NA,Cancelled,11/7/2016 0:20,NA\n" +
		"5,City,NA,Cancelled,11/7/2016 0:30,NA\n" +
		"5,Airport,NA,Cancelled,11/7/2016 0:40,NA\n"

	uc := usecase.NewLoaderUC(loaderConfig(10), repo)
	result, err := uc.LoadCSV(context.Background(), strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 2, result.RowsInserted)
	assert.Equal(t, []int64{5, 5}, result.DuplicateIDs)
}

func TestLoadCSV_HeaderValidation(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "missing request timestamp", input: "Request id,Pickup point,Driver id\n1,City,2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc := usecase.NewLoaderUC(loaderConfig(10), mocks.NewMockTripRepo(ctrl))
			result, err := uc.LoadCSV(context.Background(), strings.NewReader(tt.input))

			assert.ErrorIs(t, err, trips.ErrMalformedCSV)
			assert.Nil(t, result)
		})
	}
}

func TestLoadCSV_SnakeCaseHeaderAndBlankLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	repo.EXPECT().InsertTrips(gomock.Any(), gomock.Len(1)).Return(1, nil)

	input := "\ufeffrequest_id,pickup_point,request_timestamp\n" +
		",,\n" +
		"10,Airport,2016-07-11 00:00:00\n"

	uc := usecase.NewLoaderUC(loaderConfig(10), repo)
	result, err := uc.LoadCSV(context.Background(), strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 1, result.RowsRead)
	assert.Equal(t, 1, result.RowsInserted)
}
