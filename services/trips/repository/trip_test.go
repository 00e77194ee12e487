package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/tripstats/internal/pkg/models"
	"github.com/piresc/tripstats/services/trips/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tripCols = []string{"request_id", "pickup_point", "driver_id", "status", "request_timestamp", "drop_timestamp"}

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "pgx"), mock
}

func testConfig(batch int) *models.Config {
	return &models.Config{Loader: models.LoaderConfig{BatchSize: batch}}
}

func ts(day, hour, minute int) time.Time {
	return time.Date(2016, 7, day, hour, minute, 0, 0, time.UTC)
}

func trip(id int64, point models.PickupPoint, req time.Time, drop *time.Time) models.TripRequest {
	driver := id * 10
	return models.TripRequest{
		RequestID:        id,
		PickupPoint:      point,
		DriverID:         &driver,
		Status:           models.TripStatusCompleted,
		RequestTimestamp: req,
		DropTimestamp:    drop,
	}
}

func TestScanTrips_StreamsRowsInOrder(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(testConfig(0), db)

	drop := ts(11, 12, 9)
	mock.ExpectQuery(regexp.QuoteMeta("FROM trip_requests ORDER BY request_timestamp, request_id")).
		WillReturnRows(sqlmock.NewRows(tripCols).
			AddRow(int64(1), "Airport", int64(285), "Trip Completed", ts(11, 11, 0), drop).
			AddRow(int64(2), "City", nil, "No Cars Available", ts(11, 13, 0), nil))

	var got []models.TripRequest
	err := repo.ScanTrips(context.Background(), models.DateRange{}, func(tr models.TripRequest) error {
		got = append(got, tr)
		return nil
	})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.PickupAirport, got[0].PickupPoint)
	require.NotNil(t, got[0].DriverID)
	assert.Equal(t, int64(285), *got[0].DriverID)
	assert.Equal(t, models.PickupCity, got[1].PickupPoint)
	assert.Nil(t, got[1].DriverID)
	assert.Nil(t, got[1].DropTimestamp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScanTrips_DateRangeIsInclusive(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(testConfig(0), db)

	rng := models.DateRange{From: ts(11, 0, 0), To: ts(12, 0, 0)}
	mock.ExpectQuery(regexp.QuoteMeta("WHERE request_timestamp >= $1 AND request_timestamp < $2")).
		WithArgs(ts(11, 0, 0), ts(13, 0, 0)).
		WillReturnRows(sqlmock.NewRows(tripCols))

	err := repo.ScanTrips(context.Background(), rng, func(models.TripRequest) error { return nil })

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScanTrips_UnknownPickupPointFailsScan(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(testConfig(0), db)

	mock.ExpectQuery("FROM trip_requests").
		WillReturnRows(sqlmock.NewRows(tripCols).
			AddRow(int64(1), "Harbour", nil, "Cancelled", ts(11, 11, 0), nil))

	err := repo.ScanTrips(context.Background(), models.DateRange{}, func(models.TripRequest) error { return nil })

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to scan trip request")
}

func TestScanTrips_CallbackErrorStopsScan(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(testConfig(0), db)
	stop := errors.New("stop")

	mock.ExpectQuery("FROM trip_requests").
		WillReturnRows(sqlmock.NewRows(tripCols).
			AddRow(int64(1), "City", nil, "Cancelled", ts(11, 11, 0), nil).
			AddRow(int64(2), "City", nil, "Cancelled", ts(11, 12, 0), nil))

	calls := 0
	err := repo.ScanTrips(context.Background(), models.DateRange{}, func(models.TripRequest) error {
		calls++
		return stop
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestScanTrips_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(testConfig(0), db)

	mock.ExpectQuery("FROM trip_requests").WillReturnError(errors.New("connection reset"))

	err := repo.ScanTrips(context.Background(), models.DateRange{}, func(models.TripRequest) error { return nil })

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestInsertTrips_BatchesInOneTransaction(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(testConfig(2), db)

	drop := ts(11, 12, 9)
	trips := []models.TripRequest{
		trip(1, models.PickupAirport, ts(11, 11, 0), &drop),
		trip(2, models.PickupCity, ts(11, 12, 0), nil),
		trip(3, models.PickupCity, ts(12, 8, 0), nil),
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trip_requests")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (request_id) DO NOTHING")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	inserted, err := repo.InsertTrips(context.Background(), trips)

	require.NoError(t, err)
	assert.Equal(t, 2, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertTrips_FailureRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(testConfig(10), db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO trip_requests").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	inserted, err := repo.InsertTrips(context.Background(), []models.TripRequest{trip(1, models.PickupCity, ts(11, 1, 0), nil)})

	require.Error(t, err)
	assert.Zero(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertTrips_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(testConfig(10), db)

	inserted, err := repo.InsertTrips(context.Background(), nil)

	require.NoError(t, err)
	assert.Zero(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordDuplicates_FoldsRepeatsIntoOneUpsert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(testConfig(10), db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trip_request_duplicates (request_id, repeats) VALUES ($1, $2), ($3, $4) ON CONFLICT (request_id) DO UPDATE SET repeats = trip_request_duplicates.repeats + EXCLUDED.repeats")).
		WithArgs(int64(7), 2, int64(3), 1).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.RecordDuplicates(context.Background(), []int64{7, 3, 7}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordDuplicates_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(testConfig(10), db)

	require.NoError(t, repo.RecordDuplicates(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordDuplicates_Failure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(testConfig(10), db)

	mock.ExpectExec("INSERT INTO trip_request_duplicates").WillReturnError(errors.New("relation does not exist"))

	err := repo.RecordDuplicates(context.Background(), []int64{1})
	assert.ErrorContains(t, err, "failed to record duplicate request ids")
}
