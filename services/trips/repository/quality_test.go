package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/piresc/tripstats/internal/pkg/models"
	"github.com/piresc/tripstats/services/trips/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationAnomalies(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(testConfig(0), db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE drop_timestamp < request_timestamp OR duration_minutes > $1")).
		WithArgs(180, models.AnomalyNegativeDuration, models.AnomalyExcessDuration).
		WillReturnRows(sqlmock.NewRows([]string{"request_id", "request_timestamp", "drop_timestamp", "duration_minutes", "reason"}).
			AddRow(int64(7), ts(11, 10, 0), ts(11, 9, 30), int64(-30), models.AnomalyNegativeDuration).
			AddRow(int64(9), ts(11, 10, 0), ts(11, 14, 0), int64(240), models.AnomalyExcessDuration))

	rows, err := repo.DurationAnomalies(context.Background(), 180)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(-30), rows[0].DurationMinutes)
	assert.Equal(t, models.AnomalyExcessDuration, rows[1].Reason)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNullAudit(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(testConfig(0), db)

	mock.ExpectQuery(regexp.QuoteMeta("COUNT(*) - COUNT(driver_id) AS null_driver_id")).
		WillReturnRows(sqlmock.NewRows([]string{"total_rows", "null_driver_id", "null_status", "null_drop_timestamp", "null_request_timestamp"}).
			AddRow(6745, 2650, 0, 3914, 0))

	audit, err := repo.NullAudit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &models.NullFieldAudit{TotalRows: 6745, NullDriverID: 2650, NullDropTimestamp: 3914}, audit)
}

func TestDuplicateKeys(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(testConfig(0), db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT request_id, repeats + 1 AS occurrences FROM trip_request_duplicates")).
		WillReturnRows(sqlmock.NewRows([]string{"request_id", "occurrences"}).
			AddRow(int64(1), 2).
			AddRow(int64(5), 3))

	rows, err := repo.DuplicateKeys(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.DuplicateKey{{RequestID: 1, Occurrences: 2}, {RequestID: 5, Occurrences: 3}}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDuplicateKeys_NoneRecorded(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(testConfig(0), db)

	mock.ExpectQuery("FROM trip_request_duplicates").
		WillReturnRows(sqlmock.NewRows([]string{"request_id", "occurrences"}))

	rows, err := repo.DuplicateKeys(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
