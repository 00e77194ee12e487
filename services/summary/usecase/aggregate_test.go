package usecase

import (
	"testing"
	"time"

	"github.com/piresc/tripstats/internal/pkg/models"
	"github.com/piresc/tripstats/services/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

func tsPtr(s string) *time.Time {
	t := ts(s)
	return &t
}

func trip(id int64, pickup models.PickupPoint, request string, drop string) models.TripRequest {
	tr := models.TripRequest{
		RequestID:        id,
		PickupPoint:      pickup,
		Status:           models.TripStatusCompleted,
		RequestTimestamp: ts(request),
	}
	if drop != "" {
		tr.DropTimestamp = tsPtr(drop)
	}
	return tr
}

var refreshTime = time.Date(2016, 7, 16, 3, 0, 0, 0, time.UTC)

func TestAggregate_AirportExample(t *testing.T) {
	trips := []models.TripRequest{
		trip(619, models.PickupAirport, "2016-07-11 11:51:00", "2016-07-11 13:00:00"),
		trip(867, models.PickupAirport, "2016-07-11 17:57:00", "2016-07-11 18:47:00"),
	}

	rows, err := Aggregate(trips, refreshTime)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, time.Date(2016, 7, 11, 0, 0, 0, 0, time.UTC), row.SummaryDate)
	assert.Equal(t, 2, row.TotalTrips)
	assert.Equal(t, 2, row.AirportTrips)
	assert.Equal(t, 0, row.CityTrips)
	require.True(t, row.AvgDurationMinutes.Valid)
	assert.Equal(t, "59.50", row.AvgDurationMinutes.Decimal.StringFixed(2))
	assert.Equal(t, refreshTime, row.LastUpdated)
}

func TestAggregate_OneRowPerDateSortedAndBalanced(t *testing.T) {
	trips := []models.TripRequest{
		trip(1, models.PickupCity, "2016-07-13 08:00:00", "2016-07-13 08:40:00"),
		trip(2, models.PickupAirport, "2016-07-11 09:00:00", "2016-07-11 09:30:00"),
		trip(3, models.PickupCity, "2016-07-11 23:59:00", "2016-07-12 00:20:00"),
		trip(4, models.PickupAirport, "2016-07-13 00:00:00", ""),
		trip(5, models.PickupCity, "2016-07-12 12:00:00", "2016-07-12 12:45:00"),
	}

	rows, err := Aggregate(trips, refreshTime)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	total := 0
	for i, row := range rows {
		if i > 0 {
			assert.True(t, rows[i-1].SummaryDate.Before(row.SummaryDate))
		}
		assert.Equal(t, row.TotalTrips, row.AirportTrips+row.CityTrips)
		assert.Equal(t, refreshTime, row.LastUpdated)
		total += row.TotalTrips
	}
	assert.Equal(t, len(trips), total)

	// the 23:59 request belongs to its request date even though the drop is the next day
	assert.Equal(t, 2, rows[0].TotalTrips)
	assert.Equal(t, "25.50", rows[0].AvgDurationMinutes.Decimal.StringFixed(2))
}

func TestAggregate_NegativeDurationPullsAverageDown(t *testing.T) {
	trips := []models.TripRequest{
		trip(1, models.PickupCity, "2016-07-14 10:00:00", "2016-07-14 10:30:00"),
		trip(2, models.PickupCity, "2016-07-14 11:00:00", "2016-07-14 10:50:00"),
	}

	rows, err := Aggregate(trips, refreshTime)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, 2, rows[0].TotalTrips)
	assert.Equal(t, "10.00", rows[0].AvgDurationMinutes.Decimal.StringFixed(2))
}

func TestAggregate_MissingDropCountsButIsNotAveraged(t *testing.T) {
	t.Run("mixed day", func(t *testing.T) {
		trips := []models.TripRequest{
			trip(1, models.PickupAirport, "2016-07-15 06:00:00", "2016-07-15 07:00:00"),
			trip(2, models.PickupCity, "2016-07-15 06:10:00", ""),
		}

		rows, err := Aggregate(trips, refreshTime)
		require.NoError(t, err)

		assert.Equal(t, 2, rows[0].TotalTrips)
		assert.Equal(t, "60.00", rows[0].AvgDurationMinutes.Decimal.StringFixed(2))
	})

	t.Run("day without any drop", func(t *testing.T) {
		trips := []models.TripRequest{
			trip(1, models.PickupCity, "2016-07-15 06:10:00", ""),
		}

		rows, err := Aggregate(trips, refreshTime)
		require.NoError(t, err)

		assert.Equal(t, 1, rows[0].TotalTrips)
		assert.False(t, rows[0].AvgDurationMinutes.Valid)
	})
}

func TestAggregate_DurationTruncatesToWholeMinutes(t *testing.T) {
	trips := []models.TripRequest{
		trip(1, models.PickupCity, "2016-07-12 10:00:00", "2016-07-12 10:10:59"),
		trip(2, models.PickupCity, "2016-07-12 10:00:00", "2016-07-12 10:03:00"),
		trip(3, models.PickupCity, "2016-07-12 10:00:00", "2016-07-12 10:02:00"),
	}

	rows, err := Aggregate(trips, refreshTime)
	require.NoError(t, err)

	// (10 + 3 + 2) / 3
	assert.Equal(t, "5.00", rows[0].AvgDurationMinutes.Decimal.StringFixed(2))
}

func TestAggregate_RoundsToTwoPlaces(t *testing.T) {
	trips := []models.TripRequest{
		trip(1, models.PickupCity, "2016-07-12 10:00:00", "2016-07-12 10:10:00"),
		trip(2, models.PickupCity, "2016-07-12 10:00:00", "2016-07-12 10:10:00"),
		trip(3, models.PickupCity, "2016-07-12 10:00:00", "2016-07-12 10:11:00"),
	}

	rows, err := Aggregate(trips, refreshTime)
	require.NoError(t, err)

	assert.Equal(t, "10.33", rows[0].AvgDurationMinutes.Decimal.String())
}

func TestAggregate_EmptyInput(t *testing.T) {
	rows, err := Aggregate(nil, refreshTime)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAggregate_IdempotentApartFromLastUpdated(t *testing.T) {
	trips := []models.TripRequest{
		trip(1, models.PickupCity, "2016-07-13 08:00:00", "2016-07-13 08:40:00"),
		trip(2, models.PickupAirport, "2016-07-11 09:00:00", "2016-07-11 09:30:00"),
	}

	first, err := Aggregate(trips, refreshTime)
	require.NoError(t, err)
	second, err := Aggregate(trips, refreshTime.Add(time.Hour))
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, refreshTime.Add(time.Hour), second[i].LastUpdated)
		second[i].LastUpdated = first[i].LastUpdated
	}
	assert.Equal(t, first, second)
}

func TestAccumulator_RejectsUnknownPickupPoint(t *testing.T) {
	acc := NewAccumulator()
	require.NoError(t, acc.Add(trip(1, models.PickupCity, "2016-07-11 10:00:00", "")))

	err := acc.Add(trip(2, models.PickupPoint("Harbour"), "2016-07-11 10:00:00", ""))

	assert.ErrorIs(t, err, summary.ErrUnknownPickupPoint)
	assert.Equal(t, 1, acc.Trips())
	rows := acc.Result(refreshTime)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].TotalTrips)
}
