package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/piresc/tripstats/internal/pkg/models"
	"github.com/piresc/tripstats/services/summary"
	"github.com/shopspring/decimal"
)

type dayBucket struct {
	total      int
	airport    int
	city       int
	minutesSum int64
	timedTrips int64
}

// Accumulator folds trip requests into per-date buckets one trip at a time
type Accumulator struct {
	days  map[time.Time]*dayBucket
	trips int
}

// NewAccumulator creates an empty accumulator
func NewAccumulator() *Accumulator {
	return &Accumulator{days: make(map[time.Time]*dayBucket)}
}

// Add counts trip into the bucket of its request date
func (a *Accumulator) Add(trip models.TripRequest) error {
	day := trip.RequestDate()
	b, ok := a.days[day]
	if !ok {
		b = &dayBucket{}
	}

	switch trip.PickupPoint {
	case models.PickupAirport:
		b.airport++
	case models.PickupCity:
		b.city++
	default:
		return fmt.Errorf("%w: request %d has %q", summary.ErrUnknownPickupPoint, trip.RequestID, string(trip.PickupPoint))
	}
	b.total++

	if minutes, ok := trip.TripDurationMinutes(); ok {
		b.minutesSum += minutes
		b.timedTrips++
	}

	a.days[day] = b
	a.trips++
	return nil
}

// Trips returns how many trips were added
func (a *Accumulator) Trips() int {
	return a.trips
}

// Result builds one summary per date, sorted by date, all stamped with now
func (a *Accumulator) Result(now time.Time) []models.DailySummary {
	rows := make([]models.DailySummary, 0, len(a.days))
	for day, b := range a.days {
		row := models.DailySummary{
			SummaryDate:  day,
			TotalTrips:   b.total,
			AirportTrips: b.airport,
			CityTrips:    b.city,
			LastUpdated:  now,
		}
		if b.timedTrips > 0 {
			avg := decimal.NewFromInt(b.minutesSum).
				DivRound(decimal.NewFromInt(b.timedTrips), 2)
			row.AvgDurationMinutes = decimal.NewNullDecimal(avg)
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].SummaryDate.Before(rows[j].SummaryDate)
	})
	return rows
}

// Aggregate groups trips by request date and computes the daily summaries
func Aggregate(trips []models.TripRequest, now time.Time) ([]models.DailySummary, error) {
	acc := NewAccumulator()
	for _, trip := range trips {
		if err := acc.Add(trip); err != nil {
			return nil, err
		}
	}
	return acc.Result(now), nil
}
