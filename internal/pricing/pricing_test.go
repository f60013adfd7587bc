package pricing

import (
	"testing"
	"time"

	"car_rental/internal/apperr"
	"car_rental/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return d.Time
}

func TestCalculateRentalCost_Example(t *testing.T) {
	car := model.Car{ID: 1, DailyRate: model.MoneyFromUnits(75)}

	cost, err := CalculateRentalCost(car, date(t, "2024-01-01"), date(t, "2024-01-04"))

	require.NoError(t, err)
	assert.Equal(t, model.Money(22500), cost)
	assert.Equal(t, "225.00", cost.String())
}

func TestCalculateRentalCost_SameDayRejected(t *testing.T) {
	car := model.Car{ID: 1, DailyRate: model.MoneyFromUnits(75)}

	_, err := CalculateRentalCost(car, date(t, "2024-01-01"), date(t, "2024-01-01"))

	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestCalculateRentalCost_EndBeforeStartRejected(t *testing.T) {
	car := model.Car{ID: 1, DailyRate: model.MoneyFromUnits(75)}

	_, err := CalculateRentalCost(car, date(t, "2024-01-05"), date(t, "2024-01-01"))

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestCalculateRentalCost_NonPositiveRate(t *testing.T) {
	_, err := CalculateRentalCost(model.Car{DailyRate: 0}, date(t, "2024-01-01"), date(t, "2024-01-02"))
	assert.ErrorIs(t, err, ErrInvalidDailyRate)
}

func TestCalculateRentalCost_MatchesFormula(t *testing.T) {
	start := date(t, "2024-02-27")
	rates := []model.Money{1, 4999, 7500, 12345}
	for _, rate := range rates {
		for n := 1; n <= 40; n++ {
			end := start.AddDate(0, 0, n)
			cost, err := CalculateRentalCost(model.Car{DailyRate: rate}, start, end)
			require.NoError(t, err)
			assert.Equal(t, rate*model.Money(n), cost, "rate=%d days=%d", rate, n)
		}
	}
}

func TestRentalDays_PartialDayRoundsUp(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, int64(1), RentalDays(start, start.Add(5*time.Hour)))
	assert.Equal(t, int64(1), RentalDays(start, start.Add(24*time.Hour)))
	assert.Equal(t, int64(2), RentalDays(start, start.Add(24*time.Hour+time.Minute)))
}

func TestRentalDays_IgnoresLocalTimezone(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	// Same instants expressed in a different zone give the same count.
	start := time.Date(2024, 3, 10, 5, 0, 0, 0, loc)
	end := time.Date(2024, 3, 13, 5, 0, 0, 0, loc)

	assert.Equal(t, int64(3), RentalDays(start, end))
}

func TestOverlaps(t *testing.T) {
	a1, a2 := date(t, "2024-01-01"), date(t, "2024-01-05")

	assert.True(t, Overlaps(a1, a2, date(t, "2024-01-04"), date(t, "2024-01-10")))
	assert.True(t, Overlaps(a1, a2, date(t, "2023-12-01"), date(t, "2024-02-01")))
	assert.False(t, Overlaps(a1, a2, date(t, "2024-01-05"), date(t, "2024-01-07")))
	assert.False(t, Overlaps(a1, a2, date(t, "2023-12-25"), date(t, "2024-01-01")))
}

func TestCarStatus(t *testing.T) {
	car := model.Car{ID: 7, Status: model.CarAvailable}
	rental := model.Rental{
		CarID:     7,
		StartDate: model.NewDate(date(t, "2024-01-01")),
		EndDate:   model.NewDate(date(t, "2024-01-04")),
		Status:    model.RentalBooked,
	}

	t.Run("inside active rental", func(t *testing.T) {
		assert.Equal(t, model.CarRented, CarStatus(car, []model.Rental{rental}, date(t, "2024-01-02")))
	})
	t.Run("after rental window", func(t *testing.T) {
		assert.Equal(t, model.CarAvailable, CarStatus(car, []model.Rental{rental}, date(t, "2024-01-04")))
	})
	t.Run("cancelled rental ignored", func(t *testing.T) {
		cancelled := rental
		cancelled.Status = model.RentalCancelled
		assert.Equal(t, model.CarAvailable, CarStatus(car, []model.Rental{cancelled}, date(t, "2024-01-02")))
	})
	t.Run("other car ignored", func(t *testing.T) {
		other := rental
		other.CarID = 8
		assert.Equal(t, model.CarAvailable, CarStatus(car, []model.Rental{other}, date(t, "2024-01-02")))
	})
	t.Run("maintenance wins", func(t *testing.T) {
		m := car
		m.Status = model.CarMaintenance
		assert.Equal(t, model.CarMaintenance, CarStatus(m, []model.Rental{rental}, date(t, "2024-01-02")))
	})
	t.Run("stored flag without rentals", func(t *testing.T) {
		r := car
		r.Status = model.CarRented
		assert.Equal(t, model.CarRented, CarStatus(r, nil, date(t, "2024-01-02")))
	})
}
