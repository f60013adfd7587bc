// Package pricing computes rental cost and derived car availability.
// Every cost shown or stored anywhere in the service comes from
// CalculateRentalCost.
package pricing

import (
	"time"

	"car_rental/internal/apperr"
	"car_rental/internal/model"
)

const day = 24 * time.Hour

var (
	ErrInvalidDateRange = apperr.New(apperr.ErrValidation, "end date must be after start date")
	ErrInvalidDailyRate = apperr.New(apperr.ErrValidation, "daily rate must be positive")
)

// RentalDays returns the number of started 24h periods between start and
// end, both taken in UTC. Callers must ensure end is after start.
func RentalDays(start, end time.Time) int64 {
	d := end.UTC().Sub(start.UTC())
	days := int64(d / day)
	if d%day != 0 {
		days++
	}
	return days
}

// CalculateRentalCost returns ceil(days) * car.DailyRate.
func CalculateRentalCost(car model.Car, start, end time.Time) (model.Money, error) {
	if !end.UTC().After(start.UTC()) {
		return 0, ErrInvalidDateRange
	}
	if car.DailyRate <= 0 {
		return 0, ErrInvalidDailyRate
	}
	return model.Money(RentalDays(start, end)) * car.DailyRate, nil
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// CarStatus derives the status to display for car at instant at.
// Maintenance always wins; an active rental of this car covering at
// makes it rented; otherwise the stored flag is returned.
func CarStatus(car model.Car, rentals []model.Rental, at time.Time) model.CarStatus {
	if car.Status == model.CarMaintenance {
		return model.CarMaintenance
	}
	at = at.UTC()
	for _, r := range rentals {
		if r.CarID != car.ID || !r.Status.Active() {
			continue
		}
		if Overlaps(r.StartDate.Time, r.EndDate.Time, at, at.Add(time.Nanosecond)) {
			return model.CarRented
		}
	}
	return car.Status
}
