package model

import "time"

// RentalStatus is the lifecycle state of a rental.
type RentalStatus string

const (
	RentalBooked    RentalStatus = "booked"
	RentalOngoing   RentalStatus = "ongoing"
	RentalCompleted RentalStatus = "completed"
	RentalCancelled RentalStatus = "cancelled"
)

var rentalTransitions = map[RentalStatus][]RentalStatus{
	RentalBooked:  {RentalOngoing, RentalCancelled},
	RentalOngoing: {RentalCompleted, RentalCancelled},
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Completed and cancelled rentals are terminal.
func (s RentalStatus) CanTransitionTo(next RentalStatus) bool {
	for _, allowed := range rentalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Active reports whether the rental still holds its car.
func (s RentalStatus) Active() bool {
	return s == RentalBooked || s == RentalOngoing
}

// Rental represents a booking of one car for a date range
type Rental struct {
	ID        int64        `json:"rental_id"`
	UserID    *int64       `json:"user_id"` // nil for guest bookings
	CarID     int64        `json:"car_id"`
	Brand     string       `json:"brand,omitempty"`
	Model     string       `json:"model,omitempty"`
	Year      int          `json:"year,omitempty"`
	StartDate Date         `json:"start_date"`
	EndDate   Date         `json:"end_date"`
	TotalCost Money        `json:"total_cost"`
	Status    RentalStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}

// CostQuoteRequest is the body of POST /api/calculate-cost
type CostQuoteRequest struct {
	CarID     int64  `json:"car_id" binding:"required,gt=0"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// CreateBookingRequest is the body of POST /api/bookings
type CreateBookingRequest struct {
	CarID     int64  `json:"car_id" binding:"required,gt=0"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	UserID    *int64 `json:"user_id"`
}

// RentalStats aggregates rentals by status
type RentalStats struct {
	TotalRentals int64 `json:"total_rentals"`
	Booked       int64 `json:"booked"`
	Ongoing      int64 `json:"ongoing"`
	Completed    int64 `json:"completed"`
	Cancelled    int64 `json:"cancelled"`
	TotalRevenue Money `json:"total_revenue"`
}
