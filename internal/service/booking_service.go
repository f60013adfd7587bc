package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"car_rental/internal/apperr"
	"car_rental/internal/model"
	"car_rental/internal/pricing"
	"car_rental/internal/repository"
)

// CreateBookingInput carries a validated booking request
type CreateBookingInput struct {
	CarID     int64
	UserID    *int64 // nil for guest bookings
	StartDate model.Date
	EndDate   model.Date
}

// BookingService manages the rental lifecycle
type BookingService interface {
	Quote(ctx context.Context, carID int64, start, end model.Date) (model.Money, error)
	CreateBooking(ctx context.Context, in CreateBookingInput) (*model.Rental, error)
	CancelBooking(ctx context.Context, rentalID int64) (*model.Rental, error)
	RecalculateCost(ctx context.Context, rentalID int64) (*model.Rental, error)
	StartRental(ctx context.Context, rentalID int64) (*model.Rental, error)
	CompleteRental(ctx context.Context, rentalID int64) (*model.Rental, error)
	ReconcileStatuses(ctx context.Context, now time.Time) (started, completed int64, err error)
	GetBooking(ctx context.Context, rentalID int64) (*model.Rental, error)
	ListBookings(ctx context.Context) ([]model.Rental, error)
	Stats(ctx context.Context) (*model.RentalStats, error)
}

type bookingService struct {
	cars    repository.CarRepository
	rentals repository.RentalRepository
	users   repository.UserRepository
}

// NewBookingService creates a new BookingService
func NewBookingService(cars repository.CarRepository, rentals repository.RentalRepository, users repository.UserRepository) BookingService {
	return &bookingService{cars: cars, rentals: rentals, users: users}
}

func (s *bookingService) findCar(ctx context.Context, id int64) (*model.Car, error) {
	car, err := s.cars.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Dependency("find car", err)
	}
	if car == nil {
		return nil, ErrCarNotFound
	}
	return car, nil
}

func (s *bookingService) findRental(ctx context.Context, id int64) (*model.Rental, error) {
	rental, err := s.rentals.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Dependency("find rental", err)
	}
	if rental == nil {
		return nil, ErrRentalNotFound
	}
	return rental, nil
}

// Quote prices a rental of carID without booking it
func (s *bookingService) Quote(ctx context.Context, carID int64, start, end model.Date) (model.Money, error) {
	car, err := s.findCar(ctx, carID)
	if err != nil {
		return 0, err
	}
	return pricing.CalculateRentalCost(*car, start.Time, end.Time)
}

// CreateBooking prices the rental and books the car. The car hold and the
// rental insert commit together or not at all.
func (s *bookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*model.Rental, error) {
	car, err := s.findCar(ctx, in.CarID)
	if err != nil {
		return nil, err
	}
	cost, err := pricing.CalculateRentalCost(*car, in.StartDate.Time, in.EndDate.Time)
	if err != nil {
		return nil, err
	}

	if in.UserID != nil {
		user, err := s.users.FindByID(ctx, *in.UserID)
		if err != nil {
			return nil, apperr.Dependency("find user", err)
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
	}

	rental := &model.Rental{
		UserID:    in.UserID,
		CarID:     car.ID,
		Brand:     car.Brand,
		Model:     car.Model,
		Year:      car.Year,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		TotalCost: cost,
		Status:    model.RentalBooked,
	}
	if err := s.rentals.CreateWithCarHold(ctx, rental); err != nil {
		if errors.Is(err, repository.ErrPreconditionFailed) {
			return nil, ErrCarUnavailable
		}
		return nil, apperr.Dependency("create rental", err)
	}
	return rental, nil
}

// CancelBooking cancels a booked or ongoing rental and frees its car.
// Cancelling a cancelled rental returns it unchanged.
func (s *bookingService) CancelBooking(ctx context.Context, rentalID int64) (*model.Rental, error) {
	return s.transition(ctx, rentalID, model.RentalCancelled, true)
}

// StartRental marks a booked rental as picked up
func (s *bookingService) StartRental(ctx context.Context, rentalID int64) (*model.Rental, error) {
	return s.transition(ctx, rentalID, model.RentalOngoing, false)
}

// CompleteRental marks an ongoing rental as returned and frees its car
func (s *bookingService) CompleteRental(ctx context.Context, rentalID int64) (*model.Rental, error) {
	return s.transition(ctx, rentalID, model.RentalCompleted, true)
}

func (s *bookingService) transition(ctx context.Context, rentalID int64, to model.RentalStatus, releaseCar bool) (*model.Rental, error) {
	rental, err := s.findRental(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status == to {
		return rental, nil
	}
	if !rental.Status.CanTransitionTo(to) {
		return nil, fmt.Errorf("%w: rental %d is %s", ErrInvalidTransition, rentalID, rental.Status)
	}

	err = s.rentals.Transition(ctx, rentalID, rental.Status, to, releaseCar)
	if errors.Is(err, repository.ErrPreconditionFailed) {
		// Someone else moved the rental first; report against what is stored now.
		current, ferr := s.findRental(ctx, rentalID)
		if ferr != nil {
			return nil, ferr
		}
		if current.Status == to {
			return current, nil
		}
		return nil, fmt.Errorf("%w: rental %d is %s", ErrInvalidTransition, rentalID, current.Status)
	}
	if err != nil {
		return nil, apperr.Dependency("update rental status", err)
	}

	rental.Status = to
	return rental, nil
}

// RecalculateCost reprices a booked or ongoing rental at the car's current rate
func (s *bookingService) RecalculateCost(ctx context.Context, rentalID int64) (*model.Rental, error) {
	rental, err := s.findRental(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if !rental.Status.Active() {
		return nil, ErrInvalidStateForRecalculation
	}

	car, err := s.findCar(ctx, rental.CarID)
	if err != nil {
		return nil, err
	}
	cost, err := pricing.CalculateRentalCost(*car, rental.StartDate.Time, rental.EndDate.Time)
	if err != nil {
		return nil, err
	}

	if err := s.rentals.UpdateTotalCost(ctx, rentalID, rental.Status, cost); err != nil {
		if errors.Is(err, repository.ErrPreconditionFailed) {
			return nil, ErrConcurrentUpdate
		}
		return nil, apperr.Dependency("update rental cost", err)
	}
	rental.TotalCost = cost
	return rental, nil
}

// ReconcileStatuses applies the date-driven transitions as of now: bookings
// whose start date has arrived become ongoing, and ongoing rentals whose
// end date has arrived are completed with their cars released.
func (s *bookingService) ReconcileStatuses(ctx context.Context, now time.Time) (int64, int64, error) {
	today := model.NewDate(now)

	started, err := s.rentals.StartDue(ctx, today)
	if err != nil {
		return 0, 0, apperr.Dependency("start due rentals", err)
	}
	completed, err := s.rentals.CompleteDue(ctx, today)
	if err != nil {
		return started, 0, apperr.Dependency("complete due rentals", err)
	}
	return started, completed, nil
}

func (s *bookingService) GetBooking(ctx context.Context, rentalID int64) (*model.Rental, error) {
	return s.findRental(ctx, rentalID)
}

func (s *bookingService) ListBookings(ctx context.Context) ([]model.Rental, error) {
	rentals, err := s.rentals.FindAll(ctx)
	if err != nil {
		return nil, apperr.Dependency("list rentals", err)
	}
	return rentals, nil
}

func (s *bookingService) Stats(ctx context.Context) (*model.RentalStats, error) {
	stats, err := s.rentals.Stats(ctx)
	if err != nil {
		return nil, apperr.Dependency("rental stats", err)
	}
	return stats, nil
}
