package service

import "car_rental/internal/apperr"

var (
	ErrCarNotFound    = apperr.New(apperr.ErrNotFound, "car not found")
	ErrRentalNotFound = apperr.New(apperr.ErrNotFound, "rental not found")
	ErrUserNotFound   = apperr.New(apperr.ErrNotFound, "user not found")

	ErrCarUnavailable               = apperr.New(apperr.ErrConflict, "car is not available for booking")
	ErrCarRented                    = apperr.New(apperr.ErrConflict, "car is currently rented")
	ErrInvalidTransition            = apperr.New(apperr.ErrConflict, "rental status does not allow this operation")
	ErrInvalidStateForRecalculation = apperr.New(apperr.ErrConflict, "only booked or ongoing rentals can be recalculated")
	ErrConcurrentUpdate             = apperr.New(apperr.ErrConflict, "record was modified concurrently, retry")
	ErrRentalCancelled              = apperr.New(apperr.ErrConflict, "rental is cancelled")

	ErrMissingFields      = apperr.New(apperr.ErrValidation, "first_name, last_name, email and password are required")
	ErrInvalidEmailFormat = apperr.New(apperr.ErrValidation, "invalid email format")
	ErrWeakPassword       = apperr.New(apperr.ErrValidation, "password must be at least 6 characters long")
	ErrDuplicateEmail     = apperr.New(apperr.ErrConflict, "user with this email already exists")
	ErrInvalidCredentials = apperr.New(apperr.ErrAuth, "invalid email or password")

	ErrInvalidCarStatus     = apperr.New(apperr.ErrValidation, "status must be available or maintenance")
	ErrInvalidAmount        = apperr.New(apperr.ErrValidation, "amount must be positive")
	ErrInvalidPaymentMethod = apperr.New(apperr.ErrValidation, "payment_method must be card, cash or transfer")
	ErrInvalidRating        = apperr.New(apperr.ErrValidation, "rating must be between 1 and 5")
)
