package service

import (
	"context"
	"errors"
	"time"

	"car_rental/internal/apperr"
	"car_rental/internal/model"
	"car_rental/internal/pricing"
	"car_rental/internal/repository"
)

// CarService exposes the catalog and the maintenance toggle
type CarService interface {
	ListCars(ctx context.Context) ([]model.Car, error)
	GetCar(ctx context.Context, id int64) (*model.Car, error)
	ListCarTypes(ctx context.Context) ([]model.CarType, error)
	GetCarStatus(ctx context.Context, id int64) (model.CarStatus, error)
	SetCarStatus(ctx context.Context, id int64, status model.CarStatus) (*model.Car, error)
}

type carService struct {
	cars    repository.CarRepository
	rentals repository.RentalRepository
	now     func() time.Time
}

// NewCarService creates a new CarService
func NewCarService(cars repository.CarRepository, rentals repository.RentalRepository) CarService {
	return &carService{cars: cars, rentals: rentals, now: time.Now}
}

func (s *carService) ListCars(ctx context.Context) ([]model.Car, error) {
	cars, err := s.cars.FindAll(ctx)
	if err != nil {
		return nil, apperr.Dependency("list cars", err)
	}
	return cars, nil
}

func (s *carService) GetCar(ctx context.Context, id int64) (*model.Car, error) {
	car, err := s.cars.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Dependency("find car", err)
	}
	if car == nil {
		return nil, ErrCarNotFound
	}
	return car, nil
}

func (s *carService) ListCarTypes(ctx context.Context) ([]model.CarType, error) {
	types, err := s.cars.FindTypes(ctx)
	if err != nil {
		return nil, apperr.Dependency("list car types", err)
	}
	return types, nil
}

// GetCarStatus derives the car's status right now from its stored flag and
// its active rentals.
func (s *carService) GetCarStatus(ctx context.Context, id int64) (model.CarStatus, error) {
	car, err := s.GetCar(ctx, id)
	if err != nil {
		return "", err
	}
	rentals, err := s.rentals.FindActiveByCar(ctx, id)
	if err != nil {
		return "", apperr.Dependency("find car rentals", err)
	}
	return pricing.CarStatus(*car, rentals, s.now()), nil
}

// SetCarStatus moves a car between available and maintenance. Rented cars
// are only released by the rental lifecycle.
func (s *carService) SetCarStatus(ctx context.Context, id int64, status model.CarStatus) (*model.Car, error) {
	if status != model.CarAvailable && status != model.CarMaintenance {
		return nil, ErrInvalidCarStatus
	}
	car, err := s.GetCar(ctx, id)
	if err != nil {
		return nil, err
	}
	if car.Status == status {
		return car, nil
	}
	if car.Status == model.CarRented {
		return nil, ErrCarRented
	}

	if err := s.cars.UpdateStatus(ctx, id, car.Status, status); err != nil {
		if errors.Is(err, repository.ErrPreconditionFailed) {
			return nil, ErrConcurrentUpdate
		}
		return nil, apperr.Dependency("update car status", err)
	}
	car.Status = status
	return car, nil
}
