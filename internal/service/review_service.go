package service

import (
	"context"

	"car_rental/internal/apperr"
	"car_rental/internal/model"
	"car_rental/internal/repository"
)

// ReviewService manages car reviews
type ReviewService interface {
	CreateReview(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error)
	ListReviewsForCar(ctx context.Context, carID int64) ([]model.Review, error)
}

type reviewService struct {
	reviews repository.ReviewRepository
	users   repository.UserRepository
	cars    repository.CarRepository
}

// NewReviewService creates a new ReviewService
func NewReviewService(reviews repository.ReviewRepository, users repository.UserRepository, cars repository.CarRepository) ReviewService {
	return &reviewService{reviews: reviews, users: users, cars: cars}
}

func (s *reviewService) CreateReview(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error) {
	if req.Rating < model.MinRating || req.Rating > model.MaxRating {
		return nil, ErrInvalidRating
	}

	user, err := s.users.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, apperr.Dependency("find user", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	car, err := s.carExists(ctx, req.CarID)
	if err != nil {
		return nil, err
	}

	review := &model.Review{
		UserID:     user.ID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		CarID:      car.ID,
		Rating:     req.Rating,
		Commentary: req.Commentary,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, apperr.Dependency("create review", err)
	}
	return review, nil
}

// ListReviewsForCar lists a car's reviews; an unknown car has none
func (s *reviewService) ListReviewsForCar(ctx context.Context, carID int64) ([]model.Review, error) {
	reviews, err := s.reviews.FindByCar(ctx, carID)
	if err != nil {
		return nil, apperr.Dependency("list reviews", err)
	}
	return reviews, nil
}

func (s *reviewService) carExists(ctx context.Context, carID int64) (*model.Car, error) {
	car, err := s.cars.FindByID(ctx, carID)
	if err != nil {
		return nil, apperr.Dependency("find car", err)
	}
	if car == nil {
		return nil, ErrCarNotFound
	}
	return car, nil
}
