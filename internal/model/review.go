package model

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a customer's rating of a car
type Review struct {
	ID         int64     `json:"review_id"`
	UserID     int64     `json:"user_id"`
	FirstName  string    `json:"first_name,omitempty"`
	LastName   string    `json:"last_name,omitempty"`
	CarID      int64     `json:"car_id"`
	Rating     int       `json:"rating"`
	Commentary *string   `json:"commentary,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateReviewRequest is the body of POST /api/reviews
type CreateReviewRequest struct {
	UserID     int64   `json:"user_id" binding:"required,gt=0"`
	CarID      int64   `json:"car_id" binding:"required,gt=0"`
	Rating     int     `json:"rating" binding:"required"`
	Commentary *string `json:"commentary"`
}
