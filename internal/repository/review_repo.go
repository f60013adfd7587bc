package repository

import (
	"context"
	"fmt"

	"car_rental/internal/model"
)

// ReviewRepository defines operations for car reviews
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	FindByCar(ctx context.Context, carID int64) ([]model.Review, error)
}

type reviewRepository struct {
	db DB
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts a review
func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	sql := `INSERT INTO reviews (user_id, car_id, rating, commentary)
            VALUES ($1, $2, $3, $4) RETURNING review_id, created_at`
	err := r.db.QueryRow(ctx, sql, review.UserID, review.CarID, review.Rating, review.Commentary).
		Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// FindByCar lists a car's reviews with the author's name, newest first
func (r *reviewRepository) FindByCar(ctx context.Context, carID int64) ([]model.Review, error) {
	sql := `SELECT rv.review_id, rv.user_id, u.first_name, u.last_name, rv.car_id, rv.rating,
                rv.commentary, rv.created_at
            FROM reviews rv JOIN users u ON rv.user_id = u.user_id
            WHERE rv.car_id = $1
            ORDER BY rv.created_at DESC, rv.review_id DESC`
	rows, err := r.db.Query(ctx, sql, carID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews := []model.Review{}
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.FirstName, &rv.LastName, &rv.CarID, &rv.Rating,
			&rv.Commentary, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}
	return reviews, nil
}
