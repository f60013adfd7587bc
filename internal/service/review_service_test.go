package service

import (
	"context"
	"testing"

	"car_rental/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memReviews struct {
	byCar map[int64][]model.Review
}

func (m *memReviews) Create(ctx context.Context, r *model.Review) error {
	if m.byCar == nil {
		m.byCar = map[int64][]model.Review{}
	}
	r.ID = int64(len(m.byCar[r.CarID]) + 1)
	m.byCar[r.CarID] = append(m.byCar[r.CarID], *r)
	return nil
}

func (m *memReviews) FindByCar(ctx context.Context, carID int64) ([]model.Review, error) {
	return m.byCar[carID], nil
}

func TestReviewService(t *testing.T) {
	store := newMemStore(testCar())
	ctx := context.Background()
	user := &model.User{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com"}
	require.NoError(t, store.userRepo().Create(ctx, user))
	svc := NewReviewService(&memReviews{}, store.userRepo(), store.carRepo())

	review, err := svc.CreateReview(ctx, model.CreateReviewRequest{UserID: user.ID, CarID: 1, Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, "Ann", review.FirstName)

	for _, rating := range []int{0, 6} {
		_, err := svc.CreateReview(ctx, model.CreateReviewRequest{UserID: user.ID, CarID: 1, Rating: rating})
		assert.ErrorIs(t, err, ErrInvalidRating)
	}

	_, err = svc.CreateReview(ctx, model.CreateReviewRequest{UserID: 999, CarID: 1, Rating: 4})
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = svc.CreateReview(ctx, model.CreateReviewRequest{UserID: user.ID, CarID: 8, Rating: 4})
	assert.ErrorIs(t, err, ErrCarNotFound)

	reviews, err := svc.ListReviewsForCar(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)

	reviews, err = svc.ListReviewsForCar(ctx, 8)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
