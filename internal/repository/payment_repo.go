package repository

import (
	"context"
	"fmt"

	"car_rental/internal/model"
)

// PaymentRepository defines operations for payment data
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	FindAll(ctx context.Context) ([]model.Payment, error)
}

type paymentRepository struct {
	db DB
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create inserts a payment and fills in its ID and date
func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	sql := `INSERT INTO payments (rental_id, amount, payment_method, status)
            VALUES ($1, $2, $3, $4) RETURNING payment_id, payment_date`
	err := r.db.QueryRow(ctx, sql, payment.RentalID, payment.Amount, payment.Method, payment.Status).
		Scan(&payment.ID, &payment.PaymentDate)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// FindAll lists payments with the rental's user and car, newest first
func (r *paymentRepository) FindAll(ctx context.Context) ([]model.Payment, error) {
	sql := `SELECT p.payment_id, p.rental_id, p.amount, p.payment_method, p.payment_date, p.status,
                r.user_id, r.car_id
            FROM payments p JOIN rentals r ON p.rental_id = r.rental_id
            ORDER BY p.payment_date DESC, p.payment_id DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []model.Payment{}
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.RentalID, &p.Amount, &p.Method, &p.PaymentDate, &p.Status,
			&p.UserID, &p.CarID); err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}
