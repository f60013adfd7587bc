package model

import "time"

const (
	PaymentMethodCard     = "card"
	PaymentMethodCash     = "cash"
	PaymentMethodTransfer = "transfer"

	PaymentStatusCompleted = "completed"
)

// Payment is an append-only ledger entry against a rental
type Payment struct {
	ID          int64     `json:"payment_id"`
	RentalID    int64     `json:"rental_id"`
	Amount      Money     `json:"amount"`
	Method      string    `json:"payment_method"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`
	UserID      *int64    `json:"user_id,omitempty"`
	CarID       int64     `json:"car_id,omitempty"`
}

// CreatePaymentRequest is the body of POST /api/payments.
// Amount defaults to the rental's total cost when omitted.
type CreatePaymentRequest struct {
	RentalID int64  `json:"rental_id" binding:"required,gt=0"`
	Amount   *Money `json:"amount"`
	Method   string `json:"payment_method" binding:"required,oneof=card cash transfer"`
}
