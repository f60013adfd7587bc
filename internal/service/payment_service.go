package service

import (
	"context"

	"car_rental/internal/apperr"
	"car_rental/internal/model"
	"car_rental/internal/repository"
)

var paymentMethods = map[string]bool{
	model.PaymentMethodCard:     true,
	model.PaymentMethodCash:     true,
	model.PaymentMethodTransfer: true,
}

// PaymentService records payments against rentals
type PaymentService interface {
	RecordPayment(ctx context.Context, req model.CreatePaymentRequest) (*model.Payment, error)
	ListPayments(ctx context.Context) ([]model.Payment, error)
}

type paymentService struct {
	payments repository.PaymentRepository
	rentals  repository.RentalRepository
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(payments repository.PaymentRepository, rentals repository.RentalRepository) PaymentService {
	return &paymentService{payments: payments, rentals: rentals}
}

// RecordPayment appends a completed payment. Without an amount the rental's
// total cost is charged.
func (s *paymentService) RecordPayment(ctx context.Context, req model.CreatePaymentRequest) (*model.Payment, error) {
	if !paymentMethods[req.Method] {
		return nil, ErrInvalidPaymentMethod
	}

	rental, err := s.rentals.FindByID(ctx, req.RentalID)
	if err != nil {
		return nil, apperr.Dependency("find rental", err)
	}
	if rental == nil {
		return nil, ErrRentalNotFound
	}
	if rental.Status == model.RentalCancelled {
		return nil, ErrRentalCancelled
	}

	amount := rental.TotalCost
	if req.Amount != nil {
		amount = *req.Amount
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	payment := &model.Payment{
		RentalID: rental.ID,
		Amount:   amount,
		Method:   req.Method,
		Status:   model.PaymentStatusCompleted,
		UserID:   rental.UserID,
		CarID:    rental.CarID,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, apperr.Dependency("create payment", err)
	}
	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context) ([]model.Payment, error) {
	payments, err := s.payments.FindAll(ctx)
	if err != nil {
		return nil, apperr.Dependency("list payments", err)
	}
	return payments, nil
}
