package handler

import (
	"context"
	"time"

	"car_rental/internal/model"
	"car_rental/internal/service"

	"github.com/stretchr/testify/mock"
)

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) rental(args mock.Arguments) (*model.Rental, error) {
	if r := args.Get(0); r != nil {
		return r.(*model.Rental), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingService) Quote(ctx context.Context, carID int64, start, end model.Date) (model.Money, error) {
	args := m.Called(ctx, carID, start, end)
	return args.Get(0).(model.Money), args.Error(1)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, in service.CreateBookingInput) (*model.Rental, error) {
	return m.rental(m.Called(ctx, in))
}

func (m *mockBookingService) CancelBooking(ctx context.Context, id int64) (*model.Rental, error) {
	return m.rental(m.Called(ctx, id))
}

func (m *mockBookingService) RecalculateCost(ctx context.Context, id int64) (*model.Rental, error) {
	return m.rental(m.Called(ctx, id))
}

func (m *mockBookingService) StartRental(ctx context.Context, id int64) (*model.Rental, error) {
	return m.rental(m.Called(ctx, id))
}

func (m *mockBookingService) CompleteRental(ctx context.Context, id int64) (*model.Rental, error) {
	return m.rental(m.Called(ctx, id))
}

func (m *mockBookingService) ReconcileStatuses(ctx context.Context, now time.Time) (int64, int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *mockBookingService) GetBooking(ctx context.Context, id int64) (*model.Rental, error) {
	return m.rental(m.Called(ctx, id))
}

func (m *mockBookingService) ListBookings(ctx context.Context) ([]model.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Rental), args.Error(1)
}

func (m *mockBookingService) Stats(ctx context.Context) (*model.RentalStats, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.(*model.RentalStats), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) user(args mock.Arguments) (*model.User, error) {
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	return m.user(m.Called(ctx, req))
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	return m.user(m.Called(ctx, email, password))
}

func (m *mockAuthService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

type mockCarService struct {
	mock.Mock
}

func (m *mockCarService) car(args mock.Arguments) (*model.Car, error) {
	if c := args.Get(0); c != nil {
		return c.(*model.Car), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCarService) ListCars(ctx context.Context) ([]model.Car, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Car), args.Error(1)
}

func (m *mockCarService) GetCar(ctx context.Context, id int64) (*model.Car, error) {
	return m.car(m.Called(ctx, id))
}

func (m *mockCarService) ListCarTypes(ctx context.Context) ([]model.CarType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.CarType), args.Error(1)
}

func (m *mockCarService) GetCarStatus(ctx context.Context, id int64) (model.CarStatus, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.CarStatus), args.Error(1)
}

func (m *mockCarService) SetCarStatus(ctx context.Context, id int64, status model.CarStatus) (*model.Car, error) {
	return m.car(m.Called(ctx, id, status))
}

type mockPaymentService struct {
	mock.Mock
}

func (m *mockPaymentService) RecordPayment(ctx context.Context, req model.CreatePaymentRequest) (*model.Payment, error) {
	args := m.Called(ctx, req)
	if p := args.Get(0); p != nil {
		return p.(*model.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentService) ListPayments(ctx context.Context) ([]model.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Payment), args.Error(1)
}
