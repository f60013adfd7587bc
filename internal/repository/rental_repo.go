package repository

import (
	"context"
	"errors"
	"fmt"

	"car_rental/internal/model"

	"github.com/jackc/pgx/v5"
)

// RentalRepository defines operations for rental data. Every write that
// changes a rental's status is guarded by the status the caller last saw.
type RentalRepository interface {
	CreateWithCarHold(ctx context.Context, rental *model.Rental) error
	FindByID(ctx context.Context, id int64) (*model.Rental, error)
	FindAll(ctx context.Context) ([]model.Rental, error)
	FindActiveByCar(ctx context.Context, carID int64) ([]model.Rental, error)
	Transition(ctx context.Context, id int64, from, to model.RentalStatus, releaseCar bool) error
	UpdateTotalCost(ctx context.Context, id int64, status model.RentalStatus, cost model.Money) error
	StartDue(ctx context.Context, today model.Date) (int64, error)
	CompleteDue(ctx context.Context, today model.Date) (int64, error)
	Stats(ctx context.Context) (*model.RentalStats, error)
}

type rentalRepository struct {
	db DB
}

// NewRentalRepository creates a new RentalRepository
func NewRentalRepository(db DB) RentalRepository {
	return &rentalRepository{db: db}
}

const rentalSelect = `SELECT r.rental_id, r.user_id, r.car_id, c.brand, c.model, c.year,
                r.start_date, r.end_date, r.total_cost, r.status, r.created_at
            FROM rentals r JOIN cars c ON r.car_id = c.car_id`

func scanRental(row pgx.Row, r *model.Rental) error {
	return row.Scan(&r.ID, &r.UserID, &r.CarID, &r.Brand, &r.Model, &r.Year,
		&r.StartDate, &r.EndDate, &r.TotalCost, &r.Status, &r.CreatedAt)
}

func (r *rentalRepository) queryRentals(ctx context.Context, sql string, args ...any) ([]model.Rental, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rentals: %w", err)
	}
	defer rows.Close()

	rentals := []model.Rental{}
	for rows.Next() {
		var rental model.Rental
		if err := scanRental(rows, &rental); err != nil {
			return nil, fmt.Errorf("failed to scan rental row: %w", err)
		}
		rentals = append(rentals, rental)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rental rows: %w", err)
	}
	return rentals, nil
}

// CreateWithCarHold marks the car rented and inserts the rental in one
// transaction. The car update only matches an available car, so of two
// concurrent bookings for the same car exactly one commits; the other gets
// ErrPreconditionFailed and nothing is written.
func (r *rentalRepository) CreateWithCarHold(ctx context.Context, rental *model.Rental) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin booking transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `UPDATE cars SET status = $1 WHERE car_id = $2 AND status = $3`,
		model.CarRented, rental.CarID, model.CarAvailable)
	if err != nil {
		return fmt.Errorf("failed to hold car: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPreconditionFailed
	}

	sql := `INSERT INTO rentals (user_id, car_id, start_date, end_date, total_cost, status)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING rental_id, created_at`
	err = tx.QueryRow(ctx, sql, rental.UserID, rental.CarID, rental.StartDate, rental.EndDate,
		rental.TotalCost, rental.Status).Scan(&rental.ID, &rental.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create rental: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit booking: %w", err)
	}
	return nil
}

// FindByID retrieves a rental with its car's brand, model and year
func (r *rentalRepository) FindByID(ctx context.Context, id int64) (*model.Rental, error) {
	rental := &model.Rental{}
	err := scanRental(r.db.QueryRow(ctx, rentalSelect+` WHERE r.rental_id = $1`, id), rental)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find rental by ID: %w", err)
	}
	return rental, nil
}

// FindAll lists rentals, newest first
func (r *rentalRepository) FindAll(ctx context.Context) ([]model.Rental, error) {
	return r.queryRentals(ctx, rentalSelect+` ORDER BY r.created_at DESC, r.rental_id DESC`)
}

// FindActiveByCar lists booked and ongoing rentals of a car
func (r *rentalRepository) FindActiveByCar(ctx context.Context, carID int64) ([]model.Rental, error) {
	return r.queryRentals(ctx, rentalSelect+` WHERE r.car_id = $1 AND r.status IN ($2, $3) ORDER BY r.start_date`,
		carID, model.RentalBooked, model.RentalOngoing)
}

// Transition moves a rental from one status to another. When releaseCar is
// set the rental's car goes back to available in the same transaction,
// unless it has been put into maintenance meanwhile.
func (r *rentalRepository) Transition(ctx context.Context, id int64, from, to model.RentalStatus, releaseCar bool) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin rental transition: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var carID int64
	err = tx.QueryRow(ctx, `UPDATE rentals SET status = $1 WHERE rental_id = $2 AND status = $3 RETURNING car_id`,
		to, id, from).Scan(&carID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPreconditionFailed
		}
		return fmt.Errorf("failed to update rental status: %w", err)
	}

	if releaseCar {
		if _, err = tx.Exec(ctx, `UPDATE cars SET status = $1 WHERE car_id = $2 AND status = $3`,
			model.CarAvailable, carID, model.CarRented); err != nil {
			return fmt.Errorf("failed to release car: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit rental transition: %w", err)
	}
	return nil
}

// UpdateTotalCost rewrites the stored cost while the rental is still in status
func (r *rentalRepository) UpdateTotalCost(ctx context.Context, id int64, status model.RentalStatus, cost model.Money) error {
	tag, err := r.db.Exec(ctx, `UPDATE rentals SET total_cost = $1 WHERE rental_id = $2 AND status = $3`, cost, id, status)
	if err != nil {
		return fmt.Errorf("failed to update rental cost: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPreconditionFailed
	}
	return nil
}

// StartDue moves booked rentals whose start date has arrived to ongoing
func (r *rentalRepository) StartDue(ctx context.Context, today model.Date) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE rentals SET status = $1 WHERE status = $2 AND start_date <= $3`,
		model.RentalOngoing, model.RentalBooked, today)
	if err != nil {
		return 0, fmt.Errorf("failed to start due rentals: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CompleteDue completes ongoing rentals whose end date has arrived and
// releases their cars.
func (r *rentalRepository) CompleteDue(ctx context.Context, today model.Date) (n int64, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin completion transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	rows, err := tx.Query(ctx, `UPDATE rentals SET status = $1 WHERE status = $2 AND end_date <= $3 RETURNING car_id`,
		model.RentalCompleted, model.RentalOngoing, today)
	if err != nil {
		return 0, fmt.Errorf("failed to complete due rentals: %w", err)
	}
	var carIDs []int64
	for rows.Next() {
		var carID int64
		if err = rows.Scan(&carID); err != nil {
			rows.Close()
			return 0, fmt.Errorf("failed to scan completed rental: %w", err)
		}
		carIDs = append(carIDs, carID)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("error iterating completed rentals: %w", err)
	}

	if len(carIDs) > 0 {
		if _, err = tx.Exec(ctx, `UPDATE cars SET status = $1 WHERE car_id = ANY($2) AND status = $3`,
			model.CarAvailable, carIDs, model.CarRented); err != nil {
			return 0, fmt.Errorf("failed to release cars: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit completion: %w", err)
	}
	return int64(len(carIDs)), nil
}

// Stats counts rentals per status. Revenue sums non-cancelled rentals.
func (r *rentalRepository) Stats(ctx context.Context) (*model.RentalStats, error) {
	sql := `SELECT COUNT(*),
                COUNT(*) FILTER (WHERE status = 'booked'),
                COUNT(*) FILTER (WHERE status = 'ongoing'),
                COUNT(*) FILTER (WHERE status = 'completed'),
                COUNT(*) FILTER (WHERE status = 'cancelled'),
                COALESCE(SUM(total_cost) FILTER (WHERE status <> 'cancelled'), 0)
            FROM rentals`
	stats := &model.RentalStats{}
	err := r.db.QueryRow(ctx, sql).Scan(&stats.TotalRentals, &stats.Booked, &stats.Ongoing,
		&stats.Completed, &stats.Cancelled, &stats.TotalRevenue)
	if err != nil {
		return nil, fmt.Errorf("failed to query rental stats: %w", err)
	}
	return stats, nil
}
