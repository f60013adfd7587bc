package repository

import (
	"context"
	"errors"
	"fmt"

	"car_rental/internal/model"

	"github.com/jackc/pgx/v5"
)

// CarRepository defines operations for cars and car types
type CarRepository interface {
	FindAll(ctx context.Context) ([]model.Car, error)
	FindByID(ctx context.Context, id int64) (*model.Car, error)
	FindTypes(ctx context.Context) ([]model.CarType, error)
	UpdateStatus(ctx context.Context, id int64, expected, next model.CarStatus) error
}

type carRepository struct {
	db DB
}

// NewCarRepository creates a new CarRepository
func NewCarRepository(db DB) CarRepository {
	return &carRepository{db: db}
}

const carSelect = `SELECT c.car_id, c.type_id, ct.name, c.brand, c.model, c.year, c.license_plate,
                c.daily_rate, c.status, c.mileage, c.image_url
            FROM cars c JOIN car_types ct ON c.type_id = ct.type_id`

func scanCar(row pgx.Row, c *model.Car) error {
	return row.Scan(&c.ID, &c.TypeID, &c.TypeName, &c.Brand, &c.Model, &c.Year, &c.LicensePlate,
		&c.DailyRate, &c.Status, &c.Mileage, &c.ImageURL)
}

// FindAll lists every car with its type name
func (r *carRepository) FindAll(ctx context.Context) ([]model.Car, error) {
	rows, err := r.db.Query(ctx, carSelect+` ORDER BY c.car_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cars: %w", err)
	}
	defer rows.Close()

	cars := []model.Car{}
	for rows.Next() {
		var c model.Car
		if err := scanCar(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan car row: %w", err)
		}
		cars = append(cars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating car rows: %w", err)
	}
	return cars, nil
}

// FindByID retrieves a car by its ID
func (r *carRepository) FindByID(ctx context.Context, id int64) (*model.Car, error) {
	c := &model.Car{}
	err := scanCar(r.db.QueryRow(ctx, carSelect+` WHERE c.car_id = $1`, id), c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find car by ID: %w", err)
	}
	return c, nil
}

// FindTypes lists the car type reference data
func (r *carRepository) FindTypes(ctx context.Context) ([]model.CarType, error) {
	rows, err := r.db.Query(ctx, `SELECT type_id, name, description FROM car_types ORDER BY type_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query car types: %w", err)
	}
	defer rows.Close()

	types := []model.CarType{}
	for rows.Next() {
		var ct model.CarType
		if err := rows.Scan(&ct.ID, &ct.Name, &ct.Description); err != nil {
			return nil, fmt.Errorf("failed to scan car type row: %w", err)
		}
		types = append(types, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating car type rows: %w", err)
	}
	return types, nil
}

// UpdateStatus moves a car from expected to next. It returns
// ErrPreconditionFailed when the car is not currently in expected.
func (r *carRepository) UpdateStatus(ctx context.Context, id int64, expected, next model.CarStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE cars SET status = $1 WHERE car_id = $2 AND status = $3`, next, id, expected)
	if err != nil {
		return fmt.Errorf("failed to update car status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPreconditionFailed
	}
	return nil
}
