package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DBConfig holds database connection parameters
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN renders the libpq-style connection string
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// ConnectDB establishes a connection to the PostgreSQL database
func ConnectDB(ctx context.Context, cfg DBConfig) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	// Retry connecting to the database a few times
	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(ctx, cfg.DSN())
		if err == nil {
			err = pool.Ping(ctx)
			if err == nil {
				log.Printf("Connected to PostgreSQL host=%s db=%s", cfg.Host, cfg.Name)
				return pool, nil
			}
			pool.Close()
		}
		log.Printf("Failed to connect to database (attempt %d/%d): %v. Retrying in %v...", i+1, maxRetries, err, retryInterval)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// Schema creates the rental tables if they don't exist. Pricing is not
// duplicated in the database; total_cost is always written by the service.
const Schema = `
	CREATE TABLE IF NOT EXISTS car_types (
		type_id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE,
		description TEXT
	);

	CREATE TABLE IF NOT EXISTS cars (
		car_id BIGSERIAL PRIMARY KEY,
		type_id BIGINT NOT NULL REFERENCES car_types(type_id),
		brand VARCHAR(100) NOT NULL,
		model VARCHAR(100) NOT NULL,
		year INT NOT NULL,
		license_plate VARCHAR(20) NOT NULL UNIQUE,
		daily_rate BIGINT NOT NULL CHECK (daily_rate > 0), -- in cents
		status VARCHAR(20) NOT NULL DEFAULT 'available' CHECK (status IN ('available', 'rented', 'maintenance')),
		mileage INT NOT NULL DEFAULT 0 CHECK (mileage >= 0),
		image_url TEXT
	);

	CREATE TABLE IF NOT EXISTS users (
		user_id BIGSERIAL PRIMARY KEY,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash TEXT NOT NULL,
		phone_number VARCHAR(30),
		role VARCHAR(20) NOT NULL DEFAULT 'customer' CHECK (role IN ('customer', 'admin')),
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_key ON users (lower(email));

	CREATE TABLE IF NOT EXISTS rentals (
		rental_id BIGSERIAL PRIMARY KEY,
		user_id BIGINT REFERENCES users(user_id),
		car_id BIGINT NOT NULL REFERENCES cars(car_id),
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		total_cost BIGINT NOT NULL CHECK (total_cost >= 0), -- in cents
		status VARCHAR(20) NOT NULL DEFAULT 'booked' CHECK (status IN ('booked', 'ongoing', 'completed', 'cancelled')),
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CHECK (end_date > start_date)
	);
	CREATE INDEX IF NOT EXISTS idx_rentals_car_status ON rentals(car_id, status);
	CREATE INDEX IF NOT EXISTS idx_rentals_status_dates ON rentals(status, start_date, end_date);

	CREATE TABLE IF NOT EXISTS payments (
		payment_id BIGSERIAL PRIMARY KEY,
		rental_id BIGINT NOT NULL REFERENCES rentals(rental_id),
		amount BIGINT NOT NULL CHECK (amount > 0), -- in cents
		payment_method VARCHAR(20) NOT NULL,
		payment_date TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
		status VARCHAR(20) NOT NULL DEFAULT 'completed'
	);
	CREATE INDEX IF NOT EXISTS idx_payments_rental_id ON payments(rental_id);

	CREATE TABLE IF NOT EXISTS reviews (
		review_id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(user_id),
		car_id BIGINT NOT NULL REFERENCES cars(car_id),
		rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
		commentary TEXT,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_reviews_car_id ON reviews(car_id);
`

// AutoMigrate creates tables if they don't exist
func AutoMigrate(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}
	log.Println("AutoMigrate applied successfully")
	return nil
}
