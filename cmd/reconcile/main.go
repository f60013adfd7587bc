// Command reconcile applies the date-driven rental transitions once and
// exits. It is meant for an external scheduler such as a Kubernetes
// CronJob when the in-process scheduler is disabled.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"car_rental/internal/config"
	"car_rental/internal/repository"
	"car_rental/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dbPool, err := config.ConnectDB(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	bookingService := service.NewBookingService(
		repository.NewCarRepository(dbPool),
		repository.NewRentalRepository(dbPool),
		repository.NewUserRepository(dbPool),
	)

	started, completed, err := bookingService.ReconcileStatuses(ctx, time.Now())
	if err != nil {
		log.Printf("Reconcile failed after starting %d rentals: %v", started, err)
		dbPool.Close()
		os.Exit(1)
	}
	log.Printf("Reconcile finished: started=%d completed=%d", started, completed)
}
