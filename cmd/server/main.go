package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"car_rental/internal/config"
	"car_rental/internal/handler"
	"car_rental/internal/middleware"
	"car_rental/internal/repository"
	"car_rental/internal/scheduler"
	"car_rental/internal/service"
	"car_rental/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// --- Database Connection ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := config.ConnectDB(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(ctx, dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWT.Secret, cfg.JWT.ExpirationHours)

	// --- Initialize Repositories ---
	carRepo := repository.NewCarRepository(dbPool)
	rentalRepo := repository.NewRentalRepository(dbPool)
	userRepo := repository.NewUserRepository(dbPool)
	paymentRepo := repository.NewPaymentRepository(dbPool)
	reviewRepo := repository.NewReviewRepository(dbPool)

	// --- Initialize Services ---
	carService := service.NewCarService(carRepo, rentalRepo)
	bookingService := service.NewBookingService(carRepo, rentalRepo, userRepo)
	authService := service.NewAuthService(userRepo, cfg.InitialAdminEmail)
	paymentService := service.NewPaymentService(paymentRepo, rentalRepo)
	reviewService := service.NewReviewService(reviewRepo, userRepo, carRepo)

	// --- Initialize Handlers ---
	carHandler := handler.NewCarHandler(carService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	authHandler := handler.NewAuthHandler(authService, jwtUtil)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	systemHandler := handler.NewSystemHandler(dbPool, jwtUtil)

	// --- Setup Gin Router ---
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(), middleware.CORS())

	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	adminRoleMW := middleware.AdminMiddleware()

	// --- Register Routes ---
	apiGroup := router.Group("/api")
	carHandler.RegisterCarRoutes(apiGroup, jwtAuthMW, adminRoleMW)
	bookingHandler.RegisterBookingRoutes(apiGroup, jwtAuthMW, adminRoleMW)
	authHandler.RegisterAuthRoutes(apiGroup, jwtAuthMW, adminRoleMW)
	paymentHandler.RegisterPaymentRoutes(apiGroup, jwtAuthMW, adminRoleMW)
	reviewHandler.RegisterReviewRoutes(apiGroup)
	systemHandler.RegisterSystemRoutes(apiGroup)

	if dir := cfg.Server.StaticDir; dir != "" {
		log.Printf("Serving storefront from %s", dir)
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(dir))))
	}

	// --- Reconcile Scheduler ---
	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched, err = scheduler.NewScheduler(bookingService, cfg.Scheduler.ReconcileSpec)
		if err != nil {
			log.Fatalf("Failed to create scheduler: %v", err)
		}
		sched.Start()
	}

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	log.Println("Shutting down server...")

	if sched != nil {
		sched.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
