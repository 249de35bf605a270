package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hammer-backend/auth"
	"hammer-backend/config"
	"hammer-backend/controllers"
	"hammer-backend/routes"
	"hammer-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database connection established and migrations applied")

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize services
	userService := services.NewUserService(db)
	productService := services.NewProductService(db)
	bookingService := services.NewBookingService(db)
	reviewService := services.NewReviewService(db)
	profileService := services.NewProfileService(db)
	stripeGateway := services.NewStripeGateway(cfg.StripeSecretKey)

	// Initialize controllers
	userController := controllers.NewUserController(userService, tokens)
	productController := controllers.NewProductController(productService)
	bookingController := controllers.NewBookingController(bookingService)
	reviewController := controllers.NewReviewController(reviewService)
	profileController := controllers.NewProfileController(profileService)
	paymentController := controllers.NewPaymentController(stripeGateway)

	router := routes.SetupRouter(
		userController,
		productController,
		bookingController,
		reviewController,
		profileController,
		paymentController,
		tokens,
		userService,
		cfg.CORSOrigins,
	)

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
