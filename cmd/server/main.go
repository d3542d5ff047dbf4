package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "staybook/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"staybook/internal/auth"
	"staybook/internal/cache"
	"staybook/internal/config"
	"staybook/internal/db"
	"staybook/internal/handler"
	"staybook/internal/model"
	"staybook/internal/repository"
	"staybook/internal/router"
	"staybook/internal/service"
)

// @title Staybook API
// @version 1.0
// @description Short-term rental booking API: accounts, places, bookings and image ingestion.
// @host localhost:4000
// @BasePath /api
// @schemes http
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Place{},
		&model.Booking{},
		&model.Image{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	placeRepo := repository.NewPlaceRepository(gormDB)
	bookingRepo := repository.NewBookingRepository(gormDB)
	imageRepo := repository.NewImageRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	placeService := service.NewPlaceService(placeRepo)
	bookingService := service.NewBookingService(bookingRepo)
	uploadService := service.NewUploadService(nil, cacheClient)
	imageService := service.NewImageService(imageRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.CookieDomain)
	placeHandler := handler.NewPlaceHandler(placeService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	uploadHandler := handler.NewUploadHandler(uploadService, imageService)

	// Register routes
	router.Register(e, cfg, authHandler, placeHandler, bookingHandler, uploadHandler)

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := db.Close(gormDB); err != nil {
		log.Printf("database close: %v", err)
	}
}
