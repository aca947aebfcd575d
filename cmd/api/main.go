package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"meetslot/internal/config"
	"meetslot/internal/database"
	"meetslot/internal/middleware"
	"meetslot/internal/modules/booking"
	"meetslot/internal/modules/schedule"
	"meetslot/internal/modules/user"
	"meetslot/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	intervalRepo := repository.NewIntervalRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	scheduleService := schedule.NewService(userRepo, intervalRepo)
	scheduleHandler := schedule.NewHandler(scheduleService)

	bookingService := booking.NewService(userRepo, bookingRepo, intervalRepo)
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.New()
	r.Use(gin.Logger(), middleware.CORS(), middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		userHandler.RegisterRoutes(v1)
		scheduleHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
	}

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		log.Println("Listening on", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
