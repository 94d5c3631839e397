package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"terminly/calendar"
	"terminly/config"
	"terminly/handlers"
	"terminly/middleware"
	"terminly/routes"
	"terminly/services/scheduling"
	"terminly/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	loc, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid timezone %q: %v", config.AppConfig.Timezone, err)
	}

	hours, err := scheduling.ParseWeeklyHours(config.AppConfig.WorkingHours)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid working hours: %v", err)
	}

	gateway, err := calendar.NewGoogleGateway(context.Background(), config.AppConfig.CredentialsFile, loc)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar gateway: %v", err)
	}

	engine := &scheduling.DefaultSchedulingEngine{
		Gateway:      gateway,
		Hours:        hours,
		CalendarID:   config.AppConfig.CalendarID,
		SlotDuration: time.Duration(config.AppConfig.SlotDurationMin) * time.Minute,
		Location:     loc,
	}

	bookingHandler := handlers.NewBookingHandler(engine, config.AppConfig.SearchHorizonDays, logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, bookingHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
