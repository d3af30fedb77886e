package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"

	"wintermarket/config"
	wmcron "wintermarket/cron"
	"wintermarket/database"
	"wintermarket/handlers"
	"wintermarket/middleware"
	"wintermarket/routes"
	"wintermarket/services/storage"
	"wintermarket/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlers.InitHandlers()

	// Photo uploads are optional; the endpoint reports unavailable when
	// cloudinary credentials are absent.
	if storageSvc, err := storage.NewCloudinaryStorageService(); err != nil {
		logger.Warn("photo uploads disabled", zap.Error(err))
	} else {
		handlers.StorageSvc = storageSvc
	}

	sweeper := wmcron.NewSweeper(handlers.EventRepo, handlers.BookingRepo)
	if err := sweeper.Start(); err != nil {
		logger.Sugar().Fatalf("main: failed to start hold sweeper: %v", err)
	}

	routes.RegisterRoutes(router)

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

	sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
