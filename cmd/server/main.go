package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nearest-throne/service-restroom/internal/application"
	"github.com/nearest-throne/service-restroom/internal/config"
	"github.com/nearest-throne/service-restroom/internal/domain/restroom"
	"github.com/nearest-throne/service-restroom/internal/geocode"
	"github.com/nearest-throne/service-restroom/internal/handler"
	"github.com/nearest-throne/service-restroom/internal/location"
	"github.com/nearest-throne/service-restroom/internal/logger"
	"github.com/nearest-throne/service-restroom/internal/middleware"
	"github.com/nearest-throne/service-restroom/internal/routing"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-restroom")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-restroom",
		zap.String("port", cfg.Port),
	)

	// External collaborators
	routeProvider := routing.NewOSRMProvider(cfg.OSRMBaseURL, http.DefaultClient)
	locator := location.NewCachedProvider(location.NewIPProvider(cfg.GeoIPBaseURL, http.DefaultClient))
	geocoder := geocode.NewNominatimClient(cfg.NominatimBaseURL, cfg.CountryCode, http.DefaultClient)

	// Catalog engine, seeded once at process start
	catalog := application.NewCatalogService(restroom.Seed(), routeProvider, locator, log)

	// HTTP handlers
	catalogHandler := handler.NewCatalogHandler(catalog, geocoder)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.CORSOrigins))
	router.Use(middleware.SecurityHeaders())

	// Register routes
	router.GET("/health", handler.Health("service-restroom"))
	catalogHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-restroom...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-restroom stopped")
}
