// Package main is the entry point for the itinerary analysis service.
//
//	@title						Itinerary Analysis API
//	@version					1.0.0
//	@description				A service that flattens airfare-search XML documents, ranks itineraries under several ordering policies, and computes structural differences between datasets.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/itinerary-insights/itinerary-analysis-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/itinerary-insights/itinerary-analysis-service/docs"

	// Application layers
	itinhttp "github.com/itinerary-insights/itinerary-analysis-service/internal/adapter/http"
	"github.com/itinerary-insights/itinerary-analysis-service/internal/adapter/http/middleware"
	"github.com/itinerary-insights/itinerary-analysis-service/internal/adapter/source"
	"github.com/itinerary-insights/itinerary-analysis-service/internal/config"
	"github.com/itinerary-insights/itinerary-analysis-service/internal/infrastructure/logger"
	"github.com/itinerary-insights/itinerary-analysis-service/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	logger.Init(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "itinerary-analysis",
	})
	appLog := logger.Global

	appLog.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("data_dir", cfg.Data.Dir).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, appLog.Logger)

	// Setup routes
	if err := setupRoutes(e, cfg, appLog); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLog.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, appLog)
}

// setupRoutes wires the document source, use case, and HTTP handler.
func setupRoutes(e *echo.Echo, cfg *config.Config, appLog *logger.Logger) error {
	fileSource := source.NewFileSource(cfg.Data.Dir)
	cachingSource, err := source.NewCachingSource(fileSource, cfg.Data.CacheSize, appLog.Logger)
	if err != nil {
		return fmt.Errorf("create document cache: %w", err)
	}

	itineraryUseCase := usecase.NewItineraryUseCase(cachingSource, usecase.Config{
		AllowedOrigin: cfg.Data.AllowedOrigin,
		Logger:        appLog.Logger,
	})

	handler := itinhttp.NewItineraryHandler(itineraryUseCase, itinhttp.Datasets{
		RoundTrip: cfg.Data.RoundTripDataset,
		OneWay:    cfg.Data.OneWayDataset,
	})
	itinhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return nil
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, appLog *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	appLog.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLog.Error().Err(err).Msg("Error during server shutdown")
	}

	appLog.Info().Msg("Server stopped")
}
