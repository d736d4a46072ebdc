package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"funweather/internal/api"
	"funweather/internal/astro"
	"funweather/internal/classify"
	"funweather/internal/config"
	"funweather/internal/location"
	"funweather/internal/scheduler"
	"funweather/internal/search"
	"funweather/internal/services"
	"funweather/internal/store"
	"funweather/pkg/client"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	zap.ReplaceGlobals(logger)
	logger.Info("Starting FunWeather Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Key-value store: redis when configured, in-memory otherwise
	var kv store.Store
	if cfg.Redis.Addr != "" {
		kv = store.NewRedisStore(cfg.Redis.Addr, logger)
		logger.Info("Using redis store", zap.String("addr", cfg.Redis.Addr))
	} else {
		kv = store.NewMemoryStore(logger)
		logger.Info("Using in-memory store")
	}

	// Outbound provider clients share the resilience config
	clientCfg := client.ClientConfig{
		Timeout:        cfg.Server.ReadTimeout,
		MaxRetries:     cfg.Retry.MaxRetries,
		RetryDelay:     cfg.Retry.Delay,
		Multiplier:     cfg.Retry.Multiplier,
		BreakerTimeout: cfg.CircuitBreaker.Timeout,
	}
	forecast := client.NewForecastClient(clientCfg, logger)
	forecast.SetBaseURL(cfg.Upstream.ForecastURL)
	geocoding := client.NewGeocodingClient(clientCfg, logger)
	geocoding.SetBaseURL(cfg.Upstream.GeocodingURL)
	reverse := client.NewReverseClient(cfg.Upstream.ReverseAPIKey, clientCfg, logger)
	reverse.SetBaseURL(cfg.Upstream.ReverseURL)

	// Location pipeline
	feed := location.NewFeed(true)
	arbiter := location.NewArbiter(feed, reverse, kv, logger)
	arbiter.SetMinDistanceKM(cfg.Location.MinDistanceKM)

	// Services
	settings := services.NewSettingsService(kv, logger)
	clock := astro.NewClock(logger)
	classifier := classify.NewClassifier(clock)
	presenter := services.NewPresenter(forecast, classifier, arbiter, settings, kv, cfg.Cache.Duration, logger)
	ranker := search.NewRanker(geocoding, logger)
	session := search.NewSession(ranker)
	session.SetTimings(cfg.Search.Debounce, cfg.Search.NoResultsDelay)

	// Restore persisted state before serving
	startCtx, startCancel := context.WithTimeout(context.Background(), 10*time.Second)
	settings.Load(startCtx)
	arbiter.Load(startCtx)
	startCancel()

	// Daily reminder
	reminder := scheduler.NewReminder(
		&scheduler.LogNotifier{Logger: logger},
		func() string { return settings.Get().Language },
		logger,
	)
	if cfg.Reminder.Enabled {
		if err := reminder.Schedule(cfg.Reminder.Hour); err != nil {
			logger.Fatal("Failed to schedule reminder", zap.Error(err))
		}
		reminder.Start()
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: errorHandler,
	})

	// Setup handlers and routes
	handler := api.NewHandler(presenter, ranker, session, arbiter, feed, settings, logger)
	api.SetupRoutes(app, handler, logger)

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("Starting server", zap.String("address", addr))

		if err := app.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Stop background work
	arbiter.StopTracking()
	if cfg.Reminder.Enabled {
		reminder.Stop()
	}

	// Shutdown Fiber app
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}

func errorHandler(c *fiber.Ctx, err error) error {
	zap.L().Error("HTTP error",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err))

	// Default to 500 status code
	code := fiber.StatusInternalServerError

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   err.Error(),
		"success": false,
	})
}
