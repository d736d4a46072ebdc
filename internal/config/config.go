package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Server struct {
		Port         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
		LogLevel     string
	}

	Upstream struct {
		ForecastURL   string
		GeocodingURL  string
		ReverseURL    string
		ReverseAPIKey string
	}

	Cache struct {
		Duration time.Duration
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Search struct {
		Debounce       time.Duration
		NoResultsDelay time.Duration
	}

	Location struct {
		MinDistanceKM float64
	}

	Reminder struct {
		Enabled bool
		Hour    int
	}

	CircuitBreaker struct {
		Threshold int
		Timeout   time.Duration
	}

	Retry struct {
		MaxRetries int
		Delay      time.Duration
		Multiplier float64
	}
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		zap.L().Info("No .env file found, using environment variables")
	}

	cfg := &Config{}

	// Server configuration
	cfg.Server.Port = getEnv("FIBER_PORT", "8080")
	cfg.Server.ReadTimeout = parseDuration(getEnv("FIBER_READ_TIMEOUT", "10s"))
	cfg.Server.WriteTimeout = parseDuration(getEnv("FIBER_WRITE_TIMEOUT", "10s"))
	cfg.Server.LogLevel = getEnv("LOG_LEVEL", "info")

	// Upstream provider configuration
	cfg.Upstream.ForecastURL = getEnv("OPENMETEO_FORECAST_URL", "https://api.open-meteo.com/v1")
	cfg.Upstream.GeocodingURL = getEnv("OPENMETEO_GEOCODING_URL", "https://geocoding-api.open-meteo.com/v1")
	cfg.Upstream.ReverseURL = getEnv("ORS_GEOCODE_URL", "https://api.openrouteservice.org/geocode")
	cfg.Upstream.ReverseAPIKey = getEnv("ORS_API_KEY", "")

	// Cache configuration
	cfg.Cache.Duration = parseDuration(getEnv("CACHE_DURATION", "10m"))

	// Redis configuration; empty addr selects the in-memory store
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = parseInt(getEnv("REDIS_DB", "0"))

	// Search configuration
	cfg.Search.Debounce = parseDuration(getEnv("SEARCH_DEBOUNCE", "400ms"))
	cfg.Search.NoResultsDelay = parseDuration(getEnv("SEARCH_NO_RESULTS_DELAY", "800ms"))

	// Location configuration
	cfg.Location.MinDistanceKM = parseFloat(getEnv("LOCATION_MIN_DISTANCE_KM", "10"))

	// Reminder configuration
	cfg.Reminder.Enabled = parseBool(getEnv("REMINDER_ENABLED", "true"))
	cfg.Reminder.Hour = parseInt(getEnv("REMINDER_HOUR", "10"))

	// Circuit breaker configuration
	cfg.CircuitBreaker.Threshold = parseInt(getEnv("CIRCUIT_BREAKER_THRESHOLD", "3"))
	cfg.CircuitBreaker.Timeout = parseDuration(getEnv("CIRCUIT_BREAKER_TIMEOUT", "30s"))

	// Retry configuration
	cfg.Retry.MaxRetries = parseInt(getEnv("MAX_RETRIES", "3"))
	cfg.Retry.Delay = parseDuration(getEnv("RETRY_DELAY", "1s"))
	cfg.Retry.Multiplier = parseFloat(getEnv("RETRY_MULTIPLIER", "2"))

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		zap.L().Warn("Failed to parse duration", zap.String("value", value), zap.Error(err))
		return 0
	}
	return duration
}

func parseInt(value string) int {
	intValue, err := strconv.Atoi(value)
	if err != nil {
		zap.L().Warn("Failed to parse int", zap.String("value", value), zap.Error(err))
		return 0
	}
	return intValue
}

func parseFloat(value string) float64 {
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		zap.L().Warn("Failed to parse float", zap.String("value", value), zap.Error(err))
		return 0
	}
	return floatValue
}

func parseBool(value string) bool {
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		zap.L().Warn("Failed to parse bool", zap.String("value", value), zap.Error(err))
		return false
	}
	return boolValue
}
