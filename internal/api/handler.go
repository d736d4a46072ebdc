package api

import (
	"time"

	"funweather/internal/location"
	"funweather/internal/models"
	"funweather/internal/search"
	"funweather/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var validate = validator.New()

var startTime = time.Now()

type Handler struct {
	presenter *services.Presenter
	ranker    *search.Ranker
	session   *search.Session
	arbiter   *location.Arbiter
	feed      *location.Feed
	settings  *services.SettingsService
	logger    *zap.Logger
}

func NewHandler(
	presenter *services.Presenter,
	ranker *search.Ranker,
	session *search.Session,
	arbiter *location.Arbiter,
	feed *location.Feed,
	settings *services.SettingsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		presenter: presenter,
		ranker:    ranker,
		session:   session,
		arbiter:   arbiter,
		feed:      feed,
		settings:  settings,
		logger:    logger,
	}
}

// GetCurrentWeather handles GET /api/v1/weather/current
func (h *Handler) GetCurrentWeather(c *fiber.Ctx) error {
	presentation, err := h.presenter.Current(c.Context())
	if err != nil {
		h.logger.Error("Failed to build weather presentation", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":   "Failed to fetch weather data",
			"details": err.Error(),
		})
	}
	return c.JSON(presentation)
}

// SearchCities handles GET /api/v1/cities/search
func (h *Handler) SearchCities(c *fiber.Ctx) error {
	query := c.Query("q")
	language := c.Query("lang", h.settings.Get().Language)

	results, errKind := h.ranker.Search(c.Context(), query, language)
	if errKind == models.ErrNetworkFailure {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "City search is temporarily unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"query":   query,
		"results": results,
	})
}

type searchKeystrokeRequest struct {
	Query string `json:"query"`
	Lang  string `json:"lang" validate:"omitempty,oneof=it en"`
}

// UpdateSearchSession handles POST /api/v1/cities/session. Each call
// is one keystroke; the session debounces them and queries the
// provider for the last one only.
func (h *Handler) UpdateSearchSession(c *fiber.Ctx) error {
	var req searchKeystrokeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": err.Error(),
		})
	}

	lang := req.Lang
	if lang == "" {
		lang = h.settings.Get().Language
	}
	h.session.Update(req.Query, lang)
	return c.SendStatus(fiber.StatusAccepted)
}

// GetSearchSession handles GET /api/v1/cities/session
func (h *Handler) GetSearchSession(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"loading":    h.session.Loading(),
		"results":    h.session.Results(),
		"no_results": h.session.ShowNoResults(),
		"error":      h.session.ErrKind(),
	})
}

// GetLocation handles GET /api/v1/location
func (h *Handler) GetLocation(c *fiber.Ctx) error {
	state, loc := h.arbiter.Snapshot()
	return c.JSON(fiber.Map{
		"state":    state,
		"location": loc,
	})
}

type manualLocationRequest struct {
	Name        string  `json:"name" validate:"required"`
	Region      string  `json:"region"`
	Country     string  `json:"country" validate:"required"`
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
	FeatureCode string  `json:"feature_code"`
}

// SetManualLocation handles POST /api/v1/location/manual
func (h *Handler) SetManualLocation(c *fiber.Ctx) error {
	var req manualLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": err.Error(),
		})
	}

	h.logger.Info("Manual location selected",
		zap.String("name", req.Name),
		zap.String("country", req.Country))

	h.arbiter.SetManual(models.GeoPlace{
		Name:        req.Name,
		Region:      req.Region,
		Country:     req.Country,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		FeatureCode: req.FeatureCode,
	})

	_, loc := h.arbiter.Snapshot()
	return c.JSON(loc)
}

// TrackLocation handles POST /api/v1/location/track
func (h *Handler) TrackLocation(c *fiber.Ctx) error {
	h.arbiter.UseCurrentLocation(c.Context())

	state, loc := h.arbiter.Snapshot()
	return c.JSON(fiber.Map{
		"state":    state,
		"location": loc,
	})
}

// StopTracking handles POST /api/v1/location/stop
func (h *Handler) StopTracking(c *fiber.Ctx) error {
	h.arbiter.StopTracking()
	state, loc := h.arbiter.Snapshot()
	return c.JSON(fiber.Map{
		"state":    state,
		"location": loc,
	})
}

type positionFixRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// PublishFix handles POST /api/v1/location/fix. Position fixes arrive
// from the client device and feed the arbiter's watch subscription.
func (h *Handler) PublishFix(c *fiber.Ctx) error {
	var req positionFixRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": err.Error(),
		})
	}

	h.feed.Publish(models.Coordinates{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	return c.SendStatus(fiber.StatusAccepted)
}

// GetSettings handles GET /api/v1/settings
func (h *Handler) GetSettings(c *fiber.Ctx) error {
	return c.JSON(h.settings.Get())
}

type settingsRequest struct {
	Language   string `json:"language" validate:"omitempty,oneof=it en"`
	UnitTemp   string `json:"unit_temp" validate:"omitempty,oneof=celsius fahrenheit"`
	UnitWind   string `json:"unit_wind" validate:"omitempty,oneof=kmh mph"`
	TimeFormat string `json:"time_format" validate:"omitempty,oneof=24h 12h"`
}

// UpdateSettings handles PUT /api/v1/settings
func (h *Handler) UpdateSettings(c *fiber.Ctx) error {
	var req settingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": err.Error(),
		})
	}

	next := h.settings.Get()
	if req.Language != "" {
		next.Language = req.Language
	}
	if req.UnitTemp != "" {
		next.UnitTemp = req.UnitTemp
	}
	if req.UnitWind != "" {
		next.UnitWind = req.UnitWind
	}
	if req.TimeFormat != "" {
		next.TimeFormat = req.TimeFormat
	}
	h.settings.Update(next)

	return c.JSON(h.settings.Get())
}

// GetHealth handles GET /api/v1/health
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	state, _ := h.arbiter.Snapshot()
	return c.JSON(fiber.Map{
		"status":         "healthy",
		"timestamp":      time.Now(),
		"uptime":         time.Since(startTime).String(),
		"location_state": state,
	})
}
