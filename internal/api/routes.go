package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

func SetupRoutes(app *fiber.App, handler *Handler, log *zap.Logger) {
	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
	}))

	// Custom logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} ${pid} ${locals:requestid} ${status} - ${method} ${path}\n",
		TimeFormat: time.RFC3339,
	}))

	// API v1 routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", handler.GetHealth)

	// City search
	api.Get("/cities/search", handler.SearchCities)
	api.Post("/cities/session", handler.UpdateSearchSession)
	api.Get("/cities/session", handler.GetSearchSession)

	// Weather routes
	api.Get("/weather/current", handler.GetCurrentWeather)

	// Location routes
	loc := api.Group("/location")
	loc.Get("/", handler.GetLocation)
	loc.Post("/manual", handler.SetManualLocation)
	loc.Post("/track", handler.TrackLocation)
	loc.Post("/stop", handler.StopTracking)
	loc.Post("/fix", handler.PublishFix)

	// Settings routes
	api.Get("/settings", handler.GetSettings)
	api.Put("/settings", handler.UpdateSettings)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
			"path":  c.Path(),
		})
	})
}
