package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/example/eventhub/internal/config"
	"github.com/example/eventhub/internal/handlers"
	"github.com/example/eventhub/internal/services"
)

// NewApp builds the fiber application with middleware and all routes wired.
func NewApp(db *gorm.DB, cfg *config.Config, mailer services.Mailer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "EventHub Backend",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowMethods: "GET, POST, OPTIONS",
		MaxAge:       86400,
	}))

	authHandler := handlers.NewAuthHandler(db, cfg, mailer)
	orderHandler := handlers.NewOrderHandler(db, mailer)

	api := app.Group("/api")
	api.Post("/auth", authHandler.Handle)
	api.All("/auth", fallbackHandler)
	api.Post("/orders", orderHandler.Create)
	api.All("/orders", fallbackHandler)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return app
}

// fallbackHandler covers the non-POST methods on API routes: OPTIONS gets
// an empty 200 (CORS preflight), everything else a 405.
func fallbackHandler(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodOptions {
		return c.Status(fiber.StatusOK).SendString("")
	}
	return fiber.NewError(fiber.StatusMethodNotAllowed, "Method not allowed")
}

// errorHandler renders every error as {"error": message}. Non-fiber errors
// (storage failures) surface their message with status 500.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}
