package main

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"eduvibe/backend/config"
	"eduvibe/backend/middleware"
	"eduvibe/backend/routes"
	"eduvibe/backend/store"
	"eduvibe/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize the in-memory store
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Error initializing store: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app; unexpected faults become a generic 500 without
	// leaking internals.
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) && fiberErr.Code != fiber.StatusInternalServerError {
				return utils.Fail(c, fiberErr.Code, fiberErr.Message)
			}
			logger.Printf("unhandled error: %v", err)
			return utils.Fail(c, fiber.StatusInternalServerError, "Something went wrong on the server.")
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, st, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
