package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/rs/zerolog/log"

	"github.com/vanban-ai/summarizer/internal/controllers"
	"github.com/vanban-ai/summarizer/internal/version"
)

const serviceName = "vanban-summarizer"

type HTTPServerDependencies struct {
	SummarizeController *controllers.SummarizeController

	// BodyLimit caps the request body size, which bounds uploads.
	BodyLimit int
}

func NewHTTPServer(deps HTTPServerDependencies) *fiber.App {
	router := fiber.New(fiber.Config{
		AppName:   serviceName,
		BodyLimit: deps.BodyLimit,
	})

	// Add basic middleware
	router.Use(cors.New())
	router.Use(logger.New())

	router.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Vanban Summarizer API",
			"version": version.GetVersion(),
			"endpoints": fiber.Map{
				"/health":          "GET - liveness check",
				"/summarize":       "POST - answer a question about an uploaded document",
				"/batch-summarize": "POST - process multiple documents in one request",
			},
		})
	})

	router.Get("/health", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "ok",
			"service":   serviceName,
			"version":   version.GetVersion(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	if deps.SummarizeController == nil {
		log.Fatal().Msg("Summarize controller is nil, the server cannot serve requests without it")
	}

	router.Post("/summarize", deps.SummarizeController.Summarize)
	router.Post("/batch-summarize", deps.SummarizeController.BatchSummarize)

	return router
}
