package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// RegisterRoutes mounts the API. results may be nil when history is disabled.
func RegisterRoutes(app *fiber.App, analyze *AnalyzeHandler, results *ResultHandler) {
	// Route used by the original frontend.
	app.Post("/analyze", analyze.HandleAnalyze)

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze", analyze.HandleAnalyze)

	endpoints := []string{
		"POST /analyze",
		"POST /api/v1/analyze",
		"GET /api/v1/health",
	}

	if results != nil {
		api.Get("/analyses", results.HandleListResults)
		api.Get("/analyses/:id", results.HandleGetResult)
		endpoints = append(endpoints, "GET /api/v1/analyses", "GET /api/v1/analyses/:id")
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "Resume Analyzer API",
			"version":   "1.0.0",
			"endpoints": endpoints,
		})
	})
}

// ErrorHandler renders errors that escape a handler as JSON. Bodies rejected
// by the server's BodyLimit get the same response as an oversized upload.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if code == fiber.StatusRequestEntityTooLarge {
		return c.Status(code).JSON(models.ErrorResponse{Error: msgFileTooLarge})
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
