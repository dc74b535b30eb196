package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the API under /api/v1 and keeps the unversioned
// /roles and /analyze_resume paths used by the web client.
func RegisterRoutes(app *fiber.App, analyzeHandler *AnalyzeHandler, rolesHandler *RolesHandler) {
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/roles", rolesHandler.HandleListRoles)
	api.Post("/analyze", analyzeHandler.HandleAnalyze)

	app.Get("/roles", rolesHandler.HandleListRoles)
	app.Post("/analyze_resume", analyzeHandler.HandleAnalyze)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume ATS Scorer API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/roles",
				"POST /api/v1/analyze",
				"GET /api/v1/health",
			},
		})
	})
}
