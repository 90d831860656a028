package routes

import (
	"github.com/gofiber/fiber/v2"

	"spotlist-analytics-service/internal/controller"
)

// Register attaches all HTTP routes to the Fiber app.
func Register(app *fiber.App, reportController controller.ReportController) {
	app.Post("/reports/analyze", reportController.Analyze)
	app.Post("/datasets", reportController.StoreDataset)
	app.Get("/datasets/:id/report", reportController.GetStoredReport)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
