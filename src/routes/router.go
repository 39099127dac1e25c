package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	authRoutes(app)
	companyRoutes(app)
	formRoutes(app)
	questionCategoryRoutes(app)
	questionRoutes(app)
	questionOptionRoutes(app)
	questionConditionalRoutes(app)
	submissionRoutes(app)
	answerRoutes(app)
	reportRoutes(app)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
