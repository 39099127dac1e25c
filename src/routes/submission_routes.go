package routes

import (
	"Backend-AuditHub/src/controllers"
	"Backend-AuditHub/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func submissionRoutes(router fiber.Router) {
	submissions := router.Group("/submissions")
	submissions.Post("/complete", controllers.CompleteSubmission) // respondent-facing, no auth
	submissions.Get("/", middleware.AuthJWT, controllers.GetSubmissions)
	submissions.Get("/:id", middleware.AuthJWT, controllers.GetSubmissionByID)
	submissions.Delete("/:id", middleware.AuthJWT, controllers.DeleteSubmission)
}

func answerRoutes(router fiber.Router) {
	answers := router.Group("/answers")
	answers.Use(middleware.AuthJWT)
	answers.Get("/", controllers.GetAnswers)
	answers.Get("/:id", controllers.GetAnswerByID)
	answers.Post("/", controllers.CreateAnswer)
	answers.Put("/:id", controllers.UpdateAnswer)
	answers.Delete("/:id", controllers.DeleteAnswer)
}

func reportRoutes(router fiber.Router) {
	reports := router.Group("/reports")
	reports.Use(middleware.AuthJWT)
	reports.Post("/generate", controllers.GenerateReport)
	reports.Get("/", controllers.GetReports)
	reports.Get("/:id", controllers.GetReportByID)
	reports.Delete("/:id", controllers.DeleteReport)
}
