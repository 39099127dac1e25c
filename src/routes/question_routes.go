package routes

import (
	"Backend-AuditHub/src/controllers"
	"Backend-AuditHub/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func questionCategoryRoutes(router fiber.Router) {
	categories := router.Group("/question-categories")
	categories.Get("/", controllers.GetQuestionCategories)
	categories.Get("/:id", controllers.GetQuestionCategoryByID)
	categories.Post("/", middleware.AuthJWT, controllers.CreateQuestionCategory)
	categories.Put("/:id", middleware.AuthJWT, controllers.UpdateQuestionCategory)
	categories.Delete("/:id", middleware.AuthJWT, controllers.DeleteQuestionCategory)
}

func questionRoutes(router fiber.Router) {
	questions := router.Group("/questions")
	questions.Get("/", controllers.GetQuestions)
	questions.Get("/:id", controllers.GetQuestionByID)
	questions.Post("/", middleware.AuthJWT, controllers.CreateQuestion)
	questions.Put("/:id", middleware.AuthJWT, controllers.UpdateQuestion)
	questions.Delete("/:id", middleware.AuthJWT, controllers.DeleteQuestion)
}

func questionOptionRoutes(router fiber.Router) {
	options := router.Group("/question-options")
	options.Get("/", controllers.GetQuestionOptions)
	options.Get("/:id", controllers.GetQuestionOptionByID)
	options.Post("/", middleware.AuthJWT, controllers.CreateQuestionOption)
	options.Put("/:id", middleware.AuthJWT, controllers.UpdateQuestionOption)
	options.Delete("/:id", middleware.AuthJWT, controllers.DeleteQuestionOption)
}

func questionConditionalRoutes(router fiber.Router) {
	conditionals := router.Group("/question-conditionals")
	conditionals.Get("/", controllers.GetQuestionConditionals)
	conditionals.Get("/:id", controllers.GetQuestionConditionalByID)
	conditionals.Post("/", middleware.AuthJWT, controllers.CreateQuestionConditional)
	conditionals.Put("/:id", middleware.AuthJWT, controllers.UpdateQuestionConditional)
	conditionals.Delete("/:id", middleware.AuthJWT, controllers.DeleteQuestionConditional)
}
