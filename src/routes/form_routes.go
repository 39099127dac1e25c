package routes

import (
	"Backend-AuditHub/src/controllers"
	"Backend-AuditHub/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func formRoutes(router fiber.Router) {
	forms := router.Group("/forms")
	forms.Get("/", controllers.GetForms)
	forms.Get("/:id", controllers.GetFormByID)
	forms.Get("/:id/full", controllers.GetFormTree) // survey UI, no auth
	forms.Post("/", middleware.AuthJWT, controllers.CreateForm)
	forms.Put("/:id", middleware.AuthJWT, controllers.UpdateForm)
	forms.Delete("/:id", middleware.AuthJWT, controllers.DeleteForm)
}
