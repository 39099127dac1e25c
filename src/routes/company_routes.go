package routes

import (
	"Backend-AuditHub/src/controllers"
	"Backend-AuditHub/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// companyRoutes กำหนดเส้นทางสำหรับ Company API
func companyRoutes(router fiber.Router) {
	companies := router.Group("/companies")
	companies.Get("/", controllers.GetCompanies)
	companies.Get("/:id", controllers.GetCompanyByID)
	companies.Post("/", middleware.AuthJWT, controllers.CreateCompany)
	companies.Put("/:id", middleware.AuthJWT, controllers.UpdateCompany)
	companies.Delete("/:id", middleware.AuthJWT, controllers.DeleteCompany)
}
