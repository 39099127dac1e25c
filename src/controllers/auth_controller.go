package controllers

import (
	"Backend-AuditHub/src/models"
	"Backend-AuditHub/src/services/auth"
	"Backend-AuditHub/src/utils"

	"github.com/gofiber/fiber/v2"
)

// Login godoc
// @Summary      Admin login
// @Description  Verify credentials and return a JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.LoginRequest true "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if msg := utils.ValidateStruct(req); msg != "" {
		return utils.HandleError(c, fiber.StatusBadRequest, msg)
	}

	token, user, err := auth.Login(c.Context(), &req)
	if err != nil {
		if err == auth.ErrInvalidCredentials {
			return utils.HandleError(c, fiber.StatusUnauthorized, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Login failed: "+err.Error())
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}
