package controllers

import (
	"github.com/gofiber/fiber/v2"

	"Backend-AuditHub/src/models"
	"Backend-AuditHub/src/services/questions"
	"Backend-AuditHub/src/utils"
)

// CreateQuestionOption godoc
// @Summary      Create a question option
// @Tags         question-options
// @Accept       json
// @Produce      json
// @Param        body body models.CreateQuestionOptionRequest true "Option"
// @Success      201  {object}  models.QuestionOption
// @Failure      400  {object}  models.ErrorResponse
// @Router       /question-options [post]
func CreateQuestionOption(c *fiber.Ctx) error {
	var req models.CreateQuestionOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if msg := utils.ValidateStruct(req); msg != "" {
		return utils.HandleError(c, fiber.StatusBadRequest, msg)
	}

	option, err := questions.CreateOption(c.Context(), &req)
	if err != nil {
		if err == questions.ErrQuestionNotFound {
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleError(c, fiber.StatusBadRequest, "Failed to create option: "+err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(option)
}

// GetQuestionOptions godoc
// @Summary      Get question options with pagination
// @Tags         question-options
// @Produce      json
// @Param        page        query  int     false  "Page number" default(1)
// @Param        limit       query  int     false  "Number of items per page" default(10)
// @Param        questionId  query  string  false  "Filter by question"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /question-options [get]
func GetQuestionOptions(c *fiber.Ctx) error {
	result, err := questions.GetOptions(parsePagination(c), c.Query("questionId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch options: "+err.Error())
	}
	return c.JSON(result)
}

// GetQuestionOptionByID godoc
// @Summary      Get a question option by ID
// @Tags         question-options
// @Produce      json
// @Param        id path string true "Option ID"
// @Success      200  {object}  models.QuestionOption
// @Failure      404  {object}  models.ErrorResponse
// @Router       /question-options/{id} [get]
func GetQuestionOptionByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid option ID")
	}

	option, err := questions.GetOptionByID(c.Context(), id)
	if err != nil {
		if err == questions.ErrOptionNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch option: "+err.Error())
	}
	return c.JSON(option)
}

// UpdateQuestionOption godoc
// @Summary      Update a question option
// @Tags         question-options
// @Accept       json
// @Produce      json
// @Param        id path string true "Option ID"
// @Param        body body models.CreateQuestionOptionRequest true "Option"
// @Success      200  {object}  models.QuestionOption
// @Failure      404  {object}  models.ErrorResponse
// @Router       /question-options/{id} [put]
func UpdateQuestionOption(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid option ID")
	}

	var req models.CreateQuestionOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if msg := utils.ValidateStruct(req); msg != "" {
		return utils.HandleError(c, fiber.StatusBadRequest, msg)
	}

	option, err := questions.UpdateOption(c.Context(), id, &req)
	if err != nil {
		if err == questions.ErrOptionNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update option: "+err.Error())
	}
	return c.JSON(option)
}

// DeleteQuestionOption godoc
// @Summary      Delete a question option
// @Tags         question-options
// @Produce      json
// @Param        id path string true "Option ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /question-options/{id} [delete]
func DeleteQuestionOption(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid option ID")
	}

	if err := questions.DeleteOption(c.Context(), id); err != nil {
		if err == questions.ErrOptionNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete option: "+err.Error())
	}
	return c.JSON(fiber.Map{"message": "Option deleted successfully"})
}
