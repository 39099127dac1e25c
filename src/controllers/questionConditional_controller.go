package controllers

import (
	"github.com/gofiber/fiber/v2"

	"Backend-AuditHub/src/models"
	"Backend-AuditHub/src/services/questions"
	"Backend-AuditHub/src/utils"
)

// CreateQuestionConditional godoc
// @Summary      Create a visibility rule for a question
// @Description  Rejects self-references and rules that would create a circular dependency
// @Tags         question-conditionals
// @Accept       json
// @Produce      json
// @Param        body body models.CreateQuestionConditionalRequest true "Conditional"
// @Success      201  {object}  models.QuestionConditional
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /question-conditionals [post]
func CreateQuestionConditional(c *fiber.Ctx) error {
	var req models.CreateQuestionConditionalRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if msg := utils.ValidateStruct(req); msg != "" {
		return utils.HandleError(c, fiber.StatusBadRequest, msg)
	}

	conditional, err := questions.CreateConditional(c.Context(), &req)
	if err != nil {
		switch err {
		case questions.ErrSelfConditional:
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		case questions.ErrConditionalCycle:
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		case questions.ErrQuestionNotFound:
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create conditional: "+err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(conditional)
}

// GetQuestionConditionals godoc
// @Summary      Get question conditionals with pagination
// @Tags         question-conditionals
// @Produce      json
// @Param        page        query  int     false  "Page number" default(1)
// @Param        limit       query  int     false  "Number of items per page" default(10)
// @Param        questionId  query  string  false  "Filter by question"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /question-conditionals [get]
func GetQuestionConditionals(c *fiber.Ctx) error {
	result, err := questions.GetConditionals(parsePagination(c), c.Query("questionId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch conditionals: "+err.Error())
	}
	return c.JSON(result)
}

// GetQuestionConditionalByID godoc
// @Summary      Get a question conditional by ID
// @Tags         question-conditionals
// @Produce      json
// @Param        id path string true "Conditional ID"
// @Success      200  {object}  models.QuestionConditional
// @Failure      404  {object}  models.ErrorResponse
// @Router       /question-conditionals/{id} [get]
func GetQuestionConditionalByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid conditional ID")
	}

	conditional, err := questions.GetConditionalByID(c.Context(), id)
	if err != nil {
		if err == questions.ErrConditionalNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch conditional: "+err.Error())
	}
	return c.JSON(conditional)
}

// UpdateQuestionConditional godoc
// @Summary      Update a question conditional
// @Description  Only values, operator and showQuestion can change; the question pair is immutable
// @Tags         question-conditionals
// @Accept       json
// @Produce      json
// @Param        id path string true "Conditional ID"
// @Param        body body models.CreateQuestionConditionalRequest true "Conditional"
// @Success      200  {object}  models.QuestionConditional
// @Failure      404  {object}  models.ErrorResponse
// @Router       /question-conditionals/{id} [put]
func UpdateQuestionConditional(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid conditional ID")
	}

	var req models.CreateQuestionConditionalRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if msg := utils.ValidateStruct(req); msg != "" {
		return utils.HandleError(c, fiber.StatusBadRequest, msg)
	}

	conditional, err := questions.UpdateConditional(c.Context(), id, &req)
	if err != nil {
		if err == questions.ErrConditionalNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update conditional: "+err.Error())
	}
	return c.JSON(conditional)
}

// DeleteQuestionConditional godoc
// @Summary      Delete a question conditional
// @Tags         question-conditionals
// @Produce      json
// @Param        id path string true "Conditional ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /question-conditionals/{id} [delete]
func DeleteQuestionConditional(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid conditional ID")
	}

	if err := questions.DeleteConditional(c.Context(), id); err != nil {
		if err == questions.ErrConditionalNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete conditional: "+err.Error())
	}
	return c.JSON(fiber.Map{"message": "Conditional deleted successfully"})
}
