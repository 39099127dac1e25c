package controllers

import (
	"github.com/gofiber/fiber/v2"

	"Backend-AuditHub/src/models"
	"Backend-AuditHub/src/services/questions"
	"Backend-AuditHub/src/utils"
)

// CreateQuestion godoc
// @Summary      Create a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        body body models.CreateQuestionRequest true "Question"
// @Success      201  {object}  models.Question
// @Failure      400  {object}  models.ErrorResponse
// @Router       /questions [post]
func CreateQuestion(c *fiber.Ctx) error {
	var req models.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if msg := utils.ValidateStruct(req); msg != "" {
		return utils.HandleError(c, fiber.StatusBadRequest, msg)
	}

	question, err := questions.CreateQuestion(c.Context(), &req)
	if err != nil {
		if err == questions.ErrCategoryNotFound {
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create question: "+err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(question)
}

// GetQuestions godoc
// @Summary      Get questions with pagination
// @Tags         questions
// @Produce      json
// @Param        page        query  int     false  "Page number" default(1)
// @Param        limit       query  int     false  "Number of items per page" default(10)
// @Param        categoryId  query  string  false  "Filter by category"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /questions [get]
func GetQuestions(c *fiber.Ctx) error {
	result, err := questions.GetQuestions(parsePagination(c), c.Query("categoryId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch questions: "+err.Error())
	}
	return c.JSON(result)
}

// GetQuestionByID godoc
// @Summary      Get a question by ID
// @Tags         questions
// @Produce      json
// @Param        id path string true "Question ID"
// @Success      200  {object}  models.Question
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questions/{id} [get]
func GetQuestionByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	question, err := questions.GetQuestionByID(c.Context(), id)
	if err != nil {
		if err == questions.ErrQuestionNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch question: "+err.Error())
	}
	return c.JSON(question)
}

// UpdateQuestion godoc
// @Summary      Update a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        id path string true "Question ID"
// @Param        body body models.CreateQuestionRequest true "Question"
// @Success      200  {object}  models.Question
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questions/{id} [put]
func UpdateQuestion(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	var req models.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if msg := utils.ValidateStruct(req); msg != "" {
		return utils.HandleError(c, fiber.StatusBadRequest, msg)
	}

	question, err := questions.UpdateQuestion(c.Context(), id, &req)
	if err != nil {
		if err == questions.ErrQuestionNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update question: "+err.Error())
	}
	return c.JSON(question)
}

// DeleteQuestion godoc
// @Summary      Delete a question with its options and conditionals
// @Tags         questions
// @Produce      json
// @Param        id path string true "Question ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questions/{id} [delete]
func DeleteQuestion(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	if err := questions.DeleteQuestion(c.Context(), id); err != nil {
		if err == questions.ErrQuestionNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete question: "+err.Error())
	}
	return c.JSON(fiber.Map{"message": "Question deleted successfully"})
}
