package controllers

import (
	"github.com/gofiber/fiber/v2"

	"Backend-AuditHub/src/models"
	"Backend-AuditHub/src/services/answers"
	"Backend-AuditHub/src/services/submissions"
	"Backend-AuditHub/src/utils"
)

// CreateAnswer godoc
// @Summary      Append an answer to an existing submission
// @Tags         answers
// @Accept       json
// @Produce      json
// @Param        body body models.CreateAnswerRequest true "Answer"
// @Success      201  {object}  models.Answer
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /answers [post]
func CreateAnswer(c *fiber.Ctx) error {
	var req models.CreateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if msg := utils.ValidateStruct(req); msg != "" {
		return utils.HandleError(c, fiber.StatusBadRequest, msg)
	}

	answer, err := answers.CreateAnswer(c.Context(), &req)
	if err != nil {
		if err == submissions.ErrSubmissionNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create answer: "+err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(answer)
}

// GetAnswers godoc
// @Summary      Get answers with pagination
// @Tags         answers
// @Produce      json
// @Param        page          query  int     false  "Page number" default(1)
// @Param        limit         query  int     false  "Number of items per page" default(10)
// @Param        submissionId  query  string  false  "Filter by submission"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /answers [get]
func GetAnswers(c *fiber.Ctx) error {
	result, err := answers.GetAnswers(parsePagination(c), c.Query("submissionId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch answers: "+err.Error())
	}
	return c.JSON(result)
}

// GetAnswerByID godoc
// @Summary      Get an answer by ID
// @Tags         answers
// @Produce      json
// @Param        id path string true "Answer ID"
// @Success      200  {object}  models.Answer
// @Failure      404  {object}  models.ErrorResponse
// @Router       /answers/{id} [get]
func GetAnswerByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid answer ID")
	}

	answer, err := answers.GetAnswerByID(c.Context(), id)
	if err != nil {
		if err == answers.ErrAnswerNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch answer: "+err.Error())
	}
	return c.JSON(answer)
}

// UpdateAnswer godoc
// @Summary      Update an answer's value
// @Description  Only the value can change; submission and question references are fixed
// @Tags         answers
// @Accept       json
// @Produce      json
// @Param        id path string true "Answer ID"
// @Param        body body map[string]string true "New value"
// @Success      200  {object}  models.Answer
// @Failure      404  {object}  models.ErrorResponse
// @Router       /answers/{id} [put]
func UpdateAnswer(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid answer ID")
	}

	var body struct {
		Value string `json:"value" validate:"required"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if msg := utils.ValidateStruct(body); msg != "" {
		return utils.HandleError(c, fiber.StatusBadRequest, msg)
	}

	answer, err := answers.UpdateAnswer(c.Context(), id, body.Value)
	if err != nil {
		if err == answers.ErrAnswerNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update answer: "+err.Error())
	}
	return c.JSON(answer)
}

// DeleteAnswer godoc
// @Summary      Delete an answer
// @Tags         answers
// @Produce      json
// @Param        id path string true "Answer ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /answers/{id} [delete]
func DeleteAnswer(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid answer ID")
	}

	if err := answers.DeleteAnswer(c.Context(), id); err != nil {
		if err == answers.ErrAnswerNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete answer: "+err.Error())
	}
	return c.JSON(fiber.Map{"message": "Answer deleted successfully"})
}
