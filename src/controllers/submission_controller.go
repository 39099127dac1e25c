package controllers

import (
	"github.com/gofiber/fiber/v2"

	"Backend-AuditHub/src/models"
	"Backend-AuditHub/src/services/companies"
	"Backend-AuditHub/src/services/submissions"
	"Backend-AuditHub/src/services/survey"
	"Backend-AuditHub/src/utils"
)

// CompleteSubmission godoc
// @Summary      Submit a completed audit questionnaire
// @Description  Resolves the company by name, maps the payload against the company's form, and stores submission + answers atomically
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        body body models.CompleteSubmissionRequest true "Company name and form data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/complete [post]
func CompleteSubmission(c *fiber.Ctx) error {
	var req models.CompleteSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if msg := utils.ValidateStruct(req); msg != "" {
		return utils.HandleError(c, fiber.StatusBadRequest, msg)
	}

	submission, answers, result, err := submissions.CompleteSubmission(c.Context(), &req)
	if err != nil {
		switch err {
		case companies.ErrCompanyNotFound:
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		case survey.ErrNoQuestionsFound, survey.ErrNoValidAnswers:
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to complete submission: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":            "Submission completed successfully",
		"submission":         submission,
		"answers":            answers,
		"invalidQuestionIds": result.InvalidQuestionIDs,
	})
}

// GetSubmissions godoc
// @Summary      Get submissions with pagination
// @Tags         submissions
// @Produce      json
// @Param        page       query  int     false  "Page number" default(1)
// @Param        limit      query  int     false  "Number of items per page" default(10)
// @Param        formId     query  string  false  "Filter by form"
// @Param        companyId  query  string  false  "Filter by company"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /submissions [get]
func GetSubmissions(c *fiber.Ctx) error {
	result, err := submissions.GetSubmissions(parsePagination(c), c.Query("formId"), c.Query("companyId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch submissions: "+err.Error())
	}
	return c.JSON(result)
}

// GetSubmissionByID godoc
// @Summary      Get a submission by ID
// @Tags         submissions
// @Produce      json
// @Param        id path string true "Submission ID"
// @Success      200  {object}  models.Submission
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/{id} [get]
func GetSubmissionByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid submission ID")
	}

	submission, err := submissions.GetSubmissionByID(c.Context(), id)
	if err != nil {
		if err == submissions.ErrSubmissionNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch submission: "+err.Error())
	}
	return c.JSON(submission)
}

// DeleteSubmission godoc
// @Summary      Delete a submission
// @Tags         submissions
// @Produce      json
// @Param        id path string true "Submission ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/{id} [delete]
func DeleteSubmission(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid submission ID")
	}

	if err := submissions.DeleteSubmission(c.Context(), id); err != nil {
		if err == submissions.ErrSubmissionNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete submission: "+err.Error())
	}
	return c.JSON(fiber.Map{"message": "Submission deleted successfully"})
}
