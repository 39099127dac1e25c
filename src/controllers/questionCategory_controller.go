package controllers

import (
	"github.com/gofiber/fiber/v2"

	"Backend-AuditHub/src/models"
	"Backend-AuditHub/src/services/questions"
	"Backend-AuditHub/src/utils"
)

// CreateQuestionCategory godoc
// @Summary      Create a question category
// @Tags         question-categories
// @Accept       json
// @Produce      json
// @Param        body body models.CreateQuestionCategoryRequest true "Category"
// @Success      201  {object}  models.QuestionCategory
// @Failure      400  {object}  models.ErrorResponse
// @Router       /question-categories [post]
func CreateQuestionCategory(c *fiber.Ctx) error {
	var req models.CreateQuestionCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if msg := utils.ValidateStruct(req); msg != "" {
		return utils.HandleError(c, fiber.StatusBadRequest, msg)
	}

	category, err := questions.CreateCategory(c.Context(), &req)
	if err != nil {
		if err == questions.ErrFormNotFound {
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create category: "+err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// GetQuestionCategories godoc
// @Summary      Get question categories with pagination
// @Tags         question-categories
// @Produce      json
// @Param        page    query  int     false  "Page number" default(1)
// @Param        limit   query  int     false  "Number of items per page" default(10)
// @Param        formId  query  string  false  "Filter by form"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /question-categories [get]
func GetQuestionCategories(c *fiber.Ctx) error {
	result, err := questions.GetCategories(parsePagination(c), c.Query("formId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch categories: "+err.Error())
	}
	return c.JSON(result)
}

// GetQuestionCategoryByID godoc
// @Summary      Get a question category by ID
// @Tags         question-categories
// @Produce      json
// @Param        id path string true "Category ID"
// @Success      200  {object}  models.QuestionCategory
// @Failure      404  {object}  models.ErrorResponse
// @Router       /question-categories/{id} [get]
func GetQuestionCategoryByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	category, err := questions.GetCategoryByID(c.Context(), id)
	if err != nil {
		if err == questions.ErrCategoryNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch category: "+err.Error())
	}
	return c.JSON(category)
}

// UpdateQuestionCategory godoc
// @Summary      Update a question category
// @Tags         question-categories
// @Accept       json
// @Produce      json
// @Param        id path string true "Category ID"
// @Param        body body models.CreateQuestionCategoryRequest true "Category"
// @Success      200  {object}  models.QuestionCategory
// @Failure      404  {object}  models.ErrorResponse
// @Router       /question-categories/{id} [put]
func UpdateQuestionCategory(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	var req models.CreateQuestionCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if msg := utils.ValidateStruct(req); msg != "" {
		return utils.HandleError(c, fiber.StatusBadRequest, msg)
	}

	category, err := questions.UpdateCategory(c.Context(), id, &req)
	if err != nil {
		if err == questions.ErrCategoryNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update category: "+err.Error())
	}
	return c.JSON(category)
}

// DeleteQuestionCategory godoc
// @Summary      Delete a question category and its questions
// @Tags         question-categories
// @Produce      json
// @Param        id path string true "Category ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /question-categories/{id} [delete]
func DeleteQuestionCategory(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	if err := questions.DeleteCategory(c.Context(), id); err != nil {
		if err == questions.ErrCategoryNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete category: "+err.Error())
	}
	return c.JSON(fiber.Map{"message": "Category deleted successfully"})
}
