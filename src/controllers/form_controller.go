package controllers

import (
	"github.com/gofiber/fiber/v2"

	"Backend-AuditHub/src/models"
	"Backend-AuditHub/src/services/forms"
	"Backend-AuditHub/src/utils"
)

// CreateForm godoc
// @Summary      Create a new form
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body body models.CreateFormRequest true "Form"
// @Success      201  {object}  models.Form
// @Failure      400  {object}  models.ErrorResponse
// @Router       /forms [post]
func CreateForm(c *fiber.Ctx) error {
	var req models.CreateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if msg := utils.ValidateStruct(req); msg != "" {
		return utils.HandleError(c, fiber.StatusBadRequest, msg)
	}

	form, err := forms.CreateForm(c.Context(), &req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create form: "+err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(form)
}

// GetForms godoc
// @Summary      Get all forms with pagination
// @Tags         forms
// @Produce      json
// @Param        page   query  int     false  "Page number" default(1)
// @Param        limit  query  int     false  "Number of items per page" default(10)
// @Param        search query  string  false  "Search by title"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /forms [get]
func GetForms(c *fiber.Ctx) error {
	result, err := forms.GetForms(parsePagination(c))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch forms: "+err.Error())
	}
	return c.JSON(result)
}

// GetFormByID godoc
// @Summary      Get a form by ID
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  models.Form
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [get]
func GetFormByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	form, err := forms.GetFormByID(c.Context(), id)
	if err != nil {
		if err == forms.ErrFormNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch form: "+err.Error())
	}
	return c.JSON(form)
}

// GetFormTree godoc
// @Summary      Get a form with its full question tree
// @Description  Categories, questions, options and visibility rules in display order
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  models.FormTree
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id}/full [get]
func GetFormTree(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	tree, err := forms.GetFormTree(c.Context(), id)
	if err != nil {
		if err == forms.ErrFormNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch form tree: "+err.Error())
	}
	return c.JSON(tree)
}

// UpdateForm godoc
// @Summary      Update a form
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        body body models.CreateFormRequest true "Form"
// @Success      200  {object}  models.Form
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [put]
func UpdateForm(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	var req models.CreateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if msg := utils.ValidateStruct(req); msg != "" {
		return utils.HandleError(c, fiber.StatusBadRequest, msg)
	}

	form, err := forms.UpdateForm(c.Context(), id, &req)
	if err != nil {
		if err == forms.ErrFormNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update form: "+err.Error())
	}
	return c.JSON(form)
}

// DeleteForm godoc
// @Summary      Delete a form and its question tree
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [delete]
func DeleteForm(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	if err := forms.DeleteForm(c.Context(), id); err != nil {
		if err == forms.ErrFormNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete form: "+err.Error())
	}
	return c.JSON(fiber.Map{"message": "Form deleted successfully"})
}
