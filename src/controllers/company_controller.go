package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-AuditHub/src/models"
	"Backend-AuditHub/src/services/companies"
	"Backend-AuditHub/src/utils"
)

// parsePagination อ่านค่า page/limit/search/sort จาก query string
func parsePagination(c *fiber.Ctx) models.PaginationParams {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", params.Search)
	params.SortBy = c.Query("sortBy", params.SortBy)
	params.Order = c.Query("order", params.Order)
	return params
}

func parseIDParam(c *fiber.Ctx) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Params("id"))
}

// CreateCompany godoc
// @Summary      Create a new company
// @Description  Register a partner or client company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body body models.CreateCompanyRequest true "Company"
// @Success      201  {object}  models.Company
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /companies [post]
func CreateCompany(c *fiber.Ctx) error {
	var req models.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if msg := utils.ValidateStruct(req); msg != "" {
		return utils.HandleError(c, fiber.StatusBadRequest, msg)
	}

	company, err := companies.CreateCompany(c.Context(), &req)
	if err != nil {
		switch err {
		case companies.ErrDuplicateName:
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		case companies.ErrPartnerRequired, companies.ErrPartnerNotFound:
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create company: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(company)
}

// GetCompanies godoc
// @Summary      Get all companies with pagination and search
// @Tags         companies
// @Produce      json
// @Param        page   query  int     false  "Page number" default(1)
// @Param        limit  query  int     false  "Number of items per page" default(10)
// @Param        search query  string  false  "Search by name"
// @Param        type   query  string  false  "Filter by type (partner | client)"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /companies [get]
func GetCompanies(c *fiber.Ctx) error {
	params := parsePagination(c)
	companyType := c.Query("type")

	result, err := companies.GetCompanies(params, companyType)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch companies: "+err.Error())
	}
	return c.JSON(result)
}

// GetCompanyByID godoc
// @Summary      Get a company by ID
// @Tags         companies
// @Produce      json
// @Param        id path string true "Company ID"
// @Success      200  {object}  models.Company
// @Failure      404  {object}  models.ErrorResponse
// @Router       /companies/{id} [get]
func GetCompanyByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid company ID")
	}

	company, err := companies.GetCompanyByID(c.Context(), id)
	if err != nil {
		if err == companies.ErrCompanyNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch company: "+err.Error())
	}
	return c.JSON(company)
}

// UpdateCompany godoc
// @Summary      Update a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id path string true "Company ID"
// @Param        body body models.UpdateCompanyRequest true "Company"
// @Success      200  {object}  models.Company
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /companies/{id} [put]
func UpdateCompany(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid company ID")
	}

	var req models.UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if msg := utils.ValidateStruct(req); msg != "" {
		return utils.HandleError(c, fiber.StatusBadRequest, msg)
	}

	company, err := companies.UpdateCompany(c.Context(), id, &req)
	if err != nil {
		switch err {
		case companies.ErrCompanyNotFound:
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		case companies.ErrDuplicateName:
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		case companies.ErrPartnerRequired, companies.ErrPartnerNotFound:
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update company: "+err.Error())
	}
	return c.JSON(company)
}

// DeleteCompany godoc
// @Summary      Delete a company
// @Tags         companies
// @Produce      json
// @Param        id path string true "Company ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /companies/{id} [delete]
func DeleteCompany(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid company ID")
	}

	if err := companies.DeleteCompany(c.Context(), id); err != nil {
		switch err {
		case companies.ErrCompanyNotFound:
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		case companies.ErrPartnerHasClient:
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete company: "+err.Error())
	}
	return c.JSON(fiber.Map{"message": "Company deleted successfully"})
}
