package controllers

import (
	"github.com/gofiber/fiber/v2"

	"Backend-AuditHub/src/models"
	"Backend-AuditHub/src/services/companies"
	"Backend-AuditHub/src/services/reports"
	"Backend-AuditHub/src/services/submissions"
	"Backend-AuditHub/src/utils"
)

// GenerateReport godoc
// @Summary      Generate and email audit reports for a submission
// @Description  Builds the QA transcript, generates client and internal narratives concurrently, and emails partner and agency with attachments
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        body body models.GenerateReportRequest true "Submission reference"
// @Success      201  {object}  models.GenerateReportResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      502  {object}  map[string]interface{}
// @Router       /reports/generate [post]
func GenerateReport(c *fiber.Ctx) error {
	var req models.GenerateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if msg := utils.ValidateStruct(req); msg != "" {
		return utils.HandleError(c, fiber.StatusBadRequest, msg)
	}

	result, err := reports.GenerateReport(c.Context(), &req)
	if err != nil {
		switch err {
		case submissions.ErrSubmissionNotFound, companies.ErrCompanyNotFound:
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to generate report: "+err.Error())
	}

	// A failed send is an error to the caller even though the reports are
	// persisted; the response still carries both per-email results.
	if !result.PartnerEmailResult.Success || !result.AgencyEmailResult.Success {
		result.Message = "Report generated but email dispatch failed"
		return c.Status(fiber.StatusBadGateway).JSON(result)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetReports godoc
// @Summary      Get reports with pagination
// @Tags         reports
// @Produce      json
// @Param        page          query  int     false  "Page number" default(1)
// @Param        limit         query  int     false  "Number of items per page" default(10)
// @Param        submissionId  query  string  false  "Filter by submission"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /reports [get]
func GetReports(c *fiber.Ctx) error {
	result, err := reports.GetReports(parsePagination(c), c.Query("submissionId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch reports: "+err.Error())
	}
	return c.JSON(result)
}

// GetReportByID godoc
// @Summary      Get a report by ID
// @Tags         reports
// @Produce      json
// @Param        id path string true "Report ID"
// @Success      200  {object}  models.Report
// @Failure      404  {object}  models.ErrorResponse
// @Router       /reports/{id} [get]
func GetReportByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid report ID")
	}

	report, err := reports.GetReportByID(c.Context(), id)
	if err != nil {
		if err == reports.ErrReportNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch report: "+err.Error())
	}
	return c.JSON(report)
}

// DeleteReport godoc
// @Summary      Delete a report
// @Tags         reports
// @Produce      json
// @Param        id path string true "Report ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /reports/{id} [delete]
func DeleteReport(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid report ID")
	}

	if err := reports.DeleteReport(c.Context(), id); err != nil {
		if err == reports.ErrReportNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete report: "+err.Error())
	}
	return c.JSON(fiber.Map{"message": "Report deleted successfully"})
}
