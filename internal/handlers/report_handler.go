package handlers

import (
	"fmt"
	"net/http"

	"quotation-service/internal/services"

	"github.com/gofiber/fiber/v3"
)

// ReportHandler streams rendered quotation exports back to the caller.
type ReportHandler struct {
	exportService *services.ExportService
}

func NewReportHandler(exportService *services.ExportService) *ReportHandler {
	return &ReportHandler{exportService: exportService}
}

func (h *ReportHandler) Register(app *fiber.App) {
	base := app.Group("insurance/api/v1")

	base.Get("/quotations/:quotation_id/export/spreadsheet", h.ExportSpreadsheet)
	base.Get("/quotations/:quotation_id/export/pdf", h.ExportPDF)
}

func (h *ReportHandler) ExportSpreadsheet(c fiber.Ctx) error {
	quotationID, err := parseUUIDParam(c, "quotation_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	data, err := h.exportService.ExportSpreadsheet(c.Context(), quotationID)
	if err != nil {
		return respondServiceError(c, err, "export spreadsheet")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=quotation_%s.xlsx", quotationID))
	return c.Status(http.StatusOK).Send(data)
}

func (h *ReportHandler) ExportPDF(c fiber.Ctx) error {
	quotationID, err := parseUUIDParam(c, "quotation_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	data, err := h.exportService.ExportPDF(c.Context(), quotationID)
	if err != nil {
		return respondServiceError(c, err, "export pdf")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=quotation_%s.pdf", quotationID))
	return c.Status(http.StatusOK).Send(data)
}
