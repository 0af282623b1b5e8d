package handlers

import (
	"net/http"

	"quotation-service/internal/models"
	"quotation-service/internal/services"
	"quotation-service/utils"

	"github.com/gofiber/fiber/v3"
)

// CatalogHandler serves the reference data the wizards draw from.
type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) Register(app *fiber.App) {
	base := app.Group("insurance/api/v1")

	base.Get("/document-types", h.ListDocumentTypes)
	base.Post("/document-types", h.CreateDocumentType)

	base.Get("/risks", h.ListRisks)

	insurers := base.Group("/insurers")
	insurers.Get("/", h.ListInsurers)
	insurers.Post("/", h.CreateInsurer)
	insurers.Post("/:insurer_id/ratios", h.CreateRatio)
	insurers.Get("/:insurer_id/ratios/latest", h.GetLatestRatio)

	base.Post("/plans", h.CreatePlan)

	consultants := base.Group("/consultants")
	consultants.Post("/", h.CreateConsultant)
	consultants.Get("/:consultant_id", h.GetConsultant)
	consultants.Patch("/:consultant_id/rate", h.UpdateConsultantRate)
}

func (h *CatalogHandler) ListDocumentTypes(c fiber.Ctx) error {
	documentTypes, err := h.catalogService.ListDocumentTypes()
	if err != nil {
		return respondServiceError(c, err, "list document types")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"document_types": documentTypes,
		"count":          len(documentTypes),
	}))
}

func (h *CatalogHandler) CreateDocumentType(c fiber.Ctx) error {
	var req models.CreateDocumentTypeRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondValidationError(c, err)
	}

	dt, err := h.catalogService.CreateDocumentType(req)
	if err != nil {
		return respondServiceError(c, err, "create document type")
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(dt))
}

func (h *CatalogHandler) ListRisks(c fiber.Ctx) error {
	risks, err := h.catalogService.ListRisks()
	if err != nil {
		return respondServiceError(c, err, "list risks")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"risks": risks,
		"count": len(risks),
	}))
}

func (h *CatalogHandler) ListInsurers(c fiber.Ctx) error {
	insurers, err := h.catalogService.ListActiveInsuranceVehicles()
	if err != nil {
		return respondServiceError(c, err, "list insurers")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"insurers": insurers,
		"count":    len(insurers),
	}))
}

func (h *CatalogHandler) CreateInsurer(c fiber.Ctx) error {
	var req models.CreateInsuranceVehicleRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondValidationError(c, err)
	}

	insurer, err := h.catalogService.CreateInsuranceVehicle(req)
	if err != nil {
		return respondServiceError(c, err, "create insurer")
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(insurer))
}

// CreateRatio appends a rate-table snapshot for an insurer.
func (h *CatalogHandler) CreateRatio(c fiber.Ctx) error {
	insurerID, err := parseUUIDParam(c, "insurer_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	var req models.CreateRatioRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondValidationError(c, err)
	}

	ratio, err := h.catalogService.CreateRatio(insurerID, req)
	if err != nil {
		return respondServiceError(c, err, "create ratio")
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(ratio))
}

func (h *CatalogHandler) GetLatestRatio(c fiber.Ctx) error {
	insurerID, err := parseUUIDParam(c, "insurer_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	ratio, err := h.catalogService.GetLatestRatio(c.Context(), insurerID)
	if err != nil {
		return respondServiceError(c, err, "load latest ratio")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(ratio))
}

func (h *CatalogHandler) CreatePlan(c fiber.Ctx) error {
	var req models.CreatePlanRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondValidationError(c, err)
	}

	plan, err := h.catalogService.CreatePlan(req)
	if err != nil {
		return respondServiceError(c, err, "create plan")
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(plan))
}

func (h *CatalogHandler) CreateConsultant(c fiber.Ctx) error {
	var req models.CreateConsultantRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondValidationError(c, err)
	}

	consultant, err := h.catalogService.CreateConsultant(req)
	if err != nil {
		return respondServiceError(c, err, "create consultant")
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(consultant))
}

func (h *CatalogHandler) GetConsultant(c fiber.Ctx) error {
	consultantID, err := parseUUIDParam(c, "consultant_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	consultant, err := h.catalogService.GetConsultant(consultantID)
	if err != nil {
		return respondServiceError(c, err, "load consultant")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(consultant))
}

// UpdateConsultantRate changes a seller's new-sale rate going forward. Issued
// records keep their snapshotted rate.
func (h *CatalogHandler) UpdateConsultantRate(c fiber.Ctx) error {
	consultantID, err := parseUUIDParam(c, "consultant_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	var req models.UpdateConsultantRateRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondValidationError(c, err)
	}
	if err := req.Validate(); err != nil {
		return respondValidationError(c, err)
	}

	if err := h.catalogService.UpdateConsultantRate(consultantID, req.NewSaleCommissionRate); err != nil {
		return respondServiceError(c, err, "update consultant rate")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"consultant_id":            consultantID,
		"new_sale_commission_rate": req.NewSaleCommissionRate,
	}))
}
