package handlers

import (
	"io"
	"net/http"

	"quotation-service/internal/models"
	"quotation-service/internal/services"
	"quotation-service/utils"

	"github.com/gofiber/fiber/v3"
)

type IssuanceHandler struct {
	issuanceService *services.IssuanceService
}

func NewIssuanceHandler(issuanceService *services.IssuanceService) *IssuanceHandler {
	return &IssuanceHandler{issuanceService: issuanceService}
}

func (h *IssuanceHandler) Register(app *fiber.App) {
	base := app.Group("insurance/api/v1")

	base.Get("/premiums/:premium_id/plans", h.ListPlans)
	base.Post("/premiums/:premium_id/issuances", h.CreateIssuance)

	issuances := base.Group("/issuances")
	issuances.Get("/", h.FindByPolicyNumber)
	issuances.Get("/:issuance_id", h.GetIssuanceDetail)
	issuances.Patch("/:issuance_id/status", h.ChangeStatus)

	issuances.Post("/:issuance_id/documents", h.AttachDocument)
	issuances.Get("/:issuance_id/documents/:document_id/url", h.GetDocumentURL)
	issuances.Delete("/:issuance_id/documents/:document_id", h.RemoveDocument)
}

// ListPlans filters the plan catalog for the chosen premium.
func (h *IssuanceHandler) ListPlans(c fiber.Ctx) error {
	premiumID, err := parseUUIDParam(c, "premium_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	plans, err := h.issuanceService.ListPlansForPremium(premiumID)
	if err != nil {
		return respondServiceError(c, err, "list plans")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"plans": plans,
		"count": len(plans),
	}))
}

// CreateIssuance converts the premium into a binding policy record.
func (h *IssuanceHandler) CreateIssuance(c fiber.Ctx) error {
	premiumID, err := parseUUIDParam(c, "premium_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	var req models.CreateIssuanceRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondValidationError(c, err)
	}

	issuance, err := h.issuanceService.CreateIssuance(c.Context(), premiumID, req)
	if err != nil {
		return respondServiceError(c, err, "create issuance")
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(issuance))
}

// FindByPolicyNumber resolves an issuance from the policy_number query
// parameter.
func (h *IssuanceHandler) FindByPolicyNumber(c fiber.Ctx) error {
	issuance, err := h.issuanceService.FindByPolicyNumber(c.Query("policy_number"))
	if err != nil {
		return respondServiceError(c, err, "find issuance")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(issuance))
}

func (h *IssuanceHandler) GetIssuanceDetail(c fiber.Ctx) error {
	issuanceID, err := parseUUIDParam(c, "issuance_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	detail, err := h.issuanceService.GetIssuanceDetail(issuanceID)
	if err != nil {
		return respondServiceError(c, err, "load issuance")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(detail))
}

func (h *IssuanceHandler) ChangeStatus(c fiber.Ctx) error {
	issuanceID, err := parseUUIDParam(c, "issuance_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	var req models.ChangeIssuanceStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondValidationError(c, err)
	}

	issuance, err := h.issuanceService.ChangeStatus(c.Context(), issuanceID, req)
	if err != nil {
		return respondServiceError(c, err, "change status")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(issuance))
}

// AttachDocument accepts a multipart upload and stores it against the
// issuance.
func (h *IssuanceHandler) AttachDocument(c fiber.Ctx) error {
	issuanceID, err := parseUUIDParam(c, "issuance_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("VALIDATION_ERROR", "a file upload named 'file' is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return respondServiceError(c, err, "read upload")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return respondServiceError(c, err, "read upload")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	doc, err := h.issuanceService.AttachDocument(c.Context(), issuanceID, fileHeader.Filename, contentType, data)
	if err != nil {
		return respondServiceError(c, err, "attach document")
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(doc))
}

func (h *IssuanceHandler) GetDocumentURL(c fiber.Ctx) error {
	issuanceID, err := parseUUIDParam(c, "issuance_id")
	if err != nil {
		return respondValidationError(c, err)
	}
	documentID, err := parseUUIDParam(c, "document_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	url, err := h.issuanceService.GetDocumentURL(c.Context(), issuanceID, documentID)
	if err != nil {
		return respondServiceError(c, err, "generate download link")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{"url": url}))
}

func (h *IssuanceHandler) RemoveDocument(c fiber.Ctx) error {
	issuanceID, err := parseUUIDParam(c, "issuance_id")
	if err != nil {
		return respondValidationError(c, err)
	}
	documentID, err := parseUUIDParam(c, "document_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	if err := h.issuanceService.RemoveDocument(c.Context(), issuanceID, documentID); err != nil {
		return respondServiceError(c, err, "remove document")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{"deleted": documentID}))
}
