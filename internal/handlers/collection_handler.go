package handlers

import (
	"net/http"

	"quotation-service/internal/models"
	"quotation-service/internal/services"
	"quotation-service/utils"

	"github.com/gofiber/fiber/v3"
)

type CollectionHandler struct {
	collectionService *services.CollectionService
}

func NewCollectionHandler(collectionService *services.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

func (h *CollectionHandler) Register(app *fiber.App) {
	base := app.Group("insurance/api/v1")

	base.Get("/issuances/:issuance_id/collections", h.ListCollections)
	base.Post("/issuances/:issuance_id/collections", h.CreateCollection)
	base.Patch("/issuances/:issuance_id/collections/:collection_id/payment", h.CompletePayment)
}

func (h *CollectionHandler) ListCollections(c fiber.Ctx) error {
	issuanceID, err := parseUUIDParam(c, "issuance_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	collections, err := h.collectionService.ListCollections(issuanceID)
	if err != nil {
		return respondServiceError(c, err, "list collections")
	}

	entries := make([]map[string]any, 0, len(collections))
	for _, collection := range collections {
		entries = append(entries, map[string]any{
			"collection": collection,
			"status":     collection.Status(),
		})
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"collections": entries,
		"count":       len(entries),
	}))
}

func (h *CollectionHandler) CreateCollection(c fiber.Ctx) error {
	issuanceID, err := parseUUIDParam(c, "issuance_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	var req models.CreateCollectionRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondValidationError(c, err)
	}

	collection, err := h.collectionService.CreateCollection(issuanceID, req)
	if err != nil {
		return respondServiceError(c, err, "create collection")
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(collection))
}

func (h *CollectionHandler) CompletePayment(c fiber.Ctx) error {
	issuanceID, err := parseUUIDParam(c, "issuance_id")
	if err != nil {
		return respondValidationError(c, err)
	}
	collectionID, err := parseUUIDParam(c, "collection_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	var req models.CompletePaymentRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondValidationError(c, err)
	}

	collection, err := h.collectionService.CompletePayment(c.Context(), issuanceID, collectionID, req)
	if err != nil {
		return respondServiceError(c, err, "complete payment")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(collection))
}
