package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"quotation-service/internal/repository"
	"quotation-service/internal/services"
	"quotation-service/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// respondServiceError maps a service failure onto the response taxonomy:
// sentinel lookups become 404, constraint conflicts and workflow guards
// become 422, everything else is a 500.
func respondServiceError(c fiber.Ctx, err error, action string) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return respondValidationError(c, err)
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(http.StatusNotFound).JSON(
			utils.CreateErrorResponse("NOT_FOUND", err.Error()))
	case errors.Is(err, repository.ErrDuplicate), errors.Is(err, repository.ErrReference):
		return c.Status(http.StatusUnprocessableEntity).JSON(
			utils.CreateErrorResponse("CONFLICT", err.Error()))
	case errors.Is(err, services.ErrCustomerNotOwner):
		return c.Status(http.StatusUnprocessableEntity).JSON(
			utils.CreateErrorResponse("OWNERSHIP_MISMATCH", err.Error()))
	case errors.Is(err, services.ErrQuotationExpired):
		return c.Status(http.StatusUnprocessableEntity).JSON(
			utils.CreateErrorResponse("QUOTATION_EXPIRED", err.Error()))
	default:
		slog.Error("Request failed", "action", action, "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("INTERNAL_ERROR", "Failed to "+action))
	}
}

func respondValidationError(c fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(
		utils.CreateErrorResponse("VALIDATION_ERROR", err.Error()))
}

func parseUUIDParam(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, errors.New("invalid " + name + " format")
	}
	return id, nil
}
