package handlers

import (
	"net/http"

	"quotation-service/internal/models"
	"quotation-service/internal/services"
	"quotation-service/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// WorkflowHandler exposes the quotation wizard: one route per step, GET to
// render the step and POST to submit it. Successful submits answer with the
// next step's route so the client can follow the chain.
type WorkflowHandler struct {
	workflowService *services.QuotationWorkflowService
}

func NewWorkflowHandler(workflowService *services.QuotationWorkflowService) *WorkflowHandler {
	return &WorkflowHandler{workflowService: workflowService}
}

func (h *WorkflowHandler) Register(app *fiber.App) {
	base := app.Group("insurance/api/v1")
	wizard := base.Group("/wizard")

	wizard.Get("/roles", h.SelectRole)
	wizard.Get("/roles/:role/sellers", h.SelectSeller)

	wizard.Get("/sellers/:seller_id/customer-search", h.RenderCustomerSearch)
	wizard.Post("/sellers/:seller_id/customer-search", h.SearchCustomer)
	wizard.Get("/sellers/:seller_id/customer-type", h.SelectCustomerType)
	wizard.Post("/sellers/:seller_id/customers/:kind", h.CreateCustomer)

	wizard.Get("/sellers/:seller_id/customers/:customer_id/vehicle-search", h.RenderVehicleSearch)
	wizard.Post("/sellers/:seller_id/customers/:customer_id/vehicle-search", h.SearchVehicle)
	wizard.Post("/sellers/:seller_id/customers/:customer_id/vehicles", h.CreateVehicle)

	wizard.Post("/sellers/:seller_id/customers/:customer_id/vehicles/:vehicle_id/owner", h.DefineOwner)
	wizard.Post("/sellers/:seller_id/customers/:customer_id/vehicles/:vehicle_id/owner-search", h.SearchOwner)
	wizard.Post("/sellers/:seller_id/customers/:customer_id/vehicles/:vehicle_id/owners", h.CreateOwner)

	wizard.Post("/sellers/:seller_id/customers/:customer_id/vehicles/:vehicle_id/quotations", h.CreateQuotation)

	base.Put("/vehicles/:vehicle_id", h.UpdateVehicle)
	base.Get("/customers/:customer_id/quotations", h.ListCustomerQuotations)

	quotations := base.Group("/quotations")
	quotations.Get("/:quotation_id/premiums", h.RenderPremiumGrid)
	quotations.Post("/:quotation_id/premiums", h.CreatePremiums)
	quotations.Get("/:quotation_id", h.GetQuotationDetail)
	quotations.Put("/:quotation_id", h.UpdateQuotation)
}

// UpdateVehicle is the edit-in-place variant of the vehicle step.
func (h *WorkflowHandler) UpdateVehicle(c fiber.Ctx) error {
	vehicleID, err := parseUUIDParam(c, "vehicle_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	var req models.CreateVehicleRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondValidationError(c, err)
	}

	vehicle, err := h.workflowService.UpdateVehicle(vehicleID, req)
	if err != nil {
		return respondServiceError(c, err, "update vehicle")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(vehicle))
}

// ListCustomerQuotations shows a customer's quotation history.
func (h *WorkflowHandler) ListCustomerQuotations(c fiber.Ctx) error {
	customerID, err := parseUUIDParam(c, "customer_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	quotations, err := h.workflowService.ListCustomerQuotations(customerID)
	if err != nil {
		return respondServiceError(c, err, "list quotations")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"quotations": quotations,
		"count":      len(quotations),
	}))
}

// SelectRole renders the entry step.
func (h *WorkflowHandler) SelectRole(c fiber.Ctx) error {
	roles := h.workflowService.ListRoles()

	options := make([]map[string]any, 0, len(roles))
	for _, role := range roles {
		options = append(options, map[string]any{
			"role": role,
			"next": models.SelectSellerRoute(role),
		})
	}
	return c.Status(http.StatusOK).JSON(utils.CreateStepResponse(options, ""))
}

// SelectSeller lists active sellers of the chosen role.
func (h *WorkflowHandler) SelectSeller(c fiber.Ctx) error {
	role := models.ConsultantRole(c.Params("role"))

	sellers, err := h.workflowService.ListSellers(role)
	if err != nil {
		return respondValidationError(c, err)
	}

	options := make([]map[string]any, 0, len(sellers))
	for _, seller := range sellers {
		options = append(options, map[string]any{
			"seller": seller,
			"next":   models.SearchCustomerRoute(seller.ID),
		})
	}
	return c.Status(http.StatusOK).JSON(utils.CreateStepResponse(options, ""))
}

// RenderCustomerSearch renders the document-number form.
func (h *WorkflowHandler) RenderCustomerSearch(c fiber.Ctx) error {
	sellerID, err := parseUUIDParam(c, "seller_id")
	if err != nil {
		return respondValidationError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateStepResponse(map[string]any{
		"seller_id": sellerID,
		"fields":    []string{"document_number"},
	}, ""))
}

// SearchCustomer submits the polymorphic document lookup.
func (h *WorkflowHandler) SearchCustomer(c fiber.Ctx) error {
	sellerID, err := parseUUIDParam(c, "seller_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	var req models.SearchByDocumentRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondValidationError(c, err)
	}

	result, err := h.workflowService.SearchCustomer(sellerID, req.DocumentNumber)
	if err != nil {
		return respondServiceError(c, err, "search customer")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateStepResponse(result, result.Next))
}

// SelectCustomerType renders the natural/legal choice, carrying the searched
// document number forward as a query parameter.
func (h *WorkflowHandler) SelectCustomerType(c fiber.Ctx) error {
	sellerID, err := parseUUIDParam(c, "seller_id")
	if err != nil {
		return respondValidationError(c, err)
	}
	documentNumber := c.Query("document_number")

	options := []map[string]any{
		{"kind": models.CustomerNatural, "next": models.CreateCustomerRoute(sellerID, models.CustomerNatural, documentNumber)},
		{"kind": models.CustomerLegal, "next": models.CreateCustomerRoute(sellerID, models.CustomerLegal, documentNumber)},
	}
	return c.Status(http.StatusOK).JSON(utils.CreateStepResponse(options, ""))
}

// CreateCustomer registers the person record plus its membership. The kind
// path segment selects the natural or legal variant.
func (h *WorkflowHandler) CreateCustomer(c fiber.Ctx) error {
	sellerID, err := parseUUIDParam(c, "seller_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	var (
		detail *models.CustomerDetail
		next   string
	)
	switch models.CustomerKind(c.Params("kind")) {
	case models.CustomerNatural:
		var req models.CreateNaturalPersonRequest
		if err := c.Bind().Body(&req); err != nil {
			return respondValidationError(c, err)
		}
		if req.DocumentNumber == "" {
			req.DocumentNumber = c.Query("document_number")
		}
		detail, next, err = h.workflowService.CreateNaturalCustomer(sellerID, req)
	case models.CustomerLegal:
		var req models.CreateLegalPersonRequest
		if err := c.Bind().Body(&req); err != nil {
			return respondValidationError(c, err)
		}
		if req.DocumentNumber == "" {
			req.DocumentNumber = c.Query("document_number")
		}
		detail, next, err = h.workflowService.CreateLegalCustomer(sellerID, req)
	default:
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("VALIDATION_ERROR", "customer kind must be natural or legal"))
	}
	if err != nil {
		return respondServiceError(c, err, "create customer")
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateStepResponse(detail, next))
}

// RenderVehicleSearch renders the plate form.
func (h *WorkflowHandler) RenderVehicleSearch(c fiber.Ctx) error {
	sellerID, err := parseUUIDParam(c, "seller_id")
	if err != nil {
		return respondValidationError(c, err)
	}
	customerID, err := parseUUIDParam(c, "customer_id")
	if err != nil {
		return respondValidationError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateStepResponse(map[string]any{
		"seller_id":   sellerID,
		"customer_id": customerID,
		"fields":      []string{"plate"},
	}, ""))
}

// SearchVehicle submits a plate lookup and branches on ownership.
func (h *WorkflowHandler) SearchVehicle(c fiber.Ctx) error {
	sellerID, err := parseUUIDParam(c, "seller_id")
	if err != nil {
		return respondValidationError(c, err)
	}
	customerID, err := parseUUIDParam(c, "customer_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	var req models.SearchVehicleRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondValidationError(c, err)
	}

	result, err := h.workflowService.SearchVehicle(sellerID, customerID, req.Plate)
	if err != nil {
		return respondServiceError(c, err, "search vehicle")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateStepResponse(result, result.Next))
}

// CreateVehicle registers a new plate.
func (h *WorkflowHandler) CreateVehicle(c fiber.Ctx) error {
	sellerID, err := parseUUIDParam(c, "seller_id")
	if err != nil {
		return respondValidationError(c, err)
	}
	customerID, err := parseUUIDParam(c, "customer_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	var req models.CreateVehicleRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondValidationError(c, err)
	}
	if req.Plate == "" {
		req.Plate = c.Query("plate")
	}

	vehicle, next, err := h.workflowService.CreateVehicle(sellerID, customerID, req)
	if err != nil {
		return respondServiceError(c, err, "create vehicle")
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateStepResponse(vehicle, next))
}

// DefineOwner answers the "is the customer the owner?" step.
func (h *WorkflowHandler) DefineOwner(c fiber.Ctx) error {
	sellerID, customerID, vehicleID, err := h.ownershipParams(c)
	if err != nil {
		return respondValidationError(c, err)
	}

	var req models.DefineOwnerRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondValidationError(c, err)
	}

	next, err := h.workflowService.DefineOwner(sellerID, customerID, vehicleID, req)
	if err != nil {
		return respondServiceError(c, err, "define owner")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateStepResponse(req, next))
}

// SearchOwner submits a standalone-owner document lookup.
func (h *WorkflowHandler) SearchOwner(c fiber.Ctx) error {
	sellerID, customerID, vehicleID, err := h.ownershipParams(c)
	if err != nil {
		return respondValidationError(c, err)
	}

	var req models.SearchByDocumentRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondValidationError(c, err)
	}

	result, err := h.workflowService.SearchOwner(sellerID, customerID, vehicleID, req.DocumentNumber)
	if err != nil {
		return respondServiceError(c, err, "search owner")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateStepResponse(result, result.Next))
}

// CreateOwner registers a standalone owner and binds it to the vehicle.
func (h *WorkflowHandler) CreateOwner(c fiber.Ctx) error {
	sellerID, customerID, vehicleID, err := h.ownershipParams(c)
	if err != nil {
		return respondValidationError(c, err)
	}

	var req models.CreateOwnerRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondValidationError(c, err)
	}
	if req.DocumentNumber == "" {
		req.DocumentNumber = c.Query("document_number")
	}

	owner, next, err := h.workflowService.CreateOwner(sellerID, customerID, vehicleID, req)
	if err != nil {
		return respondServiceError(c, err, "create owner")
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateStepResponse(owner, next))
}

// CreateQuotation persists the quotation header. The registrar defaults to
// the seller unless the gateway forwards a distinct operator identity.
func (h *WorkflowHandler) CreateQuotation(c fiber.Ctx) error {
	sellerID, customerID, vehicleID, err := h.ownershipParams(c)
	if err != nil {
		return respondValidationError(c, err)
	}

	registrarID := sellerID
	if header := c.Get("X-Registrar-ID"); header != "" {
		registrarID, err = uuid.Parse(header)
		if err != nil {
			return respondValidationError(c, err)
		}
	}

	var req models.CreateQuotationRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondValidationError(c, err)
	}

	quotation, next, err := h.workflowService.CreateQuotation(registrarID, sellerID, customerID, vehicleID, req)
	if err != nil {
		return respondServiceError(c, err, "create quotation")
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateStepResponse(quotation, next))
}

// RenderPremiumGrid pre-seeds one row per active insurer with its latest
// ratio.
func (h *WorkflowHandler) RenderPremiumGrid(c fiber.Ctx) error {
	quotationID, err := parseUUIDParam(c, "quotation_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	entries, err := h.workflowService.PreparePremiumGrid(c.Context(), quotationID)
	if err != nil {
		return respondServiceError(c, err, "prepare premium grid")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateStepResponse(entries, ""))
}

// CreatePremiums saves the whole captured grid atomically.
func (h *WorkflowHandler) CreatePremiums(c fiber.Ctx) error {
	quotationID, err := parseUUIDParam(c, "quotation_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	var req models.CreatePremiumsRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondValidationError(c, err)
	}

	premiums, next, err := h.workflowService.CreatePremiums(c.Context(), quotationID, req)
	if err != nil {
		return respondServiceError(c, err, "save premiums")
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateStepResponse(premiums, next))
}

// GetQuotationDetail renders the terminal display state.
func (h *WorkflowHandler) GetQuotationDetail(c fiber.Ctx) error {
	quotationID, err := parseUUIDParam(c, "quotation_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	detail, err := h.workflowService.GetQuotationDetail(c.Context(), quotationID)
	if err != nil {
		return respondServiceError(c, err, "load quotation")
	}

	// Edit entry points back into the wizard, scoped to this record's IDs.
	edit := map[string]string{
		"seller":  models.SelectSellerRoute(detail.Seller.Role),
		"vehicle": models.SearchVehicleRoute(detail.Seller.ID, detail.Customer.Customer.ID),
		"owner":   models.DefineOwnerRoute(detail.Seller.ID, detail.Customer.Customer.ID, detail.Vehicle.ID),
		"header":  models.QuotationDetailRoute(detail.Quotation.ID),
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(map[string]any{
		"detail": detail,
		"edit":   edit,
	}))
}

// UpdateQuotation is the edit-in-place variant of the header step.
func (h *WorkflowHandler) UpdateQuotation(c fiber.Ctx) error {
	quotationID, err := parseUUIDParam(c, "quotation_id")
	if err != nil {
		return respondValidationError(c, err)
	}

	var req models.UpdateQuotationRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondValidationError(c, err)
	}

	quotation, err := h.workflowService.UpdateQuotation(quotationID, req)
	if err != nil {
		return respondServiceError(c, err, "update quotation")
	}
	return c.Status(http.StatusOK).JSON(utils.CreateStepResponse(quotation, models.QuotationDetailRoute(quotationID)))
}

func (h *WorkflowHandler) ownershipParams(c fiber.Ctx) (sellerID, customerID, vehicleID uuid.UUID, err error) {
	if sellerID, err = parseUUIDParam(c, "seller_id"); err != nil {
		return
	}
	if customerID, err = parseUUIDParam(c, "customer_id"); err != nil {
		return
	}
	vehicleID, err = parseUUIDParam(c, "vehicle_id")
	return
}
