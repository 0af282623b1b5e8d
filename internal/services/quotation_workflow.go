package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"quotation-service/internal/config"
	"quotation-service/internal/models"
	"quotation-service/internal/repository"
	"quotation-service/utils"

	"github.com/google/uuid"
)

// ErrValidation marks user-input failures raised inside a step, so handlers
// re-render the current step instead of treating them as server faults.
var ErrValidation = errors.New("invalid input")

// ErrCustomerNotOwner is returned by the vehicle step when the plate resolves
// to a vehicle already owned by a different customer.
var ErrCustomerNotOwner = errors.New("customer does not own the vehicle")

// ErrQuotationExpired blocks issuance from a quotation past its validity
// window.
var ErrQuotationExpired = errors.New("quotation has expired")

// VehicleStepOutcome is the branch taken after a plate search.
type VehicleStepOutcome int

const (
	// VehicleOutcomeQuote moves straight to the quotation header step.
	VehicleOutcomeQuote VehicleStepOutcome = iota
	// VehicleOutcomeDefineOwner asks who owns the vehicle.
	VehicleOutcomeDefineOwner
	// VehicleOutcomeCreateVehicle registers the plate first.
	VehicleOutcomeCreateVehicle
)

// DecideVehicleStep resolves the plate-search branch from already-fetched
// records. A customer-held ownership must match the quoting customer; a
// standalone owner is accepted without comparison.
func DecideVehicleStep(customerID uuid.UUID, vehicle *models.Vehicle, ownership *models.VehicleOwnership) (VehicleStepOutcome, error) {
	if vehicle == nil {
		return VehicleOutcomeCreateVehicle, nil
	}
	if ownership == nil {
		return VehicleOutcomeDefineOwner, nil
	}

	switch ownership.Kind {
	case models.OwnershipCustomer:
		if ownership.CustomerID != nil && *ownership.CustomerID == customerID {
			return VehicleOutcomeQuote, nil
		}
		return 0, ErrCustomerNotOwner
	case models.OwnershipOwner:
		return VehicleOutcomeQuote, nil
	default:
		return 0, fmt.Errorf("invalid ownership kind: %s", ownership.Kind)
	}
}

// CustomerSearchResult carries a found membership, or just the next route
// when the document is unknown and registration should begin.
type CustomerSearchResult struct {
	Customer *models.CustomerDetail `json:"customer,omitempty"`
	Found    bool                   `json:"found"`
	Next     string                 `json:"next"`
}

// VehicleSearchResult mirrors CustomerSearchResult for the plate step. Owner
// is set when the vehicle's ownership points at a standalone owner.
type VehicleSearchResult struct {
	Vehicle *models.Vehicle `json:"vehicle,omitempty"`
	Owner   *models.Owner   `json:"owner,omitempty"`
	Found   bool            `json:"found"`
	Next    string          `json:"next"`
}

// OwnerSearchResult carries a found standalone owner or routes to owner
// registration.
type OwnerSearchResult struct {
	Owner *models.Owner `json:"owner,omitempty"`
	Found bool          `json:"found"`
	Next  string        `json:"next"`
}

// PremiumGridEntry is one pre-seeded row of the premium capture form: the
// insurer plus its latest rate-table snapshot.
type PremiumGridEntry struct {
	Insurer models.InsuranceVehicle      `json:"insurer"`
	Ratio   models.InsuranceVehicleRatio `json:"ratio"`
}

type QuotationWorkflowService struct {
	catalogRepo   *repository.CatalogRepository
	partyRepo     *repository.PartyRepository
	vehicleRepo   *repository.VehicleRepository
	quotationRepo *repository.QuotationRepository
	workflowCfg   config.WorkflowConfig
}

func NewQuotationWorkflowService(
	catalogRepo *repository.CatalogRepository,
	partyRepo *repository.PartyRepository,
	vehicleRepo *repository.VehicleRepository,
	quotationRepo *repository.QuotationRepository,
	workflowCfg config.WorkflowConfig,
) *QuotationWorkflowService {
	return &QuotationWorkflowService{
		catalogRepo:   catalogRepo,
		partyRepo:     partyRepo,
		vehicleRepo:   vehicleRepo,
		quotationRepo: quotationRepo,
		workflowCfg:   workflowCfg,
	}
}

// ============================================================================
// STEPS 1-2: ROLE AND SELLER
// ============================================================================

func (s *QuotationWorkflowService) ListRoles() []models.ConsultantRole {
	return []models.ConsultantRole{models.RoleAdministrative, models.RoleSales}
}

func (s *QuotationWorkflowService) ListSellers(role models.ConsultantRole) ([]models.Consultant, error) {
	switch role {
	case models.RoleAdministrative, models.RoleSales:
	default:
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	sellers, err := s.catalogRepo.GetConsultantsByRole(role)
	if err != nil {
		return nil, fmt.Errorf("failed to list sellers: %w", err)
	}
	return sellers, nil
}

// ============================================================================
// STEPS 3-5: CUSTOMER
// ============================================================================

// SearchCustomer performs the polymorphic document lookup. An unknown
// document routes to customer-type selection with the number carried forward
// rather than persisted.
func (s *QuotationWorkflowService) SearchCustomer(sellerID uuid.UUID, documentNumber string) (*CustomerSearchResult, error) {
	if !utils.IsNumericDocument(documentNumber) {
		return nil, fmt.Errorf("%w: document number must contain digits only", ErrValidation)
	}
	if _, err := s.catalogRepo.GetConsultantByID(sellerID); err != nil {
		return nil, err
	}

	detail, err := s.partyRepo.FindCustomerByDocument(documentNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &CustomerSearchResult{
				Found: false,
				Next:  models.SelectCustomerTypeRoute(sellerID, documentNumber),
			}, nil
		}
		return nil, fmt.Errorf("customer search failed: %w", err)
	}

	return &CustomerSearchResult{
		Customer: detail,
		Found:    true,
		Next:     models.SearchVehicleRoute(sellerID, detail.Customer.ID),
	}, nil
}

// CreateNaturalCustomer registers a natural person and its membership in one
// atomic save.
func (s *QuotationWorkflowService) CreateNaturalCustomer(sellerID uuid.UUID, req models.CreateNaturalPersonRequest) (*models.CustomerDetail, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if err := s.validateDocument(req.DocumentTypeID, req.DocumentNumber); err != nil {
		return nil, "", err
	}

	person := &models.NaturalPerson{
		ID:             uuid.New(),
		DocumentTypeID: req.DocumentTypeID,
		DocumentNumber: req.DocumentNumber,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
	}
	customer := models.NewNaturalCustomer(person.ID)

	if err := s.partyRepo.CreatePersonWithMembership(repository.InsertNaturalPersonTx(person), customer); err != nil {
		return nil, "", fmt.Errorf("failed to create customer: %w", err)
	}

	detail := &models.CustomerDetail{Customer: *customer, Natural: person}
	return detail, models.SearchVehicleRoute(sellerID, customer.ID), nil
}

// CreateLegalCustomer registers a legal person and its membership in one
// atomic save.
func (s *QuotationWorkflowService) CreateLegalCustomer(sellerID uuid.UUID, req models.CreateLegalPersonRequest) (*models.CustomerDetail, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if err := s.validateDocument(req.DocumentTypeID, req.DocumentNumber); err != nil {
		return nil, "", err
	}

	person := &models.LegalPerson{
		ID:             uuid.New(),
		DocumentTypeID: req.DocumentTypeID,
		DocumentNumber: req.DocumentNumber,
		LegalName:      req.LegalName,
		TradeName:      req.TradeName,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
	}
	customer := models.NewLegalCustomer(person.ID)

	if err := s.partyRepo.CreatePersonWithMembership(repository.InsertLegalPersonTx(person), customer); err != nil {
		return nil, "", fmt.Errorf("failed to create customer: %w", err)
	}

	detail := &models.CustomerDetail{Customer: *customer, Legal: person}
	return detail, models.SearchVehicleRoute(sellerID, customer.ID), nil
}

func (s *QuotationWorkflowService) validateDocument(documentTypeID uuid.UUID, documentNumber string) error {
	documentType, err := s.catalogRepo.GetDocumentTypeByID(documentTypeID)
	if err != nil {
		return err
	}
	if err := utils.ValidateDocumentNumber(documentNumber, documentType.MinLength, documentType.MaxLength); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}
	return nil
}

// ============================================================================
// STEPS 6-7: VEHICLE
// ============================================================================

// SearchVehicle resolves a plate against the registry and decides the next
// step from the vehicle's ownership state.
func (s *QuotationWorkflowService) SearchVehicle(sellerID, customerID uuid.UUID, plate string) (*VehicleSearchResult, error) {
	req := models.SearchVehicleRequest{Plate: plate}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if _, err := s.partyRepo.GetCustomerByID(customerID); err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetVehicleByPlate(plate)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("vehicle search failed: %w", err)
	}

	var ownership *models.VehicleOwnership
	if vehicle != nil {
		ownership, err = s.vehicleRepo.GetOwnershipByVehicle(vehicle.ID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("ownership lookup failed: %w", err)
		}
	}

	outcome, err := DecideVehicleStep(customerID, vehicle, ownership)
	if err != nil {
		return nil, err
	}

	switch outcome {
	case VehicleOutcomeQuote:
		var owner *models.Owner
		if ownership.Kind == models.OwnershipOwner {
			owner, err = s.partyRepo.GetOwnerByID(*ownership.OwnerID)
			if err != nil {
				return nil, err
			}
		}
		return &VehicleSearchResult{
			Vehicle: vehicle,
			Owner:   owner,
			Found:   true,
			Next:    models.CreateQuotationRoute(sellerID, customerID, vehicle.ID),
		}, nil
	case VehicleOutcomeDefineOwner:
		return &VehicleSearchResult{
			Vehicle: vehicle,
			Found:   true,
			Next:    models.DefineOwnerRoute(sellerID, customerID, vehicle.ID),
		}, nil
	default:
		return &VehicleSearchResult{
			Found: false,
			Next:  models.CreateVehicleRoute(sellerID, customerID, plate),
		}, nil
	}
}

func (s *QuotationWorkflowService) CreateVehicle(sellerID, customerID uuid.UUID, req models.CreateVehicleRequest) (*models.Vehicle, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrValidation, err)
	}

	vehicle := &models.Vehicle{
		ID:              uuid.New(),
		Plate:           req.Plate,
		Brand:           req.Brand,
		Model:           req.Model,
		FabricationYear: req.FabricationYear,
		Usage:           req.Usage,
		HasGPS:          req.HasGPS,
		EndorseeBank:    req.EndorseeBank,
	}

	if err := s.vehicleRepo.CreateVehicle(vehicle); err != nil {
		return nil, "", fmt.Errorf("failed to create vehicle: %w", err)
	}

	return vehicle, models.DefineOwnerRoute(sellerID, customerID, vehicle.ID), nil
}

// UpdateVehicle is the edit-in-place variant of the vehicle step.
func (s *QuotationWorkflowService) UpdateVehicle(vehicleID uuid.UUID, req models.CreateVehicleRequest) (*models.Vehicle, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	vehicle, err := s.vehicleRepo.GetVehicleByID(vehicleID)
	if err != nil {
		return nil, err
	}

	vehicle.Plate = req.Plate
	vehicle.Brand = req.Brand
	vehicle.Model = req.Model
	vehicle.FabricationYear = req.FabricationYear
	vehicle.Usage = req.Usage
	vehicle.HasGPS = req.HasGPS
	vehicle.EndorseeBank = req.EndorseeBank

	if err := s.vehicleRepo.UpdateVehicle(vehicle); err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}
	return vehicle, nil
}

// ============================================================================
// STEPS 8-10: OWNERSHIP
// ============================================================================

// DefineOwner answers "is the customer the owner?". A yes replaces any prior
// ownership with the customer; a no routes to the owner search.
func (s *QuotationWorkflowService) DefineOwner(sellerID, customerID, vehicleID uuid.UUID, req models.DefineOwnerRequest) (string, error) {
	if _, err := s.vehicleRepo.GetVehicleByID(vehicleID); err != nil {
		return "", err
	}

	if !req.CustomerIsOwner {
		return models.SearchOwnerRoute(sellerID, customerID, vehicleID), nil
	}

	if _, err := s.partyRepo.GetCustomerByID(customerID); err != nil {
		return "", err
	}
	if err := s.vehicleRepo.ReplaceOwnership(models.NewCustomerOwnership(vehicleID, customerID)); err != nil {
		return "", fmt.Errorf("failed to replace ownership: %w", err)
	}
	return models.CreateQuotationRoute(sellerID, customerID, vehicleID), nil
}

// SearchOwner looks up a standalone owner by document. A hit binds the owner
// to the vehicle immediately; a miss routes to owner registration.
func (s *QuotationWorkflowService) SearchOwner(sellerID, customerID, vehicleID uuid.UUID, documentNumber string) (*OwnerSearchResult, error) {
	if !utils.IsNumericDocument(documentNumber) {
		return nil, fmt.Errorf("%w: document number must contain digits only", ErrValidation)
	}

	owner, err := s.partyRepo.GetOwnerByDocument(documentNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &OwnerSearchResult{
				Found: false,
				Next:  models.CreateOwnerRoute(sellerID, customerID, vehicleID, documentNumber),
			}, nil
		}
		return nil, fmt.Errorf("owner search failed: %w", err)
	}

	if err := s.vehicleRepo.ReplaceOwnership(models.NewOwnerOwnership(vehicleID, owner.ID)); err != nil {
		return nil, fmt.Errorf("failed to replace ownership: %w", err)
	}

	return &OwnerSearchResult{
		Owner: owner,
		Found: true,
		Next:  models.CreateQuotationRoute(sellerID, customerID, vehicleID),
	}, nil
}

// CreateOwner registers a standalone owner and binds it to the vehicle.
func (s *QuotationWorkflowService) CreateOwner(sellerID, customerID, vehicleID uuid.UUID, req models.CreateOwnerRequest) (*models.Owner, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if err := s.validateDocument(req.DocumentTypeID, req.DocumentNumber); err != nil {
		return nil, "", err
	}

	owner := &models.Owner{
		ID:             uuid.New(),
		DocumentTypeID: req.DocumentTypeID,
		DocumentNumber: req.DocumentNumber,
		FullName:       req.FullName,
		Phone:          req.Phone,
	}
	if err := s.partyRepo.CreateOwner(owner); err != nil {
		return nil, "", fmt.Errorf("failed to create owner: %w", err)
	}

	if err := s.vehicleRepo.ReplaceOwnership(models.NewOwnerOwnership(vehicleID, owner.ID)); err != nil {
		return nil, "", fmt.Errorf("failed to replace ownership: %w", err)
	}

	return owner, models.CreateQuotationRoute(sellerID, customerID, vehicleID), nil
}

// ============================================================================
// STEPS 11-12: QUOTATION HEADER AND PREMIUMS
// ============================================================================

// CreateQuotation persists the header bound to the fixed vehicular risk.
func (s *QuotationWorkflowService) CreateQuotation(registrarID, sellerID, customerID, vehicleID uuid.UUID, req models.CreateQuotationRequest) (*models.Quotation, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if _, err := s.catalogRepo.GetConsultantByID(sellerID); err != nil {
		return nil, "", err
	}
	if _, err := s.catalogRepo.GetConsultantByID(registrarID); err != nil {
		return nil, "", err
	}
	if _, err := s.partyRepo.GetCustomerByID(customerID); err != nil {
		return nil, "", err
	}
	if _, err := s.vehicleRepo.GetVehicleByID(vehicleID); err != nil {
		return nil, "", err
	}

	risk, err := s.catalogRepo.GetRiskByName(models.RiskVehicular)
	if err != nil {
		return nil, "", fmt.Errorf("vehicular risk not configured: %w", err)
	}

	quotation := &models.Quotation{
		ID:            uuid.New(),
		RegistrarID:   registrarID,
		SellerID:      sellerID,
		CustomerID:    customerID,
		VehicleID:     vehicleID,
		RiskID:        risk.ID,
		InsuredAmount: req.InsuredAmount,
		Currency:      req.Currency,
	}
	if err := s.quotationRepo.CreateQuotation(quotation); err != nil {
		return nil, "", fmt.Errorf("failed to create quotation: %w", err)
	}

	return quotation, models.CreatePremiumsRoute(quotation.ID), nil
}

func (s *QuotationWorkflowService) UpdateQuotation(quotationID uuid.UUID, req models.UpdateQuotationRequest) (*models.Quotation, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	quotation, err := s.quotationRepo.GetQuotationByID(quotationID)
	if err != nil {
		return nil, err
	}

	quotation.InsuredAmount = req.InsuredAmount
	quotation.Currency = req.Currency
	if err := s.quotationRepo.UpdateQuotation(quotation); err != nil {
		return nil, fmt.Errorf("failed to update quotation: %w", err)
	}
	return quotation, nil
}

// PreparePremiumGrid renders the capture form: one row per active insurer,
// pre-seeded with that insurer's latest ratio. The insurer-to-ratio pinning
// is cached so the submit prices against the snapshots the form showed.
func (s *QuotationWorkflowService) PreparePremiumGrid(ctx context.Context, quotationID uuid.UUID) ([]PremiumGridEntry, error) {
	if _, err := s.quotationRepo.GetQuotationByID(quotationID); err != nil {
		return nil, err
	}

	insurers, err := s.catalogRepo.GetActiveInsuranceVehicles()
	if err != nil {
		return nil, fmt.Errorf("failed to list insurers: %w", err)
	}

	entries := make([]PremiumGridEntry, 0, len(insurers))
	pinned := make(map[uuid.UUID]uuid.UUID, len(insurers))
	for _, insurer := range insurers {
		ratio, err := s.catalogRepo.GetLatestRatio(ctx, insurer.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				slog.Warn("Insurer has no ratio snapshot, skipping", "insurer_id", insurer.ID)
				continue
			}
			return nil, fmt.Errorf("failed to load ratio for insurer %s: %w", insurer.Name, err)
		}
		entries = append(entries, PremiumGridEntry{Insurer: insurer, Ratio: *ratio})
		pinned[insurer.ID] = ratio.ID
	}

	if err := s.quotationRepo.SaveDraftGrid(ctx, quotationID, pinned); err != nil {
		slog.Warn("Failed to cache premium grid", "quotation_id", quotationID, "error", err)
	}
	return entries, nil
}

// CreatePremiums saves the whole captured grid atomically.
func (s *QuotationWorkflowService) CreatePremiums(ctx context.Context, quotationID uuid.UUID, req models.CreatePremiumsRequest) ([]models.QuotationPremium, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if _, err := s.quotationRepo.GetQuotationByID(quotationID); err != nil {
		return nil, "", err
	}

	pinned, err := s.quotationRepo.GetDraftGrid(ctx, quotationID)
	if err != nil {
		return nil, "", err
	}

	premiums := make([]models.QuotationPremium, 0, len(req.Premiums))
	for _, entry := range req.Premiums {
		ratio, err := s.catalogRepo.GetRatioByID(entry.RatioID)
		if err != nil {
			return nil, "", err
		}
		if ratio.InsuranceVehicleID != entry.InsuranceVehicleID {
			return nil, "", fmt.Errorf("%w: ratio %s does not belong to insurer %s", ErrValidation, entry.RatioID, entry.InsuranceVehicleID)
		}
		if pinnedRatio, ok := pinned[entry.InsuranceVehicleID]; ok && pinnedRatio != entry.RatioID {
			return nil, "", fmt.Errorf("%w: insurer %s has a newer ratio snapshot, re-open the premium grid", ErrValidation, entry.InsuranceVehicleID)
		}
		premiums = append(premiums, models.QuotationPremium{
			ID:                 uuid.New(),
			QuotationID:        quotationID,
			InsuranceVehicleID: entry.InsuranceVehicleID,
			RatioID:            entry.RatioID,
			NetAmount:          entry.NetAmount,
			Rate:               entry.Rate,
		})
	}

	if err := s.quotationRepo.CreatePremiumsBatch(premiums); err != nil {
		return nil, "", fmt.Errorf("failed to save premiums: %w", err)
	}
	s.quotationRepo.DeleteDraftGrid(ctx, quotationID)

	return premiums, models.QuotationDetailRoute(quotationID), nil
}

// ============================================================================
// STEP 13: DETAIL
// ============================================================================

// ListCustomerQuotations returns a customer's quotation history, newest
// first.
func (s *QuotationWorkflowService) ListCustomerQuotations(customerID uuid.UUID) ([]models.Quotation, error) {
	if _, err := s.partyRepo.GetCustomerByID(customerID); err != nil {
		return nil, err
	}
	quotations, err := s.quotationRepo.GetQuotationsByCustomer(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}
	return quotations, nil
}

// GetQuotationDetail assembles the terminal display state.
func (s *QuotationWorkflowService) GetQuotationDetail(ctx context.Context, quotationID uuid.UUID) (*models.QuotationDetail, error) {
	quotation, err := s.quotationRepo.GetQuotationByID(quotationID)
	if err != nil {
		return nil, err
	}

	customer, err := s.partyRepo.GetCustomerDetail(quotation.CustomerID)
	if err != nil {
		return nil, err
	}
	vehicle, err := s.vehicleRepo.GetVehicleByID(quotation.VehicleID)
	if err != nil {
		return nil, err
	}
	seller, err := s.catalogRepo.GetConsultantByID(quotation.SellerID)
	if err != nil {
		return nil, err
	}
	registrar, err := s.catalogRepo.GetConsultantByID(quotation.RegistrarID)
	if err != nil {
		return nil, err
	}

	quotes, err := s.buildPremiumQuotes(quotationID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &models.QuotationDetail{
		Quotation: *quotation,
		Customer:  *customer,
		Vehicle:   *vehicle,
		Seller:    *seller,
		Registrar: *registrar,
		Premiums:  quotes,
		ExpiresAt: quotation.ExpiresAt(s.workflowCfg.QuotationValidityDays),
		Expired:   quotation.Expired(s.workflowCfg.QuotationValidityDays, now),
	}, nil
}

func (s *QuotationWorkflowService) buildPremiumQuotes(quotationID uuid.UUID) ([]models.PremiumQuote, error) {
	premiums, err := s.quotationRepo.GetPremiumsByQuotation(quotationID)
	if err != nil {
		return nil, err
	}

	quotes := make([]models.PremiumQuote, 0, len(premiums))
	for _, premium := range premiums {
		insurer, err := s.catalogRepo.GetInsuranceVehicleByID(premium.InsuranceVehicleID)
		if err != nil {
			return nil, err
		}
		ratio, err := s.catalogRepo.GetRatioByID(premium.RatioID)
		if err != nil {
			return nil, err
		}
		quote, err := BuildPremiumQuote(premium, *insurer, *ratio)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, quote)
	}
	return quotes, nil
}
