package services

import (
	"context"
	"fmt"

	"quotation-service/internal/models"
	"quotation-service/internal/repository"

	"github.com/google/uuid"
)

// CatalogService maintains the reference data the workflows draw from:
// document types, insurers and their ratio snapshots, plans and consultants.
type CatalogService struct {
	catalogRepo *repository.CatalogRepository
}

func NewCatalogService(catalogRepo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

func (s *CatalogService) CreateDocumentType(req models.CreateDocumentTypeRequest) (*models.DocumentType, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	dt := &models.DocumentType{
		ID:        uuid.New(),
		Name:      req.Name,
		MinLength: req.MinLength,
		MaxLength: req.MaxLength,
	}
	if err := s.catalogRepo.CreateDocumentType(dt); err != nil {
		return nil, fmt.Errorf("failed to create document type: %w", err)
	}
	return dt, nil
}

func (s *CatalogService) ListDocumentTypes() ([]models.DocumentType, error) {
	return s.catalogRepo.GetAllDocumentTypes()
}

func (s *CatalogService) ListRisks() ([]models.Risk, error) {
	return s.catalogRepo.GetAllRisks()
}

func (s *CatalogService) CreateInsuranceVehicle(req models.CreateInsuranceVehicleRequest) (*models.InsuranceVehicle, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	insurer := &models.InsuranceVehicle{
		ID:          uuid.New(),
		Name:        req.Name,
		DisplaySlot: req.DisplaySlot,
		Active:      true,
	}
	if err := s.catalogRepo.CreateInsuranceVehicle(insurer); err != nil {
		return nil, fmt.Errorf("failed to create insurer: %w", err)
	}
	return insurer, nil
}

func (s *CatalogService) ListActiveInsuranceVehicles() ([]models.InsuranceVehicle, error) {
	return s.catalogRepo.GetActiveInsuranceVehicles()
}

// CreateRatio appends a new rate-table snapshot for an insurer. Snapshots are
// never edited in place; existing premiums keep pointing at the snapshot they
// were priced with.
func (s *CatalogService) CreateRatio(insurerID uuid.UUID, req models.CreateRatioRequest) (*models.InsuranceVehicleRatio, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if _, err := s.catalogRepo.GetInsuranceVehicleByID(insurerID); err != nil {
		return nil, err
	}

	ratio := &models.InsuranceVehicleRatio{
		ID:                 uuid.New(),
		InsuranceVehicleID: insurerID,
		EmissionRight:      req.EmissionRight,
		Tax:                req.Tax,
		Fee:                req.Fee,
		DirectDebit:        req.DirectDebit,
	}
	if err := s.catalogRepo.CreateRatio(ratio); err != nil {
		return nil, fmt.Errorf("failed to create ratio: %w", err)
	}
	return ratio, nil
}

func (s *CatalogService) GetLatestRatio(ctx context.Context, insurerID uuid.UUID) (*models.InsuranceVehicleRatio, error) {
	return s.catalogRepo.GetLatestRatio(ctx, insurerID)
}

func (s *CatalogService) CreatePlan(req models.CreatePlanRequest) (*models.InsurancePlan, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if _, err := s.catalogRepo.GetInsuranceVehicleByID(req.InsuranceVehicleID); err != nil {
		return nil, err
	}

	plan := &models.InsurancePlan{
		ID:                 uuid.New(),
		InsuranceVehicleID: req.InsuranceVehicleID,
		RiskID:             req.RiskID,
		Name:               req.Name,
		CommissionRate:     req.CommissionRate,
		Active:             true,
	}
	if err := s.catalogRepo.CreatePlan(plan); err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}
	return plan, nil
}

func (s *CatalogService) CreateConsultant(req models.CreateConsultantRequest) (*models.Consultant, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	consultant := &models.Consultant{
		ID:                    uuid.New(),
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		DocumentNumber:        req.DocumentNumber,
		Role:                  req.Role,
		NewSaleCommissionRate: req.NewSaleCommissionRate,
		Active:                true,
	}
	if err := s.catalogRepo.CreateConsultant(consultant); err != nil {
		return nil, fmt.Errorf("failed to create consultant: %w", err)
	}
	return consultant, nil
}

func (s *CatalogService) GetConsultant(id uuid.UUID) (*models.Consultant, error) {
	return s.catalogRepo.GetConsultantByID(id)
}

// UpdateConsultantRate changes a seller's new-sale commission rate. Already
// issued records keep their snapshotted rate.
func (s *CatalogService) UpdateConsultantRate(id uuid.UUID, rate float64) error {
	if rate < 0 || rate > 1 {
		return fmt.Errorf("commission rate must be within [0,1]")
	}
	return s.catalogRepo.UpdateConsultantRate(id, rate)
}
