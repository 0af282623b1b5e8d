package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"quotation-service/internal/config"
	"quotation-service/internal/database/minio"
	"quotation-service/internal/event"
	"quotation-service/internal/models"
	"quotation-service/internal/repository"

	"github.com/google/uuid"
)

const documentURLExpiry = 15 * time.Minute

type IssuanceService struct {
	catalogRepo   *repository.CatalogRepository
	quotationRepo *repository.QuotationRepository
	issuanceRepo  *repository.IssuanceRepository
	minioClient   *minio.MinioClient
	publisher     *event.NotificationPublisher
	workflowCfg   config.WorkflowConfig
}

func NewIssuanceService(
	catalogRepo *repository.CatalogRepository,
	quotationRepo *repository.QuotationRepository,
	issuanceRepo *repository.IssuanceRepository,
	minioClient *minio.MinioClient,
	publisher *event.NotificationPublisher,
	workflowCfg config.WorkflowConfig,
) *IssuanceService {
	return &IssuanceService{
		catalogRepo:   catalogRepo,
		quotationRepo: quotationRepo,
		issuanceRepo:  issuanceRepo,
		minioClient:   minioClient,
		publisher:     publisher,
		workflowCfg:   workflowCfg,
	}
}

// ListPlansForPremium filters the plan catalog to plans valid for the chosen
// premium's insurer and the quotation's risk.
func (s *IssuanceService) ListPlansForPremium(premiumID uuid.UUID) ([]models.InsurancePlan, error) {
	premium, err := s.quotationRepo.GetPremiumByID(premiumID)
	if err != nil {
		return nil, err
	}
	quotation, err := s.quotationRepo.GetQuotationByID(premium.QuotationID)
	if err != nil {
		return nil, err
	}

	plans, err := s.catalogRepo.GetPlansForInsurerAndRisk(premium.InsuranceVehicleID, quotation.RiskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

// CreateIssuance converts a chosen premium into a binding policy record. The
// plan's commission rate (or the operator's override) and the seller's current
// new-sale rate are snapshotted onto the record; later catalog changes never
// alter it. Issuance is blocked once the source quotation has expired.
func (s *IssuanceService) CreateIssuance(ctx context.Context, premiumID uuid.UUID, req models.CreateIssuanceRequest) (*models.Issuance, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	premium, err := s.quotationRepo.GetPremiumByID(premiumID)
	if err != nil {
		return nil, err
	}
	quotation, err := s.quotationRepo.GetQuotationByID(premium.QuotationID)
	if err != nil {
		return nil, err
	}
	if quotation.Expired(s.workflowCfg.QuotationValidityDays, time.Now()) {
		return nil, fmt.Errorf("%w: created %s, validity %d days",
			ErrQuotationExpired, quotation.CreatedAt.Format("2006-01-02"), s.workflowCfg.QuotationValidityDays)
	}

	existing, err := s.issuanceRepo.GetIssuancesByPremium(premiumID)
	if err != nil {
		return nil, err
	}
	for _, prior := range existing {
		if prior.Status == models.IssuanceActive {
			return nil, fmt.Errorf("%w: premium already issued as policy %s", ErrValidation, prior.PolicyNumber)
		}
	}

	plan, err := s.catalogRepo.GetPlanByID(req.PlanID)
	if err != nil {
		return nil, err
	}
	if plan.InsuranceVehicleID != premium.InsuranceVehicleID {
		return nil, fmt.Errorf("%w: plan %s is not valid for the premium's insurer", ErrValidation, plan.Name)
	}
	if plan.RiskID != quotation.RiskID {
		return nil, fmt.Errorf("%w: plan %s is not valid for the quotation's risk", ErrValidation, plan.Name)
	}

	seller, err := s.catalogRepo.GetConsultantByID(req.SellerID)
	if err != nil {
		return nil, err
	}

	planRate := plan.CommissionRate
	if req.PlanCommissionRate != nil {
		planRate = *req.PlanCommissionRate
	}

	issuance := &models.Issuance{
		ID:                   uuid.New(),
		PremiumID:            premiumID,
		PlanID:               plan.ID,
		SellerID:             seller.ID,
		PolicyNumber:         req.PolicyNumber,
		CollectionDocument:   req.CollectionDocument,
		IssuedAt:             req.IssuedAt,
		ValidFrom:            req.ValidFrom,
		ValidTo:              req.ValidTo,
		PaymentMethod:        req.PaymentMethod,
		PlanCommissionRate:   planRate,
		SellerCommissionRate: seller.NewSaleCommissionRate,
		Status:               models.IssuanceActive,
	}
	if err := s.issuanceRepo.CreateIssuance(issuance); err != nil {
		return nil, fmt.Errorf("failed to create issuance: %w", err)
	}

	if err := s.publisher.PublishIssuanceCreated(ctx, issuance.ID, issuance.PolicyNumber, seller.ID); err != nil {
		slog.Warn("Failed to publish issuance event", "issuance_id", issuance.ID, "error", err)
	}
	return issuance, nil
}

// FindByPolicyNumber resolves an issuance from its unique policy number.
func (s *IssuanceService) FindByPolicyNumber(policyNumber string) (*models.Issuance, error) {
	if policyNumber == "" {
		return nil, fmt.Errorf("%w: policy_number is required", ErrValidation)
	}
	return s.issuanceRepo.GetIssuanceByPolicyNumber(policyNumber)
}

// GetIssuanceDetail assembles the issuance with its commission split.
func (s *IssuanceService) GetIssuanceDetail(issuanceID uuid.UUID) (*models.IssuanceDetail, error) {
	issuance, err := s.issuanceRepo.GetIssuanceByID(issuanceID)
	if err != nil {
		return nil, err
	}

	premium, err := s.quotationRepo.GetPremiumByID(issuance.PremiumID)
	if err != nil {
		return nil, err
	}
	plan, err := s.catalogRepo.GetPlanByID(issuance.PlanID)
	if err != nil {
		return nil, err
	}
	seller, err := s.catalogRepo.GetConsultantByID(issuance.SellerID)
	if err != nil {
		return nil, err
	}
	documents, err := s.issuanceRepo.GetDocumentsByIssuance(issuanceID)
	if err != nil {
		return nil, err
	}

	netCommission := NetCommission(premium.NetAmount, issuance.PlanCommissionRate)
	sellerShare, companyShare := CommissionSplit(netCommission, issuance.SellerCommissionRate)

	return &models.IssuanceDetail{
		Issuance:            *issuance,
		Premium:             *premium,
		Plan:                *plan,
		Seller:              *seller,
		Documents:           documents,
		NetCommissionAmount: netCommission,
		SellerCommission:    sellerShare,
		CompanyCommission:   companyShare,
	}, nil
}

// ChangeStatus sets a new lifecycle status with an optional comment. Any
// catalog status is accepted from any prior status.
func (s *IssuanceService) ChangeStatus(ctx context.Context, issuanceID uuid.UUID, req models.ChangeIssuanceStatusRequest) (*models.Issuance, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	issuance, err := s.issuanceRepo.GetIssuanceByID(issuanceID)
	if err != nil {
		return nil, err
	}

	if err := s.issuanceRepo.UpdateIssuanceStatus(issuanceID, req.Status, req.Comment); err != nil {
		return nil, fmt.Errorf("failed to change status: %w", err)
	}
	issuance.Status = req.Status
	issuance.Comment = req.Comment

	if req.Status == models.IssuanceVoid {
		if err := s.publisher.PublishIssuanceVoided(ctx, issuance.ID, issuance.PolicyNumber); err != nil {
			slog.Warn("Failed to publish void event", "issuance_id", issuance.ID, "error", err)
		}
	}
	return issuance, nil
}

// ============================================================================
// DOCUMENT ATTACHMENTS
// ============================================================================

// AttachDocument stores the file in object storage and records its metadata.
func (s *IssuanceService) AttachDocument(ctx context.Context, issuanceID uuid.UUID, fileName, contentType string, data []byte) (*models.IssuanceDocument, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("document %s is empty", fileName)
	}
	if _, err := s.issuanceRepo.GetIssuanceByID(issuanceID); err != nil {
		return nil, err
	}

	doc := &models.IssuanceDocument{
		ID:          uuid.New(),
		IssuanceID:  issuanceID,
		FileName:    fileName,
		ObjectName:  fmt.Sprintf("%s/%s_%s", issuanceID, uuid.New(), fileName),
		ContentType: contentType,
		SizeBytes:   int64(len(data)),
	}

	if err := s.minioClient.UploadBytes(ctx, minio.Storage.IssuanceDocuments, doc.ObjectName, data, contentType); err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}
	if err := s.issuanceRepo.CreateDocument(doc); err != nil {
		// Best effort: do not leave an orphaned object behind the failed row.
		if delErr := s.minioClient.DeleteFile(ctx, minio.Storage.IssuanceDocuments, doc.ObjectName); delErr != nil {
			slog.Warn("Failed to clean up orphaned document object", "object", doc.ObjectName, "error", delErr)
		}
		return nil, fmt.Errorf("failed to record document: %w", err)
	}

	return doc, nil
}

// RemoveDocument deletes the metadata row and the stored object.
func (s *IssuanceService) RemoveDocument(ctx context.Context, issuanceID, documentID uuid.UUID) error {
	doc, err := s.issuanceRepo.GetDocumentByID(documentID)
	if err != nil {
		return err
	}
	if doc.IssuanceID != issuanceID {
		return fmt.Errorf("%w: document does not belong to this issuance", ErrValidation)
	}

	if err := s.issuanceRepo.DeleteDocument(documentID); err != nil {
		return err
	}
	if err := s.minioClient.DeleteFile(ctx, minio.Storage.IssuanceDocuments, doc.ObjectName); err != nil {
		slog.Warn("Failed to delete document object", "object", doc.ObjectName, "error", err)
	}
	return nil
}

// GetDocumentURL returns a short-lived download link for an attachment.
func (s *IssuanceService) GetDocumentURL(ctx context.Context, issuanceID, documentID uuid.UUID) (string, error) {
	doc, err := s.issuanceRepo.GetDocumentByID(documentID)
	if err != nil {
		return "", err
	}
	if doc.IssuanceID != issuanceID {
		return "", fmt.Errorf("%w: document does not belong to this issuance", ErrValidation)
	}

	url, err := s.minioClient.GetPresignedURL(ctx, minio.Storage.IssuanceDocuments, doc.ObjectName, documentURLExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to generate download link: %w", err)
	}
	return url, nil
}
