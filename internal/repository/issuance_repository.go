package repository

import (
	"fmt"
	"log/slog"
	"time"

	"quotation-service/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type IssuanceRepository struct {
	db *sqlx.DB
}

func NewIssuanceRepository(db *sqlx.DB) *IssuanceRepository {
	return &IssuanceRepository{db: db}
}

// ============================================================================
// ISSUANCES
// ============================================================================

func (r *IssuanceRepository) CreateIssuance(issuance *models.Issuance) error {
	issuance.CreatedAt = time.Now()
	issuance.UpdatedAt = time.Now()

	query := `
		INSERT INTO issuance (
			id, premium_id, plan_id, seller_id, policy_number, collection_document,
			issued_at, valid_from, valid_to, payment_method,
			plan_commission_rate, seller_commission_rate, status, comment,
			created_at, updated_at
		) VALUES (
			:id, :premium_id, :plan_id, :seller_id, :policy_number, :collection_document,
			:issued_at, :valid_from, :valid_to, :payment_method,
			:plan_commission_rate, :seller_commission_rate, :status, :comment,
			:created_at, :updated_at
		)`

	if _, err := r.db.NamedExec(query, issuance); err != nil {
		return translateDBError(err, "issuance")
	}

	slog.Info("Created issuance",
		"issuance_id", issuance.ID,
		"premium_id", issuance.PremiumID,
		"policy_number", issuance.PolicyNumber)
	return nil
}

func (r *IssuanceRepository) GetIssuanceByID(id uuid.UUID) (*models.Issuance, error) {
	var issuance models.Issuance
	query := `
		SELECT id, premium_id, plan_id, seller_id, policy_number, collection_document,
		       issued_at, valid_from, valid_to, payment_method,
		       plan_commission_rate, seller_commission_rate, status, comment,
		       created_at, updated_at
		FROM issuance WHERE id = $1`

	if err := r.db.Get(&issuance, query, id); err != nil {
		return nil, translateDBError(err, "issuance")
	}
	return &issuance, nil
}

func (r *IssuanceRepository) GetIssuanceByPolicyNumber(policyNumber string) (*models.Issuance, error) {
	var issuance models.Issuance
	query := `
		SELECT id, premium_id, plan_id, seller_id, policy_number, collection_document,
		       issued_at, valid_from, valid_to, payment_method,
		       plan_commission_rate, seller_commission_rate, status, comment,
		       created_at, updated_at
		FROM issuance WHERE policy_number = $1`

	if err := r.db.Get(&issuance, query, policyNumber); err != nil {
		return nil, translateDBError(err, "issuance")
	}
	return &issuance, nil
}

func (r *IssuanceRepository) GetIssuancesByPremium(premiumID uuid.UUID) ([]models.Issuance, error) {
	var issuances []models.Issuance
	query := `
		SELECT id, premium_id, plan_id, seller_id, policy_number, collection_document,
		       issued_at, valid_from, valid_to, payment_method,
		       plan_commission_rate, seller_commission_rate, status, comment,
		       created_at, updated_at
		FROM issuance
		WHERE premium_id = $1
		ORDER BY created_at DESC`

	if err := r.db.Select(&issuances, query, premiumID); err != nil {
		return nil, translateDBError(err, "issuances")
	}
	return issuances, nil
}

// UpdateIssuanceStatus changes the lifecycle state and stores the operator's
// comment alongside it.
func (r *IssuanceRepository) UpdateIssuanceStatus(id uuid.UUID, status models.IssuanceStatus, comment *string) error {
	query := `
		UPDATE issuance SET status = $2, comment = $3, updated_at = $4
		WHERE id = $1`

	result, err := r.db.Exec(query, id, status, comment, time.Now())
	if err != nil {
		return translateDBError(err, "issuance")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("issuance %w", ErrNotFound)
	}

	slog.Info("Updated issuance status", "issuance_id", id, "status", status)
	return nil
}

// ============================================================================
// ISSUANCE DOCUMENTS
// ============================================================================

func (r *IssuanceRepository) CreateDocument(doc *models.IssuanceDocument) error {
	doc.UploadedAt = time.Now()

	query := `
		INSERT INTO issuance_document (
			id, issuance_id, file_name, object_name, content_type, size_bytes, uploaded_at
		) VALUES (
			:id, :issuance_id, :file_name, :object_name, :content_type, :size_bytes, :uploaded_at
		)`

	_, err := r.db.NamedExec(query, doc)
	return translateDBError(err, "issuance document")
}

func (r *IssuanceRepository) GetDocumentByID(id uuid.UUID) (*models.IssuanceDocument, error) {
	var doc models.IssuanceDocument
	query := `
		SELECT id, issuance_id, file_name, object_name, content_type, size_bytes, uploaded_at
		FROM issuance_document WHERE id = $1`

	if err := r.db.Get(&doc, query, id); err != nil {
		return nil, translateDBError(err, "issuance document")
	}
	return &doc, nil
}

func (r *IssuanceRepository) GetDocumentsByIssuance(issuanceID uuid.UUID) ([]models.IssuanceDocument, error) {
	var docs []models.IssuanceDocument
	query := `
		SELECT id, issuance_id, file_name, object_name, content_type, size_bytes, uploaded_at
		FROM issuance_document
		WHERE issuance_id = $1
		ORDER BY uploaded_at`

	if err := r.db.Select(&docs, query, issuanceID); err != nil {
		return nil, translateDBError(err, "issuance documents")
	}
	return docs, nil
}

func (r *IssuanceRepository) DeleteDocument(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM issuance_document WHERE id = $1`, id)
	if err != nil {
		return translateDBError(err, "issuance document")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("issuance document %w", ErrNotFound)
	}
	return nil
}
