package models

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// ISSUANCE
// ============================================================================

// Issuance is the binding policy created from a chosen premium. The plan and
// seller commission rates are snapshots taken at creation time; later catalog
// changes never alter an already-issued record.
type Issuance struct {
	ID                   uuid.UUID      `json:"id" db:"id"`
	PremiumID            uuid.UUID      `json:"premium_id" db:"premium_id"`
	PlanID               uuid.UUID      `json:"plan_id" db:"plan_id"`
	SellerID             uuid.UUID      `json:"seller_id" db:"seller_id"`
	PolicyNumber         string         `json:"policy_number" db:"policy_number"`
	CollectionDocument   *string        `json:"collection_document,omitempty" db:"collection_document"`
	IssuedAt             time.Time      `json:"issued_at" db:"issued_at"`
	ValidFrom            time.Time      `json:"valid_from" db:"valid_from"`
	ValidTo              time.Time      `json:"valid_to" db:"valid_to"`
	PaymentMethod        PaymentMethod  `json:"payment_method" db:"payment_method"`
	PlanCommissionRate   float64        `json:"plan_commission_rate" db:"plan_commission_rate"`
	SellerCommissionRate float64        `json:"seller_commission_rate" db:"seller_commission_rate"`
	Status               IssuanceStatus `json:"status" db:"status"`
	Comment              *string        `json:"comment,omitempty" db:"comment"`
	CreatedAt            time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at" db:"updated_at"`
}

type IssuanceDocument struct {
	ID          uuid.UUID `json:"id" db:"id"`
	IssuanceID  uuid.UUID `json:"issuance_id" db:"issuance_id"`
	FileName    string    `json:"file_name" db:"file_name"`
	ObjectName  string    `json:"object_name" db:"object_name"`
	ContentType string    `json:"content_type" db:"content_type"`
	SizeBytes   int64     `json:"size_bytes" db:"size_bytes"`
	UploadedAt  time.Time `json:"uploaded_at" db:"uploaded_at"`
}

// IssuanceDetail adds the derived commission figures to an issuance.
type IssuanceDetail struct {
	Issuance            Issuance           `json:"issuance"`
	Premium             QuotationPremium   `json:"premium"`
	Plan                InsurancePlan      `json:"plan"`
	Seller              Consultant         `json:"seller"`
	Documents           []IssuanceDocument `json:"documents"`
	NetCommissionAmount float64            `json:"net_commission_amount"`
	SellerCommission    float64            `json:"seller_commission"`
	CompanyCommission   float64            `json:"company_commission"`
}
