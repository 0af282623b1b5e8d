package models

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// QUOTATION
// ============================================================================

type Quotation struct {
	ID            uuid.UUID `json:"id" db:"id"`
	RegistrarID   uuid.UUID `json:"registrar_id" db:"registrar_id"`
	SellerID      uuid.UUID `json:"seller_id" db:"seller_id"`
	CustomerID    uuid.UUID `json:"customer_id" db:"customer_id"`
	VehicleID     uuid.UUID `json:"vehicle_id" db:"vehicle_id"`
	RiskID        uuid.UUID `json:"risk_id" db:"risk_id"`
	InsuredAmount float64   `json:"insured_amount" db:"insured_amount"`
	Currency      string    `json:"currency" db:"currency"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// ExpiresAt returns the end of the quotation's validity window.
func (q *Quotation) ExpiresAt(validityDays int) time.Time {
	return q.CreatedAt.AddDate(0, 0, validityDays)
}

// Expired reports whether the quotation is past its validity window at the
// given evaluation time.
func (q *Quotation) Expired(validityDays int, at time.Time) bool {
	return !at.Before(q.ExpiresAt(validityDays))
}

// QuotationPremium is one insurer's quoted price against a quotation header.
type QuotationPremium struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	QuotationID        uuid.UUID `json:"quotation_id" db:"quotation_id"`
	InsuranceVehicleID uuid.UUID `json:"insurance_vehicle_id" db:"insurance_vehicle_id"`
	RatioID            uuid.UUID `json:"ratio_id" db:"ratio_id"`
	NetAmount          float64   `json:"net_amount" db:"net_amount"`
	Rate               float64   `json:"rate" db:"rate"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}

// PremiumQuote pairs a stored premium row with its insurer, ratio snapshot
// and the derived amounts for display and export.
type PremiumQuote struct {
	Premium           QuotationPremium      `json:"premium"`
	Insurer           InsuranceVehicle      `json:"insurer"`
	Ratio             InsuranceVehicleRatio `json:"ratio"`
	EmissionAmount    float64               `json:"emission_amount"`
	TaxAmount         float64               `json:"tax_amount"`
	TotalPremium      float64               `json:"total_premium"`
	FeeInstallment    float64               `json:"fee_installment"`
	DirectDebitAmount float64               `json:"direct_debit_amount"`
}

// QuotationDetail is the aggregate backing the wizard's terminal Detail state.
type QuotationDetail struct {
	Quotation Quotation      `json:"quotation"`
	Customer  CustomerDetail `json:"customer"`
	Vehicle   Vehicle        `json:"vehicle"`
	Seller    Consultant     `json:"seller"`
	Registrar Consultant     `json:"registrar"`
	Premiums  []PremiumQuote `json:"premiums"`
	ExpiresAt time.Time      `json:"expires_at"`
	Expired   bool           `json:"expired"`
}
