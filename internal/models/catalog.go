package models

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// CATALOG / REFERENCE DATA
// ============================================================================

type DocumentType struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	MinLength int       `json:"min_length" db:"min_length"`
	MaxLength int       `json:"max_length" db:"max_length"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Risk struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RiskVehicular is the risk every quotation in this service is bound to.
const RiskVehicular = "Vehicular"

type InsuranceVehicle struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	DisplaySlot int       `json:"display_slot" db:"display_slot"`
	Active      bool      `json:"active" db:"active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// InsuranceVehicleRatio is an insurer's rate-table snapshot. Snapshots are
// append-only; the most recent by creation time is the insurer's "last ratio".
type InsuranceVehicleRatio struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	InsuranceVehicleID uuid.UUID `json:"insurance_vehicle_id" db:"insurance_vehicle_id"`
	EmissionRight      float64   `json:"emission_right" db:"emission_right"`
	Tax                float64   `json:"tax" db:"tax"`
	Fee                int       `json:"fee" db:"fee"`
	DirectDebit        int       `json:"direct_debit" db:"direct_debit"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}

type InsurancePlan struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	InsuranceVehicleID uuid.UUID `json:"insurance_vehicle_id" db:"insurance_vehicle_id"`
	RiskID             uuid.UUID `json:"risk_id" db:"risk_id"`
	Name               string    `json:"name" db:"name"`
	CommissionRate     float64   `json:"commission_rate" db:"commission_rate"`
	Active             bool      `json:"active" db:"active"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}

type Consultant struct {
	ID                    uuid.UUID      `json:"id" db:"id"`
	FirstName             string         `json:"first_name" db:"first_name"`
	LastName              string         `json:"last_name" db:"last_name"`
	DocumentNumber        string         `json:"document_number" db:"document_number"`
	Role                  ConsultantRole `json:"role" db:"role"`
	NewSaleCommissionRate float64        `json:"new_sale_commission_rate" db:"new_sale_commission_rate"`
	Active                bool           `json:"active" db:"active"`
	CreatedAt             time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at" db:"updated_at"`
}
