package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// VEHICLE REGISTRY
// ============================================================================

type Vehicle struct {
	ID              uuid.UUID    `json:"id" db:"id"`
	Plate           string       `json:"plate" db:"plate"`
	Brand           string       `json:"brand" db:"brand"`
	Model           string       `json:"model" db:"model"`
	FabricationYear int          `json:"fabrication_year" db:"fabrication_year"`
	Usage           VehicleUsage `json:"usage" db:"usage"`
	HasGPS          bool         `json:"has_gps" db:"has_gps"`
	EndorseeBank    *string      `json:"endorsee_bank,omitempty" db:"endorsee_bank"`
	CreatedAt       time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at" db:"updated_at"`
}

// VehicleOwnership links a vehicle to exactly one of customer or standalone
// owner. A vehicle has at most one active ownership row; replacing ownership
// deletes the prior row and inserts the new one in the same transaction.
type VehicleOwnership struct {
	ID         uuid.UUID     `json:"id" db:"id"`
	VehicleID  uuid.UUID     `json:"vehicle_id" db:"vehicle_id"`
	Kind       OwnershipKind `json:"kind" db:"kind"`
	CustomerID *uuid.UUID    `json:"customer_id,omitempty" db:"customer_id"`
	OwnerID    *uuid.UUID    `json:"owner_id,omitempty" db:"owner_id"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
}

func NewCustomerOwnership(vehicleID, customerID uuid.UUID) *VehicleOwnership {
	return &VehicleOwnership{ID: uuid.New(), VehicleID: vehicleID, Kind: OwnershipCustomer, CustomerID: &customerID}
}

func NewOwnerOwnership(vehicleID, ownerID uuid.UUID) *VehicleOwnership {
	return &VehicleOwnership{ID: uuid.New(), VehicleID: vehicleID, Kind: OwnershipOwner, OwnerID: &ownerID}
}

// Validate enforces the exactly-one-link invariant of the ownership union.
func (o *VehicleOwnership) Validate() error {
	switch o.Kind {
	case OwnershipCustomer:
		if o.CustomerID == nil || o.OwnerID != nil {
			return fmt.Errorf("customer ownership must link exactly one customer")
		}
	case OwnershipOwner:
		if o.OwnerID == nil || o.CustomerID != nil {
			return fmt.Errorf("owner ownership must link exactly one owner")
		}
	default:
		return fmt.Errorf("invalid ownership kind: %s", o.Kind)
	}
	return nil
}
