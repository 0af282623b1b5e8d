package models

import (
	"fmt"

	"github.com/google/uuid"
)

// ============================================================================
// WIZARD WORKFLOW STATE
// ============================================================================

// WorkflowContext is the wizard's accumulated state. It lives entirely in the
// URL: each step parses the identifiers collected so far from path parameters
// and query strings, looks them up once, and computes the next step's route.
// Nothing is held in server memory between steps.
type WorkflowContext struct {
	Role           ConsultantRole `json:"role,omitempty"`
	SellerID       *uuid.UUID     `json:"seller_id,omitempty"`
	CustomerID     *uuid.UUID     `json:"customer_id,omitempty"`
	VehicleID      *uuid.UUID     `json:"vehicle_id,omitempty"`
	QuotationID    *uuid.UUID     `json:"quotation_id,omitempty"`
	DocumentNumber string         `json:"document_number,omitempty"`
	Plate          string         `json:"plate,omitempty"`
}

const wizardBase = "/insurance/api/v1/wizard"

// Step routes. Each builder renders the URL of one wizard step from the
// context accumulated so far; handlers return these as the "next" location
// after a successful POST.
func SelectRoleRoute() string {
	return wizardBase + "/roles"
}

func SelectSellerRoute(role ConsultantRole) string {
	return fmt.Sprintf("%s/roles/%s/sellers", wizardBase, role)
}

func SearchCustomerRoute(sellerID uuid.UUID) string {
	return fmt.Sprintf("%s/sellers/%s/customer-search", wizardBase, sellerID)
}

func SelectCustomerTypeRoute(sellerID uuid.UUID, documentNumber string) string {
	return fmt.Sprintf("%s/sellers/%s/customer-type?document_number=%s", wizardBase, sellerID, documentNumber)
}

func CreateCustomerRoute(sellerID uuid.UUID, kind CustomerKind, documentNumber string) string {
	return fmt.Sprintf("%s/sellers/%s/customers/%s?document_number=%s", wizardBase, sellerID, kind, documentNumber)
}

func SearchVehicleRoute(sellerID, customerID uuid.UUID) string {
	return fmt.Sprintf("%s/sellers/%s/customers/%s/vehicle-search", wizardBase, sellerID, customerID)
}

func CreateVehicleRoute(sellerID, customerID uuid.UUID, plate string) string {
	return fmt.Sprintf("%s/sellers/%s/customers/%s/vehicles?plate=%s", wizardBase, sellerID, customerID, plate)
}

func DefineOwnerRoute(sellerID, customerID, vehicleID uuid.UUID) string {
	return fmt.Sprintf("%s/sellers/%s/customers/%s/vehicles/%s/owner", wizardBase, sellerID, customerID, vehicleID)
}

func SearchOwnerRoute(sellerID, customerID, vehicleID uuid.UUID) string {
	return fmt.Sprintf("%s/sellers/%s/customers/%s/vehicles/%s/owner-search", wizardBase, sellerID, customerID, vehicleID)
}

func CreateOwnerRoute(sellerID, customerID, vehicleID uuid.UUID, documentNumber string) string {
	return fmt.Sprintf("%s/sellers/%s/customers/%s/vehicles/%s/owners?document_number=%s", wizardBase, sellerID, customerID, vehicleID, documentNumber)
}

func CreateQuotationRoute(sellerID, customerID, vehicleID uuid.UUID) string {
	return fmt.Sprintf("%s/sellers/%s/customers/%s/vehicles/%s/quotations", wizardBase, sellerID, customerID, vehicleID)
}

func CreatePremiumsRoute(quotationID uuid.UUID) string {
	return fmt.Sprintf("/insurance/api/v1/quotations/%s/premiums", quotationID)
}

func QuotationDetailRoute(quotationID uuid.UUID) string {
	return fmt.Sprintf("/insurance/api/v1/quotations/%s", quotationID)
}
