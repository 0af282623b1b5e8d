package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Helper functions for validation
func isValidCustomerKind(kind CustomerKind) bool {
	switch kind {
	case CustomerNatural, CustomerLegal:
		return true
	default:
		return false
	}
}

func isValidVehicleUsage(usage VehicleUsage) bool {
	switch usage {
	case UsageParticular, UsageCommercial, UsageTaxi, UsageCargo:
		return true
	default:
		return false
	}
}

func isValidPaymentMethod(method PaymentMethod) bool {
	switch method {
	case PaymentCash, PaymentInstallment, PaymentDirectDebit:
		return true
	default:
		return false
	}
}

func IsValidIssuanceStatus(status IssuanceStatus) bool {
	switch status {
	case IssuanceActive, IssuanceVoid:
		return true
	default:
		return false
	}
}

func trimAndValidateString(str string, fieldName string, minLen, maxLen int) error {
	trimmed := strings.TrimSpace(str)
	if len(trimmed) < minLen {
		return fmt.Errorf("%s must be at least %d characters", fieldName, minLen)
	}
	if len(trimmed) > maxLen {
		return fmt.Errorf("%s must be %d characters or less", fieldName, maxLen)
	}
	return nil
}

// ============================================================================
// WIZARD STEP REQUESTS
// ============================================================================

type SearchByDocumentRequest struct {
	DocumentNumber string `json:"document_number"`
}

type CreateNaturalPersonRequest struct {
	DocumentTypeID uuid.UUID `json:"document_type_id"`
	DocumentNumber string    `json:"document_number"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Phone          *string   `json:"phone,omitempty"`
	Email          *string   `json:"email,omitempty"`
	Address        *string   `json:"address,omitempty"`
}

func (r CreateNaturalPersonRequest) Validate() error {
	if r.DocumentTypeID == uuid.Nil {
		return errors.New("document_type_id is required")
	}
	if err := trimAndValidateString(r.FirstName, "first_name", 1, 100); err != nil {
		return err
	}
	return trimAndValidateString(r.LastName, "last_name", 1, 100)
}

type CreateLegalPersonRequest struct {
	DocumentTypeID uuid.UUID `json:"document_type_id"`
	DocumentNumber string    `json:"document_number"`
	LegalName      string    `json:"legal_name"`
	TradeName      *string   `json:"trade_name,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	Email          *string   `json:"email,omitempty"`
	Address        *string   `json:"address,omitempty"`
}

func (r CreateLegalPersonRequest) Validate() error {
	if r.DocumentTypeID == uuid.Nil {
		return errors.New("document_type_id is required")
	}
	return trimAndValidateString(r.LegalName, "legal_name", 1, 200)
}

type SearchVehicleRequest struct {
	Plate string `json:"plate"`
}

func (r SearchVehicleRequest) Validate() error {
	return trimAndValidateString(r.Plate, "plate", 1, 16)
}

type CreateVehicleRequest struct {
	Plate           string       `json:"plate"`
	Brand           string       `json:"brand"`
	Model           string       `json:"model"`
	FabricationYear int          `json:"fabrication_year"`
	Usage           VehicleUsage `json:"usage"`
	HasGPS          bool         `json:"has_gps"`
	EndorseeBank    *string      `json:"endorsee_bank,omitempty"`
}

func (r CreateVehicleRequest) Validate() error {
	if err := trimAndValidateString(r.Plate, "plate", 1, 16); err != nil {
		return err
	}
	if err := trimAndValidateString(r.Brand, "brand", 1, 60); err != nil {
		return err
	}
	if err := trimAndValidateString(r.Model, "model", 1, 60); err != nil {
		return err
	}
	if r.FabricationYear < 1900 || r.FabricationYear > time.Now().Year()+1 {
		return fmt.Errorf("fabrication_year out of range: %d", r.FabricationYear)
	}
	if !isValidVehicleUsage(r.Usage) {
		return fmt.Errorf("invalid usage: %s", r.Usage)
	}
	return nil
}

type DefineOwnerRequest struct {
	CustomerIsOwner bool `json:"customer_is_owner"`
}

type CreateOwnerRequest struct {
	DocumentTypeID uuid.UUID `json:"document_type_id"`
	DocumentNumber string    `json:"document_number"`
	FullName       string    `json:"full_name"`
	Phone          *string   `json:"phone,omitempty"`
}

func (r CreateOwnerRequest) Validate() error {
	if r.DocumentTypeID == uuid.Nil {
		return errors.New("document_type_id is required")
	}
	return trimAndValidateString(r.FullName, "full_name", 1, 200)
}

type CreateQuotationRequest struct {
	InsuredAmount float64 `json:"insured_amount"`
	Currency      string  `json:"currency"`
}

func (r CreateQuotationRequest) Validate() error {
	if r.InsuredAmount <= 0 {
		return errors.New("insured_amount must be greater than 0")
	}
	if err := trimAndValidateString(r.Currency, "currency", 3, 3); err != nil {
		return err
	}
	return nil
}

type PremiumEntryRequest struct {
	InsuranceVehicleID uuid.UUID `json:"insurance_vehicle_id"`
	RatioID            uuid.UUID `json:"ratio_id"`
	NetAmount          float64   `json:"net_amount"`
	Rate               float64   `json:"rate"`
}

type CreatePremiumsRequest struct {
	Premiums []PremiumEntryRequest `json:"premiums"`
}

func (r CreatePremiumsRequest) Validate() error {
	if len(r.Premiums) == 0 {
		return errors.New("at least one premium entry is required")
	}
	for i, p := range r.Premiums {
		if p.InsuranceVehicleID == uuid.Nil {
			return fmt.Errorf("premium %d: insurance_vehicle_id is required", i)
		}
		if p.RatioID == uuid.Nil {
			return fmt.Errorf("premium %d: ratio_id is required", i)
		}
		if p.NetAmount < 0 {
			return fmt.Errorf("premium %d: net_amount cannot be negative", i)
		}
		if p.Rate < 0 {
			return fmt.Errorf("premium %d: rate cannot be negative", i)
		}
	}
	return nil
}

type UpdateQuotationRequest struct {
	InsuredAmount float64 `json:"insured_amount"`
	Currency      string  `json:"currency"`
}

func (r UpdateQuotationRequest) Validate() error {
	return CreateQuotationRequest(r).Validate()
}

// ============================================================================
// ISSUANCE REQUESTS
// ============================================================================

type CreateIssuanceRequest struct {
	PlanID             uuid.UUID     `json:"plan_id"`
	SellerID           uuid.UUID     `json:"seller_id"`
	PolicyNumber       string        `json:"policy_number"`
	CollectionDocument *string       `json:"collection_document,omitempty"`
	IssuedAt           time.Time     `json:"issued_at"`
	ValidFrom          time.Time     `json:"valid_from"`
	ValidTo            time.Time     `json:"valid_to"`
	PaymentMethod      PaymentMethod `json:"payment_method"`
	// Optional override of the plan's commission percentage; the plan value
	// is the starting point.
	PlanCommissionRate *float64 `json:"plan_commission_rate,omitempty"`
}

func (r CreateIssuanceRequest) Validate() error {
	if r.PlanID == uuid.Nil {
		return errors.New("plan_id is required")
	}
	if r.SellerID == uuid.Nil {
		return errors.New("seller_id is required")
	}
	if err := trimAndValidateString(r.PolicyNumber, "policy_number", 1, 50); err != nil {
		return err
	}
	if r.ValidTo.Before(r.ValidFrom) {
		return errors.New("valid_to must not be before valid_from")
	}
	if !isValidPaymentMethod(r.PaymentMethod) {
		return fmt.Errorf("invalid payment_method: %s", r.PaymentMethod)
	}
	if r.PlanCommissionRate != nil && (*r.PlanCommissionRate < 0 || *r.PlanCommissionRate > 1) {
		return errors.New("plan_commission_rate must be within [0,1]")
	}
	return nil
}

type ChangeIssuanceStatusRequest struct {
	Status  IssuanceStatus `json:"status"`
	Comment *string        `json:"comment,omitempty"`
}

func (r ChangeIssuanceStatusRequest) Validate() error {
	if !IsValidIssuanceStatus(r.Status) {
		return fmt.Errorf("invalid status: %s", r.Status)
	}
	return nil
}

// ============================================================================
// COLLECTION REQUESTS
// ============================================================================

type CreateCollectionRequest struct {
	ExpirationDate time.Time `json:"expiration_date"`
	Amount         float64   `json:"amount"`
	Issue          string    `json:"issue"`
}

func (r CreateCollectionRequest) Validate() error {
	if r.Amount <= 0 {
		return errors.New("amount must be greater than 0")
	}
	return trimAndValidateString(r.Issue, "issue", 1, 300)
}

type CompletePaymentRequest struct {
	PaymentDate   time.Time `json:"payment_date"`
	ReceiptNumber string    `json:"receipt_number"`
}

func (r CompletePaymentRequest) Validate() error {
	if r.PaymentDate.IsZero() {
		return errors.New("payment_date is required")
	}
	return trimAndValidateString(r.ReceiptNumber, "receipt_number", 1, 50)
}

// ============================================================================
// CATALOG REQUESTS
// ============================================================================

type CreateInsuranceVehicleRequest struct {
	Name        string `json:"name"`
	DisplaySlot int    `json:"display_slot"`
}

func (r CreateInsuranceVehicleRequest) Validate() error {
	if err := trimAndValidateString(r.Name, "name", 1, 100); err != nil {
		return err
	}
	if r.DisplaySlot < 1 || r.DisplaySlot > 5 {
		return errors.New("display_slot must be within 1..5")
	}
	return nil
}

type CreateRatioRequest struct {
	EmissionRight float64 `json:"emission_right"`
	Tax           float64 `json:"tax"`
	Fee           int     `json:"fee"`
	DirectDebit   int     `json:"direct_debit"`
}

func (r CreateRatioRequest) Validate() error {
	if r.EmissionRight < 0 {
		return errors.New("emission_right cannot be negative")
	}
	if r.Tax < 0 {
		return errors.New("tax cannot be negative")
	}
	if r.Fee <= 0 {
		return errors.New("fee must be greater than 0")
	}
	if r.DirectDebit <= 0 {
		return errors.New("direct_debit must be greater than 0")
	}
	return nil
}

type CreatePlanRequest struct {
	InsuranceVehicleID uuid.UUID `json:"insurance_vehicle_id"`
	RiskID             uuid.UUID `json:"risk_id"`
	Name               string    `json:"name"`
	CommissionRate     float64   `json:"commission_rate"`
}

func (r CreatePlanRequest) Validate() error {
	if r.InsuranceVehicleID == uuid.Nil {
		return errors.New("insurance_vehicle_id is required")
	}
	if r.RiskID == uuid.Nil {
		return errors.New("risk_id is required")
	}
	if err := trimAndValidateString(r.Name, "name", 1, 100); err != nil {
		return err
	}
	if r.CommissionRate < 0 || r.CommissionRate > 1 {
		return errors.New("commission_rate must be within [0,1]")
	}
	return nil
}

type CreateConsultantRequest struct {
	FirstName             string         `json:"first_name"`
	LastName              string         `json:"last_name"`
	DocumentNumber        string         `json:"document_number"`
	Role                  ConsultantRole `json:"role"`
	NewSaleCommissionRate float64        `json:"new_sale_commission_rate"`
}

func (r CreateConsultantRequest) Validate() error {
	if err := trimAndValidateString(r.FirstName, "first_name", 1, 100); err != nil {
		return err
	}
	if err := trimAndValidateString(r.LastName, "last_name", 1, 100); err != nil {
		return err
	}
	switch r.Role {
	case RoleSales, RoleAdministrative:
	default:
		return fmt.Errorf("invalid role: %s", r.Role)
	}
	if r.NewSaleCommissionRate < 0 || r.NewSaleCommissionRate > 1 {
		return errors.New("new_sale_commission_rate must be within [0,1]")
	}
	return nil
}

type CreateDocumentTypeRequest struct {
	Name      string `json:"name"`
	MinLength int    `json:"min_length"`
	MaxLength int    `json:"max_length"`
}

func (r CreateDocumentTypeRequest) Validate() error {
	if err := trimAndValidateString(r.Name, "name", 1, 60); err != nil {
		return err
	}
	if r.MinLength <= 0 || r.MaxLength < r.MinLength {
		return fmt.Errorf("invalid length bounds: min=%d max=%d", r.MinLength, r.MaxLength)
	}
	return nil
}

type UpdateConsultantRateRequest struct {
	NewSaleCommissionRate float64 `json:"new_sale_commission_rate"`
}

func (r UpdateConsultantRateRequest) Validate() error {
	if r.NewSaleCommissionRate < 0 || r.NewSaleCommissionRate > 1 {
		return errors.New("new_sale_commission_rate must be within [0,1]")
	}
	return nil
}
