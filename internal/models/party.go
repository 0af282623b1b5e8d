package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// PARTY REGISTRY
// ============================================================================

type NaturalPerson struct {
	ID             uuid.UUID `json:"id" db:"id"`
	DocumentTypeID uuid.UUID `json:"document_type_id" db:"document_type_id"`
	DocumentNumber string    `json:"document_number" db:"document_number"`
	FirstName      string    `json:"first_name" db:"first_name"`
	LastName       string    `json:"last_name" db:"last_name"`
	Phone          *string   `json:"phone,omitempty" db:"phone"`
	Email          *string   `json:"email,omitempty" db:"email"`
	Address        *string   `json:"address,omitempty" db:"address"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

func (p *NaturalPerson) DisplayName() string {
	return p.FirstName + " " + p.LastName
}

type LegalPerson struct {
	ID             uuid.UUID `json:"id" db:"id"`
	DocumentTypeID uuid.UUID `json:"document_type_id" db:"document_type_id"`
	DocumentNumber string    `json:"document_number" db:"document_number"`
	LegalName      string    `json:"legal_name" db:"legal_name"`
	TradeName      *string   `json:"trade_name,omitempty" db:"trade_name"`
	Phone          *string   `json:"phone,omitempty" db:"phone"`
	Email          *string   `json:"email,omitempty" db:"email"`
	Address        *string   `json:"address,omitempty" db:"address"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Owner is a vehicle owner who is not a quoting customer.
type Owner struct {
	ID             uuid.UUID `json:"id" db:"id"`
	DocumentTypeID uuid.UUID `json:"document_type_id" db:"document_type_id"`
	DocumentNumber string    `json:"document_number" db:"document_number"`
	FullName       string    `json:"full_name" db:"full_name"`
	Phone          *string   `json:"phone,omitempty" db:"phone"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Customer is the membership wrapper unifying natural and legal persons under
// one identity for quoting. Exactly one of the two person links is set; Kind
// is the discriminator.
type Customer struct {
	ID              uuid.UUID    `json:"id" db:"id"`
	Kind            CustomerKind `json:"kind" db:"kind"`
	NaturalPersonID *uuid.UUID   `json:"natural_person_id,omitempty" db:"natural_person_id"`
	LegalPersonID   *uuid.UUID   `json:"legal_person_id,omitempty" db:"legal_person_id"`
	CreatedAt       time.Time    `json:"created_at" db:"created_at"`
}

func NewNaturalCustomer(personID uuid.UUID) *Customer {
	return &Customer{ID: uuid.New(), Kind: CustomerNatural, NaturalPersonID: &personID}
}

func NewLegalCustomer(personID uuid.UUID) *Customer {
	return &Customer{ID: uuid.New(), Kind: CustomerLegal, LegalPersonID: &personID}
}

// Validate enforces the exactly-one-link invariant of the membership union.
func (c *Customer) Validate() error {
	switch c.Kind {
	case CustomerNatural:
		if c.NaturalPersonID == nil || c.LegalPersonID != nil {
			return fmt.Errorf("natural customer must link exactly one natural person")
		}
	case CustomerLegal:
		if c.LegalPersonID == nil || c.NaturalPersonID != nil {
			return fmt.Errorf("legal customer must link exactly one legal person")
		}
	default:
		return fmt.Errorf("invalid customer kind: %s", c.Kind)
	}
	return nil
}

// CustomerDetail carries the membership together with whichever person record
// backs it, for display and export.
type CustomerDetail struct {
	Customer Customer       `json:"customer"`
	Natural  *NaturalPerson `json:"natural_person,omitempty"`
	Legal    *LegalPerson   `json:"legal_person,omitempty"`
}

func (d *CustomerDetail) DisplayName() string {
	switch d.Customer.Kind {
	case CustomerNatural:
		if d.Natural != nil {
			return d.Natural.DisplayName()
		}
	case CustomerLegal:
		if d.Legal != nil {
			return d.Legal.LegalName
		}
	}
	return ""
}

func (d *CustomerDetail) DocumentNumber() string {
	switch d.Customer.Kind {
	case CustomerNatural:
		if d.Natural != nil {
			return d.Natural.DocumentNumber
		}
	case CustomerLegal:
		if d.Legal != nil {
			return d.Legal.DocumentNumber
		}
	}
	return ""
}
