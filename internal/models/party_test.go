package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// CUSTOMER MEMBERSHIP UNION
// ============================================================================

func TestCustomerValidate_NaturalLink(t *testing.T) {
	customer := NewNaturalCustomer(uuid.New())
	require.NoError(t, customer.Validate())
	assert.Equal(t, CustomerNatural, customer.Kind)
	assert.NotNil(t, customer.NaturalPersonID)
	assert.Nil(t, customer.LegalPersonID)
}

func TestCustomerValidate_LegalLink(t *testing.T) {
	customer := NewLegalCustomer(uuid.New())
	require.NoError(t, customer.Validate())
	assert.Equal(t, CustomerLegal, customer.Kind)
	assert.NotNil(t, customer.LegalPersonID)
	assert.Nil(t, customer.NaturalPersonID)
}

func TestCustomerValidate_NaturalMissingLink(t *testing.T) {
	customer := &Customer{ID: uuid.New(), Kind: CustomerNatural}
	assert.Error(t, customer.Validate())
}

func TestCustomerValidate_BothLinksSet(t *testing.T) {
	naturalID := uuid.New()
	legalID := uuid.New()
	customer := &Customer{
		ID:              uuid.New(),
		Kind:            CustomerNatural,
		NaturalPersonID: &naturalID,
		LegalPersonID:   &legalID,
	}
	assert.Error(t, customer.Validate())
}

func TestCustomerValidate_UnknownKind(t *testing.T) {
	personID := uuid.New()
	customer := &Customer{ID: uuid.New(), Kind: "cooperative", NaturalPersonID: &personID}
	assert.Error(t, customer.Validate())
}

// ============================================================================
// CUSTOMER DETAIL DISPLAY
// ============================================================================

func TestCustomerDetail_NaturalDisplay(t *testing.T) {
	person := &NaturalPerson{
		DocumentNumber: "20481123459",
		FirstName:      "Maria",
		LastName:       "Quispe",
	}
	detail := &CustomerDetail{
		Customer: Customer{Kind: CustomerNatural},
		Natural:  person,
	}
	assert.Equal(t, "Maria Quispe", detail.DisplayName())
	assert.Equal(t, "20481123459", detail.DocumentNumber())
}

func TestCustomerDetail_LegalDisplay(t *testing.T) {
	person := &LegalPerson{
		DocumentNumber: "20100047218",
		LegalName:      "Transportes Andinos SAC",
	}
	detail := &CustomerDetail{
		Customer: Customer{Kind: CustomerLegal},
		Legal:    person,
	}
	assert.Equal(t, "Transportes Andinos SAC", detail.DisplayName())
	assert.Equal(t, "20100047218", detail.DocumentNumber())
}

func TestCustomerDetail_MissingPersonRecord(t *testing.T) {
	detail := &CustomerDetail{Customer: Customer{Kind: CustomerNatural}}
	assert.Empty(t, detail.DisplayName())
	assert.Empty(t, detail.DocumentNumber())
}
