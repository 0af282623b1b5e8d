package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// VEHICLE OWNERSHIP UNION
// ============================================================================

func TestOwnershipValidate_CustomerLink(t *testing.T) {
	ownership := NewCustomerOwnership(uuid.New(), uuid.New())
	require.NoError(t, ownership.Validate())
	assert.Equal(t, OwnershipCustomer, ownership.Kind)
	assert.NotNil(t, ownership.CustomerID)
	assert.Nil(t, ownership.OwnerID)
}

func TestOwnershipValidate_OwnerLink(t *testing.T) {
	ownership := NewOwnerOwnership(uuid.New(), uuid.New())
	require.NoError(t, ownership.Validate())
	assert.Equal(t, OwnershipOwner, ownership.Kind)
	assert.NotNil(t, ownership.OwnerID)
	assert.Nil(t, ownership.CustomerID)
}

func TestOwnershipValidate_CustomerKindMissingLink(t *testing.T) {
	ownership := &VehicleOwnership{ID: uuid.New(), VehicleID: uuid.New(), Kind: OwnershipCustomer}
	assert.Error(t, ownership.Validate())
}

func TestOwnershipValidate_BothLinksSet(t *testing.T) {
	customerID := uuid.New()
	ownerID := uuid.New()
	ownership := &VehicleOwnership{
		ID:         uuid.New(),
		VehicleID:  uuid.New(),
		Kind:       OwnershipOwner,
		CustomerID: &customerID,
		OwnerID:    &ownerID,
	}
	assert.Error(t, ownership.Validate())
}

func TestOwnershipValidate_UnknownKind(t *testing.T) {
	ownerID := uuid.New()
	ownership := &VehicleOwnership{ID: uuid.New(), VehicleID: uuid.New(), Kind: "lease", OwnerID: &ownerID}
	assert.Error(t, ownership.Validate())
}
