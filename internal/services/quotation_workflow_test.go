package services

import (
	"testing"
	"time"

	"quotation-service/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func createTestVehicle() *models.Vehicle {
	return &models.Vehicle{
		ID:              uuid.New(),
		Plate:           "ABC-123",
		Brand:           "Toyota",
		Model:           "Corolla",
		FabricationYear: 2021,
		Usage:           models.UsageParticular,
	}
}

// ============================================================================
// TEST SUITE 1: VEHICLE STEP BRANCHING
// ============================================================================

func TestDecideVehicleStep_UnknownPlate(t *testing.T) {
	customerID := uuid.New()

	outcome, err := DecideVehicleStep(customerID, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, VehicleOutcomeCreateVehicle, outcome)
}

func TestDecideVehicleStep_VehicleWithoutOwnership(t *testing.T) {
	customerID := uuid.New()
	vehicle := createTestVehicle()

	outcome, err := DecideVehicleStep(customerID, vehicle, nil)

	require.NoError(t, err)
	assert.Equal(t, VehicleOutcomeDefineOwner, outcome)
}

func TestDecideVehicleStep_OwnedByCurrentCustomer(t *testing.T) {
	customerID := uuid.New()
	vehicle := createTestVehicle()
	ownership := models.NewCustomerOwnership(vehicle.ID, customerID)

	outcome, err := DecideVehicleStep(customerID, vehicle, ownership)

	require.NoError(t, err)
	assert.Equal(t, VehicleOutcomeQuote, outcome)
}

func TestDecideVehicleStep_OwnedByDifferentCustomer(t *testing.T) {
	customerID := uuid.New()
	vehicle := createTestVehicle()
	ownership := models.NewCustomerOwnership(vehicle.ID, uuid.New())

	_, err := DecideVehicleStep(customerID, vehicle, ownership)

	assert.ErrorIs(t, err, ErrCustomerNotOwner)
}

func TestDecideVehicleStep_StandaloneOwnerAcceptedWithoutComparison(t *testing.T) {
	customerID := uuid.New()
	vehicle := createTestVehicle()
	ownership := models.NewOwnerOwnership(vehicle.ID, uuid.New())

	outcome, err := DecideVehicleStep(customerID, vehicle, ownership)

	require.NoError(t, err)
	assert.Equal(t, VehicleOutcomeQuote, outcome)
}

func TestDecideVehicleStep_InvalidOwnershipKind(t *testing.T) {
	customerID := uuid.New()
	vehicle := createTestVehicle()
	ownership := &models.VehicleOwnership{ID: uuid.New(), VehicleID: vehicle.ID, Kind: "lease"}

	_, err := DecideVehicleStep(customerID, vehicle, ownership)

	assert.Error(t, err)
}

// ============================================================================
// TEST SUITE 2: QUOTATION VALIDITY WINDOW
// ============================================================================

func TestQuotationExpired_InsideWindow(t *testing.T) {
	quotation := &models.Quotation{ID: uuid.New(), CreatedAt: time.Now().AddDate(0, 0, -10)}

	assert.False(t, quotation.Expired(15, time.Now()))
}

func TestQuotationExpired_PastWindow(t *testing.T) {
	quotation := &models.Quotation{ID: uuid.New(), CreatedAt: time.Now().AddDate(0, 0, -16)}

	assert.True(t, quotation.Expired(15, time.Now()))
}

func TestQuotationExpired_ExactlyAtBoundary(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	quotation := &models.Quotation{ID: uuid.New(), CreatedAt: created}

	boundary := created.AddDate(0, 0, 15)

	assert.True(t, quotation.Expired(15, boundary))
	assert.False(t, quotation.Expired(15, boundary.Add(-time.Second)))
}
