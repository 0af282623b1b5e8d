package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIssuanceRequest() CreateIssuanceRequest {
	return CreateIssuanceRequest{
		PlanID:        uuid.New(),
		SellerID:      uuid.New(),
		PolicyNumber:  "POL-2026-000123",
		IssuedAt:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		ValidFrom:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:       time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC),
		PaymentMethod: PaymentInstallment,
	}
}

// ============================================================================
// ISSUANCE REQUEST
// ============================================================================

func TestCreateIssuanceRequest_Valid(t *testing.T) {
	require.NoError(t, validIssuanceRequest().Validate())
}

func TestCreateIssuanceRequest_MissingPlan(t *testing.T) {
	req := validIssuanceRequest()
	req.PlanID = uuid.Nil
	assert.Error(t, req.Validate())
}

func TestCreateIssuanceRequest_ValidityBackwards(t *testing.T) {
	req := validIssuanceRequest()
	req.ValidTo = req.ValidFrom.AddDate(0, 0, -1)
	assert.Error(t, req.Validate())
}

func TestCreateIssuanceRequest_BadPaymentMethod(t *testing.T) {
	req := validIssuanceRequest()
	req.PaymentMethod = "barter"
	assert.Error(t, req.Validate())
}

func TestCreateIssuanceRequest_RateOverrideOutOfRange(t *testing.T) {
	req := validIssuanceRequest()
	override := 1.5
	req.PlanCommissionRate = &override
	assert.Error(t, req.Validate())

	override = 0.25
	assert.NoError(t, req.Validate())
}

// ============================================================================
// COLLECTION REQUESTS
// ============================================================================

func TestCreateCollectionRequest_Valid(t *testing.T) {
	req := CreateCollectionRequest{
		ExpirationDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Amount:         309.75,
		Issue:          "Installment 1 of 4",
	}
	assert.NoError(t, req.Validate())
}

func TestCreateCollectionRequest_NonPositiveAmount(t *testing.T) {
	req := CreateCollectionRequest{
		ExpirationDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Amount:         0,
		Issue:          "Installment 1 of 4",
	}
	assert.Error(t, req.Validate())
}

func TestCompletePaymentRequest_MissingDate(t *testing.T) {
	req := CompletePaymentRequest{ReceiptNumber: "R-000987"}
	assert.Error(t, req.Validate())
}

func TestCompletePaymentRequest_Valid(t *testing.T) {
	req := CompletePaymentRequest{
		PaymentDate:   time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		ReceiptNumber: "R-000987",
	}
	assert.NoError(t, req.Validate())
}
