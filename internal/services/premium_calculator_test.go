package services

import (
	"testing"

	"quotation-service/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// TEST SUITE 1: TOTAL PREMIUM
// ============================================================================

func TestTotalPremium_ReferenceScenario(t *testing.T) {
	// net 1,000.00 with emission 5% and tax 18%:
	// emission = 50.00, tax = (1,050.00 * 0.18) = 189.00, total = 1,239.00
	emission, tax, total := TotalPremium(1000.00, 0.05, 0.18)

	assert.Equal(t, 50.00, emission)
	assert.Equal(t, 189.00, tax)
	assert.Equal(t, 1239.00, total)
}

func TestTotalPremium_ZeroFactors(t *testing.T) {
	emission, tax, total := TotalPremium(500.00, 0, 0)

	assert.Equal(t, 0.0, emission)
	assert.Equal(t, 0.0, tax)
	assert.Equal(t, 500.00, total)
}

func TestTotalPremium_RoundsHalfUp(t *testing.T) {
	// 100.00 * 0.00125 = 0.125, which rounds up to 0.13 rather than to the
	// even neighbor 0.12.
	emission, _, _ := TotalPremium(100.00, 0.00125, 0)

	assert.Equal(t, 0.13, emission)
}

func TestTotalPremium_IntermediateRoundingFeedsTax(t *testing.T) {
	// tax is computed on the rounded emission, not the raw product
	emission, tax, total := TotalPremium(333.33, 0.07, 0.10)

	assert.Equal(t, 23.33, emission, "333.33*0.07=23.3331 rounds to 23.33")
	assert.Equal(t, 35.67, tax, "(333.33+23.33)*0.10=35.666 rounds to 35.67")
	assert.Equal(t, 392.33, total)
}

func TestTotalPremium_MonotonicInNet(t *testing.T) {
	_, _, lower := TotalPremium(1000.00, 0.05, 0.18)
	_, _, higher := TotalPremium(1000.01, 0.05, 0.18)

	assert.GreaterOrEqual(t, higher, lower)
}

// ============================================================================
// TEST SUITE 2: INSTALLMENTS
// ============================================================================

func TestInstallment_DividesTotal(t *testing.T) {
	amount, err := Installment(1239.00, 4)

	require.NoError(t, err)
	assert.Equal(t, 309.75, amount)
}

func TestInstallment_RoundsQuotient(t *testing.T) {
	amount, err := Installment(100.00, 3)

	require.NoError(t, err)
	assert.Equal(t, 33.33, amount)
}

func TestInstallment_RejectsZeroDivisor(t *testing.T) {
	_, err := Installment(1239.00, 0)

	assert.Error(t, err)
}

func TestInstallment_RejectsNegativeDivisor(t *testing.T) {
	_, err := Installment(1239.00, -2)

	assert.Error(t, err)
}

// ============================================================================
// TEST SUITE 3: COMMISSION SPLIT
// ============================================================================

func TestCommissionSplit_ReferenceScenario(t *testing.T) {
	seller, company := CommissionSplit(1000.00, 0.30)

	assert.Equal(t, 300.00, seller)
	assert.Equal(t, 700.00, company)
}

func TestCommissionSplit_SharesSumExactly(t *testing.T) {
	// an awkward rate must not leave an off-by-cent remainder
	seller, company := CommissionSplit(100.01, 1.0/3.0)

	assert.Equal(t, 33.34, seller)
	assert.Equal(t, 66.67, company)
	assert.InDelta(t, 100.01, seller+company, 1e-9)
}

func TestCommissionSplit_FullRateGoesToSeller(t *testing.T) {
	seller, company := CommissionSplit(845.50, 1.0)

	assert.Equal(t, 845.50, seller)
	assert.Equal(t, 0.0, company)
}

func TestCommissionSplit_ZeroRateGoesToCompany(t *testing.T) {
	seller, company := CommissionSplit(845.50, 0)

	assert.Equal(t, 0.0, seller)
	assert.Equal(t, 845.50, company)
}

// ============================================================================
// TEST SUITE 4: PERCENT FORMATTING
// ============================================================================

func TestFormatPercent_WholePercentage(t *testing.T) {
	assert.Equal(t, "30%", FormatPercent(0.30, ","))
}

func TestFormatPercent_FractionalPercentageWithCommaSeparator(t *testing.T) {
	assert.Equal(t, "12,50%", FormatPercent(0.125, ","))
}

func TestFormatPercent_FractionalPercentageWithDotSeparator(t *testing.T) {
	assert.Equal(t, "12.50%", FormatPercent(0.125, "."))
}

func TestFormatPercent_Zero(t *testing.T) {
	assert.Equal(t, "0%", FormatPercent(0, ","))
}

// ============================================================================
// TEST SUITE 5: QUOTE DERIVATION
// ============================================================================

func TestBuildPremiumQuote_DerivesAllAmounts(t *testing.T) {
	insurer := models.InsuranceVehicle{ID: uuid.New(), Name: "Insurer One", DisplaySlot: 1, Active: true}
	ratio := models.InsuranceVehicleRatio{
		ID:                 uuid.New(),
		InsuranceVehicleID: insurer.ID,
		EmissionRight:      0.05,
		Tax:                0.18,
		Fee:                4,
		DirectDebit:        12,
	}
	premium := models.QuotationPremium{
		ID:                 uuid.New(),
		QuotationID:        uuid.New(),
		InsuranceVehicleID: insurer.ID,
		RatioID:            ratio.ID,
		NetAmount:          1000.00,
		Rate:               0.05,
	}

	quote, err := BuildPremiumQuote(premium, insurer, ratio)

	require.NoError(t, err)
	assert.Equal(t, 50.00, quote.EmissionAmount)
	assert.Equal(t, 189.00, quote.TaxAmount)
	assert.Equal(t, 1239.00, quote.TotalPremium)
	assert.Equal(t, 309.75, quote.FeeInstallment)
	assert.Equal(t, 103.25, quote.DirectDebitAmount)
}

func TestBuildPremiumQuote_RejectsBrokenRatio(t *testing.T) {
	insurer := models.InsuranceVehicle{ID: uuid.New(), Name: "Insurer One"}
	ratio := models.InsuranceVehicleRatio{ID: uuid.New(), InsuranceVehicleID: insurer.ID, Fee: 0, DirectDebit: 12}
	premium := models.QuotationPremium{ID: uuid.New(), NetAmount: 100.00}

	_, err := BuildPremiumQuote(premium, insurer, ratio)

	assert.Error(t, err)
}
