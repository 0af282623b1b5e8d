package services

import (
	"testing"

	"quotation-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// SLOT COLUMN MAPPING
// ============================================================================

func TestSlotColumn_MapsSlotsToFixedColumns(t *testing.T) {
	expected := map[int]string{1: "C", 2: "D", 3: "E", 4: "F", 5: "G"}
	for slot, want := range expected {
		column, err := slotColumn(slot)
		require.NoError(t, err)
		assert.Equal(t, want, column, "slot %d", slot)
	}
}

func TestSlotColumn_RejectsOutOfRange(t *testing.T) {
	_, err := slotColumn(0)
	assert.Error(t, err)

	_, err = slotColumn(6)
	assert.Error(t, err)
}

// ============================================================================
// SLOT ORDERING
// ============================================================================

func quoteInSlot(name string, slot int) models.PremiumQuote {
	return models.PremiumQuote{
		Insurer: models.InsuranceVehicle{Name: name, DisplaySlot: slot},
	}
}

func TestSortQuotesBySlot_OrdersByDisplaySlot(t *testing.T) {
	quotes := []models.PremiumQuote{
		quoteInSlot("Pacifico", 3),
		quoteInSlot("Rimac", 1),
		quoteInSlot("Mapfre", 5),
	}

	ordered := sortQuotesBySlot(quotes)
	require.Len(t, ordered, 3)
	assert.Equal(t, "Rimac", ordered[0].Insurer.Name)
	assert.Equal(t, "Pacifico", ordered[1].Insurer.Name)
	assert.Equal(t, "Mapfre", ordered[2].Insurer.Name)
}

func TestSortQuotesBySlot_DropsQuotesOutsideSlotRange(t *testing.T) {
	quotes := []models.PremiumQuote{
		quoteInSlot("Rimac", 1),
		quoteInSlot("Broken", 9),
	}

	ordered := sortQuotesBySlot(quotes)
	require.Len(t, ordered, 1)
	assert.Equal(t, "Rimac", ordered[0].Insurer.Name)
}

func TestSortQuotesBySlot_Empty(t *testing.T) {
	assert.Empty(t, sortQuotesBySlot(nil))
}
