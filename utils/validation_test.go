package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// DOCUMENT NUMBER VALIDATION
// ============================================================================

func TestValidateDocumentNumber_WithinBounds(t *testing.T) {
	err := ValidateDocumentNumber("12345678", 8, 11)
	assert.NoError(t, err)
}

func TestValidateDocumentNumber_RejectsNonDigits(t *testing.T) {
	err := ValidateDocumentNumber("1234A678", 8, 11)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "digits only")
}

func TestValidateDocumentNumber_RejectsEmpty(t *testing.T) {
	err := ValidateDocumentNumber("", 8, 11)
	assert.Error(t, err)
}

func TestValidateDocumentNumber_TooShort(t *testing.T) {
	err := ValidateDocumentNumber("1234567", 8, 11)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "between 8 and 11 digits")
}

func TestValidateDocumentNumber_TooLong(t *testing.T) {
	err := ValidateDocumentNumber("123456789012", 8, 11)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "between 8 and 11 digits")
}

func TestValidateDocumentNumber_FixedLengthMessage(t *testing.T) {
	// A fixed-length type is expressed as min == max.
	err := ValidateDocumentNumber("1234567", 8, 8)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly 8 digits")
}

func TestValidateDocumentNumber_FixedLengthExact(t *testing.T) {
	err := ValidateDocumentNumber("12345678", 8, 8)
	assert.NoError(t, err)
}

// ============================================================================
// SEARCH INPUT SCREENING
// ============================================================================

func TestIsNumericDocument_Digits(t *testing.T) {
	assert.True(t, IsNumericDocument("20481123459"))
}

func TestIsNumericDocument_RejectsLettersAndEmpty(t *testing.T) {
	assert.False(t, IsNumericDocument("ABC-123"))
	assert.False(t, IsNumericDocument(""))
	assert.False(t, IsNumericDocument("12 34"))
}
