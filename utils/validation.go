package utils

import (
	"fmt"
	"regexp"
)

var documentNumberPattern = regexp.MustCompile(`^[0-9]+$`)

// ValidateDocumentNumber checks that a document number is digits only and
// respects the length bounds of its document type. Bounds come from catalog
// rows, so a fixed-length type is expressed as min == max.
func ValidateDocumentNumber(documentNumber string, minLength, maxLength int) error {
	if !documentNumberPattern.MatchString(documentNumber) {
		return fmt.Errorf("document number must contain digits only")
	}
	if len(documentNumber) < minLength || len(documentNumber) > maxLength {
		if minLength == maxLength {
			return fmt.Errorf("document number must be exactly %d digits", minLength)
		}
		return fmt.Errorf("document number must be between %d and %d digits", minLength, maxLength)
	}
	return nil
}

// IsNumericDocument reports whether the search input looks like a document
// number at all; search steps re-prompt instead of hitting the store when it
// does not.
func IsNumericDocument(documentNumber string) bool {
	return documentNumberPattern.MatchString(documentNumber)
}
