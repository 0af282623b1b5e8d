package models

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// COLLECTION
// ============================================================================

// Collection tracks one expected payment against an issuance. PaymentDate and
// ReceiptNumber stay empty until the payment-completion step fills them in.
type Collection struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	IssuanceID     uuid.UUID  `json:"issuance_id" db:"issuance_id"`
	ExpirationDate time.Time  `json:"expiration_date" db:"expiration_date"`
	Amount         float64    `json:"amount" db:"amount"`
	Issue          string     `json:"issue" db:"issue"`
	PaymentDate    *time.Time `json:"payment_date,omitempty" db:"payment_date"`
	ReceiptNumber  *string    `json:"receipt_number,omitempty" db:"receipt_number"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// Status derives the collection state from the payment date.
func (c *Collection) Status() CollectionStatus {
	if c.PaymentDate != nil {
		return CollectionPaid
	}
	return CollectionPending
}
