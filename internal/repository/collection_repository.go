package repository

import (
	"fmt"
	"log/slog"
	"time"

	"quotation-service/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CollectionRepository struct {
	db *sqlx.DB
}

func NewCollectionRepository(db *sqlx.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

func (r *CollectionRepository) CreateCollection(collection *models.Collection) error {
	collection.CreatedAt = time.Now()
	collection.UpdatedAt = time.Now()

	query := `
		INSERT INTO collection (
			id, issuance_id, expiration_date, amount, issue,
			payment_date, receipt_number, created_at, updated_at
		) VALUES (
			:id, :issuance_id, :expiration_date, :amount, :issue,
			:payment_date, :receipt_number, :created_at, :updated_at
		)`

	if _, err := r.db.NamedExec(query, collection); err != nil {
		return translateDBError(err, "collection")
	}

	slog.Info("Created collection",
		"collection_id", collection.ID,
		"issuance_id", collection.IssuanceID,
		"amount", collection.Amount)
	return nil
}

func (r *CollectionRepository) GetCollectionByID(id uuid.UUID) (*models.Collection, error) {
	var collection models.Collection
	query := `
		SELECT id, issuance_id, expiration_date, amount, issue,
		       payment_date, receipt_number, created_at, updated_at
		FROM collection WHERE id = $1`

	if err := r.db.Get(&collection, query, id); err != nil {
		return nil, translateDBError(err, "collection")
	}
	return &collection, nil
}

func (r *CollectionRepository) GetCollectionsByIssuance(issuanceID uuid.UUID) ([]models.Collection, error) {
	var collections []models.Collection
	query := `
		SELECT id, issuance_id, expiration_date, amount, issue,
		       payment_date, receipt_number, created_at, updated_at
		FROM collection
		WHERE issuance_id = $1
		ORDER BY expiration_date`

	if err := r.db.Select(&collections, query, issuanceID); err != nil {
		return nil, translateDBError(err, "collections")
	}
	return collections, nil
}

// CompletePayment records the payment date and receipt number. The WHERE
// clause refuses rows that are already paid so a receipt is never overwritten.
func (r *CollectionRepository) CompletePayment(id uuid.UUID, paymentDate time.Time, receiptNumber string) error {
	query := `
		UPDATE collection SET payment_date = $2, receipt_number = $3, updated_at = $4
		WHERE id = $1 AND payment_date IS NULL`

	result, err := r.db.Exec(query, id, paymentDate, receiptNumber, time.Now())
	if err != nil {
		return translateDBError(err, "collection")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("pending collection %w", ErrNotFound)
	}

	slog.Info("Completed collection payment", "collection_id", id, "receipt_number", receiptNumber)
	return nil
}
