package services

import (
	"context"
	"fmt"
	"log/slog"

	"quotation-service/internal/event"
	"quotation-service/internal/models"
	"quotation-service/internal/repository"

	"github.com/google/uuid"
)

// CollectionService maintains the append-only payment schedule of an
// issuance.
type CollectionService struct {
	issuanceRepo   *repository.IssuanceRepository
	collectionRepo *repository.CollectionRepository
	publisher      *event.NotificationPublisher
}

func NewCollectionService(
	issuanceRepo *repository.IssuanceRepository,
	collectionRepo *repository.CollectionRepository,
	publisher *event.NotificationPublisher,
) *CollectionService {
	return &CollectionService{
		issuanceRepo:   issuanceRepo,
		collectionRepo: collectionRepo,
		publisher:      publisher,
	}
}

// CreateCollection appends an expected payment to the issuance's schedule.
func (s *CollectionService) CreateCollection(issuanceID uuid.UUID, req models.CreateCollectionRequest) (*models.Collection, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if _, err := s.issuanceRepo.GetIssuanceByID(issuanceID); err != nil {
		return nil, err
	}

	collection := &models.Collection{
		ID:             uuid.New(),
		IssuanceID:     issuanceID,
		ExpirationDate: req.ExpirationDate,
		Amount:         req.Amount,
		Issue:          req.Issue,
	}
	if err := s.collectionRepo.CreateCollection(collection); err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}
	return collection, nil
}

// ListCollections returns the issuance's schedule ordered by expiration date.
func (s *CollectionService) ListCollections(issuanceID uuid.UUID) ([]models.Collection, error) {
	if _, err := s.issuanceRepo.GetIssuanceByID(issuanceID); err != nil {
		return nil, err
	}
	collections, err := s.collectionRepo.GetCollectionsByIssuance(issuanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return collections, nil
}

// CompletePayment fills in the payment date and receipt number of a pending
// entry. Already-paid entries are not touched.
func (s *CollectionService) CompletePayment(ctx context.Context, issuanceID, collectionID uuid.UUID, req models.CompletePaymentRequest) (*models.Collection, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	collection, err := s.collectionRepo.GetCollectionByID(collectionID)
	if err != nil {
		return nil, err
	}
	if collection.IssuanceID != issuanceID {
		return nil, fmt.Errorf("%w: collection does not belong to this issuance", ErrValidation)
	}

	if err := s.collectionRepo.CompletePayment(collectionID, req.PaymentDate, req.ReceiptNumber); err != nil {
		return nil, err
	}
	collection.PaymentDate = &req.PaymentDate
	collection.ReceiptNumber = &req.ReceiptNumber

	if err := s.publisher.PublishCollectionPaid(ctx, collection.ID, issuanceID, req.ReceiptNumber, collection.Amount); err != nil {
		slog.Warn("Failed to publish payment event", "collection_id", collection.ID, "error", err)
	}
	return collection, nil
}
