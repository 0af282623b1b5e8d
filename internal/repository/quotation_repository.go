package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"quotation-service/internal/models"
	"quotation-service/utils"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

const draftPremiumTTL = 30 * time.Minute

type QuotationRepository struct {
	db          *sqlx.DB
	redisClient *redis.Client
}

func NewQuotationRepository(db *sqlx.DB, redisClient *redis.Client) *QuotationRepository {
	return &QuotationRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// ============================================================================
// QUOTATIONS
// ============================================================================

func (r *QuotationRepository) CreateQuotation(quotation *models.Quotation) error {
	quotation.CreatedAt = time.Now()
	quotation.UpdatedAt = time.Now()

	query := `
		INSERT INTO quotation (
			id, registrar_id, seller_id, customer_id, vehicle_id, risk_id,
			insured_amount, currency, created_at, updated_at
		) VALUES (
			:id, :registrar_id, :seller_id, :customer_id, :vehicle_id, :risk_id,
			:insured_amount, :currency, :created_at, :updated_at
		)`

	if _, err := r.db.NamedExec(query, quotation); err != nil {
		return translateDBError(err, "quotation")
	}

	slog.Info("Created quotation",
		"quotation_id", quotation.ID,
		"customer_id", quotation.CustomerID,
		"vehicle_id", quotation.VehicleID)
	return nil
}

func (r *QuotationRepository) GetQuotationByID(id uuid.UUID) (*models.Quotation, error) {
	var quotation models.Quotation
	query := `
		SELECT id, registrar_id, seller_id, customer_id, vehicle_id, risk_id,
		       insured_amount, currency, created_at, updated_at
		FROM quotation WHERE id = $1`

	if err := r.db.Get(&quotation, query, id); err != nil {
		return nil, translateDBError(err, "quotation")
	}
	return &quotation, nil
}

func (r *QuotationRepository) UpdateQuotation(quotation *models.Quotation) error {
	quotation.UpdatedAt = time.Now()

	query := `
		UPDATE quotation SET
			seller_id = :seller_id,
			insured_amount = :insured_amount,
			currency = :currency,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExec(query, quotation)
	if err != nil {
		return translateDBError(err, "quotation")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("quotation %w", ErrNotFound)
	}
	return nil
}

func (r *QuotationRepository) GetQuotationsByCustomer(customerID uuid.UUID) ([]models.Quotation, error) {
	var quotations []models.Quotation
	query := `
		SELECT id, registrar_id, seller_id, customer_id, vehicle_id, risk_id,
		       insured_amount, currency, created_at, updated_at
		FROM quotation
		WHERE customer_id = $1
		ORDER BY created_at DESC`

	if err := r.db.Select(&quotations, query, customerID); err != nil {
		return nil, translateDBError(err, "quotations")
	}
	return quotations, nil
}

// ============================================================================
// PREMIUMS
// ============================================================================

// CreatePremiumsBatch persists all of a quotation's premium rows in a single
// transaction, so a partially captured grid is never left behind.
func (r *QuotationRepository) CreatePremiumsBatch(premiums []models.QuotationPremium) error {
	if len(premiums) == 0 {
		return nil
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO quotation_premium (
			id, quotation_id, insurance_vehicle_id, ratio_id, net_amount, rate, created_at
		) VALUES (
			:id, :quotation_id, :insurance_vehicle_id, :ratio_id, :net_amount, :rate, :created_at
		)`

	now := time.Now()
	for i := range premiums {
		premiums[i].CreatedAt = now
		if _, err := tx.NamedExec(query, &premiums[i]); err != nil {
			return translateDBError(err, "quotation premium")
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit premium batch: %w", err)
	}

	slog.Info("Created premium batch",
		"quotation_id", premiums[0].QuotationID,
		"count", len(premiums))
	return nil
}

func (r *QuotationRepository) GetPremiumByID(id uuid.UUID) (*models.QuotationPremium, error) {
	var premium models.QuotationPremium
	query := `
		SELECT id, quotation_id, insurance_vehicle_id, ratio_id, net_amount, rate, created_at
		FROM quotation_premium WHERE id = $1`

	if err := r.db.Get(&premium, query, id); err != nil {
		return nil, translateDBError(err, "quotation premium")
	}
	return &premium, nil
}

func (r *QuotationRepository) GetPremiumsByQuotation(quotationID uuid.UUID) ([]models.QuotationPremium, error) {
	var premiums []models.QuotationPremium
	query := `
		SELECT id, quotation_id, insurance_vehicle_id, ratio_id, net_amount, rate, created_at
		FROM quotation_premium
		WHERE quotation_id = $1
		ORDER BY created_at`

	if err := r.db.Select(&premiums, query, quotationID); err != nil {
		return nil, translateDBError(err, "quotation premiums")
	}
	return premiums, nil
}

// ============================================================================
// DRAFT PREMIUM GRID
// ============================================================================

// premiumGridDraft is the grid prepared when the capture step is rendered:
// one entry per active insurer, each pinned to the insurer's latest ratio so
// the POST prices with the same snapshots the form displayed.
type premiumGridDraft struct {
	QuotationID uuid.UUID               `json:"quotation_id"`
	Ratios      map[uuid.UUID]uuid.UUID `json:"ratios"`
	PreparedAt  time.Time               `json:"prepared_at"`
}

func draftPremiumKey(quotationID uuid.UUID) string {
	return fmt.Sprintf("quotation:premium_draft:%s", quotationID)
}

// SaveDraftGrid caches the insurer-to-ratio pinning for a quotation's premium
// capture form.
func (r *QuotationRepository) SaveDraftGrid(ctx context.Context, quotationID uuid.UUID, ratios map[uuid.UUID]uuid.UUID) error {
	draft := premiumGridDraft{
		QuotationID: quotationID,
		Ratios:      ratios,
		PreparedAt:  time.Now(),
	}

	data, err := utils.SerializeModel(&draft)
	if err != nil {
		return fmt.Errorf("failed to serialize premium draft: %w", err)
	}

	if err := r.redisClient.Set(ctx, draftPremiumKey(quotationID), data, draftPremiumTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache premium draft: %w", err)
	}
	return nil
}

// GetDraftGrid returns the pinned ratio per insurer, or nil when the draft
// has expired or was never prepared.
func (r *QuotationRepository) GetDraftGrid(ctx context.Context, quotationID uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	data, err := r.redisClient.Get(ctx, draftPremiumKey(quotationID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read premium draft: %w", err)
	}

	var draft premiumGridDraft
	if err := utils.DeserializeModel(data, &draft); err != nil {
		slog.Warn("Discarding unreadable premium draft", "quotation_id", quotationID)
		return nil, nil
	}
	return draft.Ratios, nil
}

func (r *QuotationRepository) DeleteDraftGrid(ctx context.Context, quotationID uuid.UUID) {
	if err := r.redisClient.Del(ctx, draftPremiumKey(quotationID)).Err(); err != nil {
		slog.Warn("Failed to delete premium draft", "quotation_id", quotationID, "error", err)
	}
}
