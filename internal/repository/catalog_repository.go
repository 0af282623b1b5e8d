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

const latestRatioCacheTTL = 10 * time.Minute

type CatalogRepository struct {
	db          *sqlx.DB
	redisClient *redis.Client
}

func NewCatalogRepository(db *sqlx.DB, redisClient *redis.Client) *CatalogRepository {
	return &CatalogRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// ============================================================================
// DOCUMENT TYPES
// ============================================================================

func (r *CatalogRepository) CreateDocumentType(dt *models.DocumentType) error {
	dt.CreatedAt = time.Now()

	query := `
		INSERT INTO document_type (id, name, min_length, max_length, created_at)
		VALUES (:id, :name, :min_length, :max_length, :created_at)`

	_, err := r.db.NamedExec(query, dt)
	return translateDBError(err, "document type")
}

func (r *CatalogRepository) GetDocumentTypeByID(id uuid.UUID) (*models.DocumentType, error) {
	var dt models.DocumentType
	query := `SELECT id, name, min_length, max_length, created_at FROM document_type WHERE id = $1`

	if err := r.db.Get(&dt, query, id); err != nil {
		return nil, translateDBError(err, "document type")
	}
	return &dt, nil
}

func (r *CatalogRepository) GetAllDocumentTypes() ([]models.DocumentType, error) {
	var types []models.DocumentType
	query := `SELECT id, name, min_length, max_length, created_at FROM document_type ORDER BY name`

	if err := r.db.Select(&types, query); err != nil {
		return nil, translateDBError(err, "document types")
	}
	return types, nil
}

// ============================================================================
// RISKS
// ============================================================================

func (r *CatalogRepository) GetRiskByName(name string) (*models.Risk, error) {
	var risk models.Risk
	query := `SELECT id, name, created_at FROM risk WHERE name = $1`

	if err := r.db.Get(&risk, query, name); err != nil {
		return nil, translateDBError(err, "risk")
	}
	return &risk, nil
}

func (r *CatalogRepository) GetAllRisks() ([]models.Risk, error) {
	var risks []models.Risk
	query := `SELECT id, name, created_at FROM risk ORDER BY name`

	if err := r.db.Select(&risks, query); err != nil {
		return nil, translateDBError(err, "risks")
	}
	return risks, nil
}

// ============================================================================
// INSURERS AND RATIO SNAPSHOTS
// ============================================================================

func (r *CatalogRepository) CreateInsuranceVehicle(insurer *models.InsuranceVehicle) error {
	insurer.CreatedAt = time.Now()
	insurer.UpdatedAt = time.Now()

	query := `
		INSERT INTO insurance_vehicle (id, name, display_slot, active, created_at, updated_at)
		VALUES (:id, :name, :display_slot, :active, :created_at, :updated_at)`

	_, err := r.db.NamedExec(query, insurer)
	return translateDBError(err, "insurance vehicle")
}

func (r *CatalogRepository) GetInsuranceVehicleByID(id uuid.UUID) (*models.InsuranceVehicle, error) {
	var insurer models.InsuranceVehicle
	query := `
		SELECT id, name, display_slot, active, created_at, updated_at
		FROM insurance_vehicle WHERE id = $1`

	if err := r.db.Get(&insurer, query, id); err != nil {
		return nil, translateDBError(err, "insurance vehicle")
	}
	return &insurer, nil
}

func (r *CatalogRepository) GetActiveInsuranceVehicles() ([]models.InsuranceVehicle, error) {
	var insurers []models.InsuranceVehicle
	query := `
		SELECT id, name, display_slot, active, created_at, updated_at
		FROM insurance_vehicle
		WHERE active = true
		ORDER BY display_slot`

	if err := r.db.Select(&insurers, query); err != nil {
		return nil, translateDBError(err, "insurance vehicles")
	}
	return insurers, nil
}

func (r *CatalogRepository) CreateRatio(ratio *models.InsuranceVehicleRatio) error {
	ratio.CreatedAt = time.Now()

	query := `
		INSERT INTO insurance_vehicle_ratio (
			id, insurance_vehicle_id, emission_right, tax, fee, direct_debit, created_at
		) VALUES (
			:id, :insurance_vehicle_id, :emission_right, :tax, :fee, :direct_debit, :created_at
		)`

	if _, err := r.db.NamedExec(query, ratio); err != nil {
		return translateDBError(err, "insurance vehicle ratio")
	}

	// A new snapshot supersedes the cached "last ratio".
	r.invalidateLatestRatio(context.Background(), ratio.InsuranceVehicleID)
	return nil
}

func (r *CatalogRepository) GetRatioByID(id uuid.UUID) (*models.InsuranceVehicleRatio, error) {
	var ratio models.InsuranceVehicleRatio
	query := `
		SELECT id, insurance_vehicle_id, emission_right, tax, fee, direct_debit, created_at
		FROM insurance_vehicle_ratio WHERE id = $1`

	if err := r.db.Get(&ratio, query, id); err != nil {
		return nil, translateDBError(err, "insurance vehicle ratio")
	}
	return &ratio, nil
}

// GetLatestRatio returns the insurer's most recent rate-table snapshot,
// consulting the Redis cache first.
func (r *CatalogRepository) GetLatestRatio(ctx context.Context, insurerID uuid.UUID) (*models.InsuranceVehicleRatio, error) {
	cacheKey := latestRatioKey(insurerID)

	if data, err := r.redisClient.Get(ctx, cacheKey).Bytes(); err == nil {
		var cached models.InsuranceVehicleRatio
		if err := utils.DeserializeModel(data, &cached); err == nil {
			return &cached, nil
		}
		slog.Warn("Discarding unreadable cached ratio", "insurer_id", insurerID)
	}

	var ratio models.InsuranceVehicleRatio
	query := `
		SELECT id, insurance_vehicle_id, emission_right, tax, fee, direct_debit, created_at
		FROM insurance_vehicle_ratio
		WHERE insurance_vehicle_id = $1
		ORDER BY created_at DESC
		LIMIT 1`

	if err := r.db.Get(&ratio, query, insurerID); err != nil {
		return nil, translateDBError(err, "insurance vehicle ratio")
	}

	if data, err := utils.SerializeModel(&ratio); err == nil {
		if err := r.redisClient.Set(ctx, cacheKey, data, latestRatioCacheTTL).Err(); err != nil {
			slog.Warn("Failed to cache latest ratio", "insurer_id", insurerID, "error", err)
		}
	}

	return &ratio, nil
}

func (r *CatalogRepository) invalidateLatestRatio(ctx context.Context, insurerID uuid.UUID) {
	if err := r.redisClient.Del(ctx, latestRatioKey(insurerID)).Err(); err != nil {
		slog.Warn("Failed to invalidate cached ratio", "insurer_id", insurerID, "error", err)
	}
}

func latestRatioKey(insurerID uuid.UUID) string {
	return fmt.Sprintf("catalog:latest_ratio:%s", insurerID)
}

// ============================================================================
// PLANS
// ============================================================================

func (r *CatalogRepository) CreatePlan(plan *models.InsurancePlan) error {
	plan.CreatedAt = time.Now()

	query := `
		INSERT INTO insurance_plan (
			id, insurance_vehicle_id, risk_id, name, commission_rate, active, created_at
		) VALUES (
			:id, :insurance_vehicle_id, :risk_id, :name, :commission_rate, :active, :created_at
		)`

	_, err := r.db.NamedExec(query, plan)
	return translateDBError(err, "insurance plan")
}

func (r *CatalogRepository) GetPlanByID(id uuid.UUID) (*models.InsurancePlan, error) {
	var plan models.InsurancePlan
	query := `
		SELECT id, insurance_vehicle_id, risk_id, name, commission_rate, active, created_at
		FROM insurance_plan WHERE id = $1`

	if err := r.db.Get(&plan, query, id); err != nil {
		return nil, translateDBError(err, "insurance plan")
	}
	return &plan, nil
}

// GetPlansForInsurerAndRisk lists the active plans valid for the risk/insurer
// combination of a chosen premium.
func (r *CatalogRepository) GetPlansForInsurerAndRisk(insurerID, riskID uuid.UUID) ([]models.InsurancePlan, error) {
	var plans []models.InsurancePlan
	query := `
		SELECT id, insurance_vehicle_id, risk_id, name, commission_rate, active, created_at
		FROM insurance_plan
		WHERE insurance_vehicle_id = $1 AND risk_id = $2 AND active = true
		ORDER BY name`

	if err := r.db.Select(&plans, query, insurerID, riskID); err != nil {
		return nil, translateDBError(err, "insurance plans")
	}
	return plans, nil
}

// ============================================================================
// CONSULTANTS
// ============================================================================

func (r *CatalogRepository) CreateConsultant(consultant *models.Consultant) error {
	consultant.CreatedAt = time.Now()
	consultant.UpdatedAt = time.Now()

	query := `
		INSERT INTO consultant (
			id, first_name, last_name, document_number, role,
			new_sale_commission_rate, active, created_at, updated_at
		) VALUES (
			:id, :first_name, :last_name, :document_number, :role,
			:new_sale_commission_rate, :active, :created_at, :updated_at
		)`

	_, err := r.db.NamedExec(query, consultant)
	return translateDBError(err, "consultant")
}

func (r *CatalogRepository) GetConsultantByID(id uuid.UUID) (*models.Consultant, error) {
	var consultant models.Consultant
	query := `
		SELECT id, first_name, last_name, document_number, role,
		       new_sale_commission_rate, active, created_at, updated_at
		FROM consultant WHERE id = $1`

	if err := r.db.Get(&consultant, query, id); err != nil {
		return nil, translateDBError(err, "consultant")
	}
	return &consultant, nil
}

func (r *CatalogRepository) GetConsultantsByRole(role models.ConsultantRole) ([]models.Consultant, error) {
	var consultants []models.Consultant
	query := `
		SELECT id, first_name, last_name, document_number, role,
		       new_sale_commission_rate, active, created_at, updated_at
		FROM consultant
		WHERE role = $1 AND active = true
		ORDER BY last_name, first_name`

	if err := r.db.Select(&consultants, query, role); err != nil {
		return nil, translateDBError(err, "consultants")
	}
	return consultants, nil
}

func (r *CatalogRepository) UpdateConsultantRate(id uuid.UUID, rate float64) error {
	query := `
		UPDATE consultant SET new_sale_commission_rate = $2, updated_at = $3
		WHERE id = $1`

	result, err := r.db.Exec(query, id, rate, time.Now())
	if err != nil {
		return translateDBError(err, "consultant")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("consultant %w", ErrNotFound)
	}
	return nil
}
