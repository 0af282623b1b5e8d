package repository

import (
	"fmt"
	"log/slog"
	"time"

	"quotation-service/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type VehicleRepository struct {
	db *sqlx.DB
}

func NewVehicleRepository(db *sqlx.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// ============================================================================
// VEHICLES
// ============================================================================

func (r *VehicleRepository) CreateVehicle(vehicle *models.Vehicle) error {
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = time.Now()

	query := `
		INSERT INTO vehicle (
			id, plate, brand, model, fabrication_year, usage, has_gps,
			endorsee_bank, created_at, updated_at
		) VALUES (
			:id, :plate, :brand, :model, :fabrication_year, :usage, :has_gps,
			:endorsee_bank, :created_at, :updated_at
		)`

	_, err := r.db.NamedExec(query, vehicle)
	return translateDBError(err, "vehicle")
}

func (r *VehicleRepository) GetVehicleByID(id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	query := `
		SELECT id, plate, brand, model, fabrication_year, usage, has_gps,
		       endorsee_bank, created_at, updated_at
		FROM vehicle WHERE id = $1`

	if err := r.db.Get(&vehicle, query, id); err != nil {
		return nil, translateDBError(err, "vehicle")
	}
	return &vehicle, nil
}

func (r *VehicleRepository) GetVehicleByPlate(plate string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	query := `
		SELECT id, plate, brand, model, fabrication_year, usage, has_gps,
		       endorsee_bank, created_at, updated_at
		FROM vehicle WHERE plate = $1`

	if err := r.db.Get(&vehicle, query, plate); err != nil {
		return nil, translateDBError(err, "vehicle")
	}
	return &vehicle, nil
}

func (r *VehicleRepository) UpdateVehicle(vehicle *models.Vehicle) error {
	vehicle.UpdatedAt = time.Now()

	query := `
		UPDATE vehicle SET
			plate = :plate,
			brand = :brand,
			model = :model,
			fabrication_year = :fabrication_year,
			usage = :usage,
			has_gps = :has_gps,
			endorsee_bank = :endorsee_bank,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExec(query, vehicle)
	if err != nil {
		return translateDBError(err, "vehicle")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("vehicle %w", ErrNotFound)
	}
	return nil
}

// ============================================================================
// OWNERSHIP
// ============================================================================

// GetOwnershipByVehicle returns the vehicle's active ownership row. At most
// one exists at a time.
func (r *VehicleRepository) GetOwnershipByVehicle(vehicleID uuid.UUID) (*models.VehicleOwnership, error) {
	var ownership models.VehicleOwnership
	query := `
		SELECT id, vehicle_id, kind, customer_id, owner_id, created_at
		FROM vehicle_ownership WHERE vehicle_id = $1`

	if err := r.db.Get(&ownership, query, vehicleID); err != nil {
		return nil, translateDBError(err, "vehicle ownership")
	}
	return &ownership, nil
}

// ReplaceOwnership removes any prior ownership row for the vehicle and
// inserts the new one inside a single transaction, so the vehicle is never
// observed without ownership part-way through the swap.
func (r *VehicleRepository) ReplaceOwnership(ownership *models.VehicleOwnership) error {
	if err := ownership.Validate(); err != nil {
		return err
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM vehicle_ownership WHERE vehicle_id = $1`, ownership.VehicleID); err != nil {
		return translateDBError(err, "vehicle ownership")
	}

	ownership.CreatedAt = time.Now()
	query := `
		INSERT INTO vehicle_ownership (id, vehicle_id, kind, customer_id, owner_id, created_at)
		VALUES (:id, :vehicle_id, :kind, :customer_id, :owner_id, :created_at)`
	if _, err := tx.NamedExec(query, ownership); err != nil {
		return translateDBError(err, "vehicle ownership")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ownership replacement: %w", err)
	}

	slog.Info("Replaced vehicle ownership",
		"vehicle_id", ownership.VehicleID,
		"kind", ownership.Kind)
	return nil
}
