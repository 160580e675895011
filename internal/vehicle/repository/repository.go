package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medfleet-tracker/internal/database"
	"medfleet-tracker/internal/vehicle/model"
	appErrors "medfleet-tracker/pkg/errors"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *database.Database
}

func NewRepository(db *database.Database) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) List(ctx context.Context) ([]model.Vehicle, error) {
	var rows []model.Vehicle
	if err := r.db.DB.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return rows, nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id uint) (*model.Vehicle, error) {
	var row model.Vehicle
	err := r.db.DB.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return &row, nil
}

// Create relies on the unique index on vehicle_id; a duplicate business
// code surfaces as a storage failure, never a silent overwrite.
func (r *VehicleRepository) Create(ctx context.Context, row *model.Vehicle) error {
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now

	if err := r.db.DB.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

func (r *VehicleRepository) Update(ctx context.Context, id uint, row *model.Vehicle) error {
	result := r.db.DB.WithContext(ctx).
		Model(&model.Vehicle{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"vehicle_id":          row.VehicleID,
			"registration_number": row.RegistrationNumber,
			"model":               row.Model,
			"year":                row.Year,
			"status":              row.Status,
			"driver_id":           row.DriverID,
			"oxygen_level":        row.OxygenLevel,
			"fuel_level":          row.FuelLevel,
			"last_maintenance":    row.LastMaintenance,
			"equipment":           row.Equipment,
			"notes":               row.Notes,
			"updated_at":          time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrVehicleNotFound
	}
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.Vehicle{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrVehicleNotFound
	}
	return nil
}

func (r *VehicleRepository) CountByStatus(ctx context.Context, status model.Status) (int64, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).Model(&model.Vehicle{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
