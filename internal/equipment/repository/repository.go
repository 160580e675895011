package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medfleet-tracker/internal/database"
	"medfleet-tracker/internal/equipment/model"
	appErrors "medfleet-tracker/pkg/errors"

	"gorm.io/gorm"
)

type EquipmentRepository struct {
	db *database.Database
}

func NewRepository(db *database.Database) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) List(ctx context.Context) ([]model.Equipment, error) {
	var rows []model.Equipment
	if err := r.db.DB.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	return rows, nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id uint) (*model.Equipment, error) {
	var row model.Equipment
	err := r.db.DB.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrEquipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	return &row, nil
}

func (r *EquipmentRepository) Create(ctx context.Context, row *model.Equipment) error {
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now

	if err := r.db.DB.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create equipment: %w", err)
	}
	return nil
}

// Update is a full replace of the mutable columns.
func (r *EquipmentRepository) Update(ctx context.Context, id uint, row *model.Equipment) error {
	result := r.db.DB.WithContext(ctx).
		Model(&model.Equipment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":                 row.Name,
			"category":             row.Category,
			"serial_number":        row.SerialNumber,
			"manufacturer":         row.Manufacturer,
			"model":                row.Model,
			"location":             row.Location,
			"status":               row.Status,
			"quantity":             row.Quantity,
			"unit":                 row.Unit,
			"expiration_date":      row.ExpirationDate,
			"calibration_due_date": row.CalibrationDueDate,
			"notes":                row.Notes,
			"updated_at":           time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update equipment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrEquipmentNotFound
	}
	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.Equipment{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete equipment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrEquipmentNotFound
	}
	return nil
}
