package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medfleet-tracker/internal/database"
	"medfleet-tracker/internal/staff/model"
	appErrors "medfleet-tracker/pkg/errors"

	"gorm.io/gorm"
)

type StaffRepository struct {
	db *database.Database
}

func NewRepository(db *database.Database) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) List(ctx context.Context) ([]model.Staff, error) {
	var rows []model.Staff
	if err := r.db.DB.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return rows, nil
}

func (r *StaffRepository) GetByID(ctx context.Context, id uint) (*model.Staff, error) {
	var row model.Staff
	err := r.db.DB.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	return &row, nil
}

func (r *StaffRepository) Create(ctx context.Context, row *model.Staff) error {
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now

	if err := r.db.DB.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create staff: %w", err)
	}
	return nil
}

func (r *StaffRepository) Update(ctx context.Context, id uint, row *model.Staff) error {
	result := r.db.DB.WithContext(ctx).
		Model(&model.Staff{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"staff_id":            row.StaffID,
			"name":                row.Name,
			"email":               row.Email,
			"role":                row.Role,
			"phone":               row.Phone,
			"assigned_vehicle_id": row.AssignedVehicleID,
			"updated_at":          time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update staff: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrStaffNotFound
	}
	return nil
}

func (r *StaffRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.Staff{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete staff: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrStaffNotFound
	}
	return nil
}
