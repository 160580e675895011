package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medfleet-tracker/internal/database"
	"medfleet-tracker/internal/shift/model"
	appErrors "medfleet-tracker/pkg/errors"

	"gorm.io/gorm"
)

type ShiftRepository struct {
	db *database.Database
}

func NewRepository(db *database.Database) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// List orders by start_time descending and resolves staff name/role
// through a read-only join, never a stored snapshot.
func (r *ShiftRepository) List(ctx context.Context) ([]model.ShiftWithStaff, error) {
	var rows []model.ShiftWithStaff
	err := r.db.DB.WithContext(ctx).
		Model(&model.Shift{}).
		Select("shifts.*, staff.name AS staff_name, staff.role AS staff_role").
		Joins("LEFT JOIN staff ON shifts.staff_id = staff.id").
		Order("shifts.start_time DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return rows, nil
}

func (r *ShiftRepository) GetByID(ctx context.Context, id uint) (*model.ShiftWithStaff, error) {
	var row model.ShiftWithStaff
	err := r.db.DB.WithContext(ctx).
		Model(&model.Shift{}).
		Select("shifts.*, staff.name AS staff_name, staff.role AS staff_role").
		Joins("LEFT JOIN staff ON shifts.staff_id = staff.id").
		Where("shifts.id = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrShiftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return &row, nil
}

func (r *ShiftRepository) Create(ctx context.Context, row *model.Shift) error {
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now

	if err := r.db.DB.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create shift: %w", err)
	}
	return nil
}

func (r *ShiftRepository) Update(ctx context.Context, id uint, row *model.Shift) error {
	result := r.db.DB.WithContext(ctx).
		Model(&model.Shift{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"shift_id":   row.ShiftID,
			"staff_id":   row.StaffID,
			"vehicle_id": row.VehicleID,
			"start_time": row.StartTime,
			"end_time":   row.EndTime,
			"shift_type": row.ShiftType,
			"notes":      row.Notes,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update shift: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrShiftNotFound
	}
	return nil
}

func (r *ShiftRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.Shift{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete shift: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrShiftNotFound
	}
	return nil
}
