package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medfleet-tracker/internal/approval/model"
	"medfleet-tracker/internal/database"
	appErrors "medfleet-tracker/pkg/errors"

	"gorm.io/gorm"
)

type ApprovalRepository struct {
	db *database.Database
}

func NewRepository(db *database.Database) *ApprovalRepository {
	return &ApprovalRepository{db: db}
}

func (r *ApprovalRepository) List(ctx context.Context) ([]model.ApprovalRequest, error) {
	var rows []model.ApprovalRequest
	if err := r.db.DB.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list approval requests: %w", err)
	}
	return rows, nil
}

func (r *ApprovalRepository) GetByID(ctx context.Context, id uint) (*model.ApprovalRequest, error) {
	var row model.ApprovalRequest
	err := r.db.DB.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrApprovalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get approval request: %w", err)
	}
	return &row, nil
}

func (r *ApprovalRepository) Create(ctx context.Context, row *model.ApprovalRequest) error {
	now := time.Now()
	row.RequestedAt = now
	row.CreatedAt = now
	row.UpdatedAt = now

	if err := r.db.DB.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create approval request: %w", err)
	}
	return nil
}

// Update is the full-replace write path. It deliberately does not touch the
// lifecycle timestamps; only UpdateStatus stamps them.
func (r *ApprovalRepository) Update(ctx context.Context, id uint, row *model.ApprovalRequest) error {
	result := r.db.DB.WithContext(ctx).
		Model(&model.ApprovalRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"request_id":           row.RequestID,
			"type":                 row.Type,
			"requested_by":         row.RequestedBy,
			"item_id":              row.ItemID,
			"item_name":            row.ItemName,
			"quantity":             row.Quantity,
			"status":               row.Status,
			"notes":                row.Notes,
			"clinical_approver_id": row.ClinicalApproverID,
			"fulfilled_by_id":      row.FulfilledByID,
			"updated_at":           time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update approval request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrApprovalNotFound
	}
	return nil
}

// UpdateStatus applies the transition in a single conditional statement.
// The updates map already carries the one stamped timestamp and whichever
// of approver/fulfiller/notes were explicitly provided.
func (r *ApprovalRepository) UpdateStatus(ctx context.Context, id uint, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&model.ApprovalRequest{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update approval status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrApprovalNotFound
	}
	return nil
}

func (r *ApprovalRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.ApprovalRequest{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete approval request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrApprovalNotFound
	}
	return nil
}

func (r *ApprovalRepository) CountByStatus(ctx context.Context, status model.Status) (int64, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).Model(&model.ApprovalRequest{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
