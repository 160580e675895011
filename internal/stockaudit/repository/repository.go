package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medfleet-tracker/internal/database"
	"medfleet-tracker/internal/stockaudit/model"
	appErrors "medfleet-tracker/pkg/errors"

	"gorm.io/gorm"
)

type StockAuditRepository struct {
	db *database.Database
}

func NewRepository(db *database.Database) *StockAuditRepository {
	return &StockAuditRepository{db: db}
}

func (r *StockAuditRepository) List(ctx context.Context) ([]model.StockAudit, error) {
	var rows []model.StockAudit
	if err := r.db.DB.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list stock audits: %w", err)
	}
	return rows, nil
}

func (r *StockAuditRepository) GetByID(ctx context.Context, id uint) (*model.StockAudit, error) {
	var row model.StockAudit
	err := r.db.DB.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrAuditNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stock audit: %w", err)
	}
	return &row, nil
}

func (r *StockAuditRepository) Create(ctx context.Context, row *model.StockAudit) error {
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now

	if err := r.db.DB.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create stock audit: %w", err)
	}
	return nil
}

func (r *StockAuditRepository) Update(ctx context.Context, id uint, row *model.StockAudit) error {
	result := r.db.DB.WithContext(ctx).
		Model(&model.StockAudit{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"audit_id":   row.AuditID,
			"name":       row.Name,
			"created_by": row.CreatedBy,
			"status":     row.Status,
			"items":      row.Items,
			"notes":      row.Notes,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update stock audit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrAuditNotFound
	}
	return nil
}

func (r *StockAuditRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.StockAudit{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete stock audit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrAuditNotFound
	}
	return nil
}

func (r *StockAuditRepository) CountByStatus(ctx context.Context, status model.Status) (int64, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).Model(&model.StockAudit{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
