package repository

import (
	"context"
	"fmt"

	approvalModel "medfleet-tracker/internal/approval/model"
	"medfleet-tracker/internal/database"
	equipmentModel "medfleet-tracker/internal/equipment/model"
	staffModel "medfleet-tracker/internal/staff/model"
	auditModel "medfleet-tracker/internal/stockaudit/model"
	vehicleModel "medfleet-tracker/internal/vehicle/model"
)

type DashboardRepository struct {
	db *database.Database
}

func NewRepository(db *database.Database) *DashboardRepository {
	return &DashboardRepository{db: db}
}

type Stats struct {
	TotalEquipment   int64 `json:"totalEquipment"`
	ActiveVehicles   int64 `json:"activeVehicles"`
	PendingApprovals int64 `json:"pendingApprovals"`
	TotalStaff       int64 `json:"totalStaff"`
	OngoingAudits    int64 `json:"ongoingAudits"`
	TotalVehicles    int64 `json:"totalVehicles"`
}

// Counts runs six independent queries, computed fresh per call. No
// transactional snapshot spans them.
func (r *DashboardRepository) Counts(ctx context.Context) (*Stats, error) {
	db := r.db.DB.WithContext(ctx)
	stats := &Stats{}

	queries := []struct {
		name string
		run  func() error
	}{
		{"total equipment", func() error {
			return db.Model(&equipmentModel.Equipment{}).Count(&stats.TotalEquipment).Error
		}},
		{"active vehicles", func() error {
			return db.Model(&vehicleModel.Vehicle{}).
				Where("status = ?", vehicleModel.StatusActive).Count(&stats.ActiveVehicles).Error
		}},
		{"pending approvals", func() error {
			return db.Model(&approvalModel.ApprovalRequest{}).
				Where("status = ?", approvalModel.StatusPending).Count(&stats.PendingApprovals).Error
		}},
		{"total staff", func() error {
			return db.Model(&staffModel.Staff{}).Count(&stats.TotalStaff).Error
		}},
		{"ongoing audits", func() error {
			return db.Model(&auditModel.StockAudit{}).
				Where("status = ?", auditModel.StatusInProgress).Count(&stats.OngoingAudits).Error
		}},
		{"total vehicles", func() error {
			return db.Model(&vehicleModel.Vehicle{}).Count(&stats.TotalVehicles).Error
		}},
	}

	for _, q := range queries {
		if err := q.run(); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", q.name, err)
		}
	}

	return stats, nil
}
