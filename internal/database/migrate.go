package database

import (
	"fmt"

	approvalModel "medfleet-tracker/internal/approval/model"
	equipmentModel "medfleet-tracker/internal/equipment/model"
	shiftModel "medfleet-tracker/internal/shift/model"
	staffModel "medfleet-tracker/internal/staff/model"
	auditModel "medfleet-tracker/internal/stockaudit/model"
	vehicleModel "medfleet-tracker/internal/vehicle/model"
)

// Migrate creates the six tables and their unique business-code indexes.
func (d *Database) Migrate() error {
	err := d.DB.AutoMigrate(
		&equipmentModel.Equipment{},
		&vehicleModel.Vehicle{},
		&approvalModel.ApprovalRequest{},
		&staffModel.Staff{},
		&shiftModel.Shift{},
		&auditModel.StockAudit{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
