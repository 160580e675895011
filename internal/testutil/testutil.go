// Package testutil provides shared helpers for database-backed tests.
package testutil

import (
	"testing"

	approvalModel "medfleet-tracker/internal/approval/model"
	"medfleet-tracker/internal/database"
	equipmentModel "medfleet-tracker/internal/equipment/model"
	shiftModel "medfleet-tracker/internal/shift/model"
	staffModel "medfleet-tracker/internal/staff/model"
	auditModel "medfleet-tracker/internal/stockaudit/model"
	vehicleModel "medfleet-tracker/internal/vehicle/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// OpenTestDB opens an isolated in-memory database with the full schema
// migrated. Each call gets its own database, so tests never share state.
func OpenTestDB(t *testing.T) *database.Database {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	// An in-memory database exists per connection; pin the pool to one so
	// every query in the test sees the same schema and rows.
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	err = gormDB.AutoMigrate(
		&equipmentModel.Equipment{},
		&vehicleModel.Vehicle{},
		&staffModel.Staff{},
		&shiftModel.Shift{},
		&approvalModel.ApprovalRequest{},
		&auditModel.StockAudit{},
	)
	require.NoError(t, err)

	db := &database.Database{DB: gormDB}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
