package repository

import (
	"context"
	"testing"

	"medfleet-tracker/internal/database"
	"medfleet-tracker/internal/shift/model"
	staffModel "medfleet-tracker/internal/staff/model"
	"medfleet-tracker/internal/testutil"
	appErrors "medfleet-tracker/pkg/errors"

	"github.com/stretchr/testify/require"
)

func seedStaff(t *testing.T, db *database.Database, staffID, name string, role staffModel.Role) uint {
	t.Helper()
	row := &staffModel.Staff{
		StaffID: staffID,
		Name:    name,
		Role:    role,
	}
	require.NoError(t, db.DB.Create(row).Error)
	return row.ID
}

func TestListJoinsStaffAndOrdersByStartTime(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewRepository(db)

	medicID := seedStaff(t, db, "STF-001", "Amara Osei", staffModel.RoleParamedic)
	driverID := seedStaff(t, db, "STF-002", "Jonas Riekstins", staffModel.RoleDriver)

	shifts := []*model.Shift{
		{ShiftID: "SHF-001", StaffID: medicID, StartTime: "2026-08-28T07:00", EndTime: "2026-08-28T19:00", ShiftType: model.TypeDay},
		{ShiftID: "SHF-002", StaffID: driverID, StartTime: "2026-08-29T19:00", EndTime: "2026-08-30T07:00", ShiftType: model.TypeNight},
		{ShiftID: "SHF-003", StaffID: medicID, StartTime: "2026-08-29T07:00", EndTime: "2026-08-29T19:00", ShiftType: model.TypeDay},
	}
	for _, s := range shifts {
		require.NoError(t, repo.Create(context.Background(), s))
	}

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Most recent start time first.
	require.Equal(t, "SHF-002", rows[0].ShiftID)
	require.Equal(t, "SHF-003", rows[1].ShiftID)
	require.Equal(t, "SHF-001", rows[2].ShiftID)

	require.NotNil(t, rows[0].StaffName)
	require.Equal(t, "Jonas Riekstins", *rows[0].StaffName)
	require.NotNil(t, rows[0].StaffRole)
	require.Equal(t, string(staffModel.RoleDriver), *rows[0].StaffRole)
}

func TestGetReflectsCurrentStaffRow(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewRepository(db)

	staffID := seedStaff(t, db, "STF-003", "Priya Nair", staffModel.RoleClinicalApprover)
	shift := &model.Shift{
		ShiftID: "SHF-010", StaffID: staffID,
		StartTime: "2026-08-29T07:00", EndTime: "2026-08-29T19:00",
		ShiftType: model.TypeDay,
	}
	require.NoError(t, repo.Create(context.Background(), shift))

	require.NoError(t, db.DB.Model(&staffModel.Staff{}).
		Where("id = ?", staffID).
		Update("name", "Priya Nair-Shah").Error)

	got, err := repo.GetByID(context.Background(), shift.ID)
	require.NoError(t, err)
	require.NotNil(t, got.StaffName)
	require.Equal(t, "Priya Nair-Shah", *got.StaffName)
}

func TestGetDanglingStaffLeavesJoinedFieldsNull(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewRepository(db)

	shift := &model.Shift{
		ShiftID: "SHF-011", StaffID: 999,
		StartTime: "2026-08-29T07:00", EndTime: "2026-08-29T19:00",
		ShiftType: model.TypeOnCall,
	}
	require.NoError(t, repo.Create(context.Background(), shift))

	got, err := repo.GetByID(context.Background(), shift.ID)
	require.NoError(t, err)
	require.Nil(t, got.StaffName)
	require.Nil(t, got.StaffRole)
}

func TestGetNotFound(t *testing.T) {
	repo := NewRepository(testutil.OpenTestDB(t))

	_, err := repo.GetByID(context.Background(), 77)
	require.Error(t, err)
	require.Equal(t, appErrors.CodeNotFound, appErrors.CodeOf(err))
}
