package repository

import (
	"context"
	"testing"

	"medfleet-tracker/internal/testutil"
	"medfleet-tracker/internal/vehicle/model"
	appErrors "medfleet-tracker/pkg/errors"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newVehicle(vehicleID string, status model.Status) *model.Vehicle {
	return &model.Vehicle{
		VehicleID:   vehicleID,
		Status:      status,
		OxygenLevel: 100,
		FuelLevel:   100,
		Equipment:   datatypes.JSON("[]"),
	}
}

func TestDuplicateVehicleIDRejected(t *testing.T) {
	repo := NewRepository(testutil.OpenTestDB(t))

	require.NoError(t, repo.Create(context.Background(), newVehicle("AMB-001", model.StatusActive)))

	err := repo.Create(context.Background(), newVehicle("AMB-001", model.StatusMaintenance))
	require.Error(t, err)
	require.Equal(t, appErrors.CodeStorage, appErrors.CodeOf(err))
}

func TestCountByStatus(t *testing.T) {
	repo := NewRepository(testutil.OpenTestDB(t))

	require.NoError(t, repo.Create(context.Background(), newVehicle("AMB-001", model.StatusActive)))
	require.NoError(t, repo.Create(context.Background(), newVehicle("AMB-002", model.StatusActive)))
	require.NoError(t, repo.Create(context.Background(), newVehicle("AMB-003", model.StatusDispatched)))

	count, err := repo.CountByStatus(context.Background(), model.StatusActive)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	count, err = repo.CountByStatus(context.Background(), model.StatusMaintenance)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)
}

func TestUpdatePersistsLevels(t *testing.T) {
	repo := NewRepository(testutil.OpenTestDB(t))

	row := newVehicle("AMB-004", model.StatusActive)
	require.NoError(t, repo.Create(context.Background(), row))

	updated := newVehicle("AMB-004", model.StatusDispatched)
	updated.OxygenLevel = 62.5
	updated.FuelLevel = 40
	require.NoError(t, repo.Update(context.Background(), row.ID, updated))

	got, err := repo.GetByID(context.Background(), row.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusDispatched, got.Status)
	require.Equal(t, 62.5, got.OxygenLevel)
	require.Equal(t, 40.0, got.FuelLevel)
}
