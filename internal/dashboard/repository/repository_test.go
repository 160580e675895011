package repository

import (
	"context"
	"testing"

	"medfleet-tracker/internal/testutil"

	"github.com/stretchr/testify/require"
)

func TestCountsEmptyDatabase(t *testing.T) {
	repo := NewRepository(testutil.OpenTestDB(t))

	stats, err := repo.Counts(context.Background())
	require.NoError(t, err)
	require.Equal(t, &Stats{}, stats)
}

func TestCountsAfterSeed(t *testing.T) {
	db := testutil.OpenTestDB(t)
	require.NoError(t, db.Seed())

	stats, err := NewRepository(db).Counts(context.Background())
	require.NoError(t, err)

	require.Equal(t, int64(10), stats.TotalEquipment)
	require.Equal(t, int64(4), stats.TotalVehicles)
	require.Equal(t, int64(2), stats.ActiveVehicles)
	require.Equal(t, int64(6), stats.TotalStaff)
	require.Equal(t, int64(2), stats.PendingApprovals)
	require.Equal(t, int64(1), stats.OngoingAudits)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := testutil.OpenTestDB(t)
	require.NoError(t, db.Seed())
	require.NoError(t, db.Seed())

	stats, err := NewRepository(db).Counts(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(10), stats.TotalEquipment)
	require.Equal(t, int64(4), stats.TotalVehicles)
	require.Equal(t, int64(6), stats.TotalStaff)
}
