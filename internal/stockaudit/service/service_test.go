package service

import (
	"context"
	"encoding/json"
	"testing"

	"medfleet-tracker/internal/stockaudit/model"
	"medfleet-tracker/internal/stockaudit/repository"
	"medfleet-tracker/internal/testutil"
	appErrors "medfleet-tracker/pkg/errors"

	"github.com/stretchr/testify/require"
)

func TestNormalizeItems(t *testing.T) {
	tests := []struct {
		name string
		in   json.RawMessage
		want string
	}{
		{"nil becomes empty array", nil, "[]"},
		{"empty becomes empty array", json.RawMessage(``), "[]"},
		{"structured array passes through", json.RawMessage(`[{"equipment_id":1,"expected":5}]`), `[{"equipment_id":1,"expected":5}]`},
		{"serialized string is unwrapped", json.RawMessage(`"[{\"equipment_id\":1}]"`), `[{"equipment_id":1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, string(normalizeItems(tt.in)))
		})
	}
}

func TestCreateDefaultsAndRoundtrip(t *testing.T) {
	svc := NewService(repository.NewRepository(testutil.OpenTestDB(t)))

	row, err := svc.Create(context.Background(), &model.CreateStockAuditRequest{
		AuditID: "AUD-100",
		Name:    "Weekly Consumables Audit",
		Items:   json.RawMessage(`[{"equipment_id":3,"name":"Surgical Gloves (L)","expected":500}]`),
	})
	require.NoError(t, err)

	require.Equal(t, model.StatusPending, row.Status)

	var items []model.AuditItem
	require.NoError(t, json.Unmarshal(row.Items, &items))
	require.Len(t, items, 1)
	require.Equal(t, "Surgical Gloves (L)", items[0].Name)
	require.Equal(t, 500, items[0].Expected)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(repository.NewRepository(testutil.OpenTestDB(t)))

	_, err := svc.Create(context.Background(), &model.CreateStockAuditRequest{
		Name: "Nameless Audit",
	})
	require.Error(t, err)
	require.Equal(t, appErrors.CodeValidation, appErrors.CodeOf(err))
}
