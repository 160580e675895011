package lifecycle

import (
	"testing"

	"medfleet-tracker/internal/approval/model"
	appErrors "medfleet-tracker/pkg/errors"

	"github.com/stretchr/testify/require"
)

func TestValidateStatusTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    model.Status
		to      model.Status
		wantErr bool
	}{
		{"pending to clinically approved", model.StatusPending, model.StatusClinicallyApproved, false},
		{"pending to rejected", model.StatusPending, model.StatusRejected, false},
		{"pending to fulfilled skips approval", model.StatusPending, model.StatusFulfilled, true},
		{"pending to pending", model.StatusPending, model.StatusPending, true},
		{"clinically approved to fulfilled", model.StatusClinicallyApproved, model.StatusFulfilled, false},
		{"clinically approved to rejected", model.StatusClinicallyApproved, model.StatusRejected, true},
		{"clinically approved to pending", model.StatusClinicallyApproved, model.StatusPending, true},
		{"fulfilled is terminal", model.StatusFulfilled, model.StatusPending, true},
		{"rejected is terminal", model.StatusRejected, model.StatusClinicallyApproved, true},
		{"unknown current status", model.Status("Archived"), model.StatusPending, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStatusTransition(tt.from, tt.to)
			if tt.wantErr {
				require.Error(t, err)
				require.Equal(t, appErrors.CodeInvalidTransition, appErrors.CodeOf(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	require.False(t, IsTerminal(model.StatusPending))
	require.False(t, IsTerminal(model.StatusClinicallyApproved))
	require.True(t, IsTerminal(model.StatusFulfilled))
	require.True(t, IsTerminal(model.StatusRejected))
}

func TestGetAllowedTransitions(t *testing.T) {
	require.ElementsMatch(t,
		[]model.Status{model.StatusClinicallyApproved, model.StatusRejected},
		GetAllowedTransitions(model.StatusPending))
	require.Empty(t, GetAllowedTransitions(model.StatusFulfilled))
}
