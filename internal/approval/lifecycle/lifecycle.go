package lifecycle

import (
	"fmt"

	"medfleet-tracker/internal/approval/model"
	appErrors "medfleet-tracker/pkg/errors"
)

// State machine for approval request status transitions.
var validTransitions = map[model.Status][]model.Status{
	model.StatusPending: {
		model.StatusClinicallyApproved,
		model.StatusRejected,
	},
	model.StatusClinicallyApproved: {
		model.StatusFulfilled,
	},
	model.StatusFulfilled: {
		// Terminal state - no transitions
	},
	model.StatusRejected: {
		// Terminal state - no transitions
	},
}

// ValidateStatusTransition checks if a status transition is allowed.
func ValidateStatusTransition(currentStatus, newStatus model.Status) error {
	allowedStatuses, exists := validTransitions[currentStatus]
	if !exists {
		return appErrors.NewAppError(
			appErrors.CodeInvalidTransition,
			fmt.Sprintf("Unknown current status: %s", currentStatus),
			nil,
		)
	}

	for _, allowed := range allowedStatuses {
		if newStatus == allowed {
			return nil
		}
	}

	return appErrors.NewAppError(
		appErrors.CodeInvalidTransition,
		fmt.Sprintf("Cannot transition from %s to %s", currentStatus, newStatus),
		nil,
	)
}

// GetAllowedTransitions returns allowed next statuses.
func GetAllowedTransitions(currentStatus model.Status) []model.Status {
	return validTransitions[currentStatus]
}

// IsTerminal reports whether the lifecycle defines no further transition.
func IsTerminal(status model.Status) bool {
	return len(validTransitions[status]) == 0
}
