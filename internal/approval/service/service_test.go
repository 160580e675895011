package service

import (
	"context"
	"testing"

	"medfleet-tracker/internal/approval/model"
	"medfleet-tracker/internal/approval/repository"
	"medfleet-tracker/internal/testutil"
	appErrors "medfleet-tracker/pkg/errors"
	"medfleet-tracker/pkg/utils"

	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *ApprovalService {
	t.Helper()
	db := testutil.OpenTestDB(t)
	return NewService(repository.NewRepository(db))
}

func createPending(t *testing.T, svc *ApprovalService, requestID string) *model.ApprovalRequest {
	t.Helper()
	row, err := svc.Create(context.Background(), &model.CreateApprovalRequest{
		RequestID: requestID,
		Type:      model.TypeProcurement,
		ItemName:  utils.StringPtr("Oxygen Cylinder Type D"),
		Quantity:  utils.IntPtr(5),
	})
	require.NoError(t, err)
	return row
}

func TestCreateDefaults(t *testing.T) {
	svc := newTestService(t)

	row, err := svc.Create(context.Background(), &model.CreateApprovalRequest{
		RequestID: "REQ-100",
		Type:      model.TypeDispatch,
	})
	require.NoError(t, err)

	require.Equal(t, model.StatusPending, row.Status)
	require.Equal(t, 1, row.Quantity)
	require.False(t, row.RequestedAt.IsZero())
	require.Nil(t, row.ClinicallyApprovedAt)
	require.Nil(t, row.FulfilledAt)
	require.Nil(t, row.RejectedAt)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), &model.CreateApprovalRequest{
		Type: model.TypeProcurement,
	})
	require.Error(t, err)
	require.Equal(t, appErrors.CodeValidation, appErrors.CodeOf(err))

	_, err = svc.Create(context.Background(), &model.CreateApprovalRequest{
		RequestID: "REQ-101",
		Type:      model.RequestType("Transfer"),
	})
	require.Error(t, err)
	require.Equal(t, appErrors.CodeValidation, appErrors.CodeOf(err))
}

func TestUpdateStatusStampsExactlyOneTimestamp(t *testing.T) {
	svc := newTestService(t)
	row := createPending(t, svc, "REQ-110")

	approved, err := svc.UpdateStatus(context.Background(), row.ID, &model.UpdateStatusRequest{
		Status:             model.StatusClinicallyApproved,
		ClinicalApproverID: utils.UintPtr(3),
	})
	require.NoError(t, err)
	require.Equal(t, model.StatusClinicallyApproved, approved.Status)
	require.NotNil(t, approved.ClinicallyApprovedAt)
	require.Nil(t, approved.FulfilledAt)
	require.Nil(t, approved.RejectedAt)
	require.NotNil(t, approved.ClinicalApproverID)
	require.Equal(t, uint(3), *approved.ClinicalApproverID)

	fulfilled, err := svc.UpdateStatus(context.Background(), row.ID, &model.UpdateStatusRequest{
		Status:        model.StatusFulfilled,
		FulfilledByID: utils.UintPtr(2),
	})
	require.NoError(t, err)
	require.Equal(t, model.StatusFulfilled, fulfilled.Status)
	require.NotNil(t, fulfilled.FulfilledAt)
	require.Nil(t, fulfilled.RejectedAt)

	// Earlier stamp survives the second transition.
	require.NotNil(t, fulfilled.ClinicallyApprovedAt)
	require.Equal(t, approved.ClinicallyApprovedAt.Unix(), fulfilled.ClinicallyApprovedAt.Unix())
	require.NotNil(t, fulfilled.ClinicalApproverID)
	require.Equal(t, uint(3), *fulfilled.ClinicalApproverID)
}

func TestUpdateStatusRejectStampsRejectedAt(t *testing.T) {
	svc := newTestService(t)
	row := createPending(t, svc, "REQ-111")

	rejected, err := svc.UpdateStatus(context.Background(), row.ID, &model.UpdateStatusRequest{
		Status: model.StatusRejected,
		Notes:  utils.StringPtr("Insufficient budget this quarter"),
	})
	require.NoError(t, err)
	require.Equal(t, model.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectedAt)
	require.Nil(t, rejected.ClinicallyApprovedAt)
	require.Nil(t, rejected.FulfilledAt)
	require.NotNil(t, rejected.Notes)
	require.Equal(t, "Insufficient budget this quarter", *rejected.Notes)
}

func TestUpdateStatusProvidedOnlyMerge(t *testing.T) {
	svc := newTestService(t)
	row := createPending(t, svc, "REQ-112")

	_, err := svc.UpdateStatus(context.Background(), row.ID, &model.UpdateStatusRequest{
		Status:             model.StatusClinicallyApproved,
		ClinicalApproverID: utils.UintPtr(3),
		Notes:              utils.StringPtr("Approved for Q3 stock"),
	})
	require.NoError(t, err)

	// Omitting approver and notes on the next transition keeps them.
	fulfilled, err := svc.UpdateStatus(context.Background(), row.ID, &model.UpdateStatusRequest{
		Status: model.StatusFulfilled,
	})
	require.NoError(t, err)
	require.NotNil(t, fulfilled.ClinicalApproverID)
	require.Equal(t, uint(3), *fulfilled.ClinicalApproverID)
	require.NotNil(t, fulfilled.Notes)
	require.Equal(t, "Approved for Q3 stock", *fulfilled.Notes)
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	svc := newTestService(t)
	row := createPending(t, svc, "REQ-113")

	_, err := svc.UpdateStatus(context.Background(), row.ID, &model.UpdateStatusRequest{
		Status: model.StatusFulfilled,
	})
	require.Error(t, err)
	require.Equal(t, appErrors.CodeInvalidTransition, appErrors.CodeOf(err))

	// Nothing is written when the transition is refused.
	current, err := svc.Get(context.Background(), row.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusPending, current.Status)
	require.Nil(t, current.FulfilledAt)
}

func TestUpdateStatusTerminalStateRefusesTransitions(t *testing.T) {
	svc := newTestService(t)
	row := createPending(t, svc, "REQ-114")

	_, err := svc.UpdateStatus(context.Background(), row.ID, &model.UpdateStatusRequest{
		Status: model.StatusRejected,
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), row.ID, &model.UpdateStatusRequest{
		Status: model.StatusPending,
	})
	require.Error(t, err)
	require.Equal(t, appErrors.CodeInvalidTransition, appErrors.CodeOf(err))
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateStatus(context.Background(), 9999, &model.UpdateStatusRequest{
		Status: model.StatusClinicallyApproved,
	})
	require.Error(t, err)
	require.Equal(t, appErrors.CodeNotFound, appErrors.CodeOf(err))
}

func TestFullUpdateDoesNotStampTimestamps(t *testing.T) {
	svc := newTestService(t)
	row := createPending(t, svc, "REQ-115")

	status := model.StatusClinicallyApproved
	updated, err := svc.Update(context.Background(), row.ID, &model.UpdateApprovalRequest{
		RequestID: "REQ-115",
		Type:      model.TypeProcurement,
		ItemName:  utils.StringPtr("Oxygen Cylinder Type D"),
		Quantity:  utils.IntPtr(8),
		Status:    &status,
	})
	require.NoError(t, err)

	require.Equal(t, model.StatusClinicallyApproved, updated.Status)
	require.Equal(t, 8, updated.Quantity)
	require.Nil(t, updated.ClinicallyApprovedAt)
	require.Nil(t, updated.FulfilledAt)
	require.Nil(t, updated.RejectedAt)
}
