package service

import (
	"context"
	"time"

	"medfleet-tracker/internal/approval/lifecycle"
	"medfleet-tracker/internal/approval/model"
	"medfleet-tracker/internal/approval/repository"
	appErrors "medfleet-tracker/pkg/errors"
	"medfleet-tracker/pkg/utils"
)

type ApprovalService struct {
	repo *repository.ApprovalRepository
}

func NewService(repo *repository.ApprovalRepository) *ApprovalService {
	return &ApprovalService{repo: repo}
}

func (s *ApprovalService) List(ctx context.Context) ([]model.ApprovalRequest, error) {
	return s.repo.List(ctx)
}

func (s *ApprovalService) Get(ctx context.Context, id uint) (*model.ApprovalRequest, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ApprovalService) Create(ctx context.Context, req *model.CreateApprovalRequest) (*model.ApprovalRequest, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "request_id and type are required", err)
	}

	row := &model.ApprovalRequest{
		RequestID:   req.RequestID,
		Type:        req.Type,
		RequestedBy: req.RequestedBy,
		ItemID:      req.ItemID,
		ItemName:    req.ItemName,
		Quantity:    utils.IntOr(req.Quantity, 1),
		Status:      model.StatusPending,
		Notes:       req.Notes,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, row.ID)
}

// Update replaces all fields including status but never stamps the
// transition timestamps; that is the status endpoint's job.
func (s *ApprovalService) Update(ctx context.Context, id uint, req *model.UpdateApprovalRequest) (*model.ApprovalRequest, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "request_id and type are required", err)
	}

	row := &model.ApprovalRequest{
		RequestID:          req.RequestID,
		Type:               req.Type,
		RequestedBy:        req.RequestedBy,
		ItemID:             req.ItemID,
		ItemName:           req.ItemName,
		Quantity:           utils.IntOr(req.Quantity, 1),
		Status:             model.StatusPending,
		Notes:              req.Notes,
		ClinicalApproverID: req.ClinicalApproverID,
		FulfilledByID:      req.FulfilledByID,
	}
	if req.Status != nil {
		row.Status = *req.Status
	}

	if err := s.repo.Update(ctx, id, row); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

// UpdateStatus applies a lifecycle transition. Exactly one timestamp is
// stamped per transition and previously stamped timestamps are left as
// they are. Approver, fulfiller and notes are merged only when provided.
func (s *ApprovalService) UpdateStatus(ctx context.Context, id uint, req *model.UpdateStatusRequest) (*model.ApprovalRequest, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "status is required", err)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.ValidateStatusTransition(existing.Status, req.Status); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status": req.Status,
	}

	now := time.Now()
	switch req.Status {
	case model.StatusClinicallyApproved:
		updates["clinically_approved_at"] = now
	case model.StatusFulfilled:
		updates["fulfilled_at"] = now
	case model.StatusRejected:
		updates["rejected_at"] = now
	}

	if req.ClinicalApproverID != nil {
		updates["clinical_approver_id"] = *req.ClinicalApproverID
	}
	if req.FulfilledByID != nil {
		updates["fulfilled_by_id"] = *req.FulfilledByID
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if err := s.repo.UpdateStatus(ctx, id, updates); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *ApprovalService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
