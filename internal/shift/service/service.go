package service

import (
	"context"

	"medfleet-tracker/internal/shift/model"
	"medfleet-tracker/internal/shift/repository"
	appErrors "medfleet-tracker/pkg/errors"
	"medfleet-tracker/pkg/utils"
)

type ShiftService struct {
	repo *repository.ShiftRepository
}

func NewService(repo *repository.ShiftRepository) *ShiftService {
	return &ShiftService{repo: repo}
}

func (s *ShiftService) List(ctx context.Context) ([]model.ShiftWithStaff, error) {
	return s.repo.List(ctx)
}

func (s *ShiftService) Get(ctx context.Context, id uint) (*model.ShiftWithStaff, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ShiftService) Create(ctx context.Context, req *model.CreateShiftRequest) (*model.ShiftWithStaff, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation,
			"shift_id, staff_id, start_time, end_time, and shift_type are required", err)
	}

	row := &model.Shift{
		ShiftID:   req.ShiftID,
		StaffID:   req.StaffID,
		VehicleID: req.VehicleID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		ShiftType: req.ShiftType,
		Notes:     req.Notes,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, row.ID)
}

func (s *ShiftService) Update(ctx context.Context, id uint, req *model.UpdateShiftRequest) (*model.ShiftWithStaff, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation,
			"shift_id, staff_id, start_time, end_time, and shift_type are required", err)
	}

	row := &model.Shift{
		ShiftID:   req.ShiftID,
		StaffID:   req.StaffID,
		VehicleID: req.VehicleID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		ShiftType: req.ShiftType,
		Notes:     req.Notes,
	}

	if err := s.repo.Update(ctx, id, row); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *ShiftService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
