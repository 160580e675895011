package service

import (
	"context"

	"medfleet-tracker/internal/staff/model"
	"medfleet-tracker/internal/staff/repository"
	appErrors "medfleet-tracker/pkg/errors"
	"medfleet-tracker/pkg/utils"
)

type StaffService struct {
	repo *repository.StaffRepository
}

func NewService(repo *repository.StaffRepository) *StaffService {
	return &StaffService{repo: repo}
}

func (s *StaffService) List(ctx context.Context) ([]model.Staff, error) {
	return s.repo.List(ctx)
}

func (s *StaffService) Get(ctx context.Context, id uint) (*model.Staff, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *StaffService) Create(ctx context.Context, req *model.CreateStaffRequest) (*model.Staff, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "staff_id, name, and role are required", err)
	}

	row := &model.Staff{
		StaffID:           req.StaffID,
		Name:              req.Name,
		Email:             req.Email,
		Role:              req.Role,
		Phone:             req.Phone,
		AssignedVehicleID: req.AssignedVehicleID,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, row.ID)
}

func (s *StaffService) Update(ctx context.Context, id uint, req *model.UpdateStaffRequest) (*model.Staff, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "staff_id, name, and role are required", err)
	}

	row := &model.Staff{
		StaffID:           req.StaffID,
		Name:              req.Name,
		Email:             req.Email,
		Role:              req.Role,
		Phone:             req.Phone,
		AssignedVehicleID: req.AssignedVehicleID,
	}

	if err := s.repo.Update(ctx, id, row); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *StaffService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
