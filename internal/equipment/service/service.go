package service

import (
	"context"

	"medfleet-tracker/internal/equipment/model"
	"medfleet-tracker/internal/equipment/repository"
	appErrors "medfleet-tracker/pkg/errors"
	"medfleet-tracker/pkg/utils"
)

type EquipmentService struct {
	repo *repository.EquipmentRepository
}

func NewService(repo *repository.EquipmentRepository) *EquipmentService {
	return &EquipmentService{repo: repo}
}

func (s *EquipmentService) List(ctx context.Context) ([]model.Equipment, error) {
	return s.repo.List(ctx)
}

func (s *EquipmentService) Get(ctx context.Context, id uint) (*model.Equipment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EquipmentService) Create(ctx context.Context, req *model.CreateEquipmentRequest) (*model.Equipment, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "name and category are required", err)
	}

	row := &model.Equipment{
		Name:               req.Name,
		Category:           req.Category,
		SerialNumber:       req.SerialNumber,
		Manufacturer:       req.Manufacturer,
		Model:              req.Model,
		Location:           req.Location,
		Status:             model.StatusAvailable,
		Quantity:           utils.IntOr(req.Quantity, 1),
		Unit:               utils.StringOr(req.Unit, "unit"),
		ExpirationDate:     req.ExpirationDate,
		CalibrationDueDate: req.CalibrationDueDate,
		Notes:              req.Notes,
	}
	if req.Status != nil {
		row.Status = *req.Status
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, row.ID)
}

func (s *EquipmentService) Update(ctx context.Context, id uint, req *model.UpdateEquipmentRequest) (*model.Equipment, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "name and category are required", err)
	}

	row := &model.Equipment{
		Name:               req.Name,
		Category:           req.Category,
		SerialNumber:       req.SerialNumber,
		Manufacturer:       req.Manufacturer,
		Model:              req.Model,
		Location:           req.Location,
		Status:             model.StatusAvailable,
		Quantity:           utils.IntOr(req.Quantity, 1),
		Unit:               utils.StringOr(req.Unit, "unit"),
		ExpirationDate:     req.ExpirationDate,
		CalibrationDueDate: req.CalibrationDueDate,
		Notes:              req.Notes,
	}
	if req.Status != nil {
		row.Status = *req.Status
	}

	if err := s.repo.Update(ctx, id, row); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *EquipmentService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
