package service

import (
	"context"

	"medfleet-tracker/internal/vehicle/model"
	"medfleet-tracker/internal/vehicle/repository"
	appErrors "medfleet-tracker/pkg/errors"
	"medfleet-tracker/pkg/utils"

	"gorm.io/datatypes"
)

type VehicleService struct {
	repo *repository.VehicleRepository
}

func NewService(repo *repository.VehicleRepository) *VehicleService {
	return &VehicleService{repo: repo}
}

func (s *VehicleService) List(ctx context.Context) ([]model.Vehicle, error) {
	return s.repo.List(ctx)
}

func (s *VehicleService) Get(ctx context.Context, id uint) (*model.Vehicle, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VehicleService) Create(ctx context.Context, req *model.CreateVehicleRequest) (*model.Vehicle, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "vehicle_id is required", err)
	}

	row := buildVehicle(req.VehicleID, req.RegistrationNumber, req.Model, req.Year, req.Status,
		req.DriverID, req.OxygenLevel, req.FuelLevel, req.LastMaintenance, req.Equipment, req.Notes)

	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, row.ID)
}

func (s *VehicleService) Update(ctx context.Context, id uint, req *model.UpdateVehicleRequest) (*model.Vehicle, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "vehicle_id is required", err)
	}

	row := buildVehicle(req.VehicleID, req.RegistrationNumber, req.Model, req.Year, req.Status,
		req.DriverID, req.OxygenLevel, req.FuelLevel, req.LastMaintenance, req.Equipment, req.Notes)

	if err := s.repo.Update(ctx, id, row); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *VehicleService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func buildVehicle(vehicleID string, registration, vmodel *string, year *int, status *model.Status,
	driverID *uint, oxygen, fuel *float64, lastMaintenance *string, equipment datatypes.JSON, notes *string) *model.Vehicle {
	row := &model.Vehicle{
		VehicleID:          vehicleID,
		RegistrationNumber: registration,
		Model:              vmodel,
		Year:               year,
		Status:             model.StatusActive,
		DriverID:           driverID,
		OxygenLevel:        utils.Float64Or(oxygen, 100),
		FuelLevel:          utils.Float64Or(fuel, 100),
		LastMaintenance:    lastMaintenance,
		Equipment:          equipment,
		Notes:              notes,
	}
	if status != nil {
		row.Status = *status
	}
	if row.Equipment == nil {
		row.Equipment = datatypes.JSON("[]")
	}
	return row
}
