package model

import "gorm.io/datatypes"

type CreateVehicleRequest struct {
	VehicleID          string         `json:"vehicle_id" validate:"required"`
	RegistrationNumber *string        `json:"registration_number"`
	Model              *string        `json:"model"`
	Year               *int           `json:"year"`
	Status             *Status        `json:"status" validate:"omitempty,oneof=Active Maintenance Dispatched"`
	DriverID           *uint          `json:"driver_id"`
	OxygenLevel        *float64       `json:"oxygen_level" validate:"omitempty,min=0,max=100"`
	FuelLevel          *float64       `json:"fuel_level" validate:"omitempty,min=0,max=100"`
	LastMaintenance    *string        `json:"last_maintenance"`
	Equipment          datatypes.JSON `json:"equipment"`
	Notes              *string        `json:"notes"`
}

type UpdateVehicleRequest struct {
	VehicleID          string         `json:"vehicle_id" validate:"required"`
	RegistrationNumber *string        `json:"registration_number"`
	Model              *string        `json:"model"`
	Year               *int           `json:"year"`
	Status             *Status        `json:"status"`
	DriverID           *uint          `json:"driver_id"`
	OxygenLevel        *float64       `json:"oxygen_level"`
	FuelLevel          *float64       `json:"fuel_level"`
	LastMaintenance    *string        `json:"last_maintenance"`
	Equipment          datatypes.JSON `json:"equipment"`
	Notes              *string        `json:"notes"`
}
