package model

import (
	"time"

	"gorm.io/datatypes"
)

type Status string

const (
	StatusActive      Status = "Active"
	StatusMaintenance Status = "Maintenance"
	StatusDispatched  Status = "Dispatched"
)

type Vehicle struct {
	ID                 uint           `json:"id" gorm:"primaryKey"`
	VehicleID          string         `json:"vehicle_id" gorm:"uniqueIndex;not null"`
	RegistrationNumber *string        `json:"registration_number"`
	Model              *string        `json:"model"`
	Year               *int           `json:"year"`
	Status             Status         `json:"status" gorm:"not null"`
	DriverID           *uint          `json:"driver_id"`
	OxygenLevel        float64        `json:"oxygen_level"`
	FuelLevel          float64        `json:"fuel_level"`
	LastMaintenance    *string        `json:"last_maintenance"`
	Equipment          datatypes.JSON `json:"equipment"`
	Notes              *string        `json:"notes"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

func (Vehicle) TableName() string { return "vehicles" }
