package model

import (
	"time"

	"gorm.io/datatypes"
)

type Category string

const (
	CategoryDevice     Category = "device"
	CategoryConsumable Category = "consumable"
	CategoryFixedAsset Category = "fixed_asset"
)

type Status string

const (
	StatusAvailable   Status = "Available"
	StatusInUse       Status = "In Use"
	StatusMaintenance Status = "Maintenance"
	StatusRetired     Status = "Retired"
)

type Equipment struct {
	ID                 uint           `json:"id" gorm:"primaryKey"`
	Name               string         `json:"name" gorm:"not null"`
	Category           Category       `json:"category" gorm:"not null"`
	SerialNumber       *string        `json:"serial_number"`
	Manufacturer       *string        `json:"manufacturer"`
	Model              *string        `json:"model"`
	Location           *string        `json:"location"`
	Status             Status         `json:"status" gorm:"not null"`
	Quantity           int            `json:"quantity"`
	Unit               string         `json:"unit"`
	ExpirationDate     *string        `json:"expiration_date"`
	CalibrationDueDate *string        `json:"calibration_due_date"`
	MaintenanceHistory datatypes.JSON `json:"maintenance_history"`
	Notes              *string        `json:"notes"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

func (Equipment) TableName() string { return "equipment" }
