package model

type CreateEquipmentRequest struct {
	Name               string   `json:"name" validate:"required"`
	Category           Category `json:"category" validate:"required,oneof=device consumable fixed_asset"`
	SerialNumber       *string  `json:"serial_number"`
	Manufacturer       *string  `json:"manufacturer"`
	Model              *string  `json:"model"`
	Location           *string  `json:"location"`
	Status             *Status  `json:"status" validate:"omitempty,oneof=Available 'In Use' Maintenance Retired"`
	Quantity           *int     `json:"quantity" validate:"omitempty,min=0"`
	Unit               *string  `json:"unit"`
	ExpirationDate     *string  `json:"expiration_date"`
	CalibrationDueDate *string  `json:"calibration_due_date"`
	Notes              *string  `json:"notes"`
}

// UpdateEquipmentRequest replaces every mutable field. Absent optional
// fields fall back to the same defaults as create; enum membership is not
// re-checked on update.
type UpdateEquipmentRequest struct {
	Name               string   `json:"name" validate:"required"`
	Category           Category `json:"category" validate:"required"`
	SerialNumber       *string  `json:"serial_number"`
	Manufacturer       *string  `json:"manufacturer"`
	Model              *string  `json:"model"`
	Location           *string  `json:"location"`
	Status             *Status  `json:"status"`
	Quantity           *int     `json:"quantity" validate:"omitempty,min=0"`
	Unit               *string  `json:"unit"`
	ExpirationDate     *string  `json:"expiration_date"`
	CalibrationDueDate *string  `json:"calibration_due_date"`
	Notes              *string  `json:"notes"`
}
