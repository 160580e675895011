package model

import "time"

type Role string

const (
	RoleParamedic        Role = "Paramedic"
	RoleDriver           Role = "Driver"
	RoleInventoryManager Role = "Inventory Manager"
	RoleClinicalApprover Role = "Clinical Approver"
	RoleAdmin            Role = "Admin"
)

type Staff struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	StaffID           string    `json:"staff_id" gorm:"uniqueIndex;not null"`
	Name              string    `json:"name" gorm:"not null"`
	Email             *string   `json:"email"`
	Role              Role      `json:"role" gorm:"not null"`
	Phone             *string   `json:"phone"`
	AssignedVehicleID *string   `json:"assigned_vehicle_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Staff) TableName() string { return "staff" }

type CreateStaffRequest struct {
	StaffID           string  `json:"staff_id" validate:"required"`
	Name              string  `json:"name" validate:"required"`
	Email             *string `json:"email"`
	Role              Role    `json:"role" validate:"required,oneof=Paramedic Driver 'Inventory Manager' 'Clinical Approver' Admin"`
	Phone             *string `json:"phone"`
	AssignedVehicleID *string `json:"assigned_vehicle_id"`
}

type UpdateStaffRequest struct {
	StaffID           string  `json:"staff_id" validate:"required"`
	Name              string  `json:"name" validate:"required"`
	Email             *string `json:"email"`
	Role              Role    `json:"role" validate:"required"`
	Phone             *string `json:"phone"`
	AssignedVehicleID *string `json:"assigned_vehicle_id"`
}
