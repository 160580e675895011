package model

import "time"

type ShiftType string

const (
	TypeDay    ShiftType = "Day"
	TypeNight  ShiftType = "Night"
	TypeOnCall ShiftType = "On-Call"
)

type Shift struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ShiftID   string    `json:"shift_id" gorm:"uniqueIndex;not null"`
	StaffID   uint      `json:"staff_id" gorm:"not null"`
	VehicleID *string   `json:"vehicle_id"`
	StartTime string    `json:"start_time" gorm:"not null"`
	EndTime   string    `json:"end_time" gorm:"not null"`
	ShiftType ShiftType `json:"shift_type" gorm:"not null"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Shift) TableName() string { return "shifts" }

// ShiftWithStaff denormalizes the referenced staff row at read time. The
// reference is soft: a dangling staff_id leaves the joined fields null.
type ShiftWithStaff struct {
	Shift     `gorm:"embedded"`
	StaffName *string `json:"staff_name"`
	StaffRole *string `json:"staff_role"`
}

type CreateShiftRequest struct {
	ShiftID   string    `json:"shift_id" validate:"required"`
	StaffID   uint      `json:"staff_id" validate:"required"`
	VehicleID *string   `json:"vehicle_id"`
	StartTime string    `json:"start_time" validate:"required"`
	EndTime   string    `json:"end_time" validate:"required"`
	ShiftType ShiftType `json:"shift_type" validate:"required,oneof=Day Night On-Call"`
	Notes     *string   `json:"notes"`
}

type UpdateShiftRequest struct {
	ShiftID   string    `json:"shift_id" validate:"required"`
	StaffID   uint      `json:"staff_id" validate:"required"`
	VehicleID *string   `json:"vehicle_id"`
	StartTime string    `json:"start_time" validate:"required"`
	EndTime   string    `json:"end_time" validate:"required"`
	ShiftType ShiftType `json:"shift_type" validate:"required"`
	Notes     *string   `json:"notes"`
}
