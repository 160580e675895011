package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

type StockAudit struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	AuditID   string         `json:"audit_id" gorm:"uniqueIndex;not null"`
	Name      string         `json:"name" gorm:"not null"`
	CreatedBy *uint          `json:"created_by"`
	Status    Status         `json:"status" gorm:"not null"`
	Items     datatypes.JSON `json:"items"`
	Notes     *string        `json:"notes"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (StockAudit) TableName() string { return "stock_audits" }

// AuditItem is the line shape the client writes into the items document.
// The server never inspects it; it exists for the seed data and for
// callers that want a typed view.
type AuditItem struct {
	EquipmentID uint   `json:"equipment_id"`
	Name        string `json:"name"`
	Expected    int    `json:"expected"`
	Counted     *int   `json:"counted"`
	Variance    *int   `json:"variance"`
}

type CreateStockAuditRequest struct {
	AuditID   string          `json:"audit_id" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	CreatedBy *uint           `json:"created_by"`
	Status    *Status         `json:"status" validate:"omitempty,oneof=Pending 'In Progress' Completed"`
	Items     json.RawMessage `json:"items"`
	Notes     *string         `json:"notes"`
}

type UpdateStockAuditRequest struct {
	AuditID   string          `json:"audit_id" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	CreatedBy *uint           `json:"created_by"`
	Status    *Status         `json:"status"`
	Items     json.RawMessage `json:"items"`
	Notes     *string         `json:"notes"`
}
