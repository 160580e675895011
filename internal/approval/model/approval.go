package model

import "time"

type RequestType string

const (
	TypeProcurement RequestType = "Procurement"
	TypeDispatch    RequestType = "Dispatch"
)

type Status string

const (
	StatusPending            Status = "Pending"
	StatusClinicallyApproved Status = "Clinically Approved"
	StatusFulfilled          Status = "Fulfilled"
	StatusRejected           Status = "Rejected"
)

type ApprovalRequest struct {
	ID                   uint        `json:"id" gorm:"primaryKey"`
	RequestID            string      `json:"request_id" gorm:"uniqueIndex;not null"`
	Type                 RequestType `json:"type" gorm:"not null"`
	RequestedBy          *uint       `json:"requested_by"`
	ItemID               *uint       `json:"item_id"`
	ItemName             *string     `json:"item_name"`
	Quantity             int         `json:"quantity"`
	Status               Status      `json:"status" gorm:"not null"`
	Notes                *string     `json:"notes"`
	ClinicalApproverID   *uint       `json:"clinical_approver_id"`
	FulfilledByID        *uint       `json:"fulfilled_by_id"`
	RequestedAt          time.Time   `json:"requested_at"`
	ClinicallyApprovedAt *time.Time  `json:"clinically_approved_at"`
	FulfilledAt          *time.Time  `json:"fulfilled_at"`
	RejectedAt           *time.Time  `json:"rejected_at"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

func (ApprovalRequest) TableName() string { return "approval_requests" }
