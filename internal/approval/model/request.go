package model

type CreateApprovalRequest struct {
	RequestID   string      `json:"request_id" validate:"required"`
	Type        RequestType `json:"type" validate:"required,oneof=Procurement Dispatch"`
	RequestedBy *uint       `json:"requested_by"`
	ItemID      *uint       `json:"item_id"`
	ItemName    *string     `json:"item_name"`
	Quantity    *int        `json:"quantity" validate:"omitempty,min=0"`
	Notes       *string     `json:"notes"`
}

type UpdateApprovalRequest struct {
	RequestID          string      `json:"request_id" validate:"required"`
	Type               RequestType `json:"type" validate:"required"`
	RequestedBy        *uint       `json:"requested_by"`
	ItemID             *uint       `json:"item_id"`
	ItemName           *string     `json:"item_name"`
	Quantity           *int        `json:"quantity" validate:"omitempty,min=0"`
	Status             *Status     `json:"status"`
	Notes              *string     `json:"notes"`
	ClinicalApproverID *uint       `json:"clinical_approver_id"`
	FulfilledByID      *uint       `json:"fulfilled_by_id"`
}

// UpdateStatusRequest drives the lifecycle endpoint. Approver, fulfiller and
// notes follow a provided-only merge: nil leaves the stored value untouched.
type UpdateStatusRequest struct {
	Status             Status  `json:"status" validate:"required,oneof=Pending 'Clinically Approved' Fulfilled Rejected"`
	ClinicalApproverID *uint   `json:"clinical_approver_id"`
	FulfilledByID      *uint   `json:"fulfilled_by_id"`
	Notes              *string `json:"notes"`
}
