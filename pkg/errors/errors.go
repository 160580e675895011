package errors

import (
	"errors"
	"fmt"
)

// Error codes shared across services. Handlers map them to HTTP statuses.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeStorage           = "STORAGE_ERROR"
)

var (
	ErrEquipmentNotFound = NewAppError(CodeNotFound, "Equipment not found", nil)
	ErrVehicleNotFound   = NewAppError(CodeNotFound, "Vehicle not found", nil)
	ErrApprovalNotFound  = NewAppError(CodeNotFound, "Approval request not found", nil)
	ErrStaffNotFound     = NewAppError(CodeNotFound, "Staff not found", nil)
	ErrShiftNotFound     = NewAppError(CodeNotFound, "Shift not found", nil)
	ErrAuditNotFound     = NewAppError(CodeNotFound, "Stock audit not found", nil)
)

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CodeOf extracts the application error code, or CodeStorage for any
// error that did not originate from a service/repository decision.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeStorage
}
