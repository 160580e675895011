package utils

import (
	"errors"
	"net/http"

	appErrors "medfleet-tracker/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse writes the uniform failure body.
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// RespondError maps a service error onto the HTTP taxonomy: validation and
// transition failures are 400, missing rows 404, everything else (including
// unique-constraint violations) surfaces as 500 with the message verbatim.
func RespondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
		switch appErr.Code {
		case appErrors.CodeValidation, appErrors.CodeInvalidTransition:
			status = http.StatusBadRequest
		case appErrors.CodeNotFound:
			status = http.StatusNotFound
		}
	}

	ErrorResponse(c, status, message)
}
