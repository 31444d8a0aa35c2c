package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Bhaumik-99/ethara-hrm/internal/domain/attendance"
	"github.com/Bhaumik-99/ethara-hrm/internal/domain/employee"
	"github.com/Bhaumik-99/ethara-hrm/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Status must be Present or Absent", nil)
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Invalid date format. Use YYYY-MM-DD", nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
