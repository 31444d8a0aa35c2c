package attendance

import (
	"strings"
	"time"

	"github.com/Bhaumik-99/ethara-hrm/internal/pkg/validator"
)

var validStatuses = []string{string(StatusPresent), string(StatusAbsent)}

type MarkRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`   // YYYY-MM-DD
	Status     string `json:"status"` // Present, Absent
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Date = strings.TrimSpace(r.Date)
	r.Status = strings.TrimSpace(r.Status)

	errs.Required("employee_id", r.EmployeeID, "Employee ID is required")

	if errs.Required("date", r.Date, "Date is required") {
		if _, valid := validator.IsValidDate(r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "Invalid date format. Use YYYY-MM-DD",
			})
		}
	}

	if errs.Required("status", r.Status, "Status is required") && !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "Status must be Present or Absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListRequest carries loosely-typed list parameters from the transport layer.
type ListRequest struct {
	EmployeeID string `json:"employee_id,omitempty"`
	Date       string `json:"date,omitempty"` // YYYY-MM-DD
}

func (r *ListRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Date = strings.TrimSpace(r.Date)

	if r.Date != "" {
		if _, valid := validator.IsValidDate(r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToFilter converts a validated request into a ledger filter.
func (r ListRequest) ToFilter() Filter {
	var f Filter
	if r.EmployeeID != "" {
		id := r.EmployeeID
		f.EmployeeID = &id
	}
	if date, ok := validator.IsValidDate(r.Date); ok {
		f.Date = &date
	}
	return f
}

type RecordResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	MarkedAt   string `json:"marked_at"`
}

func NewRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Date:       r.Date.Format(validator.DateLayout),
		Status:     string(r.Status),
		MarkedAt:   r.MarkedAt.UTC().Format(time.RFC3339),
	}
}

type SummaryResponse struct {
	EmployeeID     string `json:"employee_id"`
	FullName       string `json:"full_name"`
	TotalDays      int    `json:"total_days"`
	TotalPresent   int    `json:"total_present"`
	TotalAbsent    int    `json:"total_absent"`
	AttendanceRate int    `json:"attendance_rate"` // percent, rounded half-up
}
