package employee

import (
	"strings"
	"time"

	"github.com/Bhaumik-99/ethara-hrm/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" yaml:"employee_id"`
	FullName   string `json:"full_name" yaml:"full_name"`
	Email      string `json:"email" yaml:"email"`
	Department string `json:"department" yaml:"department"`
}

// Validate trims every field in place and checks the request.
func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Department = strings.TrimSpace(r.Department)

	errs.Required("employee_id", r.EmployeeID, "Employee ID is required")
	errs.Required("full_name", r.FullName, "Full Name is required")

	if errs.Required("email", r.Email, "Email is required") && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Invalid email format",
		})
	}

	if errs.Required("department", r.Department, "Department is required") && !Department(r.Department).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must be one of: " + strings.Join(departmentNames(), ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeFilter struct {
	Department *string `json:"department,omitempty"`
	Search     *string `json:"search,omitempty"` // case-insensitive match on full_name, employee_id, email
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: string(e.Department),
		CreatedAt:  e.CreatedAt.UTC().Format(time.RFC3339),
	}
}
