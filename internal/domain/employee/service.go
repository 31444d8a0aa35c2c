package employee

import "context"

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)
	GetEmployee(ctx context.Context, employeeID string) (EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
	ListDepartments(ctx context.Context) ([]string, error)
}
