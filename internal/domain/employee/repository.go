package employee

import "context"

// Directory is the read-only view of the roster that attendance and
// dashboard code joins against. ListAll returns employees in creation order.
type Directory interface {
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)
	ListAll(ctx context.Context) ([]Employee, error)
}

type EmployeeRepository interface {
	Directory
	// Create returns ErrEmployeeIDExists or ErrEmailExists on a uniqueness conflict.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	// List returns matching employees, newest first.
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	// Delete removes the employee together with all of its attendance records.
	Delete(ctx context.Context, employeeID string) error
	ListDepartments(ctx context.Context) ([]string, error)
}
