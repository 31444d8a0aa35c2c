package employee

import "time"

type Employee struct {
	ID         string
	EmployeeID string
	FullName   string
	Email      string
	Department Department
	CreatedAt  time.Time
}

type Department string

const (
	DepartmentEngineering Department = "Engineering"
	DepartmentMarketing   Department = "Marketing"
	DepartmentSales       Department = "Sales"
	DepartmentHR          Department = "HR"
	DepartmentFinance     Department = "Finance"
	DepartmentOperations  Department = "Operations"
	DepartmentDesign      Department = "Design"
	DepartmentProduct     Department = "Product"
)

// Departments lists every department an employee may belong to.
var Departments = []Department{
	DepartmentEngineering,
	DepartmentMarketing,
	DepartmentSales,
	DepartmentHR,
	DepartmentFinance,
	DepartmentOperations,
	DepartmentDesign,
	DepartmentProduct,
}

func (d Department) IsValid() bool {
	for _, dept := range Departments {
		if d == dept {
			return true
		}
	}
	return false
}

func departmentNames() []string {
	names := make([]string, len(Departments))
	for i, d := range Departments {
		names[i] = string(d)
	}
	return names
}
