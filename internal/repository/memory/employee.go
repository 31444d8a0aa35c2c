package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/Bhaumik-99/ethara-hrm/internal/domain/employee"
	"github.com/google/uuid"
)

type employeeRepository struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepository{store: store}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	s := e.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.employees[newEmployee.EmployeeID]; exists {
		return employee.Employee{}, employee.ErrEmployeeIDExists
	}
	for _, existing := range s.employees {
		if existing.Email == newEmployee.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	if newEmployee.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to generate employee id: %w", err)
		}
		newEmployee.ID = id.String()
	}
	if newEmployee.CreatedAt.IsZero() {
		newEmployee.CreatedAt = s.now()
	}

	s.employees[newEmployee.EmployeeID] = newEmployee
	s.order = append(s.order, newEmployee.EmployeeID)
	return newEmployee, nil
}

// ExistsByEmployeeID implements employee.Directory.
func (e *employeeRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	e.store.mu.RLock()
	defer e.store.mu.RUnlock()

	_, exists := e.store.employees[employeeID]
	return exists, nil
}

// GetByEmployeeID implements employee.Directory.
func (e *employeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	e.store.mu.RLock()
	defer e.store.mu.RUnlock()

	emp, exists := e.store.employees[employeeID]
	if !exists {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

// ListAll implements employee.Directory.
func (e *employeeRepository) ListAll(ctx context.Context) ([]employee.Employee, error) {
	e.store.mu.RLock()
	defer e.store.mu.RUnlock()

	return e.store.listEmployeesLocked(), nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	e.store.mu.RLock()
	all := e.store.listEmployeesLocked()
	e.store.mu.RUnlock()

	var search string
	if filter.Search != nil {
		search = strings.ToLower(*filter.Search)
	}

	result := make([]employee.Employee, 0, len(all))
	for _, emp := range all {
		if filter.Department != nil && *filter.Department != "" && string(emp.Department) != *filter.Department {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(emp.FullName), search) &&
			!strings.Contains(strings.ToLower(emp.EmployeeID), search) &&
			!strings.Contains(strings.ToLower(emp.Email), search) {
			continue
		}
		result = append(result, emp)
	}

	// newest first
	slices.Reverse(result)
	return result, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepository) Delete(ctx context.Context, employeeID string) error {
	s := e.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.employees[employeeID]; !exists {
		return employee.ErrEmployeeNotFound
	}

	delete(s.employees, employeeID)
	s.order = slices.DeleteFunc(s.order, func(id string) bool { return id == employeeID })

	for key := range s.records {
		if key.employeeID == employeeID {
			delete(s.records, key)
		}
	}
	return nil
}

// ListDepartments implements employee.EmployeeRepository.
func (e *employeeRepository) ListDepartments(ctx context.Context) ([]string, error) {
	e.store.mu.RLock()
	defer e.store.mu.RUnlock()

	seen := make(map[string]struct{})
	departments := make([]string, 0)
	for _, emp := range e.store.employees {
		dept := string(emp.Department)
		if _, ok := seen[dept]; ok {
			continue
		}
		seen[dept] = struct{}{}
		departments = append(departments, dept)
	}
	sort.Strings(departments)
	return departments, nil
}
