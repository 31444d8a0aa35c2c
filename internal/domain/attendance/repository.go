package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Upsert writes status for (employeeID, date), overwriting any existing
	// record for that key. It returns employee.ErrEmployeeNotFound when the
	// employee does not exist, in which case nothing is written.
	Upsert(ctx context.Context, employeeID string, date time.Time, status Status) (Record, error)

	// GetByEmployeeAndDate returns nil when the pair has never been marked.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// List returns records matching filter, date descending then creation order.
	List(ctx context.Context, filter Filter) ([]Record, error)

	// ListByEmployee returns every record of one employee, ascending by date.
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)

	// ListRecent returns up to limit records, most recently written first.
	ListRecent(ctx context.Context, limit int) ([]Record, error)
}
