package attendance

import (
	"context"
)

type AttendanceService interface {
	// Mark records status for an employee on a date (upsert).
	Mark(ctx context.Context, req MarkRequest) (RecordResponse, error)

	// List returns ledger records matching the request filter.
	List(ctx context.Context, req ListRequest) ([]RecordResponse, error)

	// GetByEmployee returns one employee's records ascending by date.
	GetByEmployee(ctx context.Context, employeeID string) ([]RecordResponse, error)

	// Summarize computes present/absent totals and attendance rate.
	Summarize(ctx context.Context, employeeID string) (SummaryResponse, error)
}
