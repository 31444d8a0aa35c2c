package dashboard

import (
	"context"
	"time"

	"github.com/Bhaumik-99/ethara-hrm/internal/domain/attendance"
	"github.com/Bhaumik-99/ethara-hrm/internal/domain/employee"
)

// SnapshotData is every input the dashboard needs, read in one consistent pass.
type SnapshotData struct {
	Employees []employee.Employee // directory order
	Today     []attendance.Record
	Recent    []attendance.Record // newest first
}

type DashboardRepository interface {
	// GetSnapshotData reads the roster, the records for date and the latest
	// recentLimit records without any write interleaving between them.
	GetSnapshotData(ctx context.Context, date time.Time, recentLimit int) (*SnapshotData, error)
}
