package postgresql

import (
	"context"
	"time"

	"github.com/Bhaumik-99/ethara-hrm/internal/domain/attendance"
	"github.com/Bhaumik-99/ethara-hrm/internal/domain/dashboard"
	"github.com/Bhaumik-99/ethara-hrm/internal/domain/employee"
	"github.com/Bhaumik-99/ethara-hrm/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db          *database.DB
	employees   employee.Directory
	attendances attendance.AttendanceRepository
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{
		db:          db,
		employees:   NewEmployeeRepository(db),
		attendances: NewAttendanceRepository(db),
	}
}

// GetSnapshotData runs all three reads in one REPEATABLE READ transaction so
// the counts and the activity feed come from the same database snapshot.
func (r *dashboardRepositoryImpl) GetSnapshotData(ctx context.Context, date time.Time, recentLimit int) (*dashboard.SnapshotData, error) {
	var data dashboard.SnapshotData

	err := WithTransaction(ctx, r.db, ReadOnlySnapshot, func(ctx context.Context) error {
		var err error
		if data.Employees, err = r.employees.ListAll(ctx); err != nil {
			return err
		}
		if data.Today, err = r.attendances.List(ctx, attendance.Filter{Date: &date}); err != nil {
			return err
		}
		if data.Recent, err = r.attendances.ListRecent(ctx, recentLimit); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &data, nil
}
