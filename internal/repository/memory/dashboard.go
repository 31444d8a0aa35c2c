package memory

import (
	"context"
	"time"

	"github.com/Bhaumik-99/ethara-hrm/internal/domain/attendance"
	"github.com/Bhaumik-99/ethara-hrm/internal/domain/dashboard"
)

type dashboardRepository struct {
	store *Store
}

func NewDashboardRepository(store *Store) dashboard.DashboardRepository {
	return &dashboardRepository{store: store}
}

// GetSnapshotData implements dashboard.DashboardRepository.
func (d *dashboardRepository) GetSnapshotData(ctx context.Context, date time.Time, recentLimit int) (*dashboard.SnapshotData, error) {
	d.store.mu.RLock()
	defer d.store.mu.RUnlock()

	return &dashboard.SnapshotData{
		Employees: d.store.listEmployeesLocked(),
		Today:     d.store.listRecordsLocked(attendance.Filter{Date: &date}),
		Recent:    d.store.listRecentLocked(recentLimit),
	}, nil
}
