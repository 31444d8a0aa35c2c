package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/Bhaumik-99/ethara-hrm/internal/domain/attendance"
	"github.com/Bhaumik-99/ethara-hrm/internal/domain/dashboard"
	"github.com/Bhaumik-99/ethara-hrm/internal/pkg/metrics"
	"github.com/Bhaumik-99/ethara-hrm/internal/pkg/validator"
)

// DefaultRecentActivityLimit is the size of the recent activity feed.
const DefaultRecentActivityLimit = 10

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	recentLimit int
}

func NewDashboardService(repo dashboard.DashboardRepository, recentLimit int) dashboard.DashboardService {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentActivityLimit
	}
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		recentLimit:         recentLimit,
	}
}

// GetDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, today time.Time) (*dashboard.DashboardResponse, error) {
	start := time.Now()
	defer func() { metrics.ObserveSnapshot(time.Since(start)) }()

	today = attendance.NormalizeDate(today)

	data, err := s.GetSnapshotData(ctx, today, s.recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard data: %w", err)
	}

	return BuildSnapshot(data, today), nil
}

// BuildSnapshot derives the dashboard from one consistent read. It never
// fails: an empty roster or ledger yields zero counts and empty lists.
func BuildSnapshot(data *dashboard.SnapshotData, today time.Time) *dashboard.DashboardResponse {
	resp := &dashboard.DashboardResponse{
		Date:           today.Format(validator.DateLayout),
		TotalEmployees: len(data.Employees),
		Departments:    make([]dashboard.DepartmentCount, 0),
		RecentActivity: make([]dashboard.ActivityItem, 0, len(data.Recent)),
	}

	for _, r := range data.Today {
		switch r.Status {
		case attendance.StatusPresent:
			resp.PresentToday++
		case attendance.StatusAbsent:
			resp.AbsentToday++
		}
	}
	resp.UnmarkedToday = max(0, resp.TotalEmployees-resp.PresentToday-resp.AbsentToday)

	// Departments keep the order in which the directory first yields them.
	names := make(map[string]string, len(data.Employees))
	index := make(map[string]int)
	for _, emp := range data.Employees {
		names[emp.EmployeeID] = emp.FullName

		dept := string(emp.Department)
		i, seen := index[dept]
		if !seen {
			i = len(resp.Departments)
			index[dept] = i
			resp.Departments = append(resp.Departments, dashboard.DepartmentCount{Department: dept})
		}
		resp.Departments[i].Count++
	}

	for _, r := range data.Recent {
		fullName, ok := names[r.EmployeeID]
		if !ok {
			continue // employee removed from the directory
		}
		resp.RecentActivity = append(resp.RecentActivity, dashboard.ActivityItem{
			EmployeeID: r.EmployeeID,
			FullName:   fullName,
			Date:       r.Date.Format(validator.DateLayout),
			Status:     string(r.Status),
			MarkedAt:   r.MarkedAt.UTC().Format(time.RFC3339),
		})
	}

	return resp
}
