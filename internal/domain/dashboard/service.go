package dashboard

import (
	"context"
	"time"
)

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard computes the snapshot for the caller-supplied reference date.
	GetDashboard(ctx context.Context, today time.Time) (*DashboardResponse, error)
}
