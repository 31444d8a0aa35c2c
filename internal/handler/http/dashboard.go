package http

import (
	"net/http"
	"time"

	"github.com/Bhaumik-99/ethara-hrm/internal/domain/attendance"
	"github.com/Bhaumik-99/ethara-hrm/internal/domain/dashboard"
	"github.com/Bhaumik-99/ethara-hrm/internal/handler/http/response"
	"github.com/Bhaumik-99/ethara-hrm/internal/pkg/validator"
)

type DashboardHandler interface {
	// GetDashboard returns the snapshot for today or for ?date=YYYY-MM-DD
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
	now              func() time.Time
}

// NewDashboardHandler builds the handler. now supplies "today" when the
// request does not name a date; nil means the UTC wall clock.
func NewDashboardHandler(dashboardService dashboard.DashboardService, now func() time.Time) DashboardHandler {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &dashboardHandlerImpl{dashboardService: dashboardService, now: now}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	today := h.now()
	if date := r.URL.Query().Get("date"); date != "" {
		parsed, ok := validator.IsValidDate(date)
		if !ok {
			response.HandleError(w, attendance.ErrInvalidDate)
			return
		}
		today = parsed
	}

	result, err := h.dashboardService.GetDashboard(r.Context(), today)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
