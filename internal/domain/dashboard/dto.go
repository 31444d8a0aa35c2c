package dashboard

// DashboardResponse is the roster-wide snapshot for one reference date.
type DashboardResponse struct {
	Date           string            `json:"date"` // Format: "YYYY-MM-DD"
	TotalEmployees int               `json:"total_employees"`
	PresentToday   int               `json:"present_today"`
	AbsentToday    int               `json:"absent_today"`
	UnmarkedToday  int               `json:"unmarked_today"` // never negative
	Departments    []DepartmentCount `json:"departments"`    // first-seen order
	RecentActivity []ActivityItem    `json:"recent_activity"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// ActivityItem is a recently written attendance record joined with the employee name.
type ActivityItem struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	MarkedAt   string `json:"marked_at"`
}
