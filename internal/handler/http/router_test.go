package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Bhaumik-99/ethara-hrm/internal/domain/attendance"
	"github.com/Bhaumik-99/ethara-hrm/internal/domain/dashboard"
	"github.com/Bhaumik-99/ethara-hrm/internal/domain/employee"
	"github.com/Bhaumik-99/ethara-hrm/internal/repository"
	attendanceService "github.com/Bhaumik-99/ethara-hrm/internal/service/attendance"
	dashboardService "github.com/Bhaumik-99/ethara-hrm/internal/service/dashboard"
	employeeService "github.com/Bhaumik-99/ethara-hrm/internal/service/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta *struct {
		TotalItems int `json:"total_items"`
	} `json:"meta"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	repos := repository.NewMemory()
	today := func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

	router := NewRouter(
		RouterConfig{LogLevel: slog.LevelError},
		slog.New(slog.NewJSONHandler(io.Discard, nil)),
		NewEmployeeHandler(employeeService.NewEmployeeService(repos.Employee)),
		NewAttendanceHandler(attendanceService.NewAttendanceService(repos.Attendance, repos.Employee)),
		NewDashboardHandler(dashboardService.NewDashboardService(repos.Dashboard, dashboardService.DefaultRecentActivityLimit), today),
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func do(t *testing.T, server *httptest.Server, method, path string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func createEmployee(t *testing.T, server *httptest.Server, id, name, dept string) {
	t.Helper()
	status, _ := do(t, server, http.MethodPost, "/api/employees", employee.CreateEmployeeRequest{
		EmployeeID: id,
		FullName:   name,
		Email:      id + "@example.com",
		Department: dept,
	})
	require.Equal(t, http.StatusCreated, status)
}

func markAttendance(t *testing.T, server *httptest.Server, id, date, state string) (int, envelope) {
	t.Helper()
	return do(t, server, http.MethodPost, "/api/attendance", attendance.MarkRequest{
		EmployeeID: id,
		Date:       date,
		Status:     state,
	})
}

// ===== EMPLOYEE HANDLER TESTS =====

func TestEmployeeHandler_CreateAndGet(t *testing.T) {
	server := newTestServer(t)
	createEmployee(t, server, "EMP001", "Ada Lovelace", "Engineering")

	status, env := do(t, server, http.MethodGet, "/api/employees/EMP001", nil)
	require.Equal(t, http.StatusOK, status)

	var got employee.EmployeeResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Ada Lovelace", got.FullName)

	status, env = do(t, server, http.MethodGet, "/api/employees", nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 1, env.Meta.TotalItems)
}

func TestEmployeeHandler_Create_Errors(t *testing.T) {
	server := newTestServer(t)
	createEmployee(t, server, "EMP001", "Ada Lovelace", "Engineering")

	status, env := do(t, server, http.MethodPost, "/api/employees", employee.CreateEmployeeRequest{
		EmployeeID: "EMP002",
		FullName:   "Grace Hopper",
		Email:      "bad-email",
		Department: "Engineering",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "email")

	status, env = do(t, server, http.MethodPost, "/api/employees", employee.CreateEmployeeRequest{
		EmployeeID: "EMP001",
		FullName:   "Someone Else",
		Email:      "someone@example.com",
		Department: "Sales",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}

func TestEmployeeHandler_Delete(t *testing.T) {
	server := newTestServer(t)
	createEmployee(t, server, "EMP001", "Ada Lovelace", "Engineering")
	status, _ := markAttendance(t, server, "EMP001", "2024-06-01", "Present")
	require.Equal(t, http.StatusOK, status)

	status, _ = do(t, server, http.MethodDelete, "/api/employees/EMP001", nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = do(t, server, http.MethodDelete, "/api/employees/EMP001", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, env := do(t, server, http.MethodGet, "/api/attendance", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, env.Meta.TotalItems)
}

// ===== ATTENDANCE HANDLER TESTS =====

func TestAttendanceHandler_Mark(t *testing.T) {
	server := newTestServer(t)
	createEmployee(t, server, "EMP001", "Ada Lovelace", "Engineering")

	status, env := markAttendance(t, server, "EMP001", "2024-06-01", "Present")
	require.Equal(t, http.StatusOK, status)

	var record attendance.RecordResponse
	require.NoError(t, json.Unmarshal(env.Data, &record))
	assert.Equal(t, "Present", record.Status)

	status, env = markAttendance(t, server, "EMP001", "2024-06-01", "Late")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, env.Error.Details, "status")

	status, _ = markAttendance(t, server, "EMP999", "2024-06-01", "Present")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAttendanceHandler_Mark_MalformedBody(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/api/attendance", "application/json", bytes.NewBufferString("{"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAttendanceHandler_ListAndSummary(t *testing.T) {
	server := newTestServer(t)
	createEmployee(t, server, "EMP001", "Ada Lovelace", "Engineering")
	createEmployee(t, server, "EMP002", "Grace Hopper", "Engineering")

	for _, m := range []struct{ id, date, state string }{
		{"EMP001", "2024-06-01", "Present"},
		{"EMP001", "2024-06-02", "Present"},
		{"EMP001", "2024-06-03", "Absent"},
		{"EMP001", "2024-06-04", "Present"},
		{"EMP002", "2024-06-01", "Absent"},
	} {
		status, _ := markAttendance(t, server, m.id, m.date, m.state)
		require.Equal(t, http.StatusOK, status)
	}

	status, env := do(t, server, http.MethodGet, "/api/attendance?date=2024-06-01", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, env.Meta.TotalItems)

	status, env = do(t, server, http.MethodGet, "/api/attendance?date_filter=2024-06-01&employee_id=EMP002", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, env.Meta.TotalItems)

	status, _ = do(t, server, http.MethodGet, "/api/attendance?date=yesterday", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, env = do(t, server, http.MethodGet, "/api/employees/EMP001/attendance", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 4, env.Meta.TotalItems)

	status, env = do(t, server, http.MethodGet, "/api/attendance/summary/EMP001", nil)
	require.Equal(t, http.StatusOK, status)

	var summary attendance.SummaryResponse
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, 4, summary.TotalDays)
	assert.Equal(t, 75, summary.AttendanceRate)

	status, _ = do(t, server, http.MethodGet, "/api/attendance/summary/EMP999", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

// ===== DASHBOARD HANDLER TESTS =====

func TestDashboardHandler_GetDashboard(t *testing.T) {
	server := newTestServer(t)
	createEmployee(t, server, "EMP001", "Ada Lovelace", "Engineering")
	createEmployee(t, server, "EMP002", "Grace Hopper", "Engineering")
	createEmployee(t, server, "EMP003", "Don Draper", "Sales")

	_, _ = markAttendance(t, server, "EMP001", "2024-06-01", "Present")
	_, _ = markAttendance(t, server, "EMP002", "2024-06-01", "Absent")
	_, _ = markAttendance(t, server, "EMP003", "2024-06-02", "Present")

	// today comes from the injected clock
	status, env := do(t, server, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, status)

	var snapshot dashboard.DashboardResponse
	require.NoError(t, json.Unmarshal(env.Data, &snapshot))
	assert.Equal(t, "2024-06-01", snapshot.Date)
	assert.Equal(t, 3, snapshot.TotalEmployees)
	assert.Equal(t, 1, snapshot.PresentToday)
	assert.Equal(t, 1, snapshot.AbsentToday)
	assert.Equal(t, 1, snapshot.UnmarkedToday)
	assert.Equal(t, []dashboard.DepartmentCount{
		{Department: "Engineering", Count: 2},
		{Department: "Sales", Count: 1},
	}, snapshot.Departments)
	assert.Len(t, snapshot.RecentActivity, 3)

	status, env = do(t, server, http.MethodGet, "/api/dashboard?date=2024-06-02", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &snapshot))
	assert.Equal(t, 1, snapshot.PresentToday)
	assert.Equal(t, 0, snapshot.AbsentToday)
	assert.Equal(t, 2, snapshot.UnmarkedToday)

	status, _ = do(t, server, http.MethodGet, "/api/dashboard?date=06-02-2024", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRouter_Banner(t *testing.T) {
	server := newTestServer(t)

	status, env := do(t, server, http.MethodGet, "/api/", nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Ethara.AI HRMS API", env.Message)
}
