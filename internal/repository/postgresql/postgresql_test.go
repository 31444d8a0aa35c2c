package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Bhaumik-99/ethara-hrm/internal/domain/attendance"
	"github.com/Bhaumik-99/ethara-hrm/internal/domain/employee"
	"github.com/Bhaumik-99/ethara-hrm/internal/pkg/database"
	"github.com/Bhaumik-99/ethara-hrm/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		// integration tests only
		os.Exit(0)
	}

	ctx := context.Background()
	var err error
	testDB, err = database.NewPostgreSQLDB(ctx, dsn)
	if err != nil {
		panic("Failed to connect to test database: " + err.Error())
	}
	if err := postgresql.Migrate(ctx, testDB); err != nil {
		panic("Failed to migrate test database: " + err.Error())
	}

	code := m.Run()
	testDB.Close()
	os.Exit(code)
}

func setupTestData(t *testing.T) {
	_, err := testDB.Exec(context.Background(), "TRUNCATE TABLE attendance_records, employees CASCADE")
	require.NoError(t, err)
}

func createTestEmployee(t *testing.T, repo employee.EmployeeRepository, id string, dept employee.Department) {
	t.Helper()
	_, err := repo.Create(context.Background(), employee.Employee{
		EmployeeID: id,
		FullName:   "Employee " + id,
		Email:      id + "@example.com",
		Department: dept,
	})
	require.NoError(t, err)
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

// ===== EMPLOYEE REPOSITORY TESTS =====

func TestEmployeeRepository_CreateAndConflicts(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(testDB)

	createTestEmployee(t, repo, "EMP001", employee.DepartmentEngineering)

	_, err := repo.Create(ctx, employee.Employee{EmployeeID: "EMP001", FullName: "X", Email: "x@example.com", Department: employee.DepartmentHR})
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)

	_, err = repo.Create(ctx, employee.Employee{EmployeeID: "EMP002", FullName: "X", Email: "EMP001@example.com", Department: employee.DepartmentHR})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	got, err := repo.GetByEmployeeID(ctx, "EMP001")
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, employee.DepartmentEngineering, got.Department)

	_, err = repo.GetByEmployeeID(ctx, "EMP404")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_ListAndSearch(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(testDB)

	createTestEmployee(t, repo, "EMP001", employee.DepartmentEngineering)
	createTestEmployee(t, repo, "EMP002", employee.DepartmentSales)

	search := "emp002"
	found, err := repo.List(ctx, employee.EmployeeFilter{Search: &search})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "EMP002", found[0].EmployeeID)

	// LIKE wildcards in the search term are literal
	wildcard := "%"
	none, err := repo.List(ctx, employee.EmployeeFilter{Search: &wildcard})
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "EMP001", all[0].EmployeeID)

	departments, err := repo.ListDepartments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Engineering", "Sales"}, departments)
}

// ===== ATTENDANCE REPOSITORY TESTS =====

func TestAttendanceRepository_Upsert(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()
	empRepo := postgresql.NewEmployeeRepository(testDB)
	repo := postgresql.NewAttendanceRepository(testDB)
	createTestEmployee(t, empRepo, "EMP001", employee.DepartmentEngineering)

	first, err := repo.Upsert(ctx, "EMP001", day("2024-06-01"), attendance.StatusPresent)
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, "EMP001", day("2024-06-01"), attendance.StatusAbsent)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Greater(t, second.Seq, first.Seq)
	assert.Equal(t, attendance.StatusAbsent, second.Status)

	_, err = repo.Upsert(ctx, "EMP404", day("2024-06-01"), attendance.StatusPresent)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	record, err := repo.GetByEmployeeAndDate(ctx, "EMP001", day("2024-06-02"))
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestAttendanceRepository_DeleteCascades(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()
	empRepo := postgresql.NewEmployeeRepository(testDB)
	repo := postgresql.NewAttendanceRepository(testDB)
	createTestEmployee(t, empRepo, "EMP001", employee.DepartmentEngineering)

	_, err := repo.Upsert(ctx, "EMP001", day("2024-06-01"), attendance.StatusPresent)
	require.NoError(t, err)

	require.NoError(t, empRepo.Delete(ctx, "EMP001"))

	records, err := repo.List(ctx, attendance.Filter{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

// ===== DASHBOARD REPOSITORY TESTS =====

func TestDashboardRepository_GetSnapshotData(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()
	empRepo := postgresql.NewEmployeeRepository(testDB)
	attRepo := postgresql.NewAttendanceRepository(testDB)
	repo := postgresql.NewDashboardRepository(testDB)

	createTestEmployee(t, empRepo, "EMP001", employee.DepartmentEngineering)
	createTestEmployee(t, empRepo, "EMP002", employee.DepartmentSales)
	_, err := attRepo.Upsert(ctx, "EMP001", day("2024-06-01"), attendance.StatusPresent)
	require.NoError(t, err)
	_, err = attRepo.Upsert(ctx, "EMP002", day("2024-05-31"), attendance.StatusAbsent)
	require.NoError(t, err)

	data, err := repo.GetSnapshotData(ctx, day("2024-06-01"), 10)
	require.NoError(t, err)

	assert.Len(t, data.Employees, 2)
	require.Len(t, data.Today, 1)
	assert.Equal(t, "EMP001", data.Today[0].EmployeeID)
	require.Len(t, data.Recent, 2)
	assert.Equal(t, "EMP002", data.Recent[0].EmployeeID)
}
