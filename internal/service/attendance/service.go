package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Bhaumik-99/ethara-hrm/internal/domain/attendance"
	"github.com/Bhaumik-99/ethara-hrm/internal/domain/employee"
	"github.com/Bhaumik-99/ethara-hrm/internal/pkg/metrics"
	"github.com/Bhaumik-99/ethara-hrm/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.Directory
	calculator *SummaryCalculator
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	directory employee.Directory,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		Directory:            directory,
		calculator:           NewSummaryCalculator(),
	}
}

// Mark implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		metrics.ObserveMark(statusLabel(req.Status), "invalid")
		return attendance.RecordResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	status := attendance.Status(req.Status)

	// Upsert re-checks the employee under the store's own atomicity, so the
	// check and the write cannot be split by a concurrent delete.
	record, err := a.AttendanceRepository.Upsert(ctx, req.EmployeeID, date, status)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			metrics.ObserveMark(string(status), "not_found")
			return attendance.RecordResponse{}, err
		}
		metrics.ObserveMark(string(status), "error")
		slog.Error("Failed to mark attendance", "employee_id", req.EmployeeID, "date", req.Date, "error", err)
		return attendance.RecordResponse{}, fmt.Errorf("failed to mark attendance: %w", err)
	}

	metrics.ObserveMark(string(status), "success")
	slog.Info("Attendance marked", "employee_id", record.EmployeeID, "date", req.Date, "status", record.Status, "seq", record.Seq)

	return attendance.NewRecordResponse(record), nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, req attendance.ListRequest) ([]attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.List(ctx, req.ToFilter())
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return toResponses(records), nil
}

// GetByEmployee implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetByEmployee(ctx context.Context, employeeID string) ([]attendance.RecordResponse, error) {
	exists, err := a.Directory.ExistsByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return nil, employee.ErrEmployeeNotFound
	}

	records, err := a.AttendanceRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance by employee: %w", err)
	}

	return toResponses(records), nil
}

// Summarize implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Summarize(ctx context.Context, employeeID string) (attendance.SummaryResponse, error) {
	emp, err := a.Directory.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	records, err := a.AttendanceRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to get attendance by employee: %w", err)
	}

	summary := a.calculator.Calculate(records)

	return attendance.SummaryResponse{
		EmployeeID:     emp.EmployeeID,
		FullName:       emp.FullName,
		TotalDays:      summary.TotalDays,
		TotalPresent:   summary.TotalPresent,
		TotalAbsent:    summary.TotalAbsent,
		AttendanceRate: summary.AttendanceRate,
	}, nil
}

func toResponses(records []attendance.Record) []attendance.RecordResponse {
	result := make([]attendance.RecordResponse, len(records))
	for i, r := range records {
		result[i] = attendance.NewRecordResponse(r)
	}
	return result
}

// statusLabel keeps arbitrary client input out of metric labels.
func statusLabel(s string) string {
	if attendance.Status(s).IsValid() {
		return s
	}
	return "unknown"
}
