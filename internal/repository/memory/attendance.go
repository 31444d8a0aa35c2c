package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Bhaumik-99/ethara-hrm/internal/domain/attendance"
	"github.com/Bhaumik-99/ethara-hrm/internal/domain/employee"
	"github.com/google/uuid"
)

type attendanceRepository struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepository{store: store}
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, employeeID string, date time.Time, status attendance.Status) (attendance.Record, error) {
	if !status.IsValid() {
		return attendance.Record{}, attendance.ErrInvalidStatus
	}
	date = attendance.NormalizeDate(date)

	s := a.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.employees[employeeID]; !exists {
		return attendance.Record{}, employee.ErrEmployeeNotFound
	}

	now := s.now()
	key := keyOf(employeeID, date)

	if existing, ok := s.records[key]; ok {
		s.seq++
		existing.record.Status = status
		existing.record.Seq = s.seq
		existing.record.MarkedAt = now
		return existing.record, nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	s.seq++
	s.created++
	r := &row{
		record: attendance.Record{
			ID:         id.String(),
			EmployeeID: employeeID,
			Date:       date,
			Status:     status,
			Seq:        s.seq,
			MarkedAt:   now,
			CreatedAt:  now,
		},
		order: s.created,
	}
	s.records[key] = r
	return r.record, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	r, ok := a.store.records[keyOf(employeeID, attendance.NormalizeDate(date))]
	if !ok {
		return nil, nil
	}
	record := r.record
	return &record, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	return a.store.listRecordsLocked(filter), nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	a.store.mu.RLock()
	records := a.store.listRecordsLocked(attendance.Filter{EmployeeID: &employeeID})
	a.store.mu.RUnlock()

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records, nil
}

// ListRecent implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListRecent(ctx context.Context, limit int) ([]attendance.Record, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	return a.store.listRecentLocked(limit), nil
}
