// Package memory is the process-local storage backend. A single Store holds
// both the roster and the attendance ledger behind one RWMutex, so an upsert
// and its employee-existence check, or a delete and its cascade, are applied
// atomically, and every read observes one coherent state.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/Bhaumik-99/ethara-hrm/internal/domain/attendance"
	"github.com/Bhaumik-99/ethara-hrm/internal/domain/employee"
	"github.com/Bhaumik-99/ethara-hrm/internal/pkg/validator"
)

type recordKey struct {
	employeeID string
	date       string
}

type row struct {
	record attendance.Record
	order  int64 // creation order, stable across overwrites
}

type Store struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee // keyed by business employee_id
	order     []string                     // employee_ids in creation order
	records   map[recordKey]*row
	seq       int64
	created   int64
	now       func() time.Time
}

func NewStore() *Store {
	return &Store{
		employees: make(map[string]employee.Employee),
		records:   make(map[recordKey]*row),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func keyOf(employeeID string, date time.Time) recordKey {
	return recordKey{employeeID: employeeID, date: date.Format(validator.DateLayout)}
}

// listEmployeesLocked returns the roster in creation order. Caller holds mu.
func (s *Store) listEmployeesLocked() []employee.Employee {
	result := make([]employee.Employee, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.employees[id])
	}
	return result
}

// listRecordsLocked returns matching records, date descending then creation
// order. Caller holds mu.
func (s *Store) listRecordsLocked(filter attendance.Filter) []attendance.Record {
	rows := make([]*row, 0)
	for _, r := range s.records {
		if filter.Matches(r.record) {
			rows = append(rows, r)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].record.Date.Equal(rows[j].record.Date) {
			return rows[i].record.Date.After(rows[j].record.Date)
		}
		return rows[i].order < rows[j].order
	})
	return toRecords(rows)
}

// listRecentLocked returns up to limit records by write recency. Caller holds mu.
func (s *Store) listRecentLocked(limit int) []attendance.Record {
	if limit <= 0 {
		return []attendance.Record{}
	}
	rows := make([]*row, 0, len(s.records))
	for _, r := range s.records {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].record.Seq > rows[j].record.Seq
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return toRecords(rows)
}

func toRecords(rows []*row) []attendance.Record {
	records := make([]attendance.Record, len(rows))
	for i, r := range rows {
		records[i] = r.record
	}
	return records
}
