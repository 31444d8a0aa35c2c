package attendance

import "time"

// Record is the single attendance entry for one employee on one calendar date.
// Seq is taken from a ledger-wide counter on every write and orders records by
// recency; it is never derived from storage iteration order.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time // calendar date, UTC midnight
	Status     Status
	Seq        int64
	MarkedAt   time.Time
	CreatedAt  time.Time
}

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

func (s Status) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Filter narrows a ledger scan. Nil fields match everything.
type Filter struct {
	EmployeeID *string
	Date       *time.Time
}

// Matches reports whether r satisfies every set field of f.
func (f Filter) Matches(r Record) bool {
	if f.EmployeeID != nil && r.EmployeeID != *f.EmployeeID {
		return false
	}
	if f.Date != nil && !r.Date.Equal(NormalizeDate(*f.Date)) {
		return false
	}
	return true
}

// NormalizeDate drops the time-of-day and location from t.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Summary is the derived per-employee attendance tally.
type Summary struct {
	TotalPresent   int
	TotalAbsent    int
	TotalDays      int
	AttendanceRate int
}
