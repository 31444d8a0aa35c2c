package attendance

import (
	"github.com/Bhaumik-99/ethara-hrm/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

type SummaryCalculator struct {
}

func NewSummaryCalculator() *SummaryCalculator {
	return &SummaryCalculator{}
}

// Calculate tallies records by status. Only marked days count towards
// TotalDays; the rate is 0 when nothing has been marked.
func (c *SummaryCalculator) Calculate(records []attendance.Record) attendance.Summary {
	var summary attendance.Summary
	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			summary.TotalPresent++
		case attendance.StatusAbsent:
			summary.TotalAbsent++
		}
	}
	summary.TotalDays = summary.TotalPresent + summary.TotalAbsent
	summary.AttendanceRate = c.rate(summary.TotalPresent, summary.TotalDays)
	return summary
}

// rate returns round-half-up(100 * present / days).
func (c *SummaryCalculator) rate(present, days int) int {
	if days == 0 {
		return 0
	}
	pct := decimal.NewFromInt(int64(present)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(days))).
		Round(0)
	return int(pct.IntPart())
}
