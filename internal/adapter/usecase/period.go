package usecase

import (
	"time"

	"payroll-analyzer/internal/core/domain"
)

// maxShift caps a single clock record. Longer spans are assumed to be
// missed punches.
const maxShift = 16 * time.Hour

// HoursWorked returns the hours between start and end. An end before start
// is taken as a shift crossing midnight. The result is capped at 16 hours
// and never negative.
func HoursWorked(start, end time.Time) float64 {
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	if d > maxShift {
		d = maxShift
	}
	return d.Hours()
}

// PayPeriodFor returns the last complete two-week pay period before ref.
// Periods end on a Sunday at 23:59:59; when ref is itself a Sunday the
// period ends on the previous Sunday.
func PayPeriodFor(ref time.Time) domain.Period {
	daysSinceSunday := int(ref.Weekday())
	if daysSinceSunday == 0 {
		daysSinceSunday = 7
	}
	y, m, d := ref.AddDate(0, 0, -daysSinceSunday).Date()
	end := time.Date(y, m, d, 23, 59, 59, 0, ref.Location())
	sy, sm, sd := end.AddDate(0, 0, -13).Date()
	start := time.Date(sy, sm, sd, 0, 0, 0, 0, ref.Location())
	return domain.Period{Start: start, End: end}
}
