package billing

import (
	"fmt"
	"time"
)

// Period is a (year, month) pair, the unit of account for "was this month
// paid" independent of the exact payment date.
type Period struct {
	Year  int
	Month Month
}

// PeriodOf returns the period containing the given date
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: MonthOf(t.Month())}
}

// String formats the period as "MARZO 2024"
func (p Period) String() string {
	return fmt.Sprintf("%s %d", p.Month, p.Year)
}

// Compare returns -1, 0 or 1 depending on whether p is before, equal to or
// after other in calendar order
func (p Period) Compare(other Period) int {
	switch {
	case p.Year != other.Year:
		if p.Year < other.Year {
			return -1
		}
		return 1
	case p.Month != other.Month:
		if p.Month < other.Month {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Before returns true if p precedes other
func (p Period) Before(other Period) bool {
	return p.Compare(other) < 0
}

// After returns true if p follows other
func (p Period) After(other Period) bool {
	return p.Compare(other) > 0
}

// Next returns the following calendar period
func (p Period) Next() Period {
	if p.Month == Diciembre {
		return Period{Year: p.Year + 1, Month: Enero}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// LastDay returns the number of days in the period's month, accounting for
// leap years
func (p Period) LastDay() int {
	return time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay fits a billing cut-off day into this period: day 31 in a
// 28/29/30-day month clamps to the month's last day, so a cut-off date can
// always be constructed.
func (p Period) ClampDay(day int) int {
	if last := p.LastDay(); day > last {
		return last
	}
	return day
}

// CutoffDate returns the cut-off date inside this period for the given
// day-of-month, clamped to the month's length
func (p Period) CutoffDate(day int) time.Time {
	return time.Date(p.Year, time.Month(p.Month), p.ClampDay(day), 0, 0, 0, 0, time.UTC)
}

// PeriodsBetween enumerates every period from first through last, inclusive
// on both ends. Returns nil if first is after last.
func PeriodsBetween(first, last Period) []Period {
	if first.After(last) {
		return nil
	}
	var periods []Period
	for p := first; !p.After(last); p = p.Next() {
		periods = append(periods, p)
	}
	return periods
}
