package generic

import "time"

// =============================================================================
// PERIOD - Inclusive date range
// =============================================================================

// Period is the inclusive range [Start, End] of calendar days.
//
// Examples:
//   - A contract: 2024-04-15 - 2024-07-10
//   - A leave-year: Jun 1 - May 31
type Period struct {
	Start TimePoint
	End   TimePoint
}

// Months lists the calendar months touched by the period, oldest first.
// Never empty for a well-formed period.
func (p Period) Months() []MonthKey {
	return MonthRange(p.Start.MonthKey(), p.End.MonthKey())
}

// Overlap returns how many days of month m the period covers, and the
// number of days in m. The first month of the period starts counting at
// Start, the last stops at End; months in between are covered whole.
func (p Period) Overlap(m MonthKey) (covered, inMonth int) {
	inMonth = m.Days()
	from := m.First()
	if m == p.Start.MonthKey() {
		from = p.Start
	}
	to := m.Last()
	if m == p.End.MonthKey() {
		to = p.End
	}
	covered = to.Day() - from.Day() + 1
	return covered, inMonth
}

// CoversMonth reports whether every day of m lies within the period.
func (p Period) CoversMonth(m MonthKey) bool {
	covered, inMonth := p.Overlap(m)
	return covered >= inMonth
}

// String returns a string representation of the period.
func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}

// =============================================================================
// LEAVE YEAR - Fiscal-year style accrual cycle
// =============================================================================

// LeaveYear defines an accrual cycle of twelve months starting on the first day
// of StartMonth, e.g. Jun 1 - May 31.
type LeaveYear struct {
	StartMonth time.Month
}

// PeriodFor returns the leave-year that contains the given date.
func (ly LeaveYear) PeriodFor(date TimePoint) Period {
	start := NewTimePoint(date.Year(), ly.StartMonth, 1)

	// Before this year's start: we're still in the previous cycle
	if date.Before(start) {
		start = NewTimePoint(date.Year()-1, ly.StartMonth, 1)
	}

	return Period{Start: start, End: start.AddYears(1).AddDays(-1)}
}

// StartIn returns the first day of the cycle that begins in the given year.
func (ly LeaveYear) StartIn(year int) TimePoint {
	return NewTimePoint(year, ly.StartMonth, 1)
}
