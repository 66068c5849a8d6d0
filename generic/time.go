package generic

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for every date the engine accepts or emits.
const DateLayout = "2006-01-02"

// =============================================================================
// TIME POINT - Calendar date at day granularity
// =============================================================================

// TimePoint is a calendar date. The wall clock is always UTC midnight so two
// TimePoints for the same day compare equal.
type TimePoint struct {
	Time time.Time
}

// Constructors
func NewTimePoint(year int, month time.Month, day int) TimePoint {
	return TimePoint{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates t to its calendar day.
func FromTime(t time.Time) TimePoint {
	return NewTimePoint(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (TimePoint, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return TimePoint{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// Comparison
func (tp TimePoint) Before(other TimePoint) bool        { return tp.Time.Before(other.Time) }
func (tp TimePoint) Equal(other TimePoint) bool         { return tp.Time.Equal(other.Time) }
func (tp TimePoint) After(other TimePoint) bool         { return tp.Time.After(other.Time) }
func (tp TimePoint) BeforeOrEqual(other TimePoint) bool { return !tp.After(other) }

// Arithmetic
func (tp TimePoint) AddDays(n int) TimePoint  { return TimePoint{Time: tp.Time.AddDate(0, 0, n)} }
func (tp TimePoint) AddYears(n int) TimePoint { return NewTimePoint(tp.Year()+n, tp.Month(), tp.Day()) }

// Properties
func (tp TimePoint) Year() int          { return tp.Time.Year() }
func (tp TimePoint) Month() time.Month  { return tp.Time.Month() }
func (tp TimePoint) Day() int           { return tp.Time.Day() }
func (tp TimePoint) IsZero() bool       { return tp.Time.IsZero() }
func (tp TimePoint) MonthKey() MonthKey { return MonthKey{Year: tp.Year(), Month: tp.Month()} }
func (tp TimePoint) String() string     { return tp.Time.Format(DateLayout) }

// MinTimePoint returns the earlier of a and b.
func MinTimePoint(a, b TimePoint) TimePoint {
	if a.Before(b) {
		return a
	}
	return b
}

// MaxTimePoint returns the later of a and b.
func MaxTimePoint(a, b TimePoint) TimePoint {
	if a.After(b) {
		return a
	}
	return b
}

// =============================================================================
// MONTH KEY - Canonical calendar month identity
// =============================================================================

// MonthKey identifies a calendar month. It is comparable and used as the key of
// every month-indexed schedule.
type MonthKey struct {
	Year  int
	Month time.Month
}

// Next returns the month after m.
func (m MonthKey) Next() MonthKey { return m.AddMonths(1) }

// AddMonths moves n months forward (or backward for negative n).
func (m MonthKey) AddMonths(n int) MonthKey {
	idx := m.Year*12 + int(m.Month-1) + n
	return MonthKey{Year: idx / 12, Month: time.Month(idx%12 + 1)}
}

func (m MonthKey) Before(other MonthKey) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

func (m MonthKey) After(other MonthKey) bool { return other.Before(m) }

// First returns the first day of the month.
func (m MonthKey) First() TimePoint { return StartOfMonth(m.Year, m.Month) }

// Last returns the last day of the month.
func (m MonthKey) Last() TimePoint { return EndOfMonth(m.Year, m.Month) }

// Days returns the number of calendar days in the month.
func (m MonthKey) Days() int { return DaysInMonth(m.Year, m.Month) }

func (m MonthKey) String() string { return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month)) }

// MonthRange lists every month from the month of from through the month of to,
// inclusive. It is empty when to precedes from.
func MonthRange(from, to MonthKey) []MonthKey {
	var months []MonthKey
	for current := from; !to.Before(current); current = current.Next() {
		months = append(months, current)
	}
	return months
}

// =============================================================================
// TIME UTILITIES
// =============================================================================

func StartOfMonth(year int, month time.Month) TimePoint { return NewTimePoint(year, month, 1) }
func EndOfMonth(year int, month time.Month) TimePoint {
	return NewTimePoint(year, month+1, 0)
}
func DaysInMonth(year int, month time.Month) int { return EndOfMonth(year, month).Day() }
