/*
Package generic provides the date and money primitives of the leave engine.

PURPOSE:
  Calendar arithmetic, month-keyed schedules and exact decimal rounding that
  the leave package builds its accrual and payment rules on. Nothing in here
  knows about leave days, salaries or collective agreements.

KEY CONCEPTS:
  - TimePoint: A calendar date (time.go)
  - MonthKey: A calendar month, the key of every schedule (time.go)
  - Period: An inclusive date range and its per-month overlap (period.go)
  - LeaveYear: A twelve-month cycle starting on a fixed month (period.go)
  - Schedule: Month -> amount mapping (schedule.go)
  - Rounding helpers: Cents, Ratio (this file)

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal, never float64, for amounts
  2. Immutability: Values are passed by value and never mutated in place
  3. Half-up rounding at the boundary (2 places for money, 4 for ratios)

USAGE:
  contract := generic.Period{
      Start: generic.NewTimePoint(2024, time.April, 15),
      End:   generic.NewTimePoint(2024, time.July, 10),
  }
  for _, m := range contract.Months() {
      covered, inMonth := contract.Overlap(m)
      ...
  }

SEE ALSO:
  - leave/period.go: Accrual periods built on Period
  - leave/schedule.go: Payment schedules built on Schedule
*/
package generic

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// ROUNDING
// =============================================================================

const (
	// CentPlaces is the precision of every monetary result.
	CentPlaces int32 = 2
	// RatioPlaces is the precision of months worked and days acquired.
	RatioPlaces int32 = 4
)

// Cents rounds half-up to two decimal places.
func Cents(d decimal.Decimal) decimal.Decimal { return d.Round(CentPlaces) }

// Ratio rounds half-up to four decimal places.
func Ratio(d decimal.Decimal) decimal.Decimal { return d.Round(RatioPlaces) }

// DayRatio returns covered/inMonth, or exactly one when the month is covered whole.
func DayRatio(covered, inMonth int) decimal.Decimal {
	if covered >= inMonth {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromInt(int64(covered)).Div(decimal.NewFromInt(int64(inMonth)))
}

// Prorate scales amount by covered/inMonth without rounding.
func Prorate(amount decimal.Decimal, covered, inMonth int) decimal.Decimal {
	if covered >= inMonth {
		return amount
	}
	return amount.Mul(decimal.NewFromInt(int64(covered))).Div(decimal.NewFromInt(int64(inMonth)))
}

// MaxDecimal returns the larger of a and b, preferring a on a tie.
func MaxDecimal(a, b decimal.Decimal) decimal.Decimal {
	if b.GreaterThan(a) {
		return b
	}
	return a
}
