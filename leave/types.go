// Package leave computes paid-leave accrual and payment schedules for
// fixed-salary employment contracts.
//
// A contract is split into accrual periods aligned on the June 1 - May 31
// leave-year. Each period is valued twice (salary maintenance and 10% of gross
// pay) and the employee is owed the larger value. That value is then paid out
// under three policies: a lump-sum, twelve monthly installments, or 10% of
// salary every month with a regularization when the period closes.
//
// Everything in this package is a pure function of its inputs and is safe for
// concurrent use.
package leave

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/paid-leave/generic"
)

// =============================================================================
// AGREEMENT - Collective agreement constants
// =============================================================================

// LeaveYearStart is the month every leave-year starts in.
const LeaveYearStart = time.June

// Agreement holds the constants fixed by the governing collective agreement.
type Agreement struct {
	// DaysPerMonth is the leave accrued per full month worked.
	DaysPerMonth decimal.Decimal
	// WorkingDaysPerMonth converts a monthly salary to a daily rate.
	WorkingDaysPerMonth decimal.Decimal
	// PayAsYouGoRate is the share of gross pay owed as leave compensation.
	PayAsYouGoRate decimal.Decimal
	// SalaryFloor and SalaryCeiling bound accepted monthly salaries (inclusive).
	SalaryFloor   decimal.Decimal
	SalaryCeiling decimal.Decimal
}

// DefaultAgreement returns 2.5 days per month, 22 working days, 10%, 200-1200.
func DefaultAgreement() Agreement {
	return Agreement{
		DaysPerMonth:        decimal.RequireFromString("2.5"),
		WorkingDaysPerMonth: decimal.NewFromInt(22),
		PayAsYouGoRate:      decimal.RequireFromString("0.10"),
		SalaryFloor:         decimal.NewFromInt(200),
		SalaryCeiling:       decimal.NewFromInt(1200),
	}
}

// LeaveYear returns the accrual cycle used to align periods.
func (a Agreement) LeaveYear() generic.LeaveYear {
	return generic.LeaveYear{StartMonth: LeaveYearStart}
}

// =============================================================================
// CONTRACT
// =============================================================================

// Contract is the input of a calculation. Callers guarantee Start <= End and a
// positive MonthlySalary; behaviour outside that domain is undefined.
type Contract struct {
	Start         generic.TimePoint
	End           generic.TimePoint
	MonthlySalary decimal.Decimal
}

// Period returns the contract span.
func (c Contract) Period() generic.Period {
	return generic.Period{Start: c.Start, End: c.End}
}

// =============================================================================
// RESULT TYPES
// =============================================================================

// Method names the valuation that produced a period's value due.
type Method string

const (
	MethodSalaryMaintain Method = "salary_maintain"
	MethodTenPercent     Method = "ten_percent"
)

// PeriodSummary reports one accrual period and when it gets paid.
type PeriodSummary struct {
	Start                 generic.TimePoint
	End                   generic.TimePoint
	NaturalEnd            generic.TimePoint
	MonthsWorked          decimal.Decimal
	DaysAcquired          decimal.Decimal
	ValueBySalaryMaintain decimal.Decimal
	ValueByTenPercent     decimal.Decimal
	ValueDue              decimal.Decimal
	Method                Method
	Truncated             bool
	LumpSumMonth          generic.MonthKey
	AmortizationStart     *generic.MonthKey // nil when the period is never amortized
}

// MonthlyDetail is the breakdown for one calendar month of the contract.
type MonthlyDetail struct {
	Month                generic.TimePoint // first day of the month
	SalaryDue            decimal.Decimal
	LeaveLumpSum         decimal.Decimal
	LeaveAmortized       decimal.Decimal
	LeavePayAsYouGo      decimal.Decimal
	LeaveRegularization  decimal.Decimal
	LeaveTotalPayAsYouGo decimal.Decimal
}

// Totals sums each MonthlyDetail column over the contract months.
type Totals struct {
	SalaryDue            decimal.Decimal
	LeaveLumpSum         decimal.Decimal
	LeaveAmortized       decimal.Decimal
	LeavePayAsYouGo      decimal.Decimal
	LeaveRegularization  decimal.Decimal
	LeaveTotalPayAsYouGo decimal.Decimal
}

// Result is the full answer for one contract.
type Result struct {
	Periods        []PeriodSummary
	MonthlyDetails []MonthlyDetail
	Totals         Totals
}
