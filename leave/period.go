/*
period.go - Accrual period valuation

PURPOSE:
  One AccrualPeriod is a slice of a contract that lies within a single
  leave-year. It knows how many months were worked in it, how many leave days
  that earns, and what those days are worth.

VALUATION:
  Two methods are computed and the employee receives the larger:

  Salary maintenance:
    daily rate x days acquired = salary / 22 x (2.5 x months worked)

  Ten percent:
    10% of the gross salary paid over the period, month by month

PRORATION:
  A month only partly covered counts as covered days / days in month.
  Started on Apr 15: April counts 16/30.
  A month covered whole counts exactly 1 regardless of its length.

ROUNDING:
  Months worked and days acquired: 4 places. Money: 2 places. Half-up.

SEE ALSO:
  - partition.go: Builds periods from a contract
  - schedule.go: Turns period values into monthly payments
*/
package leave

import (
	"github.com/shopspring/decimal"
	"github.com/warp/paid-leave/generic"
)

// AccrualPeriod is an immutable accrual span within one leave-year.
type AccrualPeriod struct {
	generic.Period
	MonthlySalary decimal.Decimal

	agreement Agreement
}

// NewAccrualPeriod builds a period valued under the default agreement.
func NewAccrualPeriod(start, end generic.TimePoint, monthlySalary decimal.Decimal) AccrualPeriod {
	return newAccrualPeriod(start, end, monthlySalary, DefaultAgreement())
}

func newAccrualPeriod(start, end generic.TimePoint, monthlySalary decimal.Decimal, a Agreement) AccrualPeriod {
	return AccrualPeriod{
		Period:        generic.Period{Start: start, End: end},
		MonthlySalary: monthlySalary,
		agreement:     a,
	}
}

// CoveredMonths lists the first day of every month from Start's month to End's
// month inclusive.
func (p AccrualPeriod) CoveredMonths() []generic.TimePoint {
	months := p.Months()
	firsts := make([]generic.TimePoint, len(months))
	for i, m := range months {
		firsts[i] = m.First()
	}
	return firsts
}

// MonthsWorked sums the covered fraction of each month.
func (p AccrualPeriod) MonthsWorked() decimal.Decimal {
	total := decimal.Zero
	for _, m := range p.Months() {
		total = total.Add(generic.DayRatio(p.Overlap(m)))
	}
	return generic.Ratio(total)
}

// DaysAcquired is the leave earned over the period.
func (p AccrualPeriod) DaysAcquired() decimal.Decimal {
	return generic.Ratio(p.agreement.DaysPerMonth.Mul(p.MonthsWorked()))
}

// ValueBySalaryMaintain values the acquired days at the normal daily rate.
func (p AccrualPeriod) ValueBySalaryMaintain() decimal.Decimal {
	return p.maintainValue(p.DaysAcquired())
}

func (p AccrualPeriod) maintainValue(days decimal.Decimal) decimal.Decimal {
	return generic.Cents(p.MonthlySalary.Mul(days).Div(p.agreement.WorkingDaysPerMonth))
}

// ValueByTenPercent is 10% of the salary earned over the period.
func (p AccrualPeriod) ValueByTenPercent() decimal.Decimal {
	total := decimal.Zero
	for _, m := range p.Months() {
		covered, inMonth := p.Overlap(m)
		total = total.Add(generic.Prorate(p.MonthlySalary, covered, inMonth).Mul(p.agreement.PayAsYouGoRate))
	}
	return generic.Cents(total)
}

// ValueDue is what the employee is owed: the larger of the two valuations.
func (p AccrualPeriod) ValueDue() decimal.Decimal {
	return generic.MaxDecimal(p.ValueBySalaryMaintain(), p.ValueByTenPercent())
}

// Method reports which valuation ValueDue came from. Ties go to salary maintenance.
func (p AccrualPeriod) Method() Method {
	if p.ValueByTenPercent().GreaterThan(p.ValueBySalaryMaintain()) {
		return MethodTenPercent
	}
	return MethodSalaryMaintain
}

// NaturalEnd is the last day of the leave-year Start falls in.
func (p AccrualPeriod) NaturalEnd() generic.TimePoint {
	return p.agreement.LeaveYear().PeriodFor(p.Start).End
}

// IsTruncated reports whether the period stops before its leave-year does.
func (p AccrualPeriod) IsTruncated() bool {
	return p.End.Before(p.NaturalEnd())
}
