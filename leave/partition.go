package leave

import (
	"github.com/shopspring/decimal"
	"github.com/warp/paid-leave/generic"
)

// BuildPeriods splits [contractStart, contractEnd] into accrual periods under
// the default agreement. See (*Calculator).BuildPeriods.
func BuildPeriods(contractStart, contractEnd generic.TimePoint, monthlySalary decimal.Decimal) []AccrualPeriod {
	return NewCalculator(DefaultAgreement()).BuildPeriods(contractStart, contractEnd, monthlySalary)
}

// BuildPeriods splits [contractStart, contractEnd] into consecutive accrual
// periods, one per leave-year touched. The first period starts at
// contractStart, every later one on June 1, and each ends on May 31 or at
// contractEnd, whichever comes first. The result is never empty.
func (c *Calculator) BuildPeriods(contractStart, contractEnd generic.TimePoint, monthlySalary decimal.Decimal) []AccrualPeriod {
	leaveYear := c.agreement.LeaveYear()

	end := generic.MinTimePoint(contractEnd, leaveYear.PeriodFor(contractStart).End)
	periods := []AccrualPeriod{newAccrualPeriod(contractStart, end, monthlySalary, c.agreement)}

	for end.Before(contractEnd) {
		start := generic.MaxTimePoint(leaveYear.StartIn(end.Year()), contractStart)
		end = generic.MinTimePoint(contractEnd, leaveYear.PeriodFor(start).End)
		periods = append(periods, newAccrualPeriod(start, end, monthlySalary, c.agreement))
	}
	return periods
}
