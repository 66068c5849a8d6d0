package leave

import (
	"github.com/shopspring/decimal"
	"github.com/warp/paid-leave/generic"
)

// Calculator runs calculations under one collective agreement.
type Calculator struct {
	agreement Agreement
}

func NewCalculator(a Agreement) *Calculator {
	return &Calculator{agreement: a}
}

// Agreement returns the rules the calculator applies.
func (c *Calculator) Agreement() Agreement {
	return c.agreement
}

// Schedule partitions the contract and prepares its monthly schedule.
func (c *Calculator) Schedule(contract Contract) *MonthlySchedule {
	return &MonthlySchedule{
		contract:  contract,
		agreement: c.agreement,
		periods:   c.BuildPeriods(contract.Start, contract.End, contract.MonthlySalary),
	}
}

// Calculate produces the periods and monthly breakdown of a contract.
func (c *Calculator) Calculate(contract Contract) Result {
	sched := c.Schedule(contract)

	summaries := make([]PeriodSummary, len(sched.periods))
	for i, p := range sched.periods {
		summaries[i] = sched.summarize(p)
	}

	details := sched.CalculateMonthlyDetails()
	return Result{
		Periods:        summaries,
		MonthlyDetails: details,
		Totals:         SumDetails(details),
	}
}

// Calculate runs a calculation under the default agreement.
func Calculate(contractStart, contractEnd generic.TimePoint, monthlySalary decimal.Decimal) Result {
	return NewCalculator(DefaultAgreement()).Calculate(Contract{
		Start:         contractStart,
		End:           contractEnd,
		MonthlySalary: monthlySalary,
	})
}

func (s *MonthlySchedule) summarize(p AccrualPeriod) PeriodSummary {
	summary := PeriodSummary{
		Start:                 p.Start,
		End:                   p.End,
		NaturalEnd:            p.NaturalEnd(),
		MonthsWorked:          p.MonthsWorked(),
		DaysAcquired:          p.DaysAcquired(),
		ValueBySalaryMaintain: p.ValueBySalaryMaintain(),
		ValueByTenPercent:     p.ValueByTenPercent(),
		ValueDue:              p.ValueDue(),
		Method:                p.Method(),
		Truncated:             p.IsTruncated(),
		LumpSumMonth:          s.LumpSumMonth(p),
	}
	if first, ok := s.AmortizationStart(p); ok {
		summary.AmortizationStart = &first
	}
	return summary
}
