/*
schedule.go - Monthly payment schedules

PURPOSE:
  Turns the value due of every accrual period into month-by-month payments
  under three disbursement policies, next to the prorated salary of each
  month of the contract.

POLICIES:
  Lump-sum:
    A period's whole value is paid the month after it ends (June for a
    period closing May 31). The last period of a contract that stops before
    May 31 is paid in the contract's final month instead.

  Amortized (1/12):
    A period's value is split into 12 installments, paid from the June after
    its leave-year closes. The last truncated period is not amortized.

  Pay-as-you-go:
    10% of each month's salary, paid that month. The month receiving a
    lump-sum also carries a regularization that trues up the 10% payments
    already made against the period's valuation.

EXAMPLE:
  Contract 2024-04-15 - 2024-07-10 at 1000/month:
    Period 1: Apr 15 - May 31  -> lump-sum in June, amortized Jun 2024 - May 2025
    Period 2: Jun 1 - Jul 10   -> lump-sum in July (truncated), never amortized

SEE ALSO:
  - period.go: Period valuation
  - generic/schedule.go: Month-keyed amounts
*/
package leave

import (
	"github.com/shopspring/decimal"
	"github.com/warp/paid-leave/generic"
)

const amortizationInstallments = 12

// MonthlySchedule computes the monthly breakdown of one contract.
type MonthlySchedule struct {
	contract  Contract
	agreement Agreement
	periods   []AccrualPeriod
}

// NewMonthlySchedule prepares the schedule of a contract under the default agreement.
func NewMonthlySchedule(contractStart, contractEnd generic.TimePoint, monthlySalary decimal.Decimal) *MonthlySchedule {
	return NewCalculator(DefaultAgreement()).Schedule(Contract{
		Start:         contractStart,
		End:           contractEnd,
		MonthlySalary: monthlySalary,
	})
}

// Periods returns the accrual periods the schedule is built from.
func (s *MonthlySchedule) Periods() []AccrualPeriod {
	return s.periods
}

// IsLastTruncated reports whether p closes the contract before its own May 31.
// Only the final period of a contract can satisfy it.
func IsLastTruncated(p AccrualPeriod, contractEnd generic.TimePoint) bool {
	return p.End.Equal(contractEnd) && p.IsTruncated()
}

// LumpSumMonth is the month a period's value is paid in one go.
func (s *MonthlySchedule) LumpSumMonth(p AccrualPeriod) generic.MonthKey {
	if IsLastTruncated(p, s.contract.End) {
		return s.contract.End.MonthKey()
	}
	return p.End.MonthKey().Next()
}

// AmortizationStart is the first of the twelve installment months, and false
// for the last truncated period which is never amortized.
func (s *MonthlySchedule) AmortizationStart(p AccrualPeriod) (generic.MonthKey, bool) {
	if IsLastTruncated(p, s.contract.End) {
		return generic.MonthKey{}, false
	}
	return p.NaturalEnd().MonthKey().Next(), true
}

// =============================================================================
// SCHEDULES
// =============================================================================

// Schedules holds every month-keyed amount of a contract. LumpSum, Amortized
// and Regularization may extend past the contract's last month.
type Schedules struct {
	SalaryDue      *generic.Schedule
	LumpSum        *generic.Schedule
	Amortized      *generic.Schedule
	PayAsYouGo     *generic.Schedule
	Regularization *generic.Schedule
}

// Schedules builds all schedules of the contract.
func (s *MonthlySchedule) Schedules() Schedules {
	salary, payg := s.salarySchedules()
	return Schedules{
		SalaryDue:      salary,
		LumpSum:        s.lumpSumSchedule(),
		Amortized:      s.amortizedSchedule(),
		PayAsYouGo:     payg,
		Regularization: s.regularizationSchedule(payg),
	}
}

// salarySchedules prorates the salary over each contract month and takes the
// pay-as-you-go share of the rounded amount.
func (s *MonthlySchedule) salarySchedules() (salary, payg *generic.Schedule) {
	salary, payg = generic.NewSchedule(), generic.NewSchedule()
	contract := s.contract.Period()
	for _, m := range contract.Months() {
		covered, inMonth := contract.Overlap(m)
		due := generic.Cents(generic.Prorate(s.contract.MonthlySalary, covered, inMonth))
		salary.Credit(m, due)
		payg.Credit(m, generic.Cents(due.Mul(s.agreement.PayAsYouGoRate)))
	}
	return salary, payg
}

func (s *MonthlySchedule) lumpSumSchedule() *generic.Schedule {
	sched := generic.NewSchedule()
	for _, p := range s.periods {
		sched.Credit(s.LumpSumMonth(p), p.ValueDue())
	}
	return sched
}

func (s *MonthlySchedule) amortizedSchedule() *generic.Schedule {
	sched := generic.NewSchedule()
	for _, p := range s.periods {
		first, ok := s.AmortizationStart(p)
		if !ok {
			continue
		}
		// Rounding drift across installments is not redistributed
		installment := generic.Cents(p.ValueDue().Div(decimal.NewFromInt(amortizationInstallments)))
		for i := 0; i < amortizationInstallments; i++ {
			sched.Credit(first.AddMonths(i), installment)
		}
	}
	return sched
}

func (s *MonthlySchedule) regularizationSchedule(payg *generic.Schedule) *generic.Schedule {
	sched := generic.NewSchedule()
	for _, p := range s.periods {
		sched.Credit(s.LumpSumMonth(p), s.regularization(p, payg))
	}
	return sched
}

// regularization trues up the pay-as-you-go payments made during p.
//
// The last truncated period is reconciled against the salary-maintenance
// value even when ten percent is larger, net of 10% of the full salary for
// each month it covers whole. Every other period is reconciled against its
// ten percent value, net of what was actually paid each month.
func (s *MonthlySchedule) regularization(p AccrualPeriod, payg *generic.Schedule) decimal.Decimal {
	paid := decimal.Zero

	if IsLastTruncated(p, s.contract.End) {
		target := p.maintainValue(generic.Ratio(s.agreement.DaysPerMonth.Mul(p.MonthsWorked())))
		fullMonth := s.contract.MonthlySalary.Mul(s.agreement.PayAsYouGoRate)
		for _, m := range p.Months() {
			if p.CoversMonth(m) {
				paid = paid.Add(fullMonth)
			}
		}
		return generic.Cents(target.Sub(paid))
	}

	for _, m := range p.Months() {
		paid = paid.Add(payg.At(m))
	}
	return generic.Cents(p.ValueByTenPercent().Sub(paid))
}

// =============================================================================
// MONTHLY DETAILS
// =============================================================================

// CalculateMonthlyDetails returns one entry per calendar month of the
// contract, oldest first. Payments scheduled after the contract's last month
// are not listed.
func (s *MonthlySchedule) CalculateMonthlyDetails() []MonthlyDetail {
	sched := s.Schedules()
	months := s.contract.Period().Months()

	details := make([]MonthlyDetail, 0, len(months))
	for _, m := range months {
		payg := sched.PayAsYouGo.At(m)
		reg := sched.Regularization.At(m)
		details = append(details, MonthlyDetail{
			Month:                m.First(),
			SalaryDue:            sched.SalaryDue.At(m),
			LeaveLumpSum:         sched.LumpSum.At(m),
			LeaveAmortized:       sched.Amortized.At(m),
			LeavePayAsYouGo:      payg,
			LeaveRegularization:  reg,
			LeaveTotalPayAsYouGo: payg.Add(reg),
		})
	}
	return details
}

// SumDetails totals each column of details.
func SumDetails(details []MonthlyDetail) Totals {
	t := Totals{
		SalaryDue:            decimal.Zero,
		LeaveLumpSum:         decimal.Zero,
		LeaveAmortized:       decimal.Zero,
		LeavePayAsYouGo:      decimal.Zero,
		LeaveRegularization:  decimal.Zero,
		LeaveTotalPayAsYouGo: decimal.Zero,
	}
	for _, d := range details {
		t.SalaryDue = t.SalaryDue.Add(d.SalaryDue)
		t.LeaveLumpSum = t.LeaveLumpSum.Add(d.LeaveLumpSum)
		t.LeaveAmortized = t.LeaveAmortized.Add(d.LeaveAmortized)
		t.LeavePayAsYouGo = t.LeavePayAsYouGo.Add(d.LeavePayAsYouGo)
		t.LeaveRegularization = t.LeaveRegularization.Add(d.LeaveRegularization)
		t.LeaveTotalPayAsYouGo = t.LeaveTotalPayAsYouGo.Add(d.LeaveTotalPayAsYouGo)
	}
	return t
}
