package leave_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/paid-leave/generic"
	"github.com/warp/paid-leave/leave"
)

func month(year int, m time.Month) generic.MonthKey {
	return generic.MonthKey{Year: year, Month: m}
}

// =============================================================================
// MONTHLY DETAIL TESTS
// =============================================================================

func TestMonthlySchedule_SalaryProration(t *testing.T) {
	// GIVEN: Apr 15 - Jul 10 2024 at 1000/month
	sched := leave.NewMonthlySchedule(date(2024, time.April, 15), date(2024, time.July, 10), dec("1000"))

	// WHEN: Computing the monthly breakdown
	details := sched.CalculateMonthlyDetails()

	// THEN: One entry per month, partial months prorated by day ratio
	require.Len(t, details, 4)
	assert.Equal(t, date(2024, time.April, 1), details[0].Month)
	assert.Equal(t, date(2024, time.July, 1), details[3].Month)

	assertAmount(t, "533.33", details[0].SalaryDue, "april salary")
	assertAmount(t, "1000", details[1].SalaryDue, "may salary")
	assertAmount(t, "1000", details[2].SalaryDue, "june salary")
	assertAmount(t, "322.58", details[3].SalaryDue, "july salary")

	for _, d := range details {
		want := generic.Cents(d.SalaryDue.Mul(dec("0.10")))
		assert.True(t, want.Equal(d.LeavePayAsYouGo), "%s: pay-as-you-go %s, expected %s", d.Month, d.LeavePayAsYouGo, want)
		assert.True(t, d.LeavePayAsYouGo.Add(d.LeaveRegularization).Equal(d.LeaveTotalPayAsYouGo))
	}
}

func TestMonthlySchedule_PaymentPolicies(t *testing.T) {
	// GIVEN: Apr 15 - Jul 10 2024 at 1000/month
	//   Period 1: Apr 15 - May 31, value due 174.24 (maintenance), ten percent 153.33
	//   Period 2: Jun 1 - Jul 10, truncated, value due 150.30
	details := leave.NewMonthlySchedule(date(2024, time.April, 15), date(2024, time.July, 10), dec("1000")).
		CalculateMonthlyDetails()
	require.Len(t, details, 4)
	apr, may, jun, jul := details[0], details[1], details[2], details[3]

	// Nothing but pay-as-you-go before the first period closes
	for _, d := range []leave.MonthlyDetail{apr, may} {
		assert.True(t, d.LeaveLumpSum.IsZero())
		assert.True(t, d.LeaveAmortized.IsZero())
		assert.True(t, d.LeaveRegularization.IsZero())
	}
	assertAmount(t, "53.33", apr.LeaveTotalPayAsYouGo, "april total")
	assertAmount(t, "100", may.LeaveTotalPayAsYouGo, "may total")

	// June: period 1 is paid in full, amortization starts, 10% payments already match
	assertAmount(t, "174.24", jun.LeaveLumpSum, "june lump-sum")
	assertAmount(t, "14.52", jun.LeaveAmortized, "june installment")
	assertAmount(t, "0", jun.LeaveRegularization, "june regularization")
	assertAmount(t, "100", jun.LeaveTotalPayAsYouGo, "june total")

	// July: truncated period 2 paid at once, trued up against the maintenance value
	// 150.30 - 10% of 1000 for June (the only month covered whole)
	assertAmount(t, "150.3", jul.LeaveLumpSum, "july lump-sum")
	assertAmount(t, "14.52", jul.LeaveAmortized, "july installment")
	assertAmount(t, "32.26", jul.LeavePayAsYouGo, "july pay-as-you-go")
	assertAmount(t, "50.3", jul.LeaveRegularization, "july regularization")
	assertAmount(t, "82.56", jul.LeaveTotalPayAsYouGo, "july total")
}

func TestMonthlySchedule_LumpSumsShareAMonth(t *testing.T) {
	// GIVEN: A contract ending in June, so both periods are paid in June
	details := leave.NewMonthlySchedule(date(2024, time.April, 15), date(2024, time.June, 10), dec("1000")).
		CalculateMonthlyDetails()
	require.Len(t, details, 3)
	jun := details[2]

	// THEN: 174.24 for Apr 15 - May 31 plus 37.88 for Jun 1 - Jun 10
	assertAmount(t, "333.33", jun.SalaryDue, "june salary")
	assertAmount(t, "212.12", jun.LeaveLumpSum, "june lump-sum")
	assertAmount(t, "37.88", jun.LeaveRegularization, "june regularization")
	assertAmount(t, "71.21", jun.LeaveTotalPayAsYouGo, "june total")
}

func TestMonthlySchedule_SingleDayContract(t *testing.T) {
	details := leave.NewMonthlySchedule(date(2024, time.March, 10), date(2024, time.March, 10), dec("1000")).
		CalculateMonthlyDetails()

	require.Len(t, details, 1)
	d := details[0]
	assertAmount(t, "32.26", d.SalaryDue, "salary")
	assertAmount(t, "3.23", d.LeavePayAsYouGo, "pay-as-you-go")
	assertAmount(t, "3.67", d.LeaveLumpSum, "lump-sum")
	assert.True(t, d.LeaveAmortized.IsZero())
	assertAmount(t, "3.67", d.LeaveRegularization, "regularization")
	assertAmount(t, "6.9", d.LeaveTotalPayAsYouGo, "total")
}

func TestMonthlySchedule_TruncatedRegularizationUsesMaintenance(t *testing.T) {
	// GIVEN: An agreement under which ten percent beats salary maintenance
	agreement := leave.DefaultAgreement()
	agreement.WorkingDaysPerMonth = dec("26")
	sched := leave.NewCalculator(agreement).Schedule(leave.Contract{
		Start:         date(2024, time.June, 1),
		End:           date(2024, time.August, 15),
		MonthlySalary: dec("1000"),
	})

	details := sched.CalculateMonthlyDetails()
	require.Len(t, details, 3)
	aug := details[2]

	// THEN: The lump-sum pays the larger ten percent value (248.39)
	// but the regularization targets maintenance: 238.84 - 2 x 100
	assertAmount(t, "248.39", aug.LeaveLumpSum, "august lump-sum")
	assertAmount(t, "38.84", aug.LeaveRegularization, "august regularization")
}

// =============================================================================
// SCHEDULE TESTS
// =============================================================================

func TestMonthlySchedule_FullLeaveYearPaidAfterContract(t *testing.T) {
	// GIVEN: A contract covering exactly one leave-year
	sched := leave.NewMonthlySchedule(date(2024, time.June, 1), date(2025, time.May, 31), dec("1000"))

	details := sched.CalculateMonthlyDetails()
	require.Len(t, details, 12)
	for _, d := range details {
		assert.True(t, d.LeaveLumpSum.IsZero(), "%s", d.Month)
		assert.True(t, d.LeaveAmortized.IsZero(), "%s", d.Month)
	}

	// THEN: Payments land in the following leave-year, outside the monthly details
	all := sched.Schedules()
	assertAmount(t, "1363.64", all.LumpSum.At(month(2025, time.June)), "lump-sum")
	assertAmount(t, "0", all.Regularization.At(month(2025, time.June)), "regularization")

	assert.Equal(t, 12, all.Amortized.Len())
	assert.Equal(t, month(2025, time.June), all.Amortized.Months()[0])
	assert.Equal(t, month(2026, time.May), all.Amortized.Months()[11])
	assertAmount(t, "113.64", all.Amortized.At(month(2025, time.December)), "installment")
}

func TestMonthlySchedule_AmortizationStartsInJuneDespiteTruncation(t *testing.T) {
	// GIVEN: A first period cut short at the front (starts mid-April)
	sched := leave.NewMonthlySchedule(date(2024, time.April, 15), date(2025, time.August, 31), dec("1000"))
	periods := sched.Periods()
	require.Len(t, periods, 3)

	first, ok := sched.AmortizationStart(periods[0])
	require.True(t, ok)
	assert.Equal(t, month(2024, time.June), first)

	second, ok := sched.AmortizationStart(periods[1])
	require.True(t, ok)
	assert.Equal(t, month(2025, time.June), second)

	// The last period is truncated: paid in the contract's final month, never amortized
	assert.True(t, leave.IsLastTruncated(periods[2], date(2025, time.August, 31)))
	_, ok = sched.AmortizationStart(periods[2])
	assert.False(t, ok)
	assert.Equal(t, month(2025, time.August), sched.LumpSumMonth(periods[2]))
}

func TestIsLastTruncated(t *testing.T) {
	end := date(2024, time.July, 10)

	assert.True(t, leave.IsLastTruncated(leave.NewAccrualPeriod(date(2024, time.June, 1), end, dec("1000")), end))
	// Closes on its own May 31
	assert.False(t, leave.IsLastTruncated(leave.NewAccrualPeriod(date(2024, time.April, 15), date(2024, time.May, 31), dec("1000")), date(2024, time.May, 31)))
	// Not the final period
	assert.False(t, leave.IsLastTruncated(leave.NewAccrualPeriod(date(2024, time.April, 15), date(2024, time.May, 31), dec("1000")), end))
}

// =============================================================================
// CALCULATE TESTS
// =============================================================================

func TestCalculate_SummariesAndTotals(t *testing.T) {
	result := leave.Calculate(date(2024, time.April, 15), date(2024, time.July, 10), dec("1000"))

	require.Len(t, result.Periods, 2)
	first, last := result.Periods[0], result.Periods[1]

	assertAmount(t, "1.5333", first.MonthsWorked, "months worked")
	assertAmount(t, "3.8333", first.DaysAcquired, "days acquired")
	assertAmount(t, "174.24", first.ValueDue, "value due")
	assert.False(t, first.Truncated)
	assert.Equal(t, month(2024, time.June), first.LumpSumMonth)
	require.NotNil(t, first.AmortizationStart)
	assert.Equal(t, month(2024, time.June), *first.AmortizationStart)

	assertAmount(t, "1.3226", last.MonthsWorked, "months worked")
	assertAmount(t, "150.3", last.ValueDue, "value due")
	assert.True(t, last.Truncated)
	assert.Equal(t, date(2025, time.May, 31), last.NaturalEnd)
	assert.Nil(t, last.AmortizationStart)

	assertAmount(t, "2855.91", result.Totals.SalaryDue, "salary total")
	assertAmount(t, "324.54", result.Totals.LeaveLumpSum, "lump-sum total")
	assertAmount(t, "29.04", result.Totals.LeaveAmortized, "amortized total")
	assertAmount(t, "285.59", result.Totals.LeavePayAsYouGo, "pay-as-you-go total")
	assertAmount(t, "335.89", result.Totals.LeaveTotalPayAsYouGo, "pay-as-you-go with regularization")
}

func TestCalculate_Idempotent(t *testing.T) {
	first := leave.Calculate(date(2023, time.April, 15), date(2025, time.July, 10), dec("1111.11"))
	second := leave.Calculate(date(2023, time.April, 15), date(2025, time.July, 10), dec("1111.11"))

	assert.Equal(t, first, second)
}
