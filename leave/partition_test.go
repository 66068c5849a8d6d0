package leave_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/paid-leave/generic"
	"github.com/warp/paid-leave/leave"
)

func spans(periods []leave.AccrualPeriod) []generic.Period {
	out := make([]generic.Period, len(periods))
	for i, p := range periods {
		out[i] = p.Period
	}
	return out
}

func TestBuildPeriods_MultiYearContract(t *testing.T) {
	// GIVEN: A contract from Apr 15 2023 to Jul 10 2025
	// WHEN: Partitioning into accrual periods
	periods := leave.BuildPeriods(date(2023, time.April, 15), date(2025, time.July, 10), dec("1000"))

	// THEN: Four periods aligned on the June 1 - May 31 leave-year
	assert.Equal(t, []generic.Period{
		{Start: date(2023, time.April, 15), End: date(2023, time.May, 31)},
		{Start: date(2023, time.June, 1), End: date(2024, time.May, 31)},
		{Start: date(2024, time.June, 1), End: date(2025, time.May, 31)},
		{Start: date(2025, time.June, 1), End: date(2025, time.July, 10)},
	}, spans(periods))
}

func TestBuildPeriods_SingleDay(t *testing.T) {
	periods := leave.BuildPeriods(date(2024, time.March, 10), date(2024, time.March, 10), dec("1000"))

	require.Len(t, periods, 1)
	assert.Equal(t, date(2024, time.March, 10), periods[0].Start)
	assert.Equal(t, date(2024, time.March, 10), periods[0].End)
}

func TestBuildPeriods_StartsOnJuneFirst(t *testing.T) {
	// GIVEN: A contract starting exactly at the leave-year boundary
	periods := leave.BuildPeriods(date(2024, time.June, 1), date(2025, time.May, 31), dec("1000"))

	// THEN: One full, untruncated leave-year
	require.Len(t, periods, 1)
	assert.Equal(t, date(2024, time.June, 1), periods[0].Start)
	assert.Equal(t, date(2025, time.May, 31), periods[0].End)
	assert.False(t, periods[0].IsTruncated())
}

func TestBuildPeriods_EndsOnMay31(t *testing.T) {
	periods := leave.BuildPeriods(date(2023, time.September, 1), date(2024, time.May, 31), dec("1000"))

	require.Len(t, periods, 1)
	assert.Equal(t, date(2024, time.May, 31), periods[0].End)
}

func TestBuildPeriods_EndsOnJuneFirst(t *testing.T) {
	// GIVEN: A contract ending one day into a new leave-year
	periods := leave.BuildPeriods(date(2024, time.January, 10), date(2024, time.June, 1), dec("1000"))

	// THEN: The last period is that single day
	require.Len(t, periods, 2)
	assert.Equal(t, generic.Period{Start: date(2024, time.June, 1), End: date(2024, time.June, 1)}, periods[1].Period)
}

func TestBuildPeriods_ExhaustiveAndContiguous(t *testing.T) {
	contracts := []generic.Period{
		{Start: date(2020, time.February, 29), End: date(2024, time.February, 29)},
		{Start: date(2021, time.June, 1), End: date(2021, time.June, 30)},
		{Start: date(2022, time.December, 15), End: date(2023, time.June, 15)},
		{Start: date(2019, time.May, 31), End: date(2019, time.June, 1)},
	}

	for _, c := range contracts {
		t.Run(c.String(), func(t *testing.T) {
			periods := leave.BuildPeriods(c.Start, c.End, dec("750"))
			require.NotEmpty(t, periods)

			assert.Equal(t, c.Start, periods[0].Start)
			assert.Equal(t, c.End, periods[len(periods)-1].End)

			for i, p := range periods {
				assert.True(t, p.Start.BeforeOrEqual(p.End), "period %d inverted", i)
				if i == 0 {
					continue
				}
				prev := periods[i-1]
				assert.Equal(t, prev.End.AddDays(1), p.Start, "gap or overlap before period %d", i)
				assert.Equal(t, time.June, p.Start.Month())
				assert.Equal(t, 1, p.Start.Day())
			}
		})
	}
}
