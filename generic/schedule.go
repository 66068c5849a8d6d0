package generic

import (
	"sort"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SCHEDULE - Amounts keyed by calendar month
// =============================================================================

// Schedule maps a calendar month to the amount payable in it. Credits to the
// same month accumulate. The zero value is not usable; call NewSchedule.
type Schedule struct {
	amounts map[MonthKey]decimal.Decimal
}

func NewSchedule() *Schedule {
	return &Schedule{amounts: make(map[MonthKey]decimal.Decimal)}
}

// Credit adds amount to month m.
func (s *Schedule) Credit(m MonthKey, amount decimal.Decimal) {
	s.amounts[m] = s.At(m).Add(amount)
}

// At returns the amount scheduled for m, zero when nothing is.
func (s *Schedule) At(m MonthKey) decimal.Decimal {
	if v, ok := s.amounts[m]; ok {
		return v
	}
	return decimal.Zero
}

// Months returns every credited month in chronological order.
func (s *Schedule) Months() []MonthKey {
	months := make([]MonthKey, 0, len(s.amounts))
	for m := range s.amounts {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	return months
}

// Len returns the number of credited months.
func (s *Schedule) Len() int { return len(s.amounts) }
