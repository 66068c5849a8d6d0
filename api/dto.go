/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's model from the external API contract, allowing:
  - Field renaming without breaking clients
  - Fixed decimal places on the wire
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

WIRE FORMATS:
  Dates:   "2006-01-02"
  Months:  "2006-01"
  Amounts: decimal strings, 2 places for money, 4 for months/days
           ("174.24", "1.5333") so clients never round-trip through float

SEE ALSO:
  - handlers.go: Uses these types
  - leave/types.go: Domain result types
*/
package api

import (
	"github.com/warp/paid-leave/generic"
	"github.com/warp/paid-leave/leave"
	"github.com/warp/paid-leave/validate"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// CalculationRequest is the body of POST /api/calculations.
type CalculationRequest = validate.ContractForm

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// CalculationDTO is the full result of a calculation.
type CalculationDTO struct {
	StartDate      string             `json:"start_date"`
	EndDate        string             `json:"end_date"`
	MonthlySalary  string             `json:"monthly_salary"`
	Periods        []PeriodDTO        `json:"periods"`
	MonthlyDetails []MonthlyDetailDTO `json:"monthly_details"`
	Totals         TotalsDTO          `json:"totals"`
}

// PeriodDTO represents one accrual period.
type PeriodDTO struct {
	StartDate             string  `json:"start_date"`
	EndDate               string  `json:"end_date"`
	NaturalEndDate        string  `json:"natural_end_date"`
	MonthsWorked          string  `json:"months_worked"`
	DaysAcquired          string  `json:"days_acquired"`
	ValueBySalaryMaintain string  `json:"value_by_salary_maintain"`
	ValueByTenPercent     string  `json:"value_by_ten_percent"`
	ValueDue              string  `json:"value_due"`
	Method                string  `json:"method"`
	Truncated             bool    `json:"truncated"`
	LumpSumMonth          string  `json:"lump_sum_month"`
	AmortizationStart     *string `json:"amortization_start,omitempty"`
}

// MonthlyDetailDTO represents one calendar month of the contract.
type MonthlyDetailDTO struct {
	Month                string `json:"month"`
	SalaryDue            string `json:"salary_due"`
	LeaveLumpSum         string `json:"leave_lump_sum"`
	LeaveAmortized       string `json:"leave_amortized"`
	LeavePayAsYouGo      string `json:"leave_pay_as_you_go"`
	LeaveRegularization  string `json:"leave_regularization"`
	LeaveTotalPayAsYouGo string `json:"leave_total_pay_as_you_go"`
}

// TotalsDTO sums the monthly details.
type TotalsDTO struct {
	SalaryDue            string `json:"salary_due"`
	LeaveLumpSum         string `json:"leave_lump_sum"`
	LeaveAmortized       string `json:"leave_amortized"`
	LeavePayAsYouGo      string `json:"leave_pay_as_you_go"`
	LeaveRegularization  string `json:"leave_regularization"`
	LeaveTotalPayAsYouGo string `json:"leave_total_pay_as_you_go"`
}

// AgreementDTO exposes the agreement constants in use.
type AgreementDTO struct {
	DaysPerMonth        string `json:"days_per_month"`
	WorkingDaysPerMonth string `json:"working_days_per_month"`
	PayAsYouGoRate      string `json:"pay_as_you_go_rate"`
	SalaryFloor         string `json:"salary_floor"`
	SalaryCeiling       string `json:"salary_ceiling"`
	LeaveYearStartMonth string `json:"leave_year_start_month"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

// ToCalculationDTO renders a result for the wire.
func ToCalculationDTO(contract leave.Contract, result leave.Result) CalculationDTO {
	dto := CalculationDTO{
		StartDate:      contract.Start.String(),
		EndDate:        contract.End.String(),
		MonthlySalary:  contract.MonthlySalary.StringFixed(generic.CentPlaces),
		Periods:        make([]PeriodDTO, len(result.Periods)),
		MonthlyDetails: make([]MonthlyDetailDTO, len(result.MonthlyDetails)),
		Totals: TotalsDTO{
			SalaryDue:            result.Totals.SalaryDue.StringFixed(generic.CentPlaces),
			LeaveLumpSum:         result.Totals.LeaveLumpSum.StringFixed(generic.CentPlaces),
			LeaveAmortized:       result.Totals.LeaveAmortized.StringFixed(generic.CentPlaces),
			LeavePayAsYouGo:      result.Totals.LeavePayAsYouGo.StringFixed(generic.CentPlaces),
			LeaveRegularization:  result.Totals.LeaveRegularization.StringFixed(generic.CentPlaces),
			LeaveTotalPayAsYouGo: result.Totals.LeaveTotalPayAsYouGo.StringFixed(generic.CentPlaces),
		},
	}

	for i, p := range result.Periods {
		dto.Periods[i] = PeriodDTO{
			StartDate:             p.Start.String(),
			EndDate:               p.End.String(),
			NaturalEndDate:        p.NaturalEnd.String(),
			MonthsWorked:          p.MonthsWorked.StringFixed(generic.RatioPlaces),
			DaysAcquired:          p.DaysAcquired.StringFixed(generic.RatioPlaces),
			ValueBySalaryMaintain: p.ValueBySalaryMaintain.StringFixed(generic.CentPlaces),
			ValueByTenPercent:     p.ValueByTenPercent.StringFixed(generic.CentPlaces),
			ValueDue:              p.ValueDue.StringFixed(generic.CentPlaces),
			Method:                string(p.Method),
			Truncated:             p.Truncated,
			LumpSumMonth:          p.LumpSumMonth.String(),
		}
		if p.AmortizationStart != nil {
			s := p.AmortizationStart.String()
			dto.Periods[i].AmortizationStart = &s
		}
	}

	for i, d := range result.MonthlyDetails {
		dto.MonthlyDetails[i] = MonthlyDetailDTO{
			Month:                d.Month.MonthKey().String(),
			SalaryDue:            d.SalaryDue.StringFixed(generic.CentPlaces),
			LeaveLumpSum:         d.LeaveLumpSum.StringFixed(generic.CentPlaces),
			LeaveAmortized:       d.LeaveAmortized.StringFixed(generic.CentPlaces),
			LeavePayAsYouGo:      d.LeavePayAsYouGo.StringFixed(generic.CentPlaces),
			LeaveRegularization:  d.LeaveRegularization.StringFixed(generic.CentPlaces),
			LeaveTotalPayAsYouGo: d.LeaveTotalPayAsYouGo.StringFixed(generic.CentPlaces),
		}
	}
	return dto
}

// ToAgreementDTO renders agreement constants for the wire.
func ToAgreementDTO(a leave.Agreement) AgreementDTO {
	return AgreementDTO{
		DaysPerMonth:        a.DaysPerMonth.String(),
		WorkingDaysPerMonth: a.WorkingDaysPerMonth.String(),
		PayAsYouGoRate:      a.PayAsYouGoRate.String(),
		SalaryFloor:         a.SalaryFloor.StringFixed(generic.CentPlaces),
		SalaryCeiling:       a.SalaryCeiling.StringFixed(generic.CentPlaces),
		LeaveYearStartMonth: leave.LeaveYearStart.String(),
	}
}
