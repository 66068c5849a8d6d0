/*
Package validate turns raw calculation inputs into a leave.Contract.

PURPOSE:
  The engine assumes well-formed input. This package is where the three raw
  strings of a request (form fields, query parameters, CLI flags) are checked
  and converted, so the engine is only ever reached with valid values.

CHECK ORDER:
  Checks run in a fixed order and stop at the first failure:
    1. missing field         (any of the three is blank)
    2. date format           (YYYY-MM-DD)
    3. chronological order   (end strictly after start)
    4. salary not numeric
    5. salary not positive
    6. salary out of range   (agreement floor/ceiling, inclusive)

  Each failure is a *generic.ValidationError with a user-facing message and
  wraps the matching generic sentinel.

SEE ALSO:
  - generic/errors.go: Sentinel errors
  - api/handlers.go, cmd/leavecalc: Callers
*/
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/warp/paid-leave/generic"
	"github.com/warp/paid-leave/leave"
)

// ContractForm is the raw input of a calculation.
type ContractForm struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Salary    string `json:"salary" validate:"required,numeric"`
}

// Error codes
const (
	CodeMissingField      = "missing_field"
	CodeDateFormat        = "date_format"
	CodeDateOrder         = "date_order"
	CodeSalaryNotNumeric  = "salary_not_numeric"
	CodeSalaryNotPositive = "salary_not_positive"
	CodeSalaryOutOfRange  = "salary_out_of_range"
)

var fieldNames = map[string]string{
	"StartDate": "start_date",
	"EndDate":   "end_date",
	"Salary":    "salary",
}

// Validator checks contract forms against an agreement's salary bounds.
type Validator struct {
	validate  *validator.Validate
	agreement leave.Agreement
}

func New(agreement leave.Agreement) *Validator {
	return &Validator{validate: validator.New(), agreement: agreement}
}

// Contract validates form and converts it. The returned error, if any, is a
// *generic.ValidationError.
func (v *Validator) Contract(form ContractForm) (leave.Contract, error) {
	form = normalize(form)

	if err := v.checkFields(form); err != nil {
		return leave.Contract{}, err
	}

	start, err := generic.ParseDate(form.StartDate)
	if err != nil {
		return leave.Contract{}, dateFormatError("start_date")
	}
	end, err := generic.ParseDate(form.EndDate)
	if err != nil {
		return leave.Contract{}, dateFormatError("end_date")
	}
	if !end.After(start) {
		return leave.Contract{}, &generic.ValidationError{
			Code:    CodeDateOrder,
			Message: "The end date must be after the start date.",
			Err:     generic.ErrDateOrder,
		}
	}

	salary, err := decimal.NewFromString(form.Salary)
	if err != nil {
		return leave.Contract{}, salaryNotNumericError()
	}
	if !salary.IsPositive() {
		return leave.Contract{}, &generic.ValidationError{
			Code:    CodeSalaryNotPositive,
			Field:   "salary",
			Message: "The salary must be a positive amount.",
			Err:     generic.ErrSalaryNotPositive,
		}
	}
	if salary.LessThan(v.agreement.SalaryFloor) || salary.GreaterThan(v.agreement.SalaryCeiling) {
		return leave.Contract{}, &generic.ValidationError{
			Code:  CodeSalaryOutOfRange,
			Field: "salary",
			Message: fmt.Sprintf("The salary must be between %s and %s.",
				v.agreement.SalaryFloor.StringFixed(2), v.agreement.SalaryCeiling.StringFixed(2)),
			Err: generic.ErrSalaryOutOfRange,
		}
	}

	return leave.Contract{Start: start, End: end, MonthlySalary: salary}, nil
}

// checkFields runs the struct tags and reports the highest-priority failure:
// any missing field first, then date formats, then a non-numeric salary.
// A malformed salary is reported only after the date order check passes.
func (v *Validator) checkFields(form ContractForm) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var dateErr, salaryErr error
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			return &generic.ValidationError{
				Code:    CodeMissingField,
				Field:   fieldNames[fe.Field()],
				Message: "All fields are required.",
				Err:     generic.ErrMissingField,
			}
		case "datetime":
			if dateErr == nil {
				dateErr = dateFormatError(fieldNames[fe.Field()])
			}
		case "numeric":
			salaryErr = salaryNotNumericError()
		}
	}
	if dateErr != nil {
		return dateErr
	}
	if salaryErr != nil {
		return v.orderBeforeSalary(form, salaryErr)
	}
	return nil
}

// orderBeforeSalary keeps the fixed check order when the salary is malformed
// but the dates are fine: a date order problem still wins.
func (v *Validator) orderBeforeSalary(form ContractForm, salaryErr error) error {
	start, errStart := generic.ParseDate(form.StartDate)
	end, errEnd := generic.ParseDate(form.EndDate)
	if errStart == nil && errEnd == nil && !end.After(start) {
		return &generic.ValidationError{
			Code:    CodeDateOrder,
			Message: "The end date must be after the start date.",
			Err:     generic.ErrDateOrder,
		}
	}
	return salaryErr
}

func normalize(form ContractForm) ContractForm {
	return ContractForm{
		StartDate: strings.TrimSpace(form.StartDate),
		EndDate:   strings.TrimSpace(form.EndDate),
		// Accept "1234,56" as typed in locales using a decimal comma
		Salary: strings.Replace(strings.TrimSpace(form.Salary), ",", ".", 1),
	}
}

func dateFormatError(field string) error {
	return &generic.ValidationError{
		Code:    CodeDateFormat,
		Field:   field,
		Message: "Dates must use the YYYY-MM-DD format.",
		Err:     generic.ErrDateFormat,
	}
}

func salaryNotNumericError() error {
	return &generic.ValidationError{
		Code:    CodeSalaryNotNumeric,
		Field:   "salary",
		Message: "The salary must be a number.",
		Err:     generic.ErrSalaryNotNumeric,
	}
}
