/*
errors.go - Centralized error types

PURPOSE:
  All error types in one place for consistency and discoverability.
  The calculation engine itself never fails; these errors belong to the
  layers around it (input validation, agreement loading).

ERROR CATEGORIES:
  1. Input errors - One per precondition of a calculation request
  2. Configuration errors - Malformed agreement rules

USAGE:
  Callers classify with errors.Is:

    if errors.Is(err, generic.ErrDateOrder) {
        ...
    }

  or surface the user-facing message of a *ValidationError directly.

SEE ALSO:
  - validate/contract.go: Produces the input errors
  - factory/agreement.go: Produces ErrInvalidAgreement
*/
package generic

import (
	"errors"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrMissingField is returned when one of the required inputs is blank.
	ErrMissingField = errors.New("missing field")

	// ErrDateFormat is returned when a date is not in YYYY-MM-DD form.
	ErrDateFormat = errors.New("malformed date")

	// ErrDateOrder is returned when the end date is not after the start date.
	ErrDateOrder = errors.New("end date not after start date")

	// ErrSalaryNotNumeric is returned when the salary is not a decimal number.
	ErrSalaryNotNumeric = errors.New("salary not numeric")

	// ErrSalaryNotPositive is returned when the salary is zero or negative.
	ErrSalaryNotPositive = errors.New("salary not positive")

	// ErrSalaryOutOfRange is returned when the salary is outside the agreement bounds.
	ErrSalaryOutOfRange = errors.New("salary out of range")

	// ErrInvalidAgreement is returned when agreement rules are inconsistent.
	ErrInvalidAgreement = errors.New("invalid agreement")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError is a rejected input. Message is safe to show to end users.
type ValidationError struct {
	Code    string // e.g., "missing_field", "date_order"
	Field   string // offending input, empty when several are involved
	Message string
	Err     error // sentinel
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrDateFormat) ||
		errors.Is(err, ErrDateOrder) ||
		errors.Is(err, ErrSalaryNotNumeric) ||
		errors.Is(err, ErrSalaryNotPositive) ||
		errors.Is(err, ErrSalaryOutOfRange)
}
