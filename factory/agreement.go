/*
Package factory builds leave.Agreement values from configuration files.

PURPOSE:
  The accrual constants (2.5 days per month, 22 working days, 10%) and the
  accepted salary range come from a collective agreement. They default to
  the built-in values but can be overridden without code changes by pointing
  the server or CLI at an agreement file.

FILE FORMAT (YAML, or JSON since JSON is valid YAML):
  days_per_month: 2.5
  working_days_per_month: 22
  pay_as_you_go_rate: 0.10
  salary_floor: 200
  salary_ceiling: 1200

  Omitted keys keep their default. Values are read as decimals, so quoting
  them ("2.5") is accepted and avoids any float parsing.

VALIDATION:
  - Every value must be positive
  - salary_floor must be below salary_ceiling
  Violations wrap generic.ErrInvalidAgreement.

USAGE:
  agreement, err := factory.LoadAgreement("agreement.yaml")
  calc := leave.NewCalculator(agreement)

SEE ALSO:
  - leave/types.go: Agreement definition and defaults
  - config/config.go: AGREEMENT_FILE
*/
package factory

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/warp/paid-leave/generic"
	"github.com/warp/paid-leave/leave"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// FILE SCHEMA
// =============================================================================

// AgreementFile is the on-disk representation of an agreement.
type AgreementFile struct {
	DaysPerMonth        *decimal.Decimal `yaml:"days_per_month" json:"days_per_month"`
	WorkingDaysPerMonth *decimal.Decimal `yaml:"working_days_per_month" json:"working_days_per_month"`
	PayAsYouGoRate      *decimal.Decimal `yaml:"pay_as_you_go_rate" json:"pay_as_you_go_rate"`
	SalaryFloor         *decimal.Decimal `yaml:"salary_floor" json:"salary_floor"`
	SalaryCeiling       *decimal.Decimal `yaml:"salary_ceiling" json:"salary_ceiling"`
}

// =============================================================================
// LOADING
// =============================================================================

// LoadAgreement reads an agreement file. An empty path yields the defaults.
func LoadAgreement(path string) (leave.Agreement, error) {
	if path == "" {
		return leave.DefaultAgreement(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return leave.Agreement{}, fmt.Errorf("read agreement %s: %w", path, err)
	}
	agreement, err := ParseAgreement(data)
	if err != nil {
		return leave.Agreement{}, fmt.Errorf("agreement %s: %w", path, err)
	}
	return agreement, nil
}

// ParseAgreement decodes an agreement document over the defaults.
func ParseAgreement(data []byte) (leave.Agreement, error) {
	var file AgreementFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return leave.Agreement{}, fmt.Errorf("%w: %v", generic.ErrInvalidAgreement, err)
	}

	agreement := leave.DefaultAgreement()
	override(&agreement.DaysPerMonth, file.DaysPerMonth)
	override(&agreement.WorkingDaysPerMonth, file.WorkingDaysPerMonth)
	override(&agreement.PayAsYouGoRate, file.PayAsYouGoRate)
	override(&agreement.SalaryFloor, file.SalaryFloor)
	override(&agreement.SalaryCeiling, file.SalaryCeiling)

	if err := Check(agreement); err != nil {
		return leave.Agreement{}, err
	}
	return agreement, nil
}

// Check verifies an agreement is usable by the engine.
func Check(a leave.Agreement) error {
	values := []struct {
		name  string
		value decimal.Decimal
	}{
		{"days_per_month", a.DaysPerMonth},
		{"working_days_per_month", a.WorkingDaysPerMonth},
		{"pay_as_you_go_rate", a.PayAsYouGoRate},
		{"salary_floor", a.SalaryFloor},
		{"salary_ceiling", a.SalaryCeiling},
	}
	for _, v := range values {
		if !v.value.IsPositive() {
			return fmt.Errorf("%w: %s must be positive, got %s", generic.ErrInvalidAgreement, v.name, v.value)
		}
	}
	if !a.SalaryFloor.LessThan(a.SalaryCeiling) {
		return fmt.Errorf("%w: salary_floor %s must be below salary_ceiling %s",
			generic.ErrInvalidAgreement, a.SalaryFloor, a.SalaryCeiling)
	}
	return nil
}

func override(dst *decimal.Decimal, src *decimal.Decimal) {
	if src != nil {
		*dst = *src
	}
}
