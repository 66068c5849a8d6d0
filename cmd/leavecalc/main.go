/*
main.go - Command-line leave calculator

PURPOSE:
  Runs the same calculation as POST /api/calculations from a terminal and
  prints the accrual periods and the monthly breakdown as tables.

USAGE:
  leavecalc calc --start 2024-04-15 --end 2024-07-10 --salary 1000
  leavecalc calc --start 2024-04-15 --end 2024-07-10 --salary 1000 --json
  leavecalc calc ... --agreement ./agreement.yaml

EXIT CODES:
  0  Success
  1  Invalid input, unreadable agreement, or output failure

SEE ALSO:
  - validate/contract.go: Input checks
  - api/dto.go: JSON output shape
*/
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/warp/paid-leave/api"
	"github.com/warp/paid-leave/factory"
	"github.com/warp/paid-leave/leave"
	"github.com/warp/paid-leave/validate"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "leavecalc",
		Short:         "Paid-leave accrual and payment schedules for fixed-salary contracts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.AddCommand(newCalcCmd())
	return root
}

type calcOptions struct {
	form          validate.ContractForm
	agreementPath string
	asJSON        bool
}

func newCalcCmd() *cobra.Command {
	var opts calcOptions

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute accrual periods and the monthly payment breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.form.StartDate, "start", "", "contract start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.form.EndDate, "end", "", "contract end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.form.Salary, "salary", "", "fixed monthly salary")
	cmd.Flags().StringVar(&opts.agreementPath, "agreement", "", "collective agreement file (YAML or JSON)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as JSON")
	return cmd
}

func runCalc(out io.Writer, opts calcOptions) error {
	agreement, err := factory.LoadAgreement(opts.agreementPath)
	if err != nil {
		return err
	}

	contract, err := validate.New(agreement).Contract(opts.form)
	if err != nil {
		return err
	}

	result := leave.NewCalculator(agreement).Calculate(contract)
	dto := api.ToCalculationDTO(contract, result)

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(dto)
	}

	_, err = fmt.Fprintf(out, "%s\n\n%s\n", periodsTable(dto), monthsTable(dto))
	return err
}

// =============================================================================
// TABLES
// =============================================================================

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func styled(t *table.Table) *table.Table {
	return t.Border(lipgloss.NormalBorder()).StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if col == 0 {
			return cellStyle
		}
		return cellStyle.Align(lipgloss.Right)
	})
}

func periodsTable(dto api.CalculationDTO) string {
	t := styled(table.New()).Headers("Period", "Months", "Days", "Maintain", "10%", "Due", "Paid")
	for _, p := range dto.Periods {
		t.Row(p.StartDate+" → "+p.EndDate, p.MonthsWorked, p.DaysAcquired,
			p.ValueBySalaryMaintain, p.ValueByTenPercent, p.ValueDue, p.LumpSumMonth)
	}
	return t.Render()
}

func monthsTable(dto api.CalculationDTO) string {
	t := styled(table.New()).Headers("Month", "Salary", "Lump-sum", "1/12", "10%", "Regul.", "10% total")
	for _, d := range dto.MonthlyDetails {
		t.Row(d.Month, d.SalaryDue, d.LeaveLumpSum, d.LeaveAmortized,
			d.LeavePayAsYouGo, d.LeaveRegularization, d.LeaveTotalPayAsYouGo)
	}
	tot := dto.Totals
	t.Row("Total", tot.SalaryDue, tot.LeaveLumpSum, tot.LeaveAmortized,
		tot.LeavePayAsYouGo, tot.LeaveRegularization, tot.LeaveTotalPayAsYouGo)
	return t.Render()
}
