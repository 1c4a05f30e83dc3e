package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finance-tracker/budget/internal/domain/entity"
	"github.com/finance-tracker/budget/internal/integration/entrypoint/dto"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// parseAmount reads a decimal amount and requires it to be positive.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", raw)
	}
	if err := dto.ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// periodFlag registers the --period flag shared by listing commands.
func periodFlag(cmd *cobra.Command, target *string, usage string) {
	cmd.Flags().StringVarP(target, "period", "p", "", usage)
}

func parsePeriod(raw string) (entity.Period, error) {
	return entity.ParsePeriod(raw)
}

func printExpenses(w io.Writer, expenses []entity.Expense) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tCATEGORY\tAMOUNT\tDESCRIPTION")
	for _, e := range expenses {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Date, e.Category, money(e.Amount), e.Description)
	}
	return tw.Flush()
}

func printIncomes(w io.Writer, incomes []entity.Income) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tSOURCE\tAMOUNT\tRECURRING\tDESCRIPTION")
	for _, i := range incomes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\t%s\n", i.ID, i.Date, i.Source, money(i.Amount), i.IsRecurring, i.Description)
	}
	return tw.Flush()
}

func printGoals(w io.Writer, goals []entity.Goal) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCATEGORY\tSAVED\tTARGET\tPROGRESS\tEND DATE")
	for _, g := range goals {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d%%\t%s\n",
			g.ID, g.Category, money(g.CurrentAmount), money(g.Amount), g.ProgressPercent(), g.EndDate)
	}
	return tw.Flush()
}
