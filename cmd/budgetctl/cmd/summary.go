package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/budget/internal/domain/entity"
)

func newSummaryCommand(a *app) *cobra.Command {
	var period string
	var recent int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the balance, savings rate and spending of a month",
		Args:  cobra.NoArgs,
		RunE: a.withFacade(func(cmd *cobra.Command, _ []string) error {
			p := entity.CurrentPeriod(a.now())
			if period != "" {
				parsed, err := parsePeriod(period)
				if err != nil {
					return err
				}
				p = parsed
			}

			s := a.facade.GetSummary(p)
			w := cmd.OutOrStdout()

			tw := newTable(w)
			fmt.Fprintf(tw, "Period\t%s\n", p)
			fmt.Fprintf(tw, "Income\t%s\n", money(s.TotalIncome))
			fmt.Fprintf(tw, "Expenses\t%s\n", money(s.TotalExpenses))
			fmt.Fprintf(tw, "Balance\t%s\n", money(s.Balance))
			fmt.Fprintf(tw, "Savings rate\t%d%%\n", s.SavingsRate)
			if err := tw.Flush(); err != nil {
				return err
			}

			if len(s.Categories) > 0 {
				fmt.Fprintln(w)
				tw = newTable(w)
				fmt.Fprintln(tw, "CATEGORY\tAMOUNT\tSHARE")
				for _, c := range s.Categories {
					fmt.Fprintf(tw, "%s\t%s\t%d%%\n", c.Category, money(c.Amount), c.Percentage)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}

			transactions := a.facade.RecentTransactions(p, recent)
			if len(transactions) == 0 {
				return nil
			}
			fmt.Fprintln(w)
			tw = newTable(w)
			fmt.Fprintln(tw, "DATE\tTYPE\tLABEL\tAMOUNT\tDESCRIPTION")
			for _, tx := range transactions {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", tx.Date, tx.Type, tx.Label, money(tx.Amount), tx.Description)
			}
			return tw.Flush()
		}),
	}

	periodFlag(cmd, &period, "Month to summarize (YYYY-MM); defaults to the current month.")
	cmd.Flags().IntVar(&recent, "recent", 5, "Number of recent transactions to show.")
	return cmd
}
