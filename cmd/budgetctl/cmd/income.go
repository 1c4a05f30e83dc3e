package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/budget/internal/application/usecase/income"
	"github.com/finance-tracker/budget/internal/domain/entity"
	"github.com/finance-tracker/budget/internal/integration/entrypoint/dto"
)

func newIncomeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "income",
		Aliases: []string{"incomes"},
		Short:   "Record and inspect incomes",
	}

	cmd.AddCommand(
		newIncomeAddCommand(a),
		newIncomeListCommand(a),
		newIncomeRemoveCommand(a),
		newIncomeTotalCommand(a),
	)
	return cmd
}

func newIncomeAddCommand(a *app) *cobra.Command {
	var amount, source, description, date string
	var recurring bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income",
		Args:  cobra.NoArgs,
		RunE: a.withFacade(func(cmd *cobra.Command, _ []string) error {
			parsed, err := parseAmount(amount)
			if err != nil {
				return err
			}
			if date == "" {
				date = a.today()
			}
			req := dto.CreateIncomeRequest{
				Amount:      parsed,
				Source:      source,
				Description: description,
				Date:        date,
				IsRecurring: recurring,
			}
			if err := req.Validate(); err != nil {
				return err
			}
			warnUnknownLabel(cmd, "income sources", source, entity.IsKnownLabel(entity.CategoryTypeIncome, source))

			change, err := a.facade.AddIncome(cmd.Context(), req.ToInput())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added income %s (%s %s on %s)\n",
				change.Income.ID, money(change.Income.Amount), change.Income.Source, change.Income.Date)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount received.")
	cmd.Flags().StringVarP(&source, "source", "s", entity.OtherLabel, "Income source.")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Free-text description.")
	cmd.Flags().StringVar(&date, "date", "", "Date as YYYY-MM-DD (default today).")
	cmd.Flags().BoolVar(&recurring, "recurring", false, "Mark the income as recurring.")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newIncomeListCommand(a *app) *cobra.Command {
	var period, source, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List incomes",
		Args:  cobra.NoArgs,
		RunE: a.withFacade(func(cmd *cobra.Command, _ []string) error {
			p, err := parsePeriod(period)
			if err != nil {
				return err
			}
			incomes := a.facade.FilterIncomes(income.Filter{Period: p, Source: source, Search: search})
			return printIncomes(cmd.OutOrStdout(), incomes)
		}),
	}

	periodFlag(cmd, &period, "Only incomes of this month (YYYY-MM).")
	cmd.Flags().StringVarP(&source, "source", "s", "", "Only incomes from this source.")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive text to look for.")
	return cmd
}

func newIncomeRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove an income",
		Args:    cobra.ExactArgs(1),
		RunE: a.withFacade(func(cmd *cobra.Command, args []string) error {
			remaining, err := a.facade.RemoveIncome(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d incomes remaining\n", len(remaining))
			return nil
		}),
	}
}

func newIncomeTotalCommand(a *app) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "total",
		Short: "Sum incomes",
		Args:  cobra.NoArgs,
		RunE: a.withFacade(func(cmd *cobra.Command, _ []string) error {
			p, err := parsePeriod(period)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), money(a.facade.GetTotalIncome(p)))
			return nil
		}),
	}

	periodFlag(cmd, &period, "Month to sum (YYYY-MM); all time when empty.")
	return cmd
}
