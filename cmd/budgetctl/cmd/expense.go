package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/budget/internal/application/usecase/expense"
	"github.com/finance-tracker/budget/internal/domain/entity"
	"github.com/finance-tracker/budget/internal/domain/valueobject"
	"github.com/finance-tracker/budget/internal/integration/entrypoint/dto"
)

func newExpenseCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "expense",
		Aliases: []string{"expenses"},
		Short:   "Record and inspect expenses",
	}

	cmd.AddCommand(
		newExpenseAddCommand(a),
		newExpenseListCommand(a),
		newExpenseRemoveCommand(a),
		newExpenseTotalCommand(a),
		newExpenseByCategoryCommand(a),
	)
	return cmd
}

func newExpenseAddCommand(a *app) *cobra.Command {
	var amount, category, description, date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		Args:  cobra.NoArgs,
		RunE: a.withFacade(func(cmd *cobra.Command, _ []string) error {
			parsed, err := parseAmount(amount)
			if err != nil {
				return err
			}
			if date == "" {
				date = a.today()
			}
			req := dto.CreateExpenseRequest{Amount: parsed, Category: category, Description: description, Date: date}
			if err := req.Validate(); err != nil {
				return err
			}
			warnUnknownLabel(cmd, "expense categories", category, entity.IsKnownLabel(entity.CategoryTypeExpense, category))

			change, err := a.facade.AddExpense(cmd.Context(), req.ToInput())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added expense %s (%s %s on %s)\n",
				change.Expense.ID, money(change.Expense.Amount), change.Expense.Category, change.Expense.Date)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount spent.")
	cmd.Flags().StringVarP(&category, "category", "c", entity.OtherLabel, "Expense category.")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Free-text description.")
	cmd.Flags().StringVar(&date, "date", "", "Date as YYYY-MM-DD (default today).")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newExpenseListCommand(a *app) *cobra.Command {
	var period, category, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses",
		Args:  cobra.NoArgs,
		RunE: a.withFacade(func(cmd *cobra.Command, _ []string) error {
			p, err := parsePeriod(period)
			if err != nil {
				return err
			}
			expenses := a.facade.FilterExpenses(expense.Filter{Period: p, Category: category, Search: search})
			return printExpenses(cmd.OutOrStdout(), expenses)
		}),
	}

	periodFlag(cmd, &period, "Only expenses of this month (YYYY-MM).")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Only expenses of this category.")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive text to look for.")
	return cmd
}

func newExpenseRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove an expense",
		Args:    cobra.ExactArgs(1),
		RunE: a.withFacade(func(cmd *cobra.Command, args []string) error {
			remaining, err := a.facade.RemoveExpense(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d expenses remaining\n", len(remaining))
			return nil
		}),
	}
}

func newExpenseTotalCommand(a *app) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "total",
		Short: "Sum expenses",
		Args:  cobra.NoArgs,
		RunE: a.withFacade(func(cmd *cobra.Command, _ []string) error {
			p, err := parsePeriod(period)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), money(a.facade.GetTotalExpenses(p)))
			return nil
		}),
	}

	periodFlag(cmd, &period, "Month to sum (YYYY-MM); all time when empty.")
	return cmd
}

func newExpenseByCategoryCommand(a *app) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "by-category",
		Short: "Sum expenses per category",
		Args:  cobra.NoArgs,
		RunE: a.withFacade(func(cmd *cobra.Command, _ []string) error {
			p, err := parsePeriod(period)
			if err != nil {
				return err
			}
			items, total := valueobject.Breakdown(a.facade.GetExpensesByCategory(p))

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "CATEGORY\tAMOUNT\tSHARE")
			for _, item := range items {
				fmt.Fprintf(tw, "%s\t%s\t%d%%\n", item.Category, money(item.Amount), item.Percentage)
			}
			fmt.Fprintf(tw, "TOTAL\t%s\t\n", money(total))
			return tw.Flush()
		}),
	}

	periodFlag(cmd, &period, "Month to break down (YYYY-MM); all time when empty.")
	return cmd
}
