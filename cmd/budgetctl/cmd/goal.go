package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finance-tracker/budget/internal/application/usecase/budget"
	"github.com/finance-tracker/budget/internal/domain/entity"
	"github.com/finance-tracker/budget/internal/integration/entrypoint/dto"
)

func newGoalCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "goal",
		Aliases: []string{"goals"},
		Short:   "Track savings goals",
	}

	cmd.AddCommand(
		newGoalAddCommand(a),
		newGoalListCommand(a),
		newGoalProgressCommand(a),
		newGoalRemoveCommand(a),
	)
	return cmd
}

func newGoalAddCommand(a *app) *cobra.Command {
	var category, amount, endDate string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a savings goal",
		Args:  cobra.NoArgs,
		RunE: a.withFacade(func(cmd *cobra.Command, _ []string) error {
			parsed, err := parseAmount(amount)
			if err != nil {
				return err
			}
			req := dto.CreateGoalRequest{Category: category, Amount: parsed, EndDate: endDate}
			if err := req.Validate(); err != nil {
				return err
			}

			change, err := a.facade.AddGoal(cmd.Context(), req.ToInput())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added goal %s (%s %s by %s)\n",
				change.Goal.ID, change.Goal.Category, money(change.Goal.Amount), change.Goal.EndDate)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "What the goal saves for.")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Target amount.")
	cmd.Flags().StringVar(&endDate, "end-date", "", "Deadline as YYYY-MM-DD.")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("end-date")
	return cmd
}

func newGoalListCommand(a *app) *cobra.Command {
	var overview bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		Args:  cobra.NoArgs,
		RunE: a.withFacade(func(cmd *cobra.Command, _ []string) error {
			if !overview {
				return printGoals(cmd.OutOrStdout(), a.facade.Goals())
			}

			o := a.facade.GoalOverview(a.today())
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Active:")
			if err := printGoals(w, statusGoals(o.Active)); err != nil {
				return err
			}
			fmt.Fprintln(w, "\nCompleted:")
			return printGoals(w, statusGoals(o.Completed))
		}),
	}

	cmd.Flags().BoolVar(&overview, "overview", false, "Split into active and completed goals ordered by end date.")
	return cmd
}

func newGoalProgressCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "progress <id> <delta>",
		Short: "Add to (or, with a negative delta, take from) a goal's savings",
		Args:  cobra.ExactArgs(2),
		RunE: a.withFacade(func(cmd *cobra.Command, args []string) error {
			delta, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid delta %q", args[1])
			}

			change, found, err := a.facade.UpdateGoalProgress(cmd.Context(), args[0], delta)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("goal %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goal %s: %s of %s (%d%%)\n",
				change.Goal.ID, money(change.Goal.CurrentAmount), money(change.Goal.Amount), change.Goal.ProgressPercent())
			return nil
		}),
	}
}

func newGoalRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a goal",
		Args:    cobra.ExactArgs(1),
		RunE: a.withFacade(func(cmd *cobra.Command, args []string) error {
			remaining, err := a.facade.RemoveGoal(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d goals remaining\n", len(remaining))
			return nil
		}),
	}
}

func statusGoals(statuses []budget.GoalStatus) []entity.Goal {
	goals := make([]entity.Goal, len(statuses))
	for i, s := range statuses {
		goals[i] = s.Goal
	}
	return goals
}
