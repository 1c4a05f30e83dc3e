// Package cmd implements the budgetctl commands.
package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/finance-tracker/budget/config"
	"github.com/finance-tracker/budget/internal/application/usecase/budget"
	"github.com/finance-tracker/budget/internal/infra/dependency"
	"github.com/finance-tracker/budget/internal/integration/adapters"
)

const dateFormat = "2006-01-02"

// app is the state shared by the subcommands of one invocation.
type app struct {
	cfg     *config.Config
	storage *dependency.Storage
	facade  *budget.Facade
	now     func() time.Time
}

// NewRootCommand builds the budgetctl command tree. Storage is opened lazily
// by the subcommands that need it.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{now: time.Now})
}

func newRootCommand(a *app) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "budgetctl",
		Short:        "Manage expenses, incomes and savings goals",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			a.cfg = config.Load()
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr.")

	root.AddCommand(
		newExpenseCommand(a),
		newIncomeCommand(a),
		newGoalCommand(a),
		newSummaryCommand(a),
		newTokenCommand(a),
	)

	return root
}

// open connects storage and loads the ledgers.
func (a *app) open(cmd *cobra.Command) error {
	if a.facade != nil {
		return nil
	}

	storage, err := dependency.OpenStorage(a.cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", a.cfg.Storage.Driver, err)
	}

	facade, err := dependency.NewFacade(cmd.Context(), storage.Gateway, adapters.NewUUIDGenerator())
	if err != nil {
		_ = storage.Close()
		return fmt.Errorf("failed to load budget data: %w", err)
	}

	a.storage = storage
	a.facade = facade
	return nil
}

func (a *app) close() error {
	if a.storage == nil {
		return nil
	}
	err := a.storage.Close()
	a.storage, a.facade = nil, nil
	return err
}

func (a *app) today() string {
	return a.now().Format(dateFormat)
}

// withFacade adapts a handler needing the facade into a cobra RunE. Storage is
// closed when the handler returns, including on failure.
func (a *app) withFacade(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		if err := a.open(cmd); err != nil {
			return err
		}
		defer func() {
			if closeErr := a.close(); err == nil {
				err = closeErr
			}
		}()
		return run(cmd, args)
	}
}

func warnUnknownLabel(cmd *cobra.Command, kind, label string, known bool) {
	if !known {
		fmt.Fprintf(cmd.ErrOrStderr(), "note: %q is not one of the default %s\n", label, kind)
	}
}
