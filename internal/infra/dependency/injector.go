// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/finance-tracker/budget/config"
	"github.com/finance-tracker/budget/internal/application/adapter"
	"github.com/finance-tracker/budget/internal/application/usecase/budget"
	"github.com/finance-tracker/budget/internal/application/usecase/expense"
	"github.com/finance-tracker/budget/internal/application/usecase/goal"
	"github.com/finance-tracker/budget/internal/application/usecase/income"
	"github.com/finance-tracker/budget/internal/infra/server/router"
	"github.com/finance-tracker/budget/internal/integration/adapters"
	"github.com/finance-tracker/budget/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/budget/internal/integration/entrypoint/middleware"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	Storage      *Storage
	Facade       *budget.Facade
	TokenService adapter.TokenService
	RateLimiter  *middleware.RateLimiter
	Router       *router.Router
}

// Option customizes the injector.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces the clock used to decide which goals are overdue.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The ledgers load their collections from storage here.
func NewInjector(ctx context.Context, cfg *config.Config, storage *Storage, opts ...Option) (*Injector, error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	facade, err := NewFacade(ctx, storage.Gateway, adapters.NewUUIDGenerator())
	if err != nil {
		return nil, err
	}

	healthController := controller.NewHealthController(storage.Driver, storage.HealthCheck)
	expenseController := controller.NewExpenseController(facade)
	incomeController := controller.NewIncomeController(facade)
	goalController := controller.NewGoalController(facade, o.now)
	summaryController := controller.NewSummaryController(facade)
	categoryController := controller.NewCategoryController()

	// Test runs send many writes from one address.
	var writeRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		writeRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		writeRateLimiter = middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxWrites, cfg.RateLimit.Window)
	}

	var tokenService adapter.TokenService
	var authMiddleware *middleware.AuthMiddleware
	if cfg.JWT.Secret != "" {
		tokenService = adapters.NewTokenService(cfg.JWT.Secret)
		authMiddleware = middleware.NewAuthMiddleware(tokenService)
	}

	r := router.NewRouter(
		healthController,
		expenseController,
		incomeController,
		goalController,
		summaryController,
		categoryController,
		writeRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:       cfg,
		Storage:      storage,
		Facade:       facade,
		TokenService: tokenService,
		RateLimiter:  writeRateLimiter,
		Router:       r,
	}, nil
}

// NewFacade builds the three ledgers over gateway and the facade over them.
func NewFacade(ctx context.Context, gateway adapter.StorageGateway, ids adapter.IDGenerator) (*budget.Facade, error) {
	expenses, err := expense.NewLedger(ctx, gateway, ids)
	if err != nil {
		return nil, err
	}
	incomes, err := income.NewLedger(ctx, gateway, ids)
	if err != nil {
		return nil, err
	}
	goals, err := goal.NewTracker(ctx, gateway, ids)
	if err != nil {
		return nil, err
	}

	return budget.NewFacade(expenses, incomes, goals), nil
}
