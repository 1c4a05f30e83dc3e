//go:build integration

// Package integration runs the godog feature files against the HTTP API.
package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/finance-tracker/budget/test/integration/steps"
)

func TestBudgetFeatures(t *testing.T) {
	opts := godog.Options{
		Format:   "pretty",
		Paths:    []string{"features"},
		Output:   colors.Colored(os.Stdout),
		Strict:   true,
		Tags:     os.Getenv("GODOG_TAGS"),
		TestingT: t,
		// Scenarios share one in-memory SQLite database.
		Concurrency: 1,
	}

	suite := godog.TestSuite{
		Name:                 "budget-api",
		TestSuiteInitializer: steps.InitializeTestSuite,
		ScenarioInitializer:  steps.InitializeScenario,
		Options:              &opts,
	}

	if status := suite.Run(); status != 0 {
		t.Fatalf("feature run failed with status %d", status)
	}
}
