package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	"github.com/finance-tracker/budget/config"
	"github.com/finance-tracker/budget/internal/integration/adapters"
)

// registerSetupSteps registers steps that arrange the server under test.
func registerSetupSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the budget API is running$`, theBudgetAPIIsRunning)
	ctx.Step(`^the budget API is running on "([^"]*)" storage$`, theBudgetAPIIsRunningOnStorage)
	ctx.Step(`^the API requires access tokens$`, theAPIRequiresAccessTokens)
	ctx.Step(`^writes are limited to (\d+) per minute$`, writesAreLimitedTo)
	ctx.Step(`^the API restarts$`, theAPIRestarts)
	ctx.Step(`^the storage becomes unavailable$`, theStorageBecomesUnavailable)
	ctx.Step(`^today is "([^"]*)"$`, todayIs)
	ctx.Step(`^I have a valid access token$`, iHaveAValidAccessToken)
	ctx.Step(`^I have an expired access token$`, iHaveAnExpiredAccessToken)
	ctx.Step(`^I have an access token signed with another secret$`, iHaveAForeignAccessToken)
}

func theBudgetAPIIsRunning(ctx context.Context) (context.Context, error) {
	return theBudgetAPIIsRunningOnStorage(ctx, config.StorageDriverMemory)
}

func theBudgetAPIIsRunningOnStorage(ctx context.Context, driver string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.openStorage(driver); err != nil {
		return ctx, err
	}
	if err := tc.start(ctx); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func theAPIRequiresAccessTokens(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.cfg.JWT.Secret = testJWTSecret
	return ctx, tc.restartIfRunning(ctx)
}

func writesAreLimitedTo(ctx context.Context, limit int) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	// The test environment raises the limit, so run as development.
	tc.cfg.Server.Environment = "development"
	tc.cfg.RateLimit.MaxWrites = limit
	tc.cfg.RateLimit.Window = time.Minute
	return ctx, tc.restartIfRunning(ctx)
}

func theAPIRestarts(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if tc.storage == nil {
		return ctx, fmt.Errorf("the API server was never started")
	}
	return ctx, tc.start(ctx)
}

func theStorageBecomesUnavailable(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if tc.redis == nil {
		return ctx, fmt.Errorf("only redis storage can be taken down")
	}
	tc.redis.Stop()
	return ctx, nil
}

func todayIs(ctx context.Context, day string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	return ctx, tc.clock.SetDay(day)
}

func iHaveAValidAccessToken(ctx context.Context) (context.Context, error) {
	return issueToken(ctx, testJWTSecret, time.Hour)
}

func iHaveAnExpiredAccessToken(ctx context.Context) (context.Context, error) {
	return issueToken(ctx, testJWTSecret, -time.Hour)
}

func iHaveAForeignAccessToken(ctx context.Context) (context.Context, error) {
	return issueToken(ctx, "some-other-secret", time.Hour)
}

func issueToken(ctx context.Context, secret string, ttl time.Duration) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	token, err := adapters.NewTokenService(secret).IssueAccessToken(ctx, "household", ttl)
	if err != nil {
		return ctx, err
	}
	tc.accessToken = token
	return SetTestContext(ctx, tc), nil
}

func (tc *TestContext) restartIfRunning(ctx context.Context) error {
	if tc.server == nil {
		return nil
	}
	return tc.start(ctx)
}
