// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/budget/config"
	"github.com/finance-tracker/budget/internal/infra/dependency"
	"github.com/finance-tracker/budget/internal/integration/persistence"
	"github.com/finance-tracker/budget/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken string

	// Storage and wiring
	cfg      *config.Config
	storage  *dependency.Storage
	injector *dependency.Injector
	redis    *mock.Redis
	clock    *mock.Time

	// Values captured from earlier responses, substituted as {name}.
	saved map[string]string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.JWT.Secret = ""

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			cfg:            cfg,
			clock:          mock.NewTime(),
			saved:          make(map[string]string),
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc := GetTestContext(ctx); tc != nil {
			tc.shutdown()
			if tc.redis != nil {
				tc.redis.Close()
			}
		}
		return ctx, nil
	})

	registerSetupSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
}

// registerResponseSteps registers response assertion steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items?$`, theResponseListShouldHaveItems)
	ctx.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, iRememberTheResponseFieldAs)
}

// start wires a fresh injector over tc.storage and serves it.
func (tc *TestContext) start(ctx context.Context) error {
	tc.shutdown()

	injector, err := dependency.NewInjector(ctx, tc.cfg, tc.storage, dependency.WithClock(tc.clock.Now))
	if err != nil {
		return fmt.Errorf("failed to build injector: %w", err)
	}

	tc.injector = injector
	tc.server = httptest.NewServer(injector.Router.Setup(tc.cfg.Server.Environment))
	return nil
}

func (tc *TestContext) shutdown() {
	if tc.server != nil {
		tc.server.Close()
		tc.server = nil
	}
}

// openStorage picks the backend for the scenario.
func (tc *TestContext) openStorage(driver string) error {
	switch driver {
	case config.StorageDriverMemory:
		tc.storage = dependency.NewStorage(driver, persistence.NewMemoryStorage())
	case config.StorageDriverRedis:
		r, err := mock.NewRedis()
		if err != nil {
			return err
		}
		tc.redis = r
		tc.storage = dependency.NewStorage(driver, persistence.NewRedisStorage(r.Client, tc.cfg.Storage.KeyPrefix))
	case config.StorageDriverSQLite:
		database := mock.NewDb()
		if err := database.ClearDB(); err != nil {
			return err
		}
		tc.storage = dependency.NewStorage(driver, persistence.NewGormStorage(database.DbConn, tc.cfg.Storage.KeyPrefix))
	default:
		return fmt.Errorf("unknown storage driver %q", driver)
	}
	return nil
}

// expand replaces {name} placeholders with remembered values.
func (tc *TestContext) expand(s string) string {
	for name, value := range tc.saved {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return s
}

func (tc *TestContext) send(ctx context.Context, method, endpoint string, body io.Reader) (context.Context, error) {
	if tc.server == nil {
		return ctx, fmt.Errorf("the API server is not running")
	}

	url := tc.server.URL + tc.expand(endpoint)
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return SetTestContext(ctx, tc), nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	return tc.send(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	return tc.send(ctx, method, endpoint, bytes.NewBufferString(tc.expand(body.Content)))
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), tc.expand(expected)) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.responseField(field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if expected = tc.expand(expected); actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := tc.responseField(field)
	return err
}

func theResponseListShouldHaveItems(ctx context.Context, field string, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.responseField(field)
	if err != nil {
		return err
	}
	list, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, value)
	}
	if len(list) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d. Body: %s", field, count, len(list), string(tc.responseBody))
	}
	return nil
}

func iRememberTheResponseFieldAs(ctx context.Context, field, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	value, err := tc.responseField(field)
	if err != nil {
		return ctx, err
	}
	tc.saved[name] = fmt.Sprintf("%v", value)
	return SetTestContext(ctx, tc), nil
}

// responseField resolves a dotted path such as "expense.id" or
// "categories.0.category" in the last JSON response.
func (tc *TestContext) responseField(path string) (interface{}, error) {
	var current interface{}
	if err := json.Unmarshal(tc.responseBody, &current); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response: %s", path, string(tc.responseBody))
			}
			current = value
		case []interface{}:
			var index int
			if _, err := fmt.Sscanf(part, "%d", &index); err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("index '%s' of '%s' is out of range", part, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field '%s' not found in response: %s", path, string(tc.responseBody))
		}
	}
	return current, nil
}
