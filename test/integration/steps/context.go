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
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/application/usecase/category"
	"github.com/pennywise/backend/internal/application/usecase/expense"
	"github.com/pennywise/backend/internal/application/usecase/plan"
	"github.com/pennywise/backend/internal/application/usecase/preferences"
	"github.com/pennywise/backend/internal/infra/server/router"
	"github.com/pennywise/backend/internal/integration/adapters"
	"github.com/pennywise/backend/internal/integration/entrypoint/controller"
	"github.com/pennywise/backend/internal/integration/persistence"
	"github.com/pennywise/backend/internal/integration/persistence/model"
	"github.com/pennywise/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Values captured from responses, referenced as ${name} in later steps
	vars map[string]string

	// Direct access for Given steps
	categoryRepo adapter.CategoryRepository
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
		tc, err := newTestContext()
		if err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// newTestContext wires the full application against the shared in-memory
// database and embedded Redis, resets both, and seeds the default taxonomy.
func newTestContext() (*TestContext, error) {
	testDB := mock.NewDb(
		&model.CategoryModel{},
		&model.SubCategoryModel{},
		&model.ExpenseModel{},
		&model.FinancialPlanModel{},
		&model.PlanBreakdownModel{},
	)
	if err := testDB.Reset(); err != nil {
		return nil, err
	}

	redisClient := mock.NewRedis()
	if err := mock.ClearRedis(redisClient); err != nil {
		return nil, err
	}

	expenseRepo := persistence.NewExpenseRepository(testDB.DbConn)
	categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
	planRepo := persistence.NewPlanRepository(testDB.DbConn)
	txManager := persistence.NewTxManager(testDB.DbConn)

	clock := adapters.NewSystemClock()
	preferencesGateway := adapters.NewRedisPreferencesService(redisClient, adapter.Preferences{
		DefaultCurrency: "EUR",
		DailyLimit:      decimal.NewFromInt(50),
		MonthlyLimit:    decimal.NewFromInt(1500),
	})

	if _, err := category.NewSeedDefaultsUseCase(categoryRepo).Execute(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to seed default categories: %w", err)
	}

	expenseController := controller.NewExpenseController(
		expense.NewAddExpenseUseCase(expenseRepo, categoryRepo, preferencesGateway, txManager),
		expense.NewListExpensesUseCase(expenseRepo),
		expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo),
		expense.NewDeleteExpenseUseCase(expenseRepo),
		expense.NewReconcileEndDateUseCase(expenseRepo, txManager, clock),
		expense.NewUpdateFutureOccurrencesUseCase(expenseRepo, clock),
		expense.NewDeleteFutureOccurrencesUseCase(expenseRepo, clock),
	)
	planController := controller.NewPlanController(
		plan.NewCreatePlanUseCase(planRepo, expenseRepo, txManager, clock),
		plan.NewGetPlanUseCase(planRepo, clock),
		plan.NewListPlansUseCase(planRepo, clock),
		plan.NewUpdatePlanUseCase(planRepo, expenseRepo, txManager, clock),
		plan.NewDeletePlanUseCase(planRepo),
		plan.NewUpdateBreakdownUseCase(planRepo, txManager),
		plan.NewRegenerateBreakdownsUseCase(planRepo, expenseRepo, txManager, clock),
		plan.NewGetPlanPositionUseCase(planRepo, expenseRepo, clock),
	)
	categoryController := controller.NewCategoryController(
		category.NewListCategoriesUseCase(categoryRepo),
		category.NewCreateCategoryUseCase(categoryRepo),
		category.NewCreateSubCategoryUseCase(categoryRepo),
		category.NewDeleteCategoryUseCase(categoryRepo),
	)
	preferencesController := controller.NewPreferencesController(
		preferences.NewGetPreferencesUseCase(preferencesGateway),
		preferences.NewUpdatePreferencesUseCase(preferencesGateway),
	)
	healthController := controller.NewHealthController(func() bool { return true })

	r := router.NewRouter(
		healthController,
		expenseController,
		planController,
		categoryController,
		preferencesController,
		nil,
	)

	tc := &TestContext{
		vars:         make(map[string]string),
		categoryRepo: categoryRepo,
	}
	tc.engine = r.Setup("test")
	tc.server = httptest.NewServer(tc.engine)
	return tc, nil
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I use the category named "([^"]*)"$`, iUseTheCategoryNamed)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, iSaveTheResponseFieldAs)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items$`, theResponseFieldShouldHaveItems)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iUseTheCategoryNamed(ctx context.Context, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	bundles, err := tc.categoryRepo.FindAll(ctx)
	if err != nil {
		return ctx, fmt.Errorf("failed to list categories: %w", err)
	}
	for _, bundle := range bundles {
		if bundle.Category.Name == name {
			tc.vars["category_id"] = bundle.Category.ID.String()
			if len(bundle.SubCategories) > 0 {
				tc.vars["sub_category_id"] = bundle.SubCategories[0].ID.String()
			}
			return SetTestContext(ctx, tc), nil
		}
	}
	return ctx, fmt.Errorf("category %q not found", name)
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, []byte(body.Content))
}

func sendRequest(ctx context.Context, method, endpoint string, body []byte) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	url := tc.server.URL + tc.resolveVars(endpoint)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewBufferString(tc.resolveVars(string(body)))
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
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

func iSaveTheResponseFieldAs(ctx context.Context, path, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	value, err := tc.jsonPath(path)
	if err != nil {
		return ctx, err
	}
	tc.vars[name] = fmt.Sprintf("%v", value)
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
	if !strings.Contains(string(tc.responseBody), tc.resolveVars(expected)) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, path, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.jsonPath(path)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != tc.resolveVars(expected) {
		return fmt.Errorf("field '%s' expected '%s', got '%s'. Body: %s", path, expected, actual, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, path string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if _, err := tc.jsonPath(path); err != nil {
		return err
	}
	return nil
}

func theResponseFieldShouldHaveItems(ctx context.Context, path string, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.jsonPath(path)
	if err != nil {
		return err
	}
	list, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("field '%s' is not a list", path)
	}
	if len(list) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d. Body: %s", path, count, len(list), string(tc.responseBody))
	}
	return nil
}

// resolveVars substitutes ${name} placeholders with captured values.
func (tc *TestContext) resolveVars(s string) string {
	for name, value := range tc.vars {
		s = strings.ReplaceAll(s, "${"+name+"}", value)
	}
	return s
}

// jsonPath extracts a value from the response body using a dotted path.
// Numeric segments index into arrays, e.g. "expenses.0.amount".
func (tc *TestContext) jsonPath(path string) (interface{}, error) {
	var data interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response. Body: %s", path, string(tc.responseBody))
			}
			current = value
		case []interface{}:
			index, err := strconv.Atoi(segment)
			if err != nil {
				return nil, fmt.Errorf("field '%s': segment '%s' is not an array index", path, segment)
			}
			if index < 0 || index >= len(node) {
				return nil, fmt.Errorf("field '%s': index %d out of range (len %d)", path, index, len(node))
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field '%s': cannot descend into %T", path, current)
		}
	}
	return current, nil
}
