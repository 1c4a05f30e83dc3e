package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/budget/internal/application/usecase/budget"
	"github.com/finance-tracker/budget/internal/application/usecase/expense"
	domainerror "github.com/finance-tracker/budget/internal/domain/error"
	"github.com/finance-tracker/budget/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	facade *budget.Facade
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(facade *budget.Facade) *ExpenseController {
	return &ExpenseController{
		facade: facade,
	}
}

// List handles GET /expenses requests, optionally filtered by period,
// category and a search term.
func (c *ExpenseController) List(ctx *gin.Context) {
	period, ok := periodQuery(ctx)
	if !ok {
		return
	}

	expenses := c.facade.FilterExpenses(expense.Filter{
		Period:   period,
		Category: ctx.Query("category"),
		Search:   ctx.Query("search"),
	})
	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(expenses))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.CreateExpenseRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		handleBudgetError(ctx, err)
		return
	}

	change, err := c.facade.AddExpense(ctx.Request.Context(), req.ToInput())
	if err != nil {
		handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseChangeResponse(change))
}

// Get handles GET /expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	e, found := c.facade.Expense(ctx.Param("id"))
	if !found {
		notFound(ctx, domainerror.ErrCodeExpenseNotFound, domainerror.ErrExpenseNotFound)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(e))
}

// Delete handles DELETE /expenses/:id requests. Deleting an unknown expense
// succeeds and returns the unchanged collection.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	remaining, err := c.facade.RemoveExpense(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		handleBudgetError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(remaining))
}

// Total handles GET /expenses/total requests.
func (c *ExpenseController) Total(ctx *gin.Context) {
	period, ok := periodQuery(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.TotalResponse{
		Period: period.String(),
		Total:  c.facade.GetTotalExpenses(period).String(),
	})
}

// ByCategory handles GET /expenses/by-category requests.
func (c *ExpenseController) ByCategory(ctx *gin.Context) {
	period, ok := periodQuery(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(period, c.facade.GetExpensesByCategory(period)))
}
