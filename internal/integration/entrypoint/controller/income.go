package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/budget/internal/application/usecase/budget"
	"github.com/finance-tracker/budget/internal/application/usecase/income"
	domainerror "github.com/finance-tracker/budget/internal/domain/error"
	"github.com/finance-tracker/budget/internal/integration/entrypoint/dto"
)

// IncomeController handles income endpoints.
type IncomeController struct {
	facade *budget.Facade
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(facade *budget.Facade) *IncomeController {
	return &IncomeController{
		facade: facade,
	}
}

// List handles GET /incomes requests.
func (c *IncomeController) List(ctx *gin.Context) {
	period, ok := periodQuery(ctx)
	if !ok {
		return
	}

	incomes := c.facade.FilterIncomes(income.Filter{
		Period: period,
		Source: ctx.Query("source"),
		Search: ctx.Query("search"),
	})
	ctx.JSON(http.StatusOK, dto.ToIncomeListResponse(incomes))
}

// Create handles POST /incomes requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	var req dto.CreateIncomeRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		handleBudgetError(ctx, err)
		return
	}

	change, err := c.facade.AddIncome(ctx.Request.Context(), req.ToInput())
	if err != nil {
		handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeChangeResponse(change))
}

// Get handles GET /incomes/:id requests.
func (c *IncomeController) Get(ctx *gin.Context) {
	in, found := c.facade.Income(ctx.Param("id"))
	if !found {
		notFound(ctx, domainerror.ErrCodeIncomeNotFound, domainerror.ErrIncomeNotFound)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToIncomeResponse(in))
}

// Delete handles DELETE /incomes/:id requests.
func (c *IncomeController) Delete(ctx *gin.Context) {
	remaining, err := c.facade.RemoveIncome(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		handleBudgetError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToIncomeListResponse(remaining))
}

// Total handles GET /incomes/total requests.
func (c *IncomeController) Total(ctx *gin.Context) {
	period, ok := periodQuery(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.TotalResponse{
		Period: period.String(),
		Total:  c.facade.GetTotalIncome(period).String(),
	})
}
