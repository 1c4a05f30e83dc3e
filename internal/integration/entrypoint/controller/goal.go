package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/budget/internal/application/usecase/budget"
	domainerror "github.com/finance-tracker/budget/internal/domain/error"
	"github.com/finance-tracker/budget/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	facade *budget.Facade
	now    func() time.Time
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(facade *budget.Facade, now func() time.Time) *GoalController {
	if now == nil {
		now = time.Now
	}
	return &GoalController{
		facade: facade,
		now:    now,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(c.facade.Goals()))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.CreateGoalRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		handleBudgetError(ctx, err)
		return
	}

	change, err := c.facade.AddGoal(ctx.Request.Context(), req.ToInput())
	if err != nil {
		handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalChangeResponse(change))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	g, found := c.facade.Goal(ctx.Param("id"))
	if !found {
		notFound(ctx, domainerror.ErrCodeGoalNotFound, domainerror.ErrGoalNotFound)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToGoalResponse(g))
}

// UpdateProgress handles POST /goals/:id/progress requests. The delta may be
// negative to record a withdrawal.
func (c *GoalController) UpdateProgress(ctx *gin.Context) {
	var req dto.UpdateProgressRequest
	if !bindJSON(ctx, &req) {
		return
	}

	change, found, err := c.facade.UpdateGoalProgress(ctx.Request.Context(), ctx.Param("id"), *req.Delta)
	if err != nil {
		handleBudgetError(ctx, err)
		return
	}
	if !found {
		notFound(ctx, domainerror.ErrCodeGoalNotFound, domainerror.ErrGoalNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalChangeResponse(change))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	remaining, err := c.facade.RemoveGoal(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		handleBudgetError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(remaining))
}

// Overview handles GET /goals/overview requests.
func (c *GoalController) Overview(ctx *gin.Context) {
	today := c.now().Format("2006-01-02")
	ctx.JSON(http.StatusOK, dto.ToGoalOverviewResponse(c.facade.GoalOverview(today)))
}
