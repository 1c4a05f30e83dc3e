package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/budget/internal/application/usecase/budget"
	domainerror "github.com/finance-tracker/budget/internal/domain/error"
	"github.com/finance-tracker/budget/internal/integration/entrypoint/dto"
)

const maxRecentLimit = 100

// SummaryController handles the overview endpoints spanning several ledgers.
type SummaryController struct {
	facade *budget.Facade
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(facade *budget.Facade) *SummaryController {
	return &SummaryController{
		facade: facade,
	}
}

// Summary handles GET /summary requests.
func (c *SummaryController) Summary(ctx *gin.Context) {
	period, ok := periodQuery(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(c.facade.GetSummary(period)))
}

// RecentTransactions handles GET /transactions/recent requests.
func (c *SummaryController) RecentTransactions(ctx *gin.Context) {
	period, ok := periodQuery(ctx)
	if !ok {
		return
	}

	limit := budget.DefaultRecentLimit
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxRecentLimit {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "limit must be a number between 1 and 100",
				Code:  string(domainerror.ErrCodeMissingFields),
			})
			return
		}
		limit = parsed
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(c.facade.RecentTransactions(period, limit)))
}
