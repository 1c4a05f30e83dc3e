package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/budget/internal/domain/entity"
	domainerror "github.com/finance-tracker/budget/internal/domain/error"
	"github.com/finance-tracker/budget/internal/integration/entrypoint/dto"
)

// handleBudgetError writes err as a JSON error response.
func handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(statusCodeForBudgetError(budgetErr.Code), dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	slog.ErrorContext(ctx.Request.Context(), "Request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)

	var storageErr *domainerror.StorageError
	if errors.As(err, &storageErr) {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Storage is unavailable, the change was not saved",
			Code:  string(domainerror.ErrCodeStorageFailure),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeStorageFailure),
	})
}

// statusCodeForBudgetError maps budget error codes to HTTP status codes.
func statusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound,
		domainerror.ErrCodeIncomeNotFound,
		domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidPeriod,
		domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidDate,
		domainerror.ErrCodeEmptyLabel,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// bindJSON decodes the request body into req, writing a 400 on failure.
func bindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingFields),
			Details: err.Error(),
		})
		return false
	}
	return true
}

// periodQuery parses the optional period query parameter. A missing value
// selects all records.
func periodQuery(ctx *gin.Context) (entity.Period, bool) {
	period, err := entity.ParsePeriod(ctx.Query("period"))
	if err != nil {
		handleBudgetError(ctx, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidPeriod,
			"period must be formatted as YYYY-MM",
			err,
		))
		return "", false
	}
	return period, true
}

func notFound(ctx *gin.Context, code domainerror.BudgetErrorCode, sentinel error) {
	handleBudgetError(ctx, domainerror.NewBudgetError(code, sentinel.Error(), nil))
}
