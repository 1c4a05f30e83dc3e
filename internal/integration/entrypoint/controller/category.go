package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/budget/internal/integration/entrypoint/dto"
)

// CategoryController handles the category vocabulary endpoint.
type CategoryController struct{}

// NewCategoryController creates a new category controller instance.
func NewCategoryController() *CategoryController {
	return &CategoryController{}
}

// List handles GET /categories requests. It returns the suggested expense
// categories and income sources.
func (c *CategoryController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToCategoriesResponse())
}
