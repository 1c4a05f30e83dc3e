package dto

import "github.com/finance-tracker/budget/internal/domain/entity"

// CategoriesResponse lists the suggested expense categories and income
// sources. Other labels are accepted too.
type CategoriesResponse struct {
	ExpenseCategories []string `json:"expense_categories"`
	IncomeSources     []string `json:"income_sources"`
}

// ToCategoriesResponse builds the response from the default vocabularies.
func ToCategoriesResponse() CategoriesResponse {
	return CategoriesResponse{
		ExpenseCategories: entity.DefaultExpenseCategories(),
		IncomeSources:     entity.DefaultIncomeSources(),
	}
}
