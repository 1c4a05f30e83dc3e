package entity

// CategoryType distinguishes expense categories from income sources.
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// OtherLabel is the catch-all label present in both vocabularies.
const OtherLabel = "Other"

// DefaultExpenseCategories returns the recognized expense categories.
// The set is not exhaustive: ledgers accept any label.
func DefaultExpenseCategories() []string {
	return []string{
		"Groceries",
		"Transport",
		"Housing",
		"Entertainment",
		"Health",
		"Education",
		"Clothing",
		"Restaurants",
		"Travel",
		OtherLabel,
	}
}

// DefaultIncomeSources returns the recognized income sources.
func DefaultIncomeSources() []string {
	return []string{
		"Salary",
		"Freelance",
		"Investments",
		"Gifts",
		"Rent",
		"Sales",
		OtherLabel,
	}
}

// IsKnownLabel reports whether label belongs to the default vocabulary of the given type.
func IsKnownLabel(categoryType CategoryType, label string) bool {
	var labels []string
	switch categoryType {
	case CategoryTypeExpense:
		labels = DefaultExpenseCategories()
	case CategoryTypeIncome:
		labels = DefaultIncomeSources()
	}
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
