package models

import "time"

// Expense categories
const (
	ExpenseCategoryFood      = "food"
	ExpenseCategoryTransport = "transport"
	ExpenseCategoryStay      = "stay"
	ExpenseCategoryGear      = "gear"
	ExpenseCategoryMisc      = "misc"
)

// ValidExpenseCategory reports whether c is one of the known categories
func ValidExpenseCategory(c string) bool {
	switch c {
	case ExpenseCategoryFood, ExpenseCategoryTransport, ExpenseCategoryStay, ExpenseCategoryGear, ExpenseCategoryMisc:
		return true
	}
	return false
}

// Expense represents a logged expense
type Expense struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	SpentAt   string    `json:"spentAt"` // YYYY-MM-DD
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Category  string    `json:"category"`
	Note      string    `json:"note,omitempty"`
	PinID     string    `json:"pinId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateExpenseRequest is the request body for logging an expense
type CreateExpenseRequest struct {
	SpentAt  string  `json:"spentAt,omitempty"` // defaults to today
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency,omitempty"` // defaults to INR
	Category string  `json:"category,omitempty"` // defaults to misc
	Note     string  `json:"note,omitempty"`
	PinID    string  `json:"pinId,omitempty"`
}
