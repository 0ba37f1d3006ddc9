// Package model defines the core domain types for centavo.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single recorded spending event.
type Expense struct {
	CreatedAt   time.Time
	Description string
	Category    Category
	Amount      decimal.Decimal
	ID          int64
}

// NewExpense carries the user-supplied fields for a new expense.
// A zero CreatedAt means "now".
type NewExpense struct {
	CreatedAt   time.Time
	Description string
	Category    Category
	Amount      decimal.Decimal
}

// ExpenseUpdate describes a partial update. Nil fields are left
// untouched.
type ExpenseUpdate struct {
	Amount      *decimal.Decimal
	Description *string
	Category    *Category
}

// Empty reports whether the update would change nothing.
func (u ExpenseUpdate) Empty() bool {
	return u.Amount == nil && u.Description == nil && u.Category == nil
}

// ExpenseFilter selects expenses by any combination of criteria.
// Nil/empty fields match everything. The date range is half-open:
// Start <= created_at < End.
type ExpenseFilter struct {
	Start     *time.Time
	End       *time.Time
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Category  *Category
	Keyword   string
}
