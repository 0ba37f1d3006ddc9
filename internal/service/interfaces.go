// Package service defines the interfaces between the command layer and
// the persistence layer.
package service

import (
	"context"

	"centavo/internal/model"
)

// Storage persists expenses. All methods honor context cancellation.
type Storage interface {
	// CreateExpense inserts a new expense and returns it with its
	// store-assigned id and timestamp.
	CreateExpense(ctx context.Context, ne model.NewExpense) (*model.Expense, error)
	// GetExpense returns the expense with the given id.
	GetExpense(ctx context.Context, id int64) (*model.Expense, error)
	// UpdateExpense applies a partial update and returns the result.
	UpdateExpense(ctx context.Context, id int64, upd model.ExpenseUpdate) (*model.Expense, error)
	// DeleteExpense removes the expense with the given id.
	DeleteExpense(ctx context.Context, id int64) error
	// ListExpenses returns expenses matching the filter, ordered by
	// creation time ascending.
	ListExpenses(ctx context.Context, f model.ExpenseFilter) ([]model.Expense, error)
	// CountExpenses returns the total number of stored expenses.
	CountExpenses(ctx context.Context) (int, error)
	// Migrate brings the database schema up to date.
	Migrate(ctx context.Context) error
	// Close releases the underlying database handle.
	Close() error
}
