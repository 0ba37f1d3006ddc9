package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"centavo/internal/common"
	"centavo/internal/model"

	"github.com/shopspring/decimal"
)

// CreateExpense inserts a new expense and returns it with its assigned
// id and creation timestamp.
func (s *SQLiteStorage) CreateExpense(ctx context.Context, ne model.NewExpense) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateNewExpense(ne); err != nil {
		return nil, err
	}

	createdAt := ne.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (amount, description, category, created_at)
		VALUES (?, ?, ?, ?)`,
		ne.Amount.InexactFloat64(), ne.Description, string(ne.Category), createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to insert expense: %v", common.ErrStorage, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read inserted id: %v", common.ErrStorage, err)
	}

	slog.Debug("created expense",
		"id", id,
		"amount", ne.Amount.String(),
		"category", ne.Category)

	return &model.Expense{
		ID:          id,
		Amount:      ne.Amount,
		Description: ne.Description,
		Category:    ne.Category,
		CreatedAt:   createdAt,
	}, nil
}

// GetExpense returns the expense with the given id.
func (s *SQLiteStorage) GetExpense(ctx context.Context, id int64) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, amount, description, category, created_at
		FROM expenses
		WHERE id = ?`, id)

	exp, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: expense %d", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query expense %d: %v", common.ErrStorage, id, err)
	}
	return exp, nil
}

// UpdateExpense applies a partial update to the expense with the given
// id and returns the updated row.
func (s *SQLiteStorage) UpdateExpense(ctx context.Context, id int64, upd model.ExpenseUpdate) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateUpdate(upd); err != nil {
		return nil, err
	}

	set := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if upd.Amount != nil {
		set = append(set, "amount = ?")
		args = append(args, upd.Amount.InexactFloat64())
	}
	if upd.Description != nil {
		set = append(set, "description = ?")
		args = append(args, *upd.Description)
	}
	if upd.Category != nil {
		set = append(set, "category = ?")
		args = append(args, string(*upd.Category))
	}
	args = append(args, id)

	query := "UPDATE expenses SET " + strings.Join(set, ", ") + " WHERE id = ?"
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to update expense %d: %v", common.ErrStorage, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read affected rows: %v", common.ErrStorage, err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: expense %d", common.ErrNotFound, id)
	}

	slog.Debug("updated expense", "id", id)
	return s.GetExpense(ctx, id)
}

// DeleteExpense removes the expense with the given id.
func (s *SQLiteStorage) DeleteExpense(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: failed to delete expense %d: %v", common.ErrStorage, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to read affected rows: %v", common.ErrStorage, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: expense %d", common.ErrNotFound, id)
	}

	slog.Debug("deleted expense", "id", id)
	return nil
}

// ListExpenses returns expenses matching the filter, ordered by
// creation time ascending with id as tiebreaker.
func (s *SQLiteStorage) ListExpenses(ctx context.Context, f model.ExpenseFilter) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateFilter(f); err != nil {
		return nil, err
	}

	query := `
		SELECT id, amount, description, category, created_at
		FROM expenses
		WHERE 1=1`
	args := make([]any, 0, 6)

	if f.Start != nil {
		query += " AND created_at >= ?"
		args = append(args, *f.Start)
	}
	if f.End != nil {
		query += " AND created_at < ?"
		args = append(args, *f.End)
	}
	if f.Category != nil {
		query += " AND category = ?"
		args = append(args, string(*f.Category))
	}
	if f.MinAmount != nil {
		query += " AND amount >= ?"
		args = append(args, f.MinAmount.InexactFloat64())
	}
	if f.MaxAmount != nil {
		query += " AND amount <= ?"
		args = append(args, f.MaxAmount.InexactFloat64())
	}
	if f.Keyword != "" {
		query += " AND (description LIKE ? OR category LIKE ?)"
		pattern := "%" + f.Keyword + "%"
		args = append(args, pattern, pattern)
	}

	query += " ORDER BY created_at ASC, id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query expenses: %v", common.ErrStorage, err)
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		exp, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan expense: %v", common.ErrStorage, err)
		}
		expenses = append(expenses, *exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating expenses: %v", common.ErrStorage, err)
	}

	slog.Debug("listed expenses", "count", len(expenses))
	return expenses, nil
}

// CountExpenses returns the total number of stored expenses.
func (s *SQLiteStorage) CountExpenses(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: failed to count expenses: %v", common.ErrStorage, err)
	}
	return count, nil
}

// scanner abstracts sql.Row and sql.Rows for scanExpense.
type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(row scanner) (*model.Expense, error) {
	var (
		exp      model.Expense
		amount   float64
		category string
	)
	if err := row.Scan(&exp.ID, &amount, &exp.Description, &category, &exp.CreatedAt); err != nil {
		return nil, err
	}
	exp.Amount = decimal.NewFromFloat(amount)
	exp.Category = model.Category(category)
	return &exp, nil
}
