// Package storage provides the data persistence layer for centavo.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"centavo/internal/common"
	"centavo/internal/model"
)

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrInvalidDateRange = errors.New("start date must be before end date")
	ErrEmptyUpdate      = errors.New("update contains no fields")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateNewExpense checks the invariants of a new expense: positive
// amount, known category, non-empty description.
func validateNewExpense(ne model.NewExpense) error {
	if !ne.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero, got %s",
			common.ErrValidation, ne.Amount)
	}
	if !ne.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", common.ErrValidation, ne.Category)
	}
	if strings.TrimSpace(ne.Description) == "" {
		return fmt.Errorf("%w: description cannot be empty", common.ErrValidation)
	}
	return nil
}

// validateUpdate checks only the fields the update supplies.
func validateUpdate(upd model.ExpenseUpdate) error {
	if upd.Empty() {
		return fmt.Errorf("%w: %s", common.ErrValidation, ErrEmptyUpdate)
	}
	if upd.Amount != nil && !upd.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero, got %s",
			common.ErrValidation, upd.Amount)
	}
	if upd.Category != nil && !upd.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", common.ErrValidation, *upd.Category)
	}
	if upd.Description != nil && strings.TrimSpace(*upd.Description) == "" {
		return fmt.Errorf("%w: description cannot be empty", common.ErrValidation)
	}
	return nil
}

// validateFilter rejects inverted ranges.
func validateFilter(f model.ExpenseFilter) error {
	if f.Start != nil && f.End != nil && f.End.Before(*f.Start) {
		return fmt.Errorf("%w: %s", common.ErrValidation, ErrInvalidDateRange)
	}
	if f.MinAmount != nil && f.MaxAmount != nil && f.MaxAmount.LessThan(*f.MinAmount) {
		return fmt.Errorf("%w: max amount is below min amount", common.ErrValidation)
	}
	return nil
}
