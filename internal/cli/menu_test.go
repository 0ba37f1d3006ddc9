package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"centavo/internal/chart"
	"centavo/internal/service"
	"centavo/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMenu(t *testing.T, script string) (*Menu, *bytes.Buffer, service.Storage) {
	t.Helper()

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() { _ = store.Close() })

	var out bytes.Buffer
	renderer := chart.NewRenderer(filepath.Join(t.TempDir(), "charts"))
	menu := NewMenu(store, renderer, strings.NewReader(script), &out)
	return menu, &out, store
}

func TestMenu_Exit(t *testing.T) {
	menu, out, _ := newTestMenu(t, "6\n")

	require.NoError(t, menu.Run(context.Background()))
	assert.Contains(t, out.String(), "Goodbye")
}

func TestMenu_AddThenTotal(t *testing.T) {
	script := strings.Join([]string{
		"1",     // add
		"12.50", // amount
		"lunch", // description
		"food",  // category, case-insensitive
		"3",     // view total
		"6",     // exit
	}, "\n") + "\n"
	menu, out, store := newTestMenu(t, script)

	require.NoError(t, menu.Run(context.Background()))

	assert.Contains(t, out.String(), "Added: $12.50 - lunch (Food)")
	assert.Contains(t, out.String(), "Total expenses: $12.50")

	count, err := store.CountExpenses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMenu_InvalidAmountReturnsToMenu(t *testing.T) {
	script := strings.Join([]string{
		"1",         // add
		"not-money", // bad amount
		"2",         // list still works afterwards
		"6",         // exit
	}, "\n") + "\n"
	menu, out, _ := newTestMenu(t, script)

	require.NoError(t, menu.Run(context.Background()))
	assert.Contains(t, out.String(), "not a valid amount")
	assert.Contains(t, out.String(), "No expenses found")
}

func TestMenu_InvalidChoice(t *testing.T) {
	menu, out, _ := newTestMenu(t, "9\n6\n")

	require.NoError(t, menu.Run(context.Background()))
	assert.Contains(t, out.String(), "Invalid choice")
}

func TestMenu_EOFExitsCleanly(t *testing.T) {
	menu, _, _ := newTestMenu(t, "")

	require.NoError(t, menu.Run(context.Background()))
}
