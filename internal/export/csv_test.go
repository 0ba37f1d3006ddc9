package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"centavo/internal/model"
	"centavo/internal/report"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExpenses() []model.Expense {
	base := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)
	return []model.Expense{
		{ID: 1, Amount: decimal.RequireFromString("10.00"), Description: "lunch", Category: model.CategoryFood, CreatedAt: base},
		{ID: 2, Amount: decimal.RequireFromString("20.00"), Description: "bus, late", Category: model.CategoryTransport, CreatedAt: base.Add(time.Hour)},
	}
}

func TestWriteExpenses(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExpenses(&buf, testExpenses()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"ID", "Date", "Amount", "Category", "Description"}, records[0])
	assert.Equal(t, []string{"1", "2025-03-10 12:00:00", "10.00", "Food", "lunch"}, records[1])
	// Commas in descriptions survive quoting.
	assert.Equal(t, "bus, late", records[2][4])
}

func TestWriteExpenses_EmptyListStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExpenses(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	s := report.Summarize(testExpenses(), model.AllTime())
	require.NoError(t, WriteSummary(&buf, s))

	content := buf.String()
	assert.Contains(t, content, "CATEGORY BREAKDOWN")
	assert.Contains(t, content, "Transport,20.00,66.67%,1")
	assert.Contains(t, content, "Food,10.00,33.33%,1")
	assert.Contains(t, content, "Total,30.00")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	expenses := testExpenses()
	s := report.Summarize(expenses, model.AllTime())

	require.NoError(t, WriteFile(path, expenses, s, true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "lunch")
	assert.Contains(t, string(data), "CATEGORY BREAKDOWN")
}
