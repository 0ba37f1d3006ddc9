// Package export writes expense data to CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"centavo/internal/model"
	"centavo/internal/report"
)

// WriteExpenses writes the expense list as CSV with a header row.
func WriteExpenses(w io.Writer, expenses []model.Expense) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write([]string{"ID", "Date", "Amount", "Category", "Description"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, exp := range expenses {
		row := []string{
			strconv.FormatInt(exp.ID, 10),
			exp.CreatedAt.Format("2006-01-02 15:04:05"),
			exp.Amount.StringFixed(2),
			string(exp.Category),
			exp.Description,
		}
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("failed to write expense %d: %w", exp.ID, err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// WriteSummary appends a category breakdown section after the expense
// rows, mirroring the text report.
func WriteSummary(w io.Writer, s report.Summary) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	rows := [][]string{
		{},
		{"CATEGORY BREAKDOWN", s.Period.Label()},
		{"Category", "Amount", "Percentage", "Count"},
	}
	for _, ct := range s.Categories {
		rows = append(rows, []string{
			string(ct.Category),
			ct.Total.StringFixed(2),
			ct.Percent.StringFixed(2) + "%",
			strconv.Itoa(ct.Count),
		})
	}
	rows = append(rows, []string{"Total", s.Total.StringFixed(2), "", strconv.Itoa(s.Count)})

	for _, row := range rows {
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// WriteFile writes expenses (and, when withSummary is set, the
// breakdown) to the given path.
func WriteFile(path string, expenses []model.Expense, s report.Summary, withSummary bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := WriteExpenses(f, expenses); err != nil {
		return err
	}
	if withSummary {
		if err := WriteSummary(f, s); err != nil {
			return err
		}
	}
	return f.Close()
}
