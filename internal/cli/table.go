package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"centavo/internal/model"
	"centavo/internal/report"
)

// PrintExpenses writes the expense list as an aligned table.
func PrintExpenses(w io.Writer, expenses []model.Expense) {
	if len(expenses) == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("No expenses found."))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer func() { _ = tw.Flush() }()

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		HeaderStyle.Render("ID"),
		HeaderStyle.Render("Date"),
		HeaderStyle.Render("Amount"),
		HeaderStyle.Render("Category"),
		HeaderStyle.Render("Description"))
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 4),
		strings.Repeat("-", 16),
		strings.Repeat("-", 10),
		strings.Repeat("-", 13),
		strings.Repeat("-", 30))

	for _, exp := range expenses {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			exp.ID,
			exp.CreatedAt.Format("2006-01-02 15:04"),
			FormatAmount(exp.Amount),
			exp.Category,
			exp.Description)
	}
}

// PrintSummary writes a report summary as an aligned table.
func PrintSummary(w io.Writer, s report.Summary) {
	fmt.Fprintln(w, FormatTitle(fmt.Sprintf("Spending report (%s)", s.Period.Label())))

	if s.Count == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("No expenses in this period."))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		HeaderStyle.Render("Category"),
		HeaderStyle.Render("Amount"),
		HeaderStyle.Render("Share"),
		HeaderStyle.Render("Count"))
	for _, ct := range s.Categories {
		fmt.Fprintf(tw, "%s\t%s\t%s%%\t%d\n",
			ct.Category,
			FormatAmount(ct.Total),
			ct.Percent.StringFixed(2),
			ct.Count)
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "\nTotal: %s across %d expenses\n",
		FormatAmount(s.Total), s.Count)
}

// PrintMonthly writes monthly rollups as an aligned table.
func PrintMonthly(w io.Writer, series []report.MonthBucket) {
	if len(series) == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("No expenses recorded."))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer func() { _ = tw.Flush() }()

	fmt.Fprintf(tw, "%s\t%s\n",
		HeaderStyle.Render("Month"),
		HeaderStyle.Render("Total"))
	for _, bucket := range series {
		fmt.Fprintf(tw, "%s\t%s\n",
			bucket.Month.Format("2006-01"),
			FormatAmount(bucket.Total))
	}
}
