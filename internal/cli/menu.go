package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"centavo/internal/chart"
	"centavo/internal/common"
	"centavo/internal/model"
	"centavo/internal/report"
	"centavo/internal/service"

	"github.com/shopspring/decimal"
)

// Menu is the interactive console loop. Every operation error is
// printed and control returns to the menu; only input EOF or context
// cancellation exits.
type Menu struct {
	store  service.Storage
	charts *chart.Renderer
	reader *LineReader
	writer io.Writer
}

// NewMenu builds the interactive menu over the given storage and chart
// renderer.
func NewMenu(store service.Storage, charts *chart.Renderer, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		store:  store,
		charts: charts,
		reader: NewLineReader(in),
		writer: out,
	}
}

// Run executes the menu loop until the user exits.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintln(m.writer, FormatTitle("=== Centavo Expense Tracker ==="))

	for {
		fmt.Fprint(m.writer, `
What would you like to do?
1. Add an expense
2. List expenses
3. View total
4. Category report
5. Generate chart
6. Exit

Enter your choice (1-6): `)

		choice, err := m.reader.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, ErrInputCancelled) {
				fmt.Fprintln(m.writer)
				return nil
			}
			return err
		}

		switch choice {
		case "1":
			err = m.addExpense(ctx)
		case "2":
			err = m.listExpenses(ctx)
		case "3":
			err = m.viewTotal(ctx)
		case "4":
			err = m.categoryReport(ctx)
		case "5":
			err = m.generateChart(ctx)
		case "6":
			fmt.Fprintln(m.writer, "\nGoodbye!")
			return nil
		default:
			fmt.Fprintln(m.writer, FormatWarning("Invalid choice. Please try again."))
			continue
		}

		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, ErrInputCancelled) {
				return nil
			}
			if errors.Is(err, common.ErrStorage) {
				return err
			}
			fmt.Fprintln(m.writer, FormatError(common.UserMessage(err)))
		}
	}
}

func (m *Menu) prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprint(m.writer, label)
	return m.reader.ReadLine(ctx)
}

func (m *Menu) addExpense(ctx context.Context) error {
	raw, err := m.prompt(ctx, "Enter amount: $")
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("%w: %q is not a valid amount", common.ErrValidation, raw)
	}

	description, err := m.prompt(ctx, "Enter description: ")
	if err != nil {
		return err
	}

	raw, err = m.prompt(ctx, fmt.Sprintf("Enter category (%s): ", model.CategoryNames()))
	if err != nil {
		return err
	}
	category, err := model.ParseCategory(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	exp, err := m.store.CreateExpense(ctx, model.NewExpense{
		Amount:      amount,
		Description: description,
		Category:    category,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(m.writer, FormatSuccess(fmt.Sprintf("Added: %s - %s (%s)",
		FormatAmount(exp.Amount), exp.Description, exp.Category)))
	return nil
}

func (m *Menu) listExpenses(ctx context.Context) error {
	expenses, err := m.store.ListExpenses(ctx, model.ExpenseFilter{})
	if err != nil {
		return err
	}
	fmt.Fprintln(m.writer)
	PrintExpenses(m.writer, expenses)
	return nil
}

func (m *Menu) viewTotal(ctx context.Context) error {
	expenses, err := m.store.ListExpenses(ctx, model.ExpenseFilter{})
	if err != nil {
		return err
	}
	s := report.Summarize(expenses, model.AllTime())
	fmt.Fprintf(m.writer, "\nTotal expenses: %s\n", FormatAmount(s.Total))
	return nil
}

func (m *Menu) categoryReport(ctx context.Context) error {
	expenses, err := m.store.ListExpenses(ctx, model.ExpenseFilter{})
	if err != nil {
		return err
	}
	fmt.Fprintln(m.writer)
	PrintSummary(m.writer, report.Summarize(expenses, model.AllTime()))
	return nil
}

func (m *Menu) generateChart(ctx context.Context) error {
	kind, err := m.prompt(ctx, "Chart type (bar, pie): ")
	if err != nil {
		return err
	}

	expenses, err := m.store.ListExpenses(ctx, model.ExpenseFilter{})
	if err != nil {
		return err
	}
	s := report.Summarize(expenses, model.AllTime())

	var path string
	switch kind {
	case "bar":
		path, err = m.charts.CategoryBar(s, "categories-bar.png")
	case "pie":
		path, err = m.charts.CategoryPie(s, "categories-pie.png")
	default:
		return fmt.Errorf("%w: unknown chart type %q", common.ErrValidation, kind)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(m.writer, FormatSuccess("Chart saved to "+path))
	return nil
}
