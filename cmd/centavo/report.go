package main

import (
	"fmt"
	"os"
	"time"

	"centavo/internal/cli"
	"centavo/internal/model"
	"centavo/internal/report"

	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate expenses into reports",
		Long:  `Compute totals and per-category breakdowns, either for a chosen period or rolled up by month.`,
	}

	cmd.AddCommand(reportSummaryCmd())
	cmd.AddCommand(reportMonthlyCmd())
	cmd.AddCommand(reportYearlyCmd())

	return cmd
}

func reportSummaryCmd() *cobra.Command {
	var period periodFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Category breakdown for a period",
		Long:  `Show the total and the per-category breakdown with percentages for the chosen period (default: all time).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			p, err := period.build()
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			expenses, err := store.ListExpenses(ctx, p.Filter())
			if err != nil {
				return err
			}

			cli.PrintSummary(os.Stdout, report.Summarize(expenses, p))
			return nil
		},
	}

	period.register(cmd)
	return cmd
}

func reportMonthlyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monthly",
		Short: "Monthly spending rollup",
		Long:  `Show total spending for every month on record, gaps included.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			expenses, err := store.ListExpenses(ctx, model.ExpenseFilter{})
			if err != nil {
				return err
			}

			cli.PrintMonthly(os.Stdout, report.MonthlySeries(expenses))
			return nil
		},
	}
}

func reportYearlyCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "yearly",
		Short: "Month-by-month breakdown of a year",
		Long:  `Show every month of a year with its total and category breakdown.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if year == 0 {
				year = time.Now().Year()
			}
			p := model.YearPeriod(year)

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			expenses, err := store.ListExpenses(ctx, p.Filter())
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Spending in %d", year)))
			cli.PrintMonthly(os.Stdout, report.YearReport(expenses, year))
			fmt.Println()
			cli.PrintSummary(os.Stdout, report.Summarize(expenses, p))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "year to report on (default: current year)")
	return cmd
}
