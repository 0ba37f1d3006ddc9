package main

import (
	"fmt"
	"strings"
	"time"

	"centavo/internal/cli"
	"centavo/internal/model"
	"centavo/internal/report"

	"github.com/spf13/cobra"
)

func chartCmd() *cobra.Command {
	var (
		period periodFlags
		out    string
		years  []int
	)

	cmd := &cobra.Command{
		Use:   "chart <bar|pie|line|stacked|compare>",
		Short: "Render a chart image",
		Long: `Render spending data to a PNG image.

Chart types:
  bar      per-category totals for the chosen period
  pie      per-category share for the chosen period
  line     monthly totals over time
  stacked  monthly bars stacked by category
  compare  two years side by side (--years 2024,2025)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			kind := strings.ToLower(args[0])

			p, err := period.build()
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			renderer := chartRenderer()

			var path string
			switch kind {
			case "bar", "pie":
				expenses, err := store.ListExpenses(ctx, p.Filter())
				if err != nil {
					return err
				}
				s := report.Summarize(expenses, p)
				if kind == "bar" {
					path, err = renderer.CategoryBar(s, outName(out, "categories-bar.png"))
				} else {
					path, err = renderer.CategoryPie(s, outName(out, "categories-pie.png"))
				}
				if err != nil {
					return err
				}

			case "line", "stacked":
				expenses, err := store.ListExpenses(ctx, p.Filter())
				if err != nil {
					return err
				}
				series := report.MonthlySeries(expenses)
				if kind == "line" {
					path, err = renderer.MonthlyLine(series, outName(out, "monthly-line.png"))
				} else {
					path, err = renderer.StackedMonths(series, outName(out, "monthly-stacked.png"))
				}
				if err != nil {
					return err
				}

			case "compare":
				if len(years) != 2 {
					return fmt.Errorf("compare needs exactly two years, e.g. --years %d,%d",
						time.Now().Year()-1, time.Now().Year())
				}
				var series [2][]report.MonthBucket
				for i, year := range years {
					expenses, err := store.ListExpenses(ctx, model.YearPeriod(year).Filter())
					if err != nil {
						return err
					}
					series[i] = report.YearReport(expenses, year)
				}
				path, err = renderer.Comparison(series[0], series[1],
					fmt.Sprintf("%d", years[0]), fmt.Sprintf("%d", years[1]),
					outName(out, "comparison.png"))
				if err != nil {
					return err
				}

			default:
				return fmt.Errorf("unknown chart type %q (want bar, pie, line, stacked, or compare)", kind)
			}

			fmt.Println(cli.FormatSuccess("Chart saved to " + path))
			return nil
		},
	}

	period.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file name inside the charts directory")
	cmd.Flags().IntSliceVar(&years, "years", nil, "two years to compare (compare charts only)")

	return cmd
}

func outName(out, fallback string) string {
	if out != "" {
		return out
	}
	return fallback
}
