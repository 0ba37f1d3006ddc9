package main

import (
	"context"
	"fmt"
	"time"

	"centavo/internal/chart"
	"centavo/internal/config"
	"centavo/internal/model"
	"centavo/internal/service"
	"centavo/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initStorage opens the configured database and brings the schema up
// to date.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// chartRenderer builds a renderer pointed at the configured charts
// directory.
func chartRenderer() *chart.Renderer {
	dir := viper.GetString("charts.dir")
	if dir == "" {
		dir = config.DefaultChartsDir()
	}
	return chart.NewRenderer(config.ExpandPath(dir))
}

// parseAmount parses a positive decimal amount from user input.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not a valid amount", raw)
	}
	return amount, nil
}

// parseDay parses a YYYY-MM-DD date in local time.
func parseDay(raw string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a valid date, want YYYY-MM-DD", raw)
	}
	return t, nil
}

// parseMonth parses a YYYY-MM month.
func parseMonth(raw string) (int, time.Month, error) {
	t, err := time.ParseInLocation("2006-01", raw, time.Local)
	if err != nil {
		return 0, 0, fmt.Errorf("%q is not a valid month, want YYYY-MM", raw)
	}
	return t.Year(), t.Month(), nil
}

// filterFlags wires the shared filtering flags used by list and export.
type filterFlags struct {
	category string
	from     string
	to       string
	min      string
	max      string
	keyword  string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.category, "category", "", "filter by category")
	cmd.Flags().StringVar(&f.from, "from", "", "include expenses on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "include expenses before this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.min, "min", "", "minimum amount")
	cmd.Flags().StringVar(&f.max, "max", "", "maximum amount")
	cmd.Flags().StringVar(&f.keyword, "search", "", "substring match on description or category")
}

func (f *filterFlags) build() (model.ExpenseFilter, error) {
	var filter model.ExpenseFilter

	if f.category != "" {
		cat, err := model.ParseCategory(f.category)
		if err != nil {
			return filter, err
		}
		filter.Category = &cat
	}
	if f.from != "" {
		start, err := parseDay(f.from)
		if err != nil {
			return filter, err
		}
		filter.Start = &start
	}
	if f.to != "" {
		end, err := parseDay(f.to)
		if err != nil {
			return filter, err
		}
		filter.End = &end
	}
	if f.min != "" {
		minAmount, err := parseAmount(f.min)
		if err != nil {
			return filter, err
		}
		filter.MinAmount = &minAmount
	}
	if f.max != "" {
		maxAmount, err := parseAmount(f.max)
		if err != nil {
			return filter, err
		}
		filter.MaxAmount = &maxAmount
	}
	filter.Keyword = f.keyword

	return filter, nil
}

// periodFlags wires the shared period flags used by report and chart.
type periodFlags struct {
	month string
	year  int
	from  string
	to    string
}

func (p *periodFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.month, "month", "", "report on a calendar month (YYYY-MM)")
	cmd.Flags().IntVar(&p.year, "year", 0, "report on a calendar year")
	cmd.Flags().StringVar(&p.from, "from", "", "report range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&p.to, "to", "", "report range end, exclusive (YYYY-MM-DD)")
}

func (p *periodFlags) build() (model.Period, error) {
	switch {
	case p.month != "":
		year, month, err := parseMonth(p.month)
		if err != nil {
			return model.Period{}, err
		}
		return model.MonthPeriod(year, month), nil
	case p.year != 0:
		return model.YearPeriod(p.year), nil
	case p.from != "" || p.to != "":
		if p.from == "" || p.to == "" {
			return model.Period{}, fmt.Errorf("--from and --to must be used together")
		}
		start, err := parseDay(p.from)
		if err != nil {
			return model.Period{}, err
		}
		end, err := parseDay(p.to)
		if err != nil {
			return model.Period{}, err
		}
		return model.RangePeriod(start, end), nil
	default:
		return model.AllTime(), nil
	}
}
