// Package report reduces expense sequences to summary statistics:
// totals, per-category breakdowns with percentages, and monthly
// rollups. Everything here is a pure function over []model.Expense;
// nothing is persisted.
package report

import (
	"sort"
	"time"

	"centavo/internal/model"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CategoryTotal is one row of a per-category breakdown.
type CategoryTotal struct {
	Category model.Category
	Total    decimal.Decimal
	Percent  decimal.Decimal
	Count    int
}

// Summary is a derived, ephemeral report over a set of expenses.
type Summary struct {
	Period     model.Period
	Total      decimal.Decimal
	Categories []CategoryTotal
	Count      int
}

// Summarize computes the total and per-category breakdown of expenses.
// Percentages are of the grand total, rounded to 2 decimals; an empty
// or zero-total set yields 0% everywhere. Categories are ordered by
// total descending, name ascending on ties.
func Summarize(expenses []model.Expense, period model.Period) Summary {
	s := Summary{
		Period: period,
		Total:  decimal.Zero,
		Count:  len(expenses),
	}

	byCategory := make(map[model.Category]*CategoryTotal)
	for _, exp := range expenses {
		s.Total = s.Total.Add(exp.Amount)
		ct, ok := byCategory[exp.Category]
		if !ok {
			ct = &CategoryTotal{Category: exp.Category, Total: decimal.Zero}
			byCategory[exp.Category] = ct
		}
		ct.Total = ct.Total.Add(exp.Amount)
		ct.Count++
	}

	for _, ct := range byCategory {
		if s.Total.IsZero() {
			ct.Percent = decimal.Zero
		} else {
			ct.Percent = ct.Total.Div(s.Total).Mul(hundred).Round(2)
		}
		s.Categories = append(s.Categories, *ct)
	}

	sort.Slice(s.Categories, func(i, j int) bool {
		a, b := s.Categories[i], s.Categories[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.Category < b.Category
	})

	return s
}

// MonthBucket holds one calendar month's totals.
type MonthBucket struct {
	Month      time.Time // first instant of the month
	ByCategory map[model.Category]decimal.Decimal
	Total      decimal.Decimal
}

// MonthlySeries groups expenses by calendar month, ascending. Months
// between the first and last expense with no spending appear as zero
// buckets so chart axes stay continuous.
func MonthlySeries(expenses []model.Expense) []MonthBucket {
	if len(expenses) == 0 {
		return nil
	}

	byMonth := make(map[time.Time]*MonthBucket)
	first, last := monthOf(expenses[0].CreatedAt), monthOf(expenses[0].CreatedAt)
	for _, exp := range expenses {
		m := monthOf(exp.CreatedAt)
		if m.Before(first) {
			first = m
		}
		if m.After(last) {
			last = m
		}
		bucket, ok := byMonth[m]
		if !ok {
			bucket = newMonthBucket(m)
			byMonth[m] = bucket
		}
		bucket.Total = bucket.Total.Add(exp.Amount)
		bucket.ByCategory[exp.Category] = bucket.ByCategory[exp.Category].Add(exp.Amount)
	}

	var series []MonthBucket
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		if bucket, ok := byMonth[m]; ok {
			series = append(series, *bucket)
		} else {
			series = append(series, *newMonthBucket(m))
		}
	}
	return series
}

// YearReport returns twelve buckets, January through December, for the
// given year. Months without spending are zero.
func YearReport(expenses []model.Expense, year int) []MonthBucket {
	series := make([]MonthBucket, 12)
	for i := range series {
		series[i] = *newMonthBucket(time.Date(year, time.Month(i+1), 1, 0, 0, 0, 0, time.Local))
	}

	for _, exp := range expenses {
		if exp.CreatedAt.Year() != year {
			continue
		}
		bucket := &series[int(exp.CreatedAt.Month())-1]
		bucket.Total = bucket.Total.Add(exp.Amount)
		bucket.ByCategory[exp.Category] = bucket.ByCategory[exp.Category].Add(exp.Amount)
	}
	return series
}

func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
}

func newMonthBucket(m time.Time) *MonthBucket {
	return &MonthBucket{
		Month:      m,
		Total:      decimal.Zero,
		ByCategory: make(map[model.Category]decimal.Decimal),
	}
}
