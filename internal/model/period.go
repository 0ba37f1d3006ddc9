package model

import (
	"fmt"
	"time"
)

// PeriodKind discriminates the Period variants.
type PeriodKind int

const (
	// PeriodAll spans every recorded expense.
	PeriodAll PeriodKind = iota
	// PeriodMonth spans a single calendar month.
	PeriodMonth
	// PeriodYear spans a single calendar year.
	PeriodYear
	// PeriodRange spans an arbitrary half-open [Start, End).
	PeriodRange
)

// Period identifies the time window a report covers. Use the
// constructors rather than building one by hand.
type Period struct {
	Start time.Time
	End   time.Time
	Month time.Month
	Kind  PeriodKind
	Year  int
}

// AllTime covers every expense.
func AllTime() Period {
	return Period{Kind: PeriodAll}
}

// MonthPeriod covers a single calendar month.
func MonthPeriod(year int, month time.Month) Period {
	return Period{Kind: PeriodMonth, Year: year, Month: month}
}

// YearPeriod covers a single calendar year.
func YearPeriod(year int) Period {
	return Period{Kind: PeriodYear, Year: year}
}

// RangePeriod covers the half-open window [start, end).
func RangePeriod(start, end time.Time) Period {
	return Period{Kind: PeriodRange, Start: start, End: end}
}

// Bounds returns the half-open [start, end) window. bounded is false
// for PeriodAll, where both times are zero.
func (p Period) Bounds() (start, end time.Time, bounded bool) {
	switch p.Kind {
	case PeriodMonth:
		start = time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.Local)
		return start, start.AddDate(0, 1, 0), true
	case PeriodYear:
		start = time.Date(p.Year, time.January, 1, 0, 0, 0, 0, time.Local)
		return start, start.AddDate(1, 0, 0), true
	case PeriodRange:
		return p.Start, p.End, true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	start, end, bounded := p.Bounds()
	if !bounded {
		return true
	}
	return !t.Before(start) && t.Before(end)
}

// Filter returns the ExpenseFilter equivalent of the period.
func (p Period) Filter() ExpenseFilter {
	start, end, bounded := p.Bounds()
	if !bounded {
		return ExpenseFilter{}
	}
	return ExpenseFilter{Start: &start, End: &end}
}

// Label renders a short human-readable name for the period.
func (p Period) Label() string {
	switch p.Kind {
	case PeriodMonth:
		return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
	case PeriodYear:
		return fmt.Sprintf("%04d", p.Year)
	case PeriodRange:
		return fmt.Sprintf("%s to %s",
			p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
	default:
		return "all time"
	}
}
