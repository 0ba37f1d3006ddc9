package model

import (
	"testing"
	"time"
)

func TestPeriodBounds(t *testing.T) {
	tests := []struct {
		name      string
		period    Period
		wantStart time.Time
		wantEnd   time.Time
		bounded   bool
	}{
		{
			name:      "month",
			period:    MonthPeriod(2025, time.March),
			wantStart: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2025, time.April, 1, 0, 0, 0, 0, time.Local),
			bounded:   true,
		},
		{
			name:      "december rolls into next year",
			period:    MonthPeriod(2024, time.December),
			wantStart: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local),
			bounded:   true,
		},
		{
			name:      "year",
			period:    YearPeriod(2024),
			wantStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local),
			bounded:   true,
		},
		{
			name: "range",
			period: RangePeriod(
				time.Date(2025, time.February, 3, 0, 0, 0, 0, time.Local),
				time.Date(2025, time.February, 10, 0, 0, 0, 0, time.Local)),
			wantStart: time.Date(2025, time.February, 3, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2025, time.February, 10, 0, 0, 0, 0, time.Local),
			bounded:   true,
		},
		{
			name:    "all time is unbounded",
			period:  AllTime(),
			bounded: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, bounded := tt.period.Bounds()
			if bounded != tt.bounded {
				t.Fatalf("bounded = %v, want %v", bounded, tt.bounded)
			}
			if !bounded {
				return
			}
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestPeriodContains(t *testing.T) {
	p := MonthPeriod(2025, time.June)

	inside := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.Local)
	if !p.Contains(inside) {
		t.Errorf("expected %v inside %s", inside, p.Label())
	}

	// End bound is exclusive.
	boundary := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.Local)
	if p.Contains(boundary) {
		t.Errorf("expected %v outside %s", boundary, p.Label())
	}

	if !AllTime().Contains(time.Date(1999, time.January, 1, 0, 0, 0, 0, time.Local)) {
		t.Error("all-time period should contain everything")
	}
}

func TestPeriodLabel(t *testing.T) {
	tests := []struct {
		period Period
		want   string
	}{
		{MonthPeriod(2025, time.March), "2025-03"},
		{YearPeriod(2024), "2024"},
		{AllTime(), "all time"},
	}

	for _, tt := range tests {
		if got := tt.period.Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}
