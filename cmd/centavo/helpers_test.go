package main

import (
	"testing"
	"time"

	"centavo/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	amount, err := parseAmount("12.345")
	require.NoError(t, err)
	assert.Equal(t, "12.345", amount.String())

	_, err = parseAmount("twelve")
	assert.Error(t, err)
}

func TestParseDay(t *testing.T) {
	day, err := parseDay("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local), day)

	_, err = parseDay("10/03/2025")
	assert.Error(t, err)
}

func TestParseMonth(t *testing.T) {
	year, month, err := parseMonth("2025-03")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.March, month)

	_, _, err = parseMonth("March 2025")
	assert.Error(t, err)
}

func TestFilterFlagsBuild(t *testing.T) {
	flags := filterFlags{
		category: "food",
		from:     "2025-01-01",
		to:       "2025-02-01",
		min:      "5",
		max:      "50",
		keyword:  "lunch",
	}

	filter, err := flags.build()
	require.NoError(t, err)

	require.NotNil(t, filter.Category)
	assert.Equal(t, model.CategoryFood, *filter.Category)
	require.NotNil(t, filter.Start)
	require.NotNil(t, filter.End)
	assert.True(t, filter.End.After(*filter.Start))
	require.NotNil(t, filter.MinAmount)
	require.NotNil(t, filter.MaxAmount)
	assert.Equal(t, "lunch", filter.Keyword)
}

func TestFilterFlagsBuild_BadCategory(t *testing.T) {
	flags := filterFlags{category: "Groceries"}
	_, err := flags.build()
	assert.Error(t, err)
}

func TestPeriodFlagsBuild(t *testing.T) {
	tests := []struct {
		name  string
		flags periodFlags
		want  model.PeriodKind
	}{
		{name: "default is all time", flags: periodFlags{}, want: model.PeriodAll},
		{name: "month", flags: periodFlags{month: "2025-03"}, want: model.PeriodMonth},
		{name: "year", flags: periodFlags{year: 2024}, want: model.PeriodYear},
		{name: "range", flags: periodFlags{from: "2025-01-01", to: "2025-02-01"}, want: model.PeriodRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.flags.build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Kind)
		})
	}
}

func TestPeriodFlagsBuild_HalfRangeRejected(t *testing.T) {
	_, err := (&periodFlags{from: "2025-01-01"}).build()
	assert.Error(t, err)
}

func TestCommandTreeRegistersAllSubcommands(t *testing.T) {
	want := []string{"add", "list", "edit", "delete", "categories", "report", "chart", "export", "menu", "version"}

	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, name := range want {
		assert.True(t, names[name], "missing command %q", name)
	}
}
