// Package chart renders aggregation summaries to PNG images. It is a
// presentation layer only: nothing here feeds back into the data model.
package chart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"centavo/internal/model"
	"centavo/internal/report"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("no data to chart")

// categoryColors gives each category a stable fill color across charts.
var categoryColors = map[model.Category]drawing.Color{
	model.CategoryFood:          drawing.ColorFromHex("e74c3c"),
	model.CategoryTransport:     drawing.ColorFromHex("3498db"),
	model.CategoryEntertainment: drawing.ColorFromHex("9b59b6"),
	model.CategoryShopping:      drawing.ColorFromHex("f39c12"),
	model.CategoryBills:         drawing.ColorFromHex("16a085"),
	model.CategoryOther:         drawing.ColorFromHex("7f8c8d"),
}

// Renderer writes chart images into an output directory.
type Renderer struct {
	OutDir string
	Width  int
	Height int
}

// NewRenderer creates a renderer writing into outDir.
func NewRenderer(outDir string) *Renderer {
	return &Renderer{
		OutDir: outDir,
		Width:  900,
		Height: 512,
	}
}

// CategoryBar renders a bar chart of per-category totals.
func (r *Renderer) CategoryBar(s report.Summary, name string) (string, error) {
	if len(s.Categories) == 0 || s.Total.IsZero() {
		return "", ErrNoData
	}

	bars := make([]chart.Value, 0, len(s.Categories))
	for _, ct := range s.Categories {
		bars = append(bars, chart.Value{
			Value: ct.Total.InexactFloat64(),
			Label: string(ct.Category),
			Style: chart.Style{FillColor: categoryColors[ct.Category]},
		})
	}

	graph := chart.BarChart{
		Title:      fmt.Sprintf("Spending by category (%s)", s.Period.Label()),
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Width:      r.Width,
		Height:     r.Height,
		BarWidth:   60,
		Bars:       bars,
	}

	return r.write(name, func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

// CategoryPie renders a pie chart of per-category shares.
func (r *Renderer) CategoryPie(s report.Summary, name string) (string, error) {
	if len(s.Categories) == 0 || s.Total.IsZero() {
		return "", ErrNoData
	}

	values := make([]chart.Value, 0, len(s.Categories))
	for _, ct := range s.Categories {
		if ct.Total.IsZero() {
			continue
		}
		values = append(values, chart.Value{
			Value: ct.Total.InexactFloat64(),
			Label: fmt.Sprintf("%s (%s%%)", ct.Category, ct.Percent),
			Style: chart.Style{FillColor: categoryColors[ct.Category]},
		})
	}

	graph := chart.PieChart{
		Title:  fmt.Sprintf("Category share (%s)", s.Period.Label()),
		Width:  r.Height,
		Height: r.Height,
		Values: values,
	}

	return r.write(name, func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

// MonthlyLine renders monthly totals as a time series line.
func (r *Renderer) MonthlyLine(series []report.MonthBucket, name string) (string, error) {
	if len(series) < 2 {
		return "", fmt.Errorf("%w: a line chart needs at least two months", ErrNoData)
	}

	xs := make([]time.Time, 0, len(series))
	ys := make([]float64, 0, len(series))
	for _, bucket := range series {
		xs = append(xs, bucket.Month)
		ys = append(ys, bucket.Total.InexactFloat64())
	}

	graph := chart.Chart{
		Title:  "Monthly spending",
		Width:  r.Width,
		Height: r.Height,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
		},
		YAxis: chart.YAxis{
			ValueFormatter: chart.FloatValueFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Total",
				XValues: xs,
				YValues: ys,
			},
		},
	}

	return r.write(name, func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

// StackedMonths renders one bar per month, stacked by category.
func (r *Renderer) StackedMonths(series []report.MonthBucket, name string) (string, error) {
	bars := make([]chart.StackedBar, 0, len(series))
	for _, bucket := range series {
		if bucket.Total.IsZero() {
			continue
		}
		bar := chart.StackedBar{
			Name:  bucket.Month.Format("2006-01"),
			Width: 60,
		}
		for _, cat := range model.Categories() {
			amount, ok := bucket.ByCategory[cat]
			if !ok || amount.IsZero() {
				continue
			}
			bar.Values = append(bar.Values, chart.Value{
				Value: amount.InexactFloat64(),
				Label: string(cat),
				Style: chart.Style{FillColor: categoryColors[cat]},
			})
		}
		bars = append(bars, bar)
	}
	if len(bars) == 0 {
		return "", ErrNoData
	}

	graph := chart.StackedBarChart{
		Title:      "Monthly spending by category",
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Width:      r.Width,
		Height:     r.Height,
		XAxis:      chart.Style{},
		YAxis:      chart.Style{},
		Bars:       bars,
	}

	return r.write(name, func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

// Comparison overlays two yearly series month by month, e.g. this year
// against last year.
func (r *Renderer) Comparison(a, b []report.MonthBucket, labelA, labelB, name string) (string, error) {
	if len(a) == 0 || len(b) == 0 {
		return "", ErrNoData
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s vs %s", labelA, labelB),
		Width:  r.Width,
		Height: r.Height,
		XAxis: chart.XAxis{
			ValueFormatter: monthNameFormatter,
			Ticks:          monthTicks(),
		},
		YAxis: chart.YAxis{
			ValueFormatter: chart.FloatValueFormatter,
		},
		Series: []chart.Series{
			monthSeries(labelA, a, drawing.ColorFromHex("3498db")),
			monthSeries(labelB, b, drawing.ColorFromHex("e74c3c")),
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return r.write(name, func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

func monthSeries(label string, buckets []report.MonthBucket, color drawing.Color) chart.Series {
	xs := make([]float64, 0, len(buckets))
	ys := make([]float64, 0, len(buckets))
	for _, bucket := range buckets {
		xs = append(xs, float64(bucket.Month.Month()))
		ys = append(ys, bucket.Total.InexactFloat64())
	}
	return chart.ContinuousSeries{
		Name:    label,
		XValues: xs,
		YValues: ys,
		Style:   chart.Style{StrokeColor: color},
	}
}

func monthNameFormatter(v any) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	m := int(f)
	if m < 1 || m > 12 {
		return ""
	}
	return time.Month(m).String()[:3]
}

func monthTicks() []chart.Tick {
	ticks := make([]chart.Tick, 0, 12)
	for m := 1; m <= 12; m++ {
		ticks = append(ticks, chart.Tick{
			Value: float64(m),
			Label: time.Month(m).String()[:3],
		})
	}
	return ticks
}

// write creates the output file and runs render against it, returning
// the full path.
func (r *Renderer) write(name string, render func(*os.File) error) (string, error) {
	if err := os.MkdirAll(r.OutDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create chart directory: %w", err)
	}

	path := filepath.Join(r.OutDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create chart file: %w", err)
	}

	if err := render(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to render chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close chart file: %w", err)
	}
	return path, nil
}
