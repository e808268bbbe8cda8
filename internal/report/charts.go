package report

import (
	"log/slog"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"vgsales/internal/analytics"
	apperrors "vgsales/internal/errors"
)

// ChartRenderer saves the report charts as PNG files
type ChartRenderer struct {
	logger *slog.Logger
}

// NewChartRenderer creates a new chart renderer
func NewChartRenderer(logger *slog.Logger) *ChartRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChartRenderer{logger: logger}
}

// NamedSeries is one line of a multi-series chart
type NamedSeries struct {
	Name   string
	Values []float64
}

// SaveBarH renders ranked totals as a horizontal bar chart. Entries are
// expected in descending order; bars are laid out bottom-up so the largest
// bar ends topmost.
func (c *ChartRenderer) SaveBarH(entries []analytics.CategoryTotal, title, xlabel, path string) error {
	if len(entries) == 0 {
		return apperrors.NewChartError("no data for bar chart", nil).WithContext("chart", path)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel

	// reverse: gonum places index 0 at the bottom of the Y axis
	values := make(plotter.Values, len(entries))
	labels := make([]string, len(entries))
	for i, entry := range entries {
		j := len(entries) - 1 - i
		values[j] = entry.Total
		labels[j] = entry.Category
	}

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return apperrors.NewChartError("failed to build bar chart", err).WithContext("chart", path)
	}
	bars.Horizontal = true
	p.Add(bars)
	p.NominalY(labels...)

	if err := c.ensureDir(path); err != nil {
		return err
	}
	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return apperrors.NewChartError("failed to save bar chart", err).WithContext("chart", path)
	}

	c.logger.Info("Rendered chart",
		slog.String("type", "barh"),
		slog.String("path", path),
		slog.Int("bars", len(entries)))
	return nil
}

// SaveBar renders labeled values as a vertical bar chart
func (c *ChartRenderer) SaveBar(labels []string, values []float64, title, ylabel, path string) error {
	if len(labels) == 0 || len(labels) != len(values) {
		return apperrors.NewChartError("mismatched bar chart data", nil).WithContext("chart", path)
	}

	bars := make([]chart.Value, len(labels))
	for i := range labels {
		bars[i] = chart.Value{Label: labels[i], Value: values[i]}
	}

	graph := chart.BarChart{
		Title:      title,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Width:      800,
		Height:     600,
		BarWidth:   60,
		YAxis:      chart.YAxis{Name: ylabel},
		Bars:       bars,
	}

	if err := c.render(path, func(f *os.File) error { return graph.Render(chart.PNG, f) }); err != nil {
		return err
	}

	c.logger.Info("Rendered chart",
		slog.String("type", "bar"),
		slog.String("path", path),
		slog.Int("bars", len(bars)))
	return nil
}

// SaveLine renders yearly totals as a single line chart
func (c *ChartRenderer) SaveLine(yearly []analytics.YearTotal, title, xlabel, ylabel, path string) error {
	if len(yearly) == 0 {
		return apperrors.NewChartError("no data for line chart", nil).WithContext("chart", path)
	}

	xs := make([]float64, len(yearly))
	ys := make([]float64, len(yearly))
	for i, yt := range yearly {
		xs[i] = float64(yt.Year)
		ys[i] = yt.Total
	}
	xs, ys = padSinglePoint(xs, ys)

	graph := chart.Chart{
		Title:      title,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16}},
		Width:      1000,
		Height:     600,
		XAxis:      chart.XAxis{Name: xlabel, ValueFormatter: chart.IntValueFormatter},
		YAxis:      chart.YAxis{Name: ylabel},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: ys},
		},
	}

	if err := c.render(path, func(f *os.File) error { return graph.Render(chart.PNG, f) }); err != nil {
		return err
	}

	c.logger.Info("Rendered chart",
		slog.String("type", "line"),
		slog.String("path", path),
		slog.Int("points", len(yearly)))
	return nil
}

// SaveMultiLine renders one line per series over the shared years axis,
// with a legend naming each series.
func (c *ChartRenderer) SaveMultiLine(years []int, series []NamedSeries, title, ylabel, path string) error {
	if len(years) == 0 || len(series) == 0 {
		return apperrors.NewChartError("no data for multi-line chart", nil).WithContext("chart", path)
	}

	xs := make([]float64, len(years))
	for i, year := range years {
		xs[i] = float64(year)
	}

	chartSeries := make([]chart.Series, 0, len(series))
	for _, s := range series {
		sx, sy := padSinglePoint(xs, s.Values)
		chartSeries = append(chartSeries, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: sx,
			YValues: sy,
		})
	}

	graph := chart.Chart{
		Title:      title,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 48}},
		Width:      1200,
		Height:     700,
		XAxis:      chart.XAxis{Name: "Year", ValueFormatter: chart.IntValueFormatter},
		YAxis:      chart.YAxis{Name: ylabel},
		Series:     chartSeries,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := c.render(path, func(f *os.File) error { return graph.Render(chart.PNG, f) }); err != nil {
		return err
	}

	c.logger.Info("Rendered chart",
		slog.String("type", "multiline"),
		slog.String("path", path),
		slog.Int("series", len(series)))
	return nil
}

// render creates the target file and runs the chart's render func against it
func (c *ChartRenderer) render(path string, fn func(*os.File) error) error {
	if err := c.ensureDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to create chart file", err).WithContext("chart", path)
	}

	if err := fn(f); err != nil {
		f.Close()
		return apperrors.NewChartError("failed to render chart", err).WithContext("chart", path)
	}
	if err := f.Close(); err != nil {
		return apperrors.NewStorageError("failed to close chart file", err).WithContext("chart", path)
	}
	return nil
}

// ensureDir creates the chart's parent directory if needed
func (c *ChartRenderer) ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create chart directory", err).WithContext("chart", path)
	}
	return nil
}

// padSinglePoint duplicates a lone data point one unit to the right; go-chart
// needs at least two X values per series.
func padSinglePoint(xs, ys []float64) ([]float64, []float64) {
	if len(xs) != 1 {
		return xs, ys
	}
	return []float64{xs[0], xs[0] + 1}, []float64{ys[0], ys[0]}
}
