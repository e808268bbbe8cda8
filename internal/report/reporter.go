package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"vgsales/internal/analytics"
	"vgsales/internal/config"
	"vgsales/internal/dataset"
)

const topGroupCount = 10

const topSeriesCount = 5

// Reporter runs the nine report steps over a cleaned table, writing chart
// and CSV artifacts into the charts directory and report text to out.
type Reporter struct {
	logger *slog.Logger
	paths  *config.Paths
	charts *ChartRenderer
	csv    *CSVWriter
	out    io.Writer
}

// NewReporter creates a reporter writing artifacts via paths and report
// text to out. A nil out defaults to stdout.
func NewReporter(paths *config.Paths, logger *slog.Logger, out io.Writer) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Reporter{
		logger: logger,
		paths:  paths,
		charts: NewChartRenderer(logger),
		csv:    NewCSVWriter(logger),
		out:    out,
	}
}

// Run executes all report steps in fixed order. The steps have no data
// dependencies between them; any failure aborts the run.
func (r *Reporter) Run(ctx context.Context, table *dataset.Table) error {
	r.logger.InfoContext(ctx, "starting report generation",
		slog.Int("records", table.Len()))

	records := table.Records

	fmt.Fprintf(r.out, "Rows after cleaning: %d\n", table.Len())
	r.printHead(table)

	genreTotals, err := r.groupChart(ctx, records, analytics.ByGenre,
		"Top Genres by Global Sales", config.GenreSalesChart)
	if err != nil {
		return err
	}

	platformTotals, err := r.groupChart(ctx, records, analytics.ByPlatform,
		"Top Platforms by Global Sales", config.PlatformSalesChart)
	if err != nil {
		return err
	}

	yearly := analytics.YearlyTotals(records)
	if err := r.yearlyTrend(ctx, yearly); err != nil {
		return err
	}

	publisherTotals, err := r.groupChart(ctx, records, analytics.ByPublisher,
		"Top Publishers by Global Sales", config.PublisherSalesChart)
	if err != nil {
		return err
	}

	if err := r.topGames(ctx, records); err != nil {
		return err
	}

	if err := r.regionTotals(ctx, records); err != nil {
		return err
	}

	if err := r.categoryTrends(ctx, records, analytics.ByGenre,
		"Top 5 Genres: Global Sales Over Time", config.GenreTrendsChart); err != nil {
		return err
	}

	if err := r.categoryTrends(ctx, records, analytics.ByPlatform,
		"Top 5 Platforms: Global Sales Over Time", config.PlatformLifecycleChart); err != nil {
		return err
	}

	r.correlations(records)

	r.insights(genreTotals, platformTotals, publisherTotals, yearly)

	r.logger.InfoContext(ctx, "report generation complete")
	return nil
}

// printHead prints a preview of the first records
func (r *Reporter) printHead(table *dataset.Table) {
	fmt.Fprintf(r.out, "\nTop 5 rows:\n")
	fmt.Fprintf(r.out, "%-40s %-8s %6s %-12s %-24s %12s\n",
		"Name", "Platform", "Year", "Genre", "Publisher", "Global_Sales")
	for _, rec := range table.Head(5) {
		fmt.Fprintf(r.out, "%-40s %-8s %6d %-12s %-24s %12.2f\n",
			rec.Name, rec.Platform, rec.Year, rec.Genre, rec.Publisher, rec.GlobalSales)
	}
}

// groupChart sums global sales per group and renders the top 10 as a
// horizontal bar chart. Returns the totals for the insights summary.
func (r *Reporter) groupChart(ctx context.Context, records []dataset.SalesRecord, key analytics.KeyFunc, title, filename string) (map[string]float64, error) {
	totals := analytics.SumBy(records, key)
	top := analytics.TopN(totals, topGroupCount)

	path := r.paths.GetChartPath(filename)
	if err := r.charts.SaveBarH(top, title, "Global Sales (Millions)", path); err != nil {
		return nil, err
	}
	fmt.Fprintf(r.out, "Saved chart: %s\n", path)

	r.logger.InfoContext(ctx, "rendered group chart",
		slog.String("chart", filename),
		slog.Int("groups", len(totals)))
	return totals, nil
}

// yearlyTrend renders the line chart and prints the peak-year callout
func (r *Reporter) yearlyTrend(ctx context.Context, yearly []analytics.YearTotal) error {
	path := r.paths.GetChartPath(config.YearlySalesTrendChart)
	if err := r.charts.SaveLine(yearly, "Global Video Game Sales Over Time",
		"Year", "Global Sales (Millions)", path); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Saved chart: %s\n", path)

	if peak, ok := analytics.PeakYear(yearly); ok {
		fmt.Fprintf(r.out, "\nMarket Peak: %d with %.2f million global sales\n", peak.Year, peak.Total)
		r.logger.InfoContext(ctx, "market peak",
			slog.Int("year", peak.Year),
			slog.Float64("sales", peak.Total))
	}
	return nil
}

// topGames prints the ten best sellers and persists them as a CSV artifact
func (r *Reporter) topGames(ctx context.Context, records []dataset.SalesRecord) error {
	top := analytics.TopRecords(records, topGroupCount)

	fmt.Fprintf(r.out, "\nTop %d Best-Selling Games:\n", topGroupCount)
	for i, rec := range top {
		fmt.Fprintf(r.out, "%2d. %-40s %-8s %6d %-12s %8.2f\n",
			i+1, rec.Name, rec.Platform, rec.Year, rec.Genre, rec.GlobalSales)
	}

	rows := make([][]string, len(top))
	for i, rec := range top {
		rows[i] = []string{
			rec.Name,
			rec.Platform,
			strconv.Itoa(rec.Year),
			rec.Genre,
			rec.Publisher,
			formatSales(rec.NASales),
			formatSales(rec.EUSales),
			formatSales(rec.JPSales),
			formatSales(rec.OtherSales),
			formatSales(rec.GlobalSales),
		}
	}

	path := r.paths.GetChartPath(config.TopGamesCSV)
	if err := r.csv.WriteSimpleCSV(path, dataset.RequiredColumns, rows); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Saved table: %s\n", path)

	r.logger.InfoContext(ctx, "exported top games", slog.Int("count", len(top)))
	return nil
}

// regionTotals renders the regional bar chart and prints the totals
func (r *Reporter) regionTotals(ctx context.Context, records []dataset.SalesRecord) error {
	totals := analytics.Regions(records)

	labels := []string{dataset.ColNASales, dataset.ColEUSales, dataset.ColJPSales, dataset.ColOtherSales}
	values := []float64{totals.NA, totals.EU, totals.JP, totals.Other}

	path := r.paths.GetChartPath(config.RegionSalesChart)
	if err := r.charts.SaveBar(labels, values, "Sales by Region", "Sales (Millions)", path); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Saved chart: %s\n", path)

	fmt.Fprintf(r.out, "\nRegional Sales Totals:\n")
	for i, label := range labels {
		fmt.Fprintf(r.out, "%-12s %12.2f\n", label, values[i])
	}

	r.logger.InfoContext(ctx, "regional totals",
		slog.Float64("na", totals.NA),
		slog.Float64("eu", totals.EU),
		slog.Float64("jp", totals.JP),
		slog.Float64("other", totals.Other))
	return nil
}

// categoryTrends pivots sums by year and category and renders the five
// largest categories as a multi-line chart.
func (r *Reporter) categoryTrends(ctx context.Context, records []dataset.SalesRecord, key analytics.KeyFunc, title, filename string) error {
	pivot := analytics.PivotByYear(records, key)
	top := pivot.TopCategories(topSeriesCount)

	series := make([]NamedSeries, len(top))
	for i, category := range top {
		series[i] = NamedSeries{Name: category, Values: pivot.Series(category)}
	}

	path := r.paths.GetChartPath(filename)
	if err := r.charts.SaveMultiLine(pivot.Years, series, title, "Global Sales (Millions)", path); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Saved chart: %s\n", path)

	r.logger.InfoContext(ctx, "rendered trend chart",
		slog.String("chart", filename),
		slog.Int("series", len(series)),
		slog.Int("years", len(pivot.Years)))
	return nil
}

// correlations prints the pairwise sales correlation matrix
func (r *Reporter) correlations(records []dataset.SalesRecord) {
	matrix := analytics.Correlations(records)
	fmt.Fprintf(r.out, "\nSales Correlation Matrix:\n%s\n", matrix)
}

// insights prints the closing summary of top performers
func (r *Reporter) insights(genres, platforms, publishers map[string]float64, yearly []analytics.YearTotal) {
	fmt.Fprintf(r.out, "\nQuick Insights:\n")
	fmt.Fprintf(r.out, "Top Genre: %s\n", analytics.TopCategory(genres))
	fmt.Fprintf(r.out, "Top Platform: %s\n", analytics.TopCategory(platforms))
	if peak, ok := analytics.PeakYear(yearly); ok {
		fmt.Fprintf(r.out, "Best Sales Year: %d\n", peak.Year)
	}
	fmt.Fprintf(r.out, "Top Publisher: %s\n", analytics.TopCategory(publishers))
}

// formatSales renders a sales figure the way the source dataset stores it
func formatSales(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
