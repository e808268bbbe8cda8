package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dataset and artifact locations. The report contract is fixed: one input
// file, one output directory, eight named artifacts.
const (
	// DatasetCSV is the default input dataset location
	DatasetCSV = "data/vgsales.csv"

	// ChartsDirName is the output directory for all generated artifacts
	ChartsDirName = "charts"

	// LogsDirName holds application log files
	LogsDirName = "logs"
)

// Artifact file names inside the charts directory
const (
	GenreSalesChart        = "genre_sales.png"
	PlatformSalesChart     = "platform_sales.png"
	YearlySalesTrendChart  = "yearly_sales_trend.png"
	PublisherSalesChart    = "publisher_sales.png"
	TopGamesCSV            = "top_10_games.csv"
	RegionSalesChart       = "region_sales.png"
	GenreTrendsChart       = "genre_trends_top5.png"
	PlatformLifecycleChart = "platform_lifecycle_top5.png"
)

// Paths contains all the application paths.
// This is the single source of truth for file paths in the application.
type Paths struct {
	BaseDir   string
	DataFile  string
	ChartsDir string
	LogsDir   string
}

// GetPaths returns the application paths relative to the working directory.
// The dataset is expected where the original report contract places it,
// data/vgsales.csv next to the invocation point.
func GetPaths() (*Paths, error) {
	baseDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	return &Paths{
		BaseDir:   baseDir,
		DataFile:  filepath.Join(baseDir, filepath.FromSlash(DatasetCSV)),
		ChartsDir: filepath.Join(baseDir, ChartsDirName),
		LogsDir:   filepath.Join(baseDir, LogsDirName),
	}, nil
}

// EnsureDirectories creates all required output directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.ChartsDir,
		p.LogsDir,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}

	return nil
}

// GetChartPath returns the full path for a named artifact in the charts directory
func (p *Paths) GetChartPath(filename string) string {
	return filepath.Join(p.ChartsDir, filename)
}

// GetLogPath returns the full path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}
