package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"vgsales/internal/config"
	"vgsales/internal/dataset"
	"vgsales/internal/infrastructure"
	"vgsales/internal/report"
)

func main() {
	os.Exit(run())
}

func run() int {
	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{
				Level:    "info",
				Output:   "both",
				FilePath: paths.GetLogPath("vgsales-report.log"),
			},
		}
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithRunID(context.Background())

	logger.InfoContext(ctx, "Starting sales report generation",
		slog.String("dataset", paths.DataFile),
		slog.String("charts_dir", paths.ChartsDir))

	if err := paths.EnsureDirectories(); err != nil {
		logger.ErrorContext(ctx, "Failed to create output directories", slog.String("error", err.Error()))
		return 1
	}

	raw, err := dataset.Load(paths.DataFile)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load dataset", slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	table := dataset.NewCleaner(logger).Clean(raw)

	reporter := report.NewReporter(paths, logger, os.Stdout)
	if err := reporter.Run(ctx, table); err != nil {
		logger.ErrorContext(ctx, "Report generation failed", slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger.InfoContext(ctx, "Report generation completed",
		slog.Int("records", table.Len()),
		slog.Int("source_rows", table.SourceRows))
	return 0
}
