package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"childstat/internal/config"
	"childstat/internal/infrastructure"
	"childstat/internal/report"
)

func main() {
	dataDir := flag.String("data", "", "directory containing the UNICEF CSV files (defaults to config data dir)")
	outputDir := flag.String("out", "", "output directory for the report (defaults to config reports dir)")
	seed := flag.Int64("seed", -1, "seed for the simulated time series (defaults to config seed)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags override config
	if *dataDir != "" {
		cfg.Paths.DataDir = *dataDir
	}
	if *outputDir != "" {
		cfg.Paths.ReportsDir = *outputDir
	}
	if *seed >= 0 {
		cfg.Report.Seed = *seed
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	runID := infrastructure.NewRunID()
	ctx := infrastructure.WithRunID(context.Background(), runID)

	logger.InfoContext(ctx, "generating report",
		slog.String("data_dir", cfg.Paths.DataDir),
		slog.String("reports_dir", cfg.Paths.ReportsDir),
		slog.Int64("seed", cfg.Report.Seed))

	runner := report.NewRunner(cfg, logger)
	if err := runner.Run(ctx); err != nil {
		logger.ErrorContext(ctx, "report generation failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "report written",
		slog.String("document", filepath.Join(cfg.Paths.ReportsDir, report.DocumentFile)))
}
