package report

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"childstat/internal/charts"
	"childstat/internal/config"
	"childstat/internal/dataset"
	"childstat/internal/infrastructure"
	"childstat/internal/merge"
	"childstat/internal/synthetic"
)

// Output file names under the reports directory
const (
	DocumentFile          = "report.md"
	WorkbookFile          = "childstat_tables.xlsx"
	MissingChartFile      = "missing_values.png"
	WorldMapChartFile     = "world_map.png"
	DistributionChartFile = "score_distribution.png"
	ScatterChartFile      = "leave_vs_deprivation.png"
	TimeSeriesChartFile   = "time_series.png"
)

// timeSeriesCountries caps how many countries the line chart draws
const timeSeriesCountries = 5

// Runner executes the full report pipeline: load, inspect, merge, simulate,
// chart, assemble. Steps run strictly in order and the first error aborts
// the run; there is no partial-output mode.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger

	// MapRand drives the simulated map. It is fresh per process by default,
	// so map coordinates differ between runs, matching the illustrative
	// nature of that chart.
	MapRand *rand.Rand
	// SeriesRand drives the simulated time series. Seeded from config so
	// the series is reproducible run to run.
	SeriesRand *rand.Rand

	now func() time.Time
}

// NewRunner creates a runner with the configured random sources
func NewRunner(cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		cfg:        cfg,
		logger:     logger,
		MapRand:    rand.New(rand.NewSource(time.Now().UnixNano())),
		SeriesRand: rand.New(rand.NewSource(cfg.Report.Seed)),
		now:        time.Now,
	}
}

// Run generates the complete report
func (r *Runner) Run(ctx context.Context) error {
	logger := r.logger
	if runID := infrastructure.GetRunID(ctx); runID != "" {
		logger = logger.With("run_id", runID)
	}
	start := r.now()

	if err := r.cfg.EnsureDirectories(); err != nil {
		return err
	}

	// Load
	deprivation, err := dataset.LoadIndicator(r.cfg.DeprivationPath(), "deprivation")
	if err != nil {
		return err
	}
	maternity, err := dataset.LoadIndicator(r.cfg.MaternityPath(), "maternity")
	if err != nil {
		return err
	}
	metadata, err := dataset.LoadCSV(r.cfg.MetadataPath(), "metadata")
	if err != nil {
		return err
	}

	// Inspect
	summary := dataset.Inspect(deprivation, maternity, metadata)

	// Merge
	merged, err := merge.Indicators(deprivation, maternity)
	if err != nil {
		return err
	}

	// Simulate
	countries, err := deprivation.Distinct("country")
	if err != nil {
		return err
	}
	mapPoints := synthetic.GenerateMapPoints(r.MapRand, countries)
	series := synthetic.GenerateTimeSeries(r.SeriesRand, countries, synthetic.TimeSeriesParams{
		YearStart:       r.cfg.Report.YearStart,
		YearEnd:         r.cfg.Report.YearEnd,
		FlipProbability: r.cfg.Report.FlipProbability,
	})
	logger.InfoContext(ctx, "generated synthetic tables",
		"countries", len(countries),
		"map_points", len(mapPoints),
		"series_points", len(series))

	// Chart
	blocks, err := r.renderCharts(summary, merged, mapPoints, series)
	if err != nil {
		return err
	}

	// Assemble
	doc := BuildDocument(DocumentInput{
		RunID:       infrastructure.GetRunID(ctx),
		GeneratedAt: r.now(),
		Tables:      []*dataset.Table{deprivation, maternity, metadata},
		HeadRows:    5,
		Missing:     summary.Table(),
		MergedRows:  len(merged.Rows),
		Charts:      blocks,
	})
	docPath := filepath.Join(r.cfg.Paths.ReportsDir, DocumentFile)
	if err := os.WriteFile(docPath, []byte(doc), 0644); err != nil {
		return fmt.Errorf("failed to write report document: %w", err)
	}

	workbookPath := filepath.Join(r.cfg.Paths.ReportsDir, WorkbookFile)
	if err := WriteWorkbook(workbookPath, WorkbookInput{
		Merged:    merged,
		Missing:   summary.Table(),
		MapPoints: mapPoints,
		Series:    series,
	}); err != nil {
		return err
	}

	logger.InfoContext(ctx, "report complete",
		"document", docPath,
		"workbook", workbookPath,
		"elapsed", r.now().Sub(start).String())

	return nil
}

// renderCharts builds the five chart specs and renders each to the reports
// directory, returning the document blocks in report order.
func (r *Runner) renderCharts(
	summary *dataset.MissingSummary,
	merged *dataset.Table,
	mapPoints []synthetic.MapPoint,
	series []synthetic.TimeSeriesPoint,
) ([]ChartBlock, error) {
	type chart struct {
		file       string
		heading    string
		commentary string
		build      func() (*charts.Spec, error)
	}

	plan := []chart{
		{
			file:    MissingChartFile,
			heading: "Data completeness",
			commentary: "The indicator tables are nearly complete on the key columns, " +
				"while the metadata table carries most of the gaps. Columns that exist " +
				"in only one table show a single bar in their group.",
			build: func() (*charts.Spec, error) { return charts.MissingValues(summary) },
		},
		{
			file:    WorldMapChartFile,
			heading: "Simulated world map",
			commentary: "Each country is placed at a uniformly random coordinate and " +
				"assigned a coin-flip deprivation flag. The chart demonstrates the " +
				"intended map view only; none of the positions or colors reflect " +
				"observed data.",
			build: func() (*charts.Spec, error) { return charts.WorldMap(mapPoints) },
		},
		{
			file:    DistributionChartFile,
			heading: "Deprivation score distribution",
			commentary: "Deprivation scores cluster at the low end with a long right " +
				"tail: most countries in the joined sample report modest deprivation " +
				"shares while a smaller group reports substantially higher ones.",
			build: func() (*charts.Spec, error) { return charts.ScoreDistribution(merged) },
		},
		{
			file:    ScatterChartFile,
			heading: "Maternity leave vs deprivation",
			commentary: "The fitted line slopes downward: countries with longer " +
				"statutory maternity leave tend to report lower child deprivation. " +
				"The relationship is descriptive and confounded by national income.",
			build: func() (*charts.Spec, error) { return charts.LeaveVsDeprivation(merged) },
		},
		{
			file:    TimeSeriesChartFile,
			heading: "Simulated deprivation over time",
			commentary: "Five countries' simulated series over 2000-2020. Each series " +
				"holds a base value and flips away from it in roughly one year in " +
				"five, which is why the lines look like noisy square waves rather " +
				"than trends.",
			build: func() (*charts.Spec, error) { return charts.TimeSeries(series, timeSeriesCountries) },
		},
	}

	blocks := make([]ChartBlock, 0, len(plan))
	for _, c := range plan {
		spec, err := c.build()
		if err != nil {
			return nil, err
		}
		if err := charts.Render(spec, filepath.Join(r.cfg.Paths.ReportsDir, c.file)); err != nil {
			return nil, err
		}
		blocks = append(blocks, ChartBlock{
			Heading:    c.heading,
			ImageFile:  c.file,
			Commentary: c.commentary,
		})
	}
	return blocks, nil
}
