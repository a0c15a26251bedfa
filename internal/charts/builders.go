package charts

import (
	"fmt"
	"strconv"
	"strings"

	"childstat/internal/dataset"
	"childstat/internal/errors"
	"childstat/internal/synthetic"
)

// MissingValues builds the grouped bar chart of per-column missing counts:
// one bar group per column name, one bar per source table. Columns absent
// from a table contribute a zero-height bar for that table.
func MissingValues(summary *dataset.MissingSummary) (*Spec, error) {
	if summary == nil || len(summary.Columns) == 0 {
		return nil, errors.NewRenderError("missing-value chart has no columns to plot", nil)
	}

	spec := &Spec{
		Title:        "Missing values per column",
		XLabel:       "column",
		YLabel:       "missing cells",
		Geometry:     GeomBar,
		XTickLabels:  append([]string(nil), summary.Columns...),
		RotateXTicks: true,
		Theme:        DarkMinimal(),
	}

	for _, table := range summary.Tables {
		series := Series{Name: table, YS: make([]float64, len(summary.Columns))}
		for i, col := range summary.Columns {
			if n, ok := summary.Count(col, table); ok {
				series.YS[i] = float64(n)
			}
		}
		spec.Series = append(spec.Series, series)
	}

	return spec, nil
}

// WorldMap builds the simulated scatter map: one point per country at a
// random coordinate, colored by the random binary score. The chart is
// explicitly non-geographic and the title says so.
func WorldMap(points []synthetic.MapPoint) (*Spec, error) {
	if len(points) == 0 {
		return nil, errors.NewRenderError("world map has no points to plot", nil)
	}

	spec := &Spec{
		Title:    "Simulated world map of child deprivation (random coordinates)",
		XLabel:   "longitude",
		YLabel:   "latitude",
		Geometry: GeomPoint,
		Theme:    DarkMinimal(),
	}

	byScore := map[int]*Series{
		0: {Name: "not deprived"},
		1: {Name: "deprived"},
	}
	for _, p := range points {
		s, ok := byScore[p.DeprivationScore]
		if !ok {
			return nil, errors.NewRenderError(
				fmt.Sprintf("map point for %s has score %d outside {0,1}", p.Country, p.DeprivationScore), nil)
		}
		s.XS = append(s.XS, p.Lon)
		s.YS = append(s.YS, p.Lat)
	}
	spec.Series = append(spec.Series, *byScore[0], *byScore[1])

	return spec, nil
}

// ScoreDistribution builds the histogram of the deprivation score over the
// merged table.
func ScoreDistribution(t *dataset.Table) (*Spec, error) {
	values, err := t.Floats("deprivation_score")
	if err != nil {
		return nil, errors.NewRenderError("score distribution chart", err)
	}
	if len(values) == 0 {
		return nil, errors.NewRenderError("score distribution has no numeric values", nil)
	}

	return &Spec{
		Title:    "Distribution of deprivation scores",
		XLabel:   "deprivation score",
		YLabel:   "countries",
		Geometry: GeomHistogram,
		Bins:     16,
		Series:   []Series{{Name: "deprivation_score", XS: values}},
		Theme:    DarkMinimal(),
	}, nil
}

// LeaveVsDeprivation builds the scatter of maternity leave against the
// deprivation score with a least-squares trend line. Only rows where both
// values are present and numeric contribute a point.
func LeaveVsDeprivation(t *dataset.Table) (*Spec, error) {
	xs, ys, err := pairedFloats(t, "maternity_leave_days", "deprivation_score")
	if err != nil {
		return nil, errors.NewRenderError("maternity leave vs deprivation chart", err)
	}
	if len(xs) == 0 {
		return nil, errors.NewRenderError("maternity leave vs deprivation has no paired values", nil)
	}

	spec := &Spec{
		Title:    "Maternity leave vs child deprivation",
		XLabel:   "maternity leave (days)",
		YLabel:   "deprivation score",
		Geometry: GeomPoint,
		Series:   []Series{{Name: "countries", XS: xs, YS: ys}},
		Theme:    DarkMinimal(),
	}

	if fit, err := FitOLS(xs, ys); err == nil {
		spec.Fit = &fit
	}

	return spec, nil
}

// TimeSeries builds the simulated multi-country line chart. Only the first
// maxCountries distinct countries are drawn, in first-encountered order.
func TimeSeries(points []synthetic.TimeSeriesPoint, maxCountries int) (*Spec, error) {
	if len(points) == 0 {
		return nil, errors.NewRenderError("time series has no points to plot", nil)
	}

	countries := synthetic.Countries(points, maxCountries)
	keep := make(map[string]int, len(countries))
	for i, c := range countries {
		keep[c] = i
	}

	series := make([]Series, len(countries))
	for i, c := range countries {
		series[i] = Series{Name: c}
	}
	for _, p := range points {
		i, ok := keep[p.Country]
		if !ok {
			continue
		}
		series[i].XS = append(series[i].XS, float64(p.Year))
		series[i].YS = append(series[i].YS, float64(p.DeprivationScore))
	}

	return &Spec{
		Title:    "Simulated deprivation over time, selected countries",
		XLabel:   "year",
		YLabel:   "deprivation score",
		Geometry: GeomLine,
		Series:   series,
		Theme:    DarkMinimal(),
	}, nil
}

// pairedFloats extracts two columns row-wise, keeping only rows where both
// cells are non-blank, and failing on non-numeric cells.
func pairedFloats(t *dataset.Table, xCol, yCol string) ([]float64, []float64, error) {
	xIdx, ok := t.ColumnIndex(xCol)
	if !ok {
		return nil, nil, errors.NewSchemaError(fmt.Sprintf("column %q not found in table %q", xCol, t.Name))
	}
	yIdx, ok := t.ColumnIndex(yCol)
	if !ok {
		return nil, nil, errors.NewSchemaError(fmt.Sprintf("column %q not found in table %q", yCol, t.Name))
	}

	var xs, ys []float64
	for i, row := range t.Rows {
		xCell, yCell := strings.TrimSpace(row[xIdx]), strings.TrimSpace(row[yIdx])
		if xCell == "" || yCell == "" {
			continue
		}
		x, err := strconv.ParseFloat(xCell, 64)
		if err != nil {
			return nil, nil, errors.NewSchemaError(
				fmt.Sprintf("column %q has non-numeric value %q at row %d", xCol, xCell, i))
		}
		y, err := strconv.ParseFloat(yCell, 64)
		if err != nil {
			return nil, nil, errors.NewSchemaError(
				fmt.Sprintf("column %q has non-numeric value %q at row %d", yCol, yCell, i))
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys, nil
}
