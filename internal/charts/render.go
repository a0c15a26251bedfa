package charts

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"childstat/internal/errors"
)

// Render materializes a chart spec to a PNG file. This is the only place
// pixels happen; builders stay pure.
func Render(spec *Spec, path string) error {
	p := plot.New()
	applyTheme(p, spec)

	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = spec.Theme.Grid
	grid.Horizontal.Color = spec.Theme.Grid
	p.Add(grid)

	var err error
	switch spec.Geometry {
	case GeomBar:
		err = addBars(p, spec)
	case GeomPoint:
		err = addPoints(p, spec)
	case GeomHistogram:
		err = addHistogram(p, spec)
	case GeomLine:
		err = addLines(p, spec)
	default:
		return errors.NewRenderError(fmt.Sprintf("unknown geometry %q", spec.Geometry), nil)
	}
	if err != nil {
		return err
	}

	if spec.Fit != nil {
		fit := plotter.NewFunction(spec.Fit.At)
		fit.Color = spec.Theme.Text
		fit.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		fit.Width = vg.Points(1.5)
		p.Add(fit)
		p.Legend.Add("linear fit", fit)
	}

	if len(spec.XTickLabels) > 0 {
		p.NominalX(spec.XTickLabels...)
	}
	if spec.RotateXTicks {
		p.X.Tick.Label.Rotation = math.Pi / 3
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.NewRenderError(fmt.Sprintf("failed to save chart %s", path), err)
	}

	slog.Info("rendered chart",
		slog.String("title", spec.Title),
		slog.String("geometry", string(spec.Geometry)),
		slog.String("path", path))

	return nil
}

// applyTheme sets the dark-background overrides: explicit text colors on
// title, axis labels, ticks and legend, plus light axis lines.
func applyTheme(p *plot.Plot, spec *Spec) {
	theme := spec.Theme

	p.BackgroundColor = theme.Background

	p.Title.TextStyle.Color = theme.Text
	p.Title.TextStyle.Font.Size = vg.Points(14)

	p.X.Label.TextStyle.Color = theme.Text
	p.Y.Label.TextStyle.Color = theme.Text
	p.X.Tick.Label.Color = theme.Text
	p.Y.Tick.Label.Color = theme.Text
	p.X.LineStyle.Color = theme.Text
	p.Y.LineStyle.Color = theme.Text
	p.X.Tick.LineStyle.Color = theme.Text
	p.Y.Tick.LineStyle.Color = theme.Text

	p.Legend.TextStyle.Color = theme.Text
	p.Legend.Top = true
}

func addBars(p *plot.Plot, spec *Spec) error {
	barWidth := vg.Points(12)
	n := len(spec.Series)
	for i, s := range spec.Series {
		bars, err := plotter.NewBarChart(plotter.Values(s.YS), barWidth)
		if err != nil {
			return errors.NewRenderError("bar chart construction failed", err)
		}
		bars.Color = spec.Theme.PaletteColor(i)
		bars.LineStyle.Width = vg.Length(0)
		bars.Offset = vg.Length(float64(i)-float64(n-1)/2) * barWidth
		p.Add(bars)
		if s.Name != "" {
			p.Legend.Add(s.Name, bars)
		}
	}
	return nil
}

func addPoints(p *plot.Plot, spec *Spec) error {
	for i, s := range spec.Series {
		scatter, err := plotter.NewScatter(seriesXYs(s))
		if err != nil {
			return errors.NewRenderError("scatter construction failed", err)
		}
		scatter.GlyphStyle.Color = spec.Theme.PaletteColor(i)
		scatter.GlyphStyle.Radius = vg.Points(3)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		if s.Name != "" {
			p.Legend.Add(s.Name, scatter)
		}
	}
	return nil
}

func addHistogram(p *plot.Plot, spec *Spec) error {
	if len(spec.Series) == 0 {
		return errors.NewRenderError("histogram has no series", nil)
	}
	bins := spec.Bins
	if bins <= 0 {
		bins = 16
	}
	hist, err := plotter.NewHist(plotter.Values(spec.Series[0].XS), bins)
	if err != nil {
		return errors.NewRenderError("histogram construction failed", err)
	}
	hist.FillColor = spec.Theme.PaletteColor(0)
	hist.LineStyle.Color = spec.Theme.Background
	p.Add(hist)
	return nil
}

func addLines(p *plot.Plot, spec *Spec) error {
	for i, s := range spec.Series {
		line, err := plotter.NewLine(seriesXYs(s))
		if err != nil {
			return errors.NewRenderError("line construction failed", err)
		}
		line.Color = spec.Theme.PaletteColor(i)
		line.Width = vg.Points(2)
		p.Add(line)
		if s.Name != "" {
			p.Legend.Add(s.Name, line)
		}
	}
	return nil
}

func seriesXYs(s Series) plotter.XYs {
	xys := make(plotter.XYs, len(s.XS))
	for i := range s.XS {
		xys[i].X = s.XS[i]
		xys[i].Y = s.YS[i]
	}
	return xys
}
