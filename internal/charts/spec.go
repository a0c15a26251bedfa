package charts

import (
	"image/color"

	"childstat/internal/errors"
)

// Geometry selects how a chart draws its series
type Geometry string

const (
	GeomBar       Geometry = "bar"
	GeomPoint     Geometry = "point"
	GeomHistogram Geometry = "histogram"
	GeomLine      Geometry = "line"
)

// Series is one named group of observations within a chart
type Series struct {
	Name string
	XS   []float64
	YS   []float64
}

// Spec is a declarative chart description: geometry, aesthetic mapping,
// labels and theme. Builders return specs as values; nothing is drawn until
// Render materializes the spec to an image file.
type Spec struct {
	Title    string
	XLabel   string
	YLabel   string
	Geometry Geometry
	Series   []Series

	// XTickLabels switches the X axis to nominal categories when non-empty
	XTickLabels []string
	// RotateXTicks tilts the category labels so long column names stay legible
	RotateXTicks bool
	// Bins is the bucket count for histogram geometry
	Bins int
	// Fit overlays a straight trend line when set
	Fit *LineFit

	Theme Theme
}

// LineFit is an ordinary least-squares trend line
type LineFit struct {
	Slope     float64
	Intercept float64
}

// At evaluates the fitted line
func (f LineFit) At(x float64) float64 {
	return f.Slope*x + f.Intercept
}

// FitOLS fits a least-squares line through the paired samples. It needs at
// least two points with distinct x values.
func FitOLS(xs, ys []float64) (LineFit, error) {
	if len(xs) != len(ys) {
		return LineFit{}, errors.NewRenderError("trend line needs paired samples", nil)
	}
	if len(xs) < 2 {
		return LineFit{}, errors.NewRenderError("trend line needs at least two points", nil)
	}

	var meanX, meanY float64
	for i := range xs {
		meanX += xs[i]
		meanY += ys[i]
	}
	n := float64(len(xs))
	meanX /= n
	meanY /= n

	var cov, variance float64
	for i := range xs {
		dx := xs[i] - meanX
		cov += dx * (ys[i] - meanY)
		variance += dx * dx
	}
	if variance == 0 {
		return LineFit{}, errors.NewRenderError("trend line undefined for constant x", nil)
	}

	slope := cov / variance
	return LineFit{Slope: slope, Intercept: meanY - slope*meanX}, nil
}

// Theme carries the colors shared by every chart in the report
type Theme struct {
	Background color.Color
	Text       color.Color
	Grid       color.Color
	Palette    []color.Color
}

// DarkMinimal is the report's visual theme: dark background, light text,
// muted grid, and a fixed palette so the same table always gets the same
// color across charts.
func DarkMinimal() Theme {
	return Theme{
		Background: color.RGBA{R: 24, G: 26, B: 27, A: 255},
		Text:       color.RGBA{R: 230, G: 230, B: 230, A: 255},
		Grid:       color.RGBA{R: 70, G: 74, B: 77, A: 255},
		Palette: []color.Color{
			color.RGBA{R: 86, G: 180, B: 233, A: 255},  // sky blue
			color.RGBA{R: 230, G: 159, B: 0, A: 255},   // orange
			color.RGBA{R: 0, G: 158, B: 115, A: 255},   // bluish green
			color.RGBA{R: 240, G: 228, B: 66, A: 255},  // yellow
			color.RGBA{R: 204, G: 121, B: 167, A: 255}, // reddish purple
			color.RGBA{R: 213, G: 94, B: 0, A: 255},    // vermillion
		},
	}
}

// PaletteColor returns the i-th palette color, cycling past the end
func (t Theme) PaletteColor(i int) color.Color {
	if len(t.Palette) == 0 {
		return t.Text
	}
	return t.Palette[i%len(t.Palette)]
}
