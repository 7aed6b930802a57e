package report

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlotOptions controls the trajectory plot.
type PlotOptions struct {
	Width   vg.Length // default: 10 inches
	Height  vg.Length // default: 5 inches
	XMin    float64   // left edge of the sampled curve
	XMax    float64   // right edge of the sampled curve
	Samples int       // curve sample count (default: 400)
}

// DefaultPlotOptions mirrors a 10x5 inch figure of x in [-1, 6].
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		Width:   10 * vg.Inch,
		Height:  5 * vg.Inch,
		XMin:    -1,
		XMax:    6,
		Samples: 400,
	}
}

// NewPlot draws the objective over [XMin, XMax] as a line and every finite
// trajectory point (x_i, f(x_i)) as a red marker.
func NewPlot(r Run, opts PlotOptions) (*plot.Plot, error) {
	if opts.Samples < 2 {
		opts.Samples = 400
	}
	name := objectiveName(r.Objective)

	p := plot.New()
	p.Title.Text = "Gradient descent on " + name
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"

	xs := floats.Span(make([]float64, opts.Samples), opts.XMin, opts.XMax)
	curve := make(plotter.XYs, len(xs))
	for i, x := range xs {
		curve[i].X = x
		curve[i].Y = r.Objective.Value(x)
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, fmt.Errorf("curve: %w", err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}

	p.Add(line)
	p.Legend.Add(name, line)

	points := trajectoryXYs(r)
	if len(points) > 0 {
		scatter, err := plotter.NewScatter(points)
		if err != nil {
			return nil, fmt.Errorf("trajectory: %w", err)
		}
		scatter.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)
	}

	return p, nil
}

// SavePlot renders the plot to path. The image format follows the file
// extension (png, svg, pdf, jpg, ...).
func SavePlot(path string, r Run, opts PlotOptions) error {
	p, err := NewPlot(r, opts)
	if err != nil {
		return fmt.Errorf("build plot: %w", err)
	}

	if opts.Width <= 0 {
		opts.Width = 10 * vg.Inch
	}
	if opts.Height <= 0 {
		opts.Height = 5 * vg.Inch
	}
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}

// trajectoryXYs drops estimates whose coordinates are not finite, which
// happens once a diverging run overflows.
func trajectoryXYs(r Run) plotter.XYs {
	values := r.Result.Trajectory.Values(r.Objective)
	out := make(plotter.XYs, 0, len(values))
	for i, x := range r.Result.Trajectory {
		y := values[i]
		if !finite(x) || !finite(y) {
			continue
		}
		out = append(out, plotter.XY{X: x, Y: y})
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
