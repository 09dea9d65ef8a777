// SPDX-License-Identifier: EPL-2.0

package plotimg

import (
	"fmt"
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/golang/glog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/ik5/audwave/waveform"
)

// margin is the fraction of the data range left empty on each side.
const margin = 0.05

// Render decimates samples to opts.Width*opts.PointsPerPixel points and
// draws them as a line on a transparent Width x Height image.
func Render(samples []float32, opts Options) (image.Image, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	col, _ := ParseColor(opts.Color)

	points, err := waveform.Decimate(samples, opts.Width*opts.PointsPerPixel)
	if err != nil {
		return nil, fmt.Errorf("decimating waveform: %w", err)
	}

	p := plot.New()
	p.BackgroundColor = nil
	p.HideAxes()
	p.X.Padding = 0
	p.Y.Padding = 0

	ymin, ymax := math32.Inf(1), math32.Inf(-1)
	for _, run := range finiteRuns(points) {
		xys := make(plotter.XYs, len(run.values))
		for i, v := range run.values {
			xys[i].X = float64(run.start + i)
			xys[i].Y = float64(v)
			ymin = min(ymin, v)
			ymax = max(ymax, v)
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("building line: %w", err)
		}
		line.LineStyle = draw.LineStyle{
			Color: col,
			Width: vg.Points(opts.LineWidth),
		}
		p.Add(line)
	}

	if ymin > ymax { // nothing finite to draw
		ymin, ymax = -1, 1
	}
	p.X.Min, p.X.Max = withMargin(0, float64(max(len(points)-1, 0)))
	p.Y.Min, p.Y.Max = withMargin(float64(ymin), float64(ymax))

	dpi := vg.Length(opts.DPI)
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(opts.Width)/dpi*vg.Inch, vg.Length(opts.Height)/dpi*vg.Inch),
		vgimg.UseDPI(opts.DPI),
		vgimg.UseBackgroundColor(color.Transparent),
	)
	p.Draw(draw.New(c))

	glog.V(1).Infof("plotimg: rendered %d samples as %d points on %dx%d",
		len(samples), len(points), opts.Width, opts.Height)

	return c.Image(), nil
}

type run struct {
	start  int
	values []float32
}

// finiteRuns splits values at NaN and infinite entries.
func finiteRuns(values []float32) []run {
	var runs []run
	start := -1
	for i, v := range values {
		finite := !math32.IsNaN(v) && !math32.IsInf(v, 0)
		switch {
		case finite && start < 0:
			start = i
		case !finite && start >= 0:
			runs = append(runs, run{start: start, values: values[start:i]})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, run{start: start, values: values[start:]})
	}

	return runs
}

func withMargin(lo, hi float64) (float64, float64) {
	d := (hi - lo) * margin
	return lo - d, hi + d
}
