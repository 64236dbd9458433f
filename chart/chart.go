package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/rollcall-go/rollcall/attendance"
)

// ErrNoData indicates that there are no statistics to draw.
var ErrNoData = errors.New("chart: no statistics to render")

// Options control the chart's appearance. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	// Canvas size
	Width  vg.Length
	Height vg.Length

	// Bar fill color
	BarColor color.Color

	// Bar width on the canvas
	BarWidth vg.Length

	// X axis tick label rotation in radians
	LabelRotation float64
}

// DefaultOptions returns the standard chart appearance: a 10x6 inch canvas,
// translucent blue bars, and x labels rotated 30 degrees.
func DefaultOptions() Options {
	return Options{
		Width:         10 * vg.Inch,
		Height:        6 * vg.Inch,
		BarColor:      color.NRGBA{R: 31, G: 119, B: 180, A: 178},
		BarWidth:      vg.Points(30),
		LabelRotation: math.Pi / 6,
	}
}

// Render draws one bar per course and writes the chart to outputPath,
// creating or overwriting the file. See the package documentation for the
// visual contract. The caller owns the written file.
func Render(stats []attendance.CourseStats, outputPath string) error {
	return RenderWithOptions(stats, outputPath, DefaultOptions())
}

// RenderWithOptions is Render with a custom appearance.
func RenderWithOptions(stats []attendance.CourseStats, outputPath string, opts Options) error {
	if len(stats) == 0 {
		return fmt.Errorf("chart: render %s: %w", outputPath, ErrNoData)
	}

	courses := make([]string, len(stats))
	values := make(plotter.Values, len(stats))
	for i, s := range stats {
		courses[i] = s.Course
		values[i] = s.Percentage
	}

	p := plot.New()
	p.Title.Text = "Attendance Report"
	p.X.Label.Text = "Course"
	p.Y.Label.Text = "Attendance Percentage"
	p.Y.Min = 0
	p.Y.Max = 110

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.Transparent
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(grid)

	bars, err := plotter.NewBarChart(values, opts.BarWidth)
	if err != nil {
		return fmt.Errorf("chart: render %s: %w", outputPath, err)
	}
	bars.Color = opts.BarColor
	bars.LineStyle.Width = 0
	p.Add(bars)

	labels, err := valueLabels(stats)
	if err != nil {
		return fmt.Errorf("chart: render %s: %w", outputPath, err)
	}
	p.Add(labels)

	p.NominalX(courses...)
	p.X.Tick.Label.Rotation = opts.LabelRotation
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	if err := p.Save(opts.Width, opts.Height, outputPath); err != nil {
		return fmt.Errorf("chart: render %s: %w", outputPath, err)
	}
	return nil
}

// valueLabels builds the percentage labels drawn above each bar.
func valueLabels(stats []attendance.CourseStats) (*plotter.Labels, error) {
	xys := make(plotter.XYs, len(stats))
	texts := make([]string, len(stats))
	for i, s := range stats {
		xys[i] = plotter.XY{X: float64(i), Y: s.Percentage + 2}
		texts[i] = fmt.Sprintf("%.2f%%", s.Percentage)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YBottom
	}
	return labels, nil
}
