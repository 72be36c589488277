package render

import (
	"fmt"
	"image"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/iafilius/TrainingPlots/src/series"
)

// Gonum renders with gonum.org/v1/plot.
type Gonum struct{}

func (Gonum) Name() string { return "gonum" }

func (Gonum) Render(spec ChartSpec, s series.Series) (image.Image, error) {
	// non-finite samples are left out of the line, never handed to the rasterizer
	s = s.Finite()
	minX, maxX, minY, maxY, ok := s.Bounds()
	if !ok {
		return nil, ErrEmptySeries
	}
	xr, xTicks := axisRangeAndTicks(nil, spec.XTicks, minX, maxX, false)
	yr, yTicks := axisRangeAndTicks(spec.YRange, nil, minY, maxY, true)

	p := plot.New()
	p.BackgroundColor = color.White
	p.Title.Text = spec.Title
	p.Title.TextStyle.Font.Size = vg.Points(spec.TitleFontSize)
	p.Title.Padding = vg.Points(20)
	p.X.Label.Text = spec.XLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(spec.LabelFontSize)
	p.Y.Label.Text = spec.YLabel
	p.Y.Label.TextStyle.Font.Size = vg.Points(spec.LabelFontSize)
	p.X.Tick.Label.Font.Size = vg.Points(spec.TickFontSize)
	p.Y.Tick.Label.Font.Size = vg.Points(spec.TickFontSize)

	grid := plotter.NewGrid()
	gridColor := color.NRGBA{A: uint8(spec.GridAlpha * 255)}
	for _, ls := range []*draw.LineStyle{&grid.Vertical, &grid.Horizontal} {
		ls.Color = gridColor
		ls.Width = vg.Points(0.8)
		ls.Dashes = []vg.Length{vg.Points(3.7), vg.Points(1.6)}
	}
	p.Add(grid)

	pts := make(plotter.XYs, s.Len())
	for i, pt := range s.Points {
		pts[i].X = pt.X
		pts[i].Y = pt.Y
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("gonum series %q: %w", s.Name, err)
	}
	line.LineStyle.Width = vg.Points(spec.LineWidth)
	line.LineStyle.Color = colorWithAlpha(spec.LineColor, spec.Alpha)
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Radius = vg.Points(spec.MarkerSize / 2)
	points.GlyphStyle.Color = colorWithAlpha(spec.MarkerColor, spec.Alpha)
	p.Add(line, points)

	// Add() widens the axes to the data; pin them afterwards.
	p.X.Min, p.X.Max = xr.Min, xr.Max
	p.Y.Min, p.Y.Max = yr.Min, yr.Max
	p.X.Tick.Marker = gonumTicks(xTicks)
	p.Y.Tick.Marker = gonumTicks(yTicks)

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(spec.Width)*vg.Inch, vg.Length(spec.Height)*vg.Inch),
		vgimg.UseDPI(int(spec.DPI)),
		vgimg.UseBackgroundColor(color.White),
	)
	p.Draw(draw.New(c))
	return c.Image(), nil
}

func gonumTicks(ticks []Tick) plot.ConstantTicks {
	out := make(plot.ConstantTicks, len(ticks))
	for i, t := range ticks {
		out[i] = plot.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}
