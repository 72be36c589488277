package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/TrainingPlots/src/series"
)

// GoChart renders with github.com/wcharczuk/go-chart.
type GoChart struct{}

func (GoChart) Name() string { return "gochart" }

func (GoChart) Render(spec ChartSpec, s series.Series) (image.Image, error) {
	// non-finite samples are left out of the line, never handed to the rasterizer
	s = s.Finite()
	minX, maxX, minY, maxY, ok := s.Bounds()
	if !ok {
		return nil, ErrEmptySeries
	}
	xr, xTicks := axisRangeAndTicks(nil, spec.XTicks, minX, maxX, false)
	yr, yTicks := axisRangeAndTicks(spec.YRange, nil, minY, maxY, true)

	xs, ys := s.XValues(), s.YValues()
	if len(xs) == 1 {
		// go-chart needs two X values to draw; repeat the single sample
		xs = append(xs, xs[0])
		ys = append(ys, ys[0])
	}

	w, h := spec.PixelSize()
	pad := int(spec.px(8))
	grid := chart.Style{
		StrokeColor:     drawing.ColorBlack.WithAlpha(uint8(spec.GridAlpha * 255)),
		StrokeWidth:     spec.px(0.8),
		StrokeDashArray: []float64{spec.px(3.7), spec.px(1.6)},
	}
	text := drawing.ColorFromHex("262626")

	ch := chart.Chart{
		Title:      spec.Title,
		TitleStyle: chart.Style{FontSize: spec.TitleFontSize, FontColor: text},
		Width:      w,
		Height:     h,
		DPI:        spec.DPI,
		Background: chart.Style{
			FillColor: drawing.ColorWhite,
			Padding:   chart.Box{Top: pad + int(spec.px(spec.TitleFontSize*1.2)), Left: pad, Right: pad, Bottom: pad},
		},
		Canvas: chart.Style{FillColor: drawing.ColorWhite},
		XAxis: chart.XAxis{
			Name:           spec.XLabel,
			NameStyle:      chart.Style{FontSize: spec.LabelFontSize, FontColor: text},
			Style:          chart.Style{FontSize: spec.TickFontSize, FontColor: text, StrokeColor: text},
			Range:          &chart.ContinuousRange{Min: xr.Min, Max: xr.Max},
			Ticks:          goChartTicks(xTicks),
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           spec.YLabel,
			NameStyle:      chart.Style{FontSize: spec.LabelFontSize, FontColor: text},
			Style:          chart.Style{FontSize: spec.TickFontSize, FontColor: text, StrokeColor: text},
			Range:          &chart.ContinuousRange{Min: yr.Min, Max: yr.Max},
			Ticks:          goChartTicks(yTicks),
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    s.Name,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: colorWithAlpha(spec.LineColor, spec.Alpha),
					StrokeWidth: spec.px(spec.LineWidth),
					DotColor:    colorWithAlpha(spec.MarkerColor, spec.Alpha),
					DotWidth:    spec.px(spec.MarkerSize / 2),
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("go-chart render %q: %w", spec.Title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("go-chart decode %q: %w", spec.Title, err)
	}
	return img, nil
}

func goChartTicks(ticks []Tick) []chart.Tick {
	out := make([]chart.Tick, len(ticks))
	for i, t := range ticks {
		out[i] = chart.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}
