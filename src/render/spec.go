// Package render turns a series.Series plus a ChartSpec into a PNG line chart.
package render

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrInvalidSpec is returned when a ChartSpec cannot produce an image.
var ErrInvalidSpec = errors.New("invalid chart spec")

// Range is a closed axis interval.
type Range struct {
	Min float64
	Max float64
}

// ChartSpec bundles everything a renderer needs to draw one chart. Sizes in
// points (1/72 in) scale with DPI; Width/Height are in inches.
type ChartSpec struct {
	Title  string
	XLabel string
	YLabel string

	LineColor   string // hex, e.g. "#2E86AB"
	MarkerColor string
	LineWidth   float64
	MarkerSize  float64 // marker diameter
	Alpha       float64

	YRange *Range    // nil: derived from data
	XTicks []float64 // nil: default density

	Width  float64
	Height float64
	DPI    float64

	GridAlpha     float64
	TitleFontSize float64
	LabelFontSize float64
	TickFontSize  float64

	// Caption is drawn in the bottom-left corner when set.
	Caption string
}

// DefaultSpec returns the house style: 12x8in at 300 DPI, blue line with
// magenta markers, dashed light grid.
func DefaultSpec(title, xLabel, yLabel string) ChartSpec {
	return ChartSpec{
		Title:         title,
		XLabel:        xLabel,
		YLabel:        yLabel,
		LineColor:     "#2E86AB",
		MarkerColor:   "#A23B72",
		LineWidth:     2.5,
		MarkerSize:    4,
		Alpha:         0.8,
		Width:         12,
		Height:        8,
		DPI:           300,
		GridAlpha:     0.3,
		TitleFontSize: 18,
		LabelFontSize: 18,
		TickFontSize:  14,
	}
}

// Validate reports the first problem that would make rendering fail.
func (s ChartSpec) Validate() error {
	switch {
	case s.DPI <= 0 || math.IsNaN(s.DPI):
		return fmt.Errorf("%w: dpi must be positive, got %v", ErrInvalidSpec, s.DPI)
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: size must be positive, got %vx%v", ErrInvalidSpec, s.Width, s.Height)
	case s.YRange != nil && !(s.YRange.Max > s.YRange.Min):
		return fmt.Errorf("%w: y range [%v,%v] is empty", ErrInvalidSpec, s.YRange.Min, s.YRange.Max)
	}
	if _, err := parseHex(s.LineColor); err != nil {
		return err
	}
	if _, err := parseHex(s.MarkerColor); err != nil {
		return err
	}
	return nil
}

// PixelSize returns the raster size implied by Width, Height and DPI.
func (s ChartSpec) PixelSize() (int, int) {
	return int(math.Round(s.Width * s.DPI)), int(math.Round(s.Height * s.DPI))
}

// px converts a size in points to device pixels.
func (s ChartSpec) px(pt float64) float64 { return pt * s.DPI / 72 }

func parseHex(hex string) (drawing.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 {
		return drawing.Color{}, fmt.Errorf("%w: bad colour %q", ErrInvalidSpec, hex)
	}
	for _, r := range h {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return drawing.Color{}, fmt.Errorf("%w: bad colour %q", ErrInvalidSpec, hex)
		}
	}
	return drawing.ColorFromHex(h), nil
}

// colorWithAlpha parses hex and applies a 0..1 opacity.
func colorWithAlpha(hex string, alpha float64) drawing.Color {
	c, err := parseHex(hex)
	if err != nil {
		c = drawing.ColorBlack
	}
	if alpha <= 0 || alpha > 1 {
		alpha = 1
	}
	return c.WithAlpha(uint8(math.Round(alpha * 255)))
}
