// Package series holds the ordered (x, y) point sequences that get charted.
package series

import (
	"errors"
	"fmt"
	"math"
)

// ErrLengthMismatch is returned by Pair when the parallel inputs differ in length.
var ErrLengthMismatch = errors.New("x and y sequences must be of the same length")

// Point is one (x, y) sample; X is the training step.
type Point struct {
	X float64
	Y float64
}

// Series is an ordered list of points. X is expected to be non-decreasing
// (training step order) but this is not enforced.
type Series struct {
	Name   string
	Points []Point
}

// Pair zips two parallel sequences positionally.
func Pair(name string, xs, ys []float64) (Series, error) {
	if len(xs) != len(ys) {
		return Series{}, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xs), len(ys))
	}
	pts := make([]Point, len(xs))
	for i := range xs {
		pts[i] = Point{X: xs[i], Y: ys[i]}
	}
	return Series{Name: name, Points: pts}, nil
}

func (s Series) Len() int    { return len(s.Points) }
func (s Series) Empty() bool { return len(s.Points) == 0 }

// FilterMaxX returns a copy holding only the points with X <= max, in input order.
func (s Series) FilterMaxX(max float64) Series {
	out := Series{Name: s.Name, Points: make([]Point, 0, len(s.Points))}
	for _, p := range s.Points {
		if p.X <= max {
			out.Points = append(out.Points, p)
		}
	}
	return out
}

// Finite returns a copy without points whose X or Y is NaN or ±Inf.
func (s Series) Finite() Series {
	out := Series{Name: s.Name, Points: make([]Point, 0, len(s.Points))}
	for _, p := range s.Points {
		if finite(p.X) && finite(p.Y) {
			out.Points = append(out.Points, p)
		}
	}
	return out
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func (s Series) XValues() []float64 {
	xs := make([]float64, len(s.Points))
	for i, p := range s.Points {
		xs[i] = p.X
	}
	return xs
}

func (s Series) YValues() []float64 {
	ys := make([]float64, len(s.Points))
	for i, p := range s.Points {
		ys[i] = p.Y
	}
	return ys
}

// Bounds returns the data extent. ok is false when the series has no finite points.
func (s Series) Bounds() (minX, maxX, minY, maxY float64, ok bool) {
	minX, minY = math.MaxFloat64, math.MaxFloat64
	maxX, maxY = -math.MaxFloat64, -math.MaxFloat64
	for _, p := range s.Points {
		if !finite(p.X) || !finite(p.Y) {
			continue
		}
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
		ok = true
	}
	if !ok {
		return 0, 0, 0, 0, false
	}
	return minX, maxX, minY, maxY, true
}
