package render

import (
	"fmt"
	"math"
	"strconv"
)

// Tick is a backend-neutral axis tick.
type Tick struct {
	Value float64
	Label string
}

// niceAxisBounds expands [min,max] by a small margin and rounds to "nice" numbers for readability.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	// 5% margin on both sides
	pad := span * 0.05
	a := min - pad
	b := max + pad
	// round to the order of magnitude below the span so the margin stays small
	mag := math.Pow(10, math.Floor(math.Log10(span))-1)
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// niceTicks generates up to n desired tick marks between [min, max] using nice increments.
func niceTicks(min, max float64, n int) []Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	// Preferred tick steps: 1, 2, 2.5, 5, 10 ... scaled by power of 10
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil((max - min) / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	ticks := []Tick{}
	for i := 0; ; i++ {
		// multiply instead of accumulating so 0.1 steps don't drift
		v := start + float64(i)*bestStep
		if v > end+bestStep/2 || len(ticks) > n+2 {
			break
		}
		ticks = append(ticks, Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}

// explicitTicks labels caller-chosen positions.
func explicitTicks(values []float64) []Tick {
	ticks := make([]Tick, len(values))
	for i, v := range values {
		ticks[i] = Tick{Value: v, Label: formatTick(v)}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	var s string
	switch {
	case av >= 100:
		s = fmt.Sprintf("%.0f", v)
	case av >= 10:
		s = fmt.Sprintf("%.1f", v)
	case av >= 0.01:
		s = fmt.Sprintf("%.2f", v)
	default:
		s = fmt.Sprintf("%.4f", v)
	}
	// drop trailing zeros: "82.0" -> "82", "0.50" -> "0.5"
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// axisRangeAndTicks resolves the final range and ticks for one axis. A fixed
// range wins over data bounds; explicit tick values win over generated ones.
// The returned range always covers every tick.
func axisRangeAndTicks(fixed *Range, explicit []float64, dataMin, dataMax float64, pad bool) (Range, []Tick) {
	var r Range
	switch {
	case fixed != nil:
		r = *fixed
	case pad:
		r.Min, r.Max = niceAxisBounds(dataMin, dataMax)
	default:
		r.Min, r.Max = dataMin, dataMax
		if r.Max <= r.Min {
			r.Max = r.Min + 1
		}
	}
	var ticks []Tick
	if len(explicit) > 0 {
		ticks = explicitTicks(explicit)
	} else {
		ticks = niceTicks(r.Min, r.Max, 7)
		if fixed != nil {
			ticks = clipTicks(ticks, r)
		}
	}
	for _, t := range ticks {
		r.Min = math.Min(r.Min, t.Value)
		r.Max = math.Max(r.Max, t.Value)
	}
	return r, ticks
}

func clipTicks(ticks []Tick, r Range) []Tick {
	out := ticks[:0]
	eps := (r.Max - r.Min) * 1e-9
	for _, t := range ticks {
		if t.Value >= r.Min-eps && t.Value <= r.Max+eps {
			out = append(out, t)
		}
	}
	return out
}
