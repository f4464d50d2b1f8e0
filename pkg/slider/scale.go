// Package slider maps pointer positions to slider values.
//
// A Scale is the numeric domain of a slider. Every value it produces is in
// [Min, Max] and is Min plus a whole number of Steps. Range sliders hold two
// values; updates clamp the moved thumb against the other one so the lower
// thumb never passes the upper.
package slider

import (
	"math"

	"github.com/vango-dev/vangoui/pkg/dom"
)

// Scale defaults.
const (
	DefaultMin  = 0
	DefaultMax  = 100
	DefaultStep = 1
)

// Scale describes the value domain of a slider.
type Scale struct {
	Min  float64
	Max  float64
	Step float64
}

// NewScale returns a scale, substituting the default step for a
// non-positive step and swapping inverted bounds.
func NewScale(lo, hi, step float64) Scale {
	if hi < lo {
		lo, hi = hi, lo
	}
	if step <= 0 || math.IsNaN(step) {
		step = DefaultStep
	}
	return Scale{Min: lo, Max: hi, Step: step}
}

// DefaultScale is 0..100 in steps of 1.
func DefaultScale() Scale {
	return Scale{Min: DefaultMin, Max: DefaultMax, Step: DefaultStep}
}

func (s Scale) step() float64 {
	if s.Step <= 0 {
		return DefaultStep
	}
	return s.Step
}

// top is the greatest step multiple from Min that does not exceed Max.
func (s Scale) top() float64 {
	if s.Max <= s.Min {
		return s.Min
	}
	step := s.step()
	return s.Min + math.Floor((s.Max-s.Min)/step+1e-9)*step
}

// Snap rounds v to the nearest step from Min and clamps the result.
func (s Scale) Snap(v float64) float64 {
	if math.IsNaN(v) {
		return s.Min
	}
	step := s.step()
	snapped := s.Min + math.Round((v-s.Min)/step)*step
	snapped = math.Max(s.Min, math.Min(snapped, s.top()))
	return roundTo(snapped, max(decimals(step), decimals(s.Min)))
}

// FromPosition converts a pointer x coordinate over the track into a
// snapped value. A track that has not been measured yields Min.
func (s Scale) FromPosition(clientX float64, track dom.Rect) float64 {
	if track.Width <= 0 {
		return s.Min
	}
	frac := (clientX - track.Left()) / track.Width
	frac = math.Max(0, math.Min(frac, 1))
	return s.Snap(s.Min + frac*(s.Max-s.Min))
}

// Percent returns the position of v along the track in [0, 100].
func (s Scale) Percent(v float64) float64 {
	if s.Max <= s.Min {
		return 0
	}
	p := (v - s.Min) / (s.Max - s.Min) * 100
	return math.Max(0, math.Min(p, 100))
}

// Update returns a copy of values with thumb set to the snapped v. In a
// two-thumb slider the lower thumb is clamped to the upper and the upper
// to the lower.
func (s Scale) Update(values []float64, thumb int, v float64) []float64 {
	out := append([]float64(nil), values...)
	if thumb < 0 || thumb >= len(out) {
		return out
	}
	v = s.Snap(v)
	if len(out) == 2 {
		switch thumb {
		case 0:
			v = math.Min(v, out[1])
		case 1:
			v = math.Max(v, out[0])
		}
	}
	out[thumb] = v
	return out
}

// Closest returns the index of the thumb nearest to v. Ties go to the
// first thumb.
func (s Scale) Closest(values []float64, v float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i, cur := range values {
		d := math.Abs(cur - v)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Normalize makes values valid for the scale: one snapped value in single
// mode, an ordered snapped pair in range mode.
func (s Scale) Normalize(values []float64, rangeMode bool) []float64 {
	if !rangeMode {
		if len(values) == 0 {
			return []float64{s.Min}
		}
		return []float64{s.Snap(values[0])}
	}

	switch len(values) {
	case 0:
		return []float64{s.Min, s.top()}
	case 1:
		return []float64{s.Snap(values[0]), s.top()}
	}
	lo, hi := s.Snap(values[0]), s.Snap(values[1])
	if lo > hi {
		lo, hi = hi, lo
	}
	return []float64{lo, hi}
}

// decimals returns the number of fractional digits in v, up to 10.
func decimals(v float64) int {
	n := 0
	for f := math.Abs(v); n < 10 && math.Abs(f-math.Round(f)) > 1e-9; n++ {
		f *= 10
	}
	return n
}

// roundTo trims floating point noise left by step arithmetic (0.1+0.2).
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
