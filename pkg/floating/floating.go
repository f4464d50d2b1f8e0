// Package floating places a panel next to a trigger element and keeps it
// inside the viewport.
package floating

import (
	"math"

	"github.com/vango-dev/vangoui/pkg/dom"
)

// Rect and Size are shared with the dom package so measured geometry can
// be passed straight through.
type (
	Rect = dom.Rect
	Size = dom.Size
)

// Point is the top-left coordinate of a placed panel.
type Point struct {
	X float64
	Y float64
}

// Side is the side of the trigger the panel is placed on.
type Side string

const (
	Top    Side = "top"
	Right  Side = "right"
	Bottom Side = "bottom"
	Left   Side = "left"
)

// Align positions the panel along the trigger edge.
type Align string

const (
	Start  Align = "start"
	Center Align = "center"
	End    Align = "end"
)

// Defaults used when Options fields are left zero. Margin is also a
// floor: smaller values are raised to DefaultMargin.
const (
	DefaultSide       = Bottom
	DefaultAlign      = Center
	DefaultSideOffset = 8
	DefaultMargin     = 8
)

// Options controls placement.
type Options struct {
	Side        Side
	Align       Align
	SideOffset  float64 // gap between trigger and panel
	AlignOffset float64 // shift along the aligned edge
	Margin      float64 // minimum distance to the viewport edge
}

func (o Options) withDefaults() Options {
	o.Side = ParseSide(string(o.Side))
	o.Align = ParseAlign(string(o.Align))
	if o.SideOffset == 0 {
		o.SideOffset = DefaultSideOffset
	}
	if o.Margin < DefaultMargin {
		o.Margin = DefaultMargin
	}
	return o
}

// DefaultOptions returns bottom/center placement with an 8px gap and
// an 8px viewport margin.
func DefaultOptions() Options {
	return Options{
		Side:       DefaultSide,
		Align:      DefaultAlign,
		SideOffset: DefaultSideOffset,
		Margin:     DefaultMargin,
	}
}

// ParseSide maps a lowercase side name to a Side, falling back to
// DefaultSide for unknown input.
func ParseSide(s string) Side {
	switch Side(s) {
	case Top, Right, Bottom, Left:
		return Side(s)
	default:
		return DefaultSide
	}
}

// ParseAlign maps a lowercase alignment name to an Align, falling back to
// DefaultAlign for unknown input.
func ParseAlign(s string) Align {
	switch Align(s) {
	case Start, Center, End:
		return Align(s)
	default:
		return DefaultAlign
	}
}

// Compute returns the top-left coordinate for a panel of the given size
// placed against trigger, clamped so that
//
//	margin <= x <= viewport.Width - panel.Width - margin
//
// and likewise for y. When the panel does not fit, the leading margin wins.
func Compute(trigger Rect, panel Size, viewport Size, opts Options) Point {
	opts = opts.withDefaults()
	side, align := opts.Side, opts.Align

	var x, y float64
	switch side {
	case Top:
		x = trigger.CenterX() - panel.Width/2
		y = trigger.Top() - panel.Height - opts.SideOffset
	case Bottom:
		x = trigger.CenterX() - panel.Width/2
		y = trigger.Bottom() + opts.SideOffset
	case Left:
		x = trigger.Left() - panel.Width - opts.SideOffset
		y = trigger.CenterY() - panel.Height/2
	case Right:
		x = trigger.Right() + opts.SideOffset
		y = trigger.CenterY() - panel.Height/2
	}

	if side == Top || side == Bottom {
		switch align {
		case Start:
			x = trigger.Left() + opts.AlignOffset
		case End:
			x = trigger.Right() - panel.Width - opts.AlignOffset
		default:
			x += opts.AlignOffset
		}
	} else {
		switch align {
		case Start:
			y = trigger.Top() + opts.AlignOffset
		case End:
			y = trigger.Bottom() - panel.Height - opts.AlignOffset
		default:
			y += opts.AlignOffset
		}
	}

	return Point{
		X: clamp(x, opts.Margin, viewport.Width-panel.Width-opts.Margin),
		Y: clamp(y, opts.Margin, viewport.Height-panel.Height-opts.Margin),
	}
}

// clamp applies the upper bound first so lo wins when hi < lo.
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
