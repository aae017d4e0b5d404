package panel

import "math"

// LineScale is the number of pixels (cells) a single wheel "line" moves.
const LineScale = 25

// Tick granularities seen in the wild: classic devices report 3 units per
// notch, newer stacks report multiples of 120.
const (
	TickGranularityClassic = 3
	TickGranularityModern  = 120
)

// RawWheel is an unclassified wheel/trackpad/swipe event as delivered by an
// input source. Nil fields were absent on the original event.
type RawWheel struct {
	DeltaX, DeltaY           *float64 // pixel deltas
	WheelDeltaX, WheelDeltaY *float64 // paired tick deltas
	Detail                   *float64 // axis-tagged notch count
	HorizontalAxis           bool     // Detail refers to the horizontal axis
	WheelDelta               *float64 // legacy single-axis tick delta
}

// Wheel is the closed set of recognised wheel shapes.
type Wheel interface {
	wheel()
}

// PixelDelta carries deltas already expressed in pixels.
type PixelDelta struct{ X, Y float64 }

// LineDelta carries paired tick deltas that scale by the tick granularity.
type LineDelta struct{ X, Y float64 }

// MagnitudeOnly carries a notch count whose sign is inferred from the axis.
type MagnitudeOnly struct {
	Detail     float64
	Horizontal bool
}

// LegacyTick carries a vertical-only tick delta.
type LegacyTick struct{ Delta float64 }

// Unrecognized is any event shape the normalizer does not understand.
type Unrecognized struct{}

func (PixelDelta) wheel()    {}
func (LineDelta) wheel()     {}
func (MagnitudeOnly) wheel() {}
func (LegacyTick) wheel()    {}
func (Unrecognized) wheel()  {}

// Classify resolves a raw event into exactly one Wheel variant. Pixel deltas
// take precedence over tick deltas, which take precedence over detail
// counts, which take precedence over the legacy tick. An event carrying a
// NaN or infinite field is Unrecognized.
func Classify(raw RawWheel) Wheel {
	if !finite(raw.DeltaX, raw.DeltaY, raw.WheelDeltaX, raw.WheelDeltaY, raw.Detail, raw.WheelDelta) {
		return Unrecognized{}
	}
	switch {
	case raw.DeltaX != nil || raw.DeltaY != nil:
		return PixelDelta{X: deref(raw.DeltaX), Y: deref(raw.DeltaY)}
	case raw.WheelDeltaX != nil || raw.WheelDeltaY != nil:
		return LineDelta{X: deref(raw.WheelDeltaX), Y: deref(raw.WheelDeltaY)}
	case raw.Detail != nil && *raw.Detail != 0:
		return MagnitudeOnly{Detail: *raw.Detail, Horizontal: raw.HorizontalAxis}
	case raw.WheelDelta != nil && *raw.WheelDelta != 0:
		return LegacyTick{Delta: *raw.WheelDelta}
	}
	return Unrecognized{}
}

func finite(vs ...*float64) bool {
	for _, v := range vs {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return false
		}
	}
	return true
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// Delta is a normalized input delta.
type Delta struct {
	DX, DY       float64
	Angle        float64 // degrees in [0, 360)
	IsHorizontal bool
}

// Normalizer converts wheel events into Deltas.
type Normalizer struct {
	// TickGranularity is the number of tick units per wheel notch.
	TickGranularity float64
}

// NewNormalizer returns a Normalizer using the given tick granularity, or
// TickGranularityModern when granularity is not positive.
func NewNormalizer(granularity float64) Normalizer {
	if granularity <= 0 {
		granularity = TickGranularityModern
	}
	return Normalizer{TickGranularity: granularity}
}

// Normalize classifies raw and converts it to a Delta.
func (n Normalizer) Normalize(raw RawWheel) Delta {
	return n.NormalizeWheel(Classify(raw))
}

// NormalizeWheel converts a classified event to a Delta. Unrecognized events
// produce a zero delta.
func (n Normalizer) NormalizeWheel(w Wheel) Delta {
	g := n.TickGranularity
	if g <= 0 {
		g = TickGranularityModern
	}
	var dx, dy float64
	switch w := w.(type) {
	case PixelDelta:
		dx, dy = w.X, w.Y
	case LineDelta:
		dy = w.Y / g * LineScale
		dx = -w.X / g * LineScale
	case MagnitudeOnly:
		detail := math.Min(3, math.Max(-3, w.Detail))
		if w.Horizontal {
			dx = detail / 3 * LineScale
		} else {
			dy = -detail / 3 * LineScale
		}
	case LegacyTick:
		dy = w.Delta / g * LineScale
	}
	return NewDelta(dx, dy)
}

// NewDelta builds a Delta from dx and dy, computing its angle and axis.
func NewDelta(dx, dy float64) Delta {
	angle := Angle(dx, dy)
	return Delta{DX: dx, DY: dy, Angle: angle, IsHorizontal: IsHorizontalAngle(angle)}
}

// Angle returns atan2(dy, dx) in degrees, normalized to [0, 360).
func Angle(dx, dy float64) float64 {
	a := math.Atan2(dy, dx) * 180 / math.Pi
	for a < 0 {
		a += 360
	}
	return math.Mod(a, 360)
}

// IsHorizontalAngle reports whether angle lies within the ±45° cone around
// the horizontal axis: [0,45) ∪ (135,225) ∪ (315,360).
func IsHorizontalAngle(angle float64) bool {
	return angle < 45 || angle > 315 || (angle > 135 && angle < 225)
}
