package panel

import "time"

// Options configures a panel.
type Options struct {
	Padding         float64       // gap between adjacent columns
	PrevOverlap     float64       // how far the previous column peeks into view
	SettleDelay     time.Duration // quiet period before free scroll snaps
	TickGranularity float64       // tick units per wheel notch
}

// DefaultOptions returns the stock panel configuration.
func DefaultOptions() Options {
	return Options{
		Padding:         32,
		PrevOverlap:     100,
		SettleDelay:     300 * time.Millisecond,
		TickGranularity: TickGranularityModern,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.SettleDelay <= 0 {
		o.SettleDelay = d.SettleDelay
	}
	if o.TickGranularity <= 0 {
		o.TickGranularity = d.TickGranularity
	}
	return o
}

// Offsets returns the running-sum left edges of columns laid out left to
// right: offsets[0] = 0, offsets[i] = offsets[i-1] + padding + widths[i-1].
func Offsets(widths []float64, padding float64) []float64 {
	out := make([]float64, len(widths))
	next := 0.0
	for i, w := range widths {
		out[i] = next
		next += padding + w
	}
	return out
}

// ComputePositions returns each column's offset relative to the plane so
// that, once the plane is translated by planeOffset, the active column's
// left edge lands prevOverlap from the viewport's left edge.
//
// The result depends only on its arguments. An active index outside the
// widths is treated as 0; an empty widths slice yields an empty result.
func ComputePositions(widths []float64, active int, padding, prevOverlap, planeOffset float64) []float64 {
	pos := Offsets(widths, padding)
	if len(pos) == 0 {
		return pos
	}
	if active < 0 || active >= len(pos) {
		active = 0
	}
	shift := pos[active] + planeOffset - prevOverlap
	for i := range pos {
		pos[i] -= shift
	}
	return pos
}

// VisibilityResult describes a column's horizontal extent in viewport
// coordinates.
type VisibilityResult struct {
	Left, Right float64
}

// FullyVisible reports whether the column lies entirely within a viewport
// of the given width.
func (v VisibilityResult) FullyVisible(viewportWidth float64) bool {
	return v.Left >= 0 && v.Right <= viewportWidth
}

// Visibility projects plane-relative positions into viewport coordinates.
func Visibility(positions, widths []float64, planeOffset float64) []VisibilityResult {
	out := make([]VisibilityResult, len(positions))
	for i, p := range positions {
		left := planeOffset + p
		w := 0.0
		if i < len(widths) {
			w = widths[i]
		}
		out[i] = VisibilityResult{Left: left, Right: left + w}
	}
	return out
}
