package panel

// Overrides are the local size and position values a renderer pins on a
// column. A nil field means "not overridden".
type Overrides struct {
	Width, Height, Left *float64
}

// Sizer is a column element that can be measured at its natural size.
type Sizer interface {
	Overrides() Overrides
	SetOverrides(Overrides)
	// NaturalWidth returns the width the element takes with its current
	// overrides applied; with none applied this is its natural width.
	NaturalWidth() float64
}

// Column is a measurable column element that also takes part in the node
// tree.
type Column interface {
	Node
	Sizer
}

// WithNaturalSize clears s's overrides, runs fn, and restores the previous
// overrides on every exit path, including a panic inside fn.
func WithNaturalSize(s Sizer, fn func()) {
	saved := s.Overrides()
	s.SetOverrides(Overrides{})
	defer s.SetOverrides(saved)
	fn()
}

// MeasureNatural returns s's natural width without leaving any override
// change behind.
func MeasureNatural(s Sizer) float64 {
	var w float64
	WithNaturalSize(s, func() { w = s.NaturalWidth() })
	return w
}

// Geometry is the result of measuring a panel.
type Geometry struct {
	ContainerWidth  float64
	ContainerHeight float64
	Widths          []float64 // natural width per column, clamped to >= 0
	MaxHeight       float64   // height cap applied to every column
}

// Measure measures every column at its natural width. The container height
// becomes every column's max height.
func Measure[S Sizer](columns []S, containerWidth, containerHeight float64) Geometry {
	g := Geometry{
		ContainerWidth:  containerWidth,
		ContainerHeight: containerHeight,
		Widths:          make([]float64, len(columns)),
		MaxHeight:       containerHeight,
	}
	for i, c := range columns {
		w := MeasureNatural(c)
		if w < 0 {
			w = 0
		}
		g.Widths[i] = w
	}
	return g
}
