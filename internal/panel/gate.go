package panel

// Box holds the rendered metrics of a node.
type Box struct {
	OffsetWidth, OffsetHeight float64 // visible extent
	ScrollWidth, ScrollHeight float64 // content extent
}

// Node is an element in the rendered tree. Implementations must be
// comparable (pointer types) so that identity checks work.
type Node interface {
	// Parent returns the enclosing node, or nil at the root.
	Parent() Node
	// Box returns the node's current metrics.
	Box() Box
}

// ScrollsAlong reports whether b has overflow along the given axis.
func (b Box) ScrollsAlong(horizontal bool) bool {
	if horizontal {
		return b.ScrollWidth > b.OffsetWidth
	}
	return b.ScrollHeight > b.OffsetHeight
}

// ShouldAbsorb reports whether an inner scrollable region between target and
// the boundary nodes should handle the gesture natively. The walk starts at
// target itself, not only its ancestors, so a target that is the scroller
// absorbs the gesture. It stops before the first boundary node. The nearest
// qualifying node wins; returning false means the panel engine consumes the
// event.
func ShouldAbsorb(d Delta, target Node, boundaries ...Node) bool {
	for n := target; n != nil; n = n.Parent() {
		if isBoundary(n, boundaries) {
			return false
		}
		if n.Box().ScrollsAlong(d.IsHorizontal) {
			return true
		}
	}
	return false
}

func isBoundary(n Node, boundaries []Node) bool {
	for _, b := range boundaries {
		if b != nil && n == b {
			return true
		}
	}
	return false
}

// Contains reports whether n is ancestor or equal to target.
func Contains(n, target Node) bool {
	for t := target; t != nil; t = t.Parent() {
		if t == n {
			return true
		}
	}
	return false
}
