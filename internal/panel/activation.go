package panel

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a numeric activation names a column
// that does not exist.
var ErrIndexOutOfRange = errors.New("column index out of range")

// State is the per-panel navigation state. Controller owns the only
// instance; the functions below read it and return the next value.
type State struct {
	Active      int     // always in [0, Columns)
	PlaneOffset float64 // current horizontal translation of the plane
	Columns     int
}

// ActivateByIndex returns s with column i active. An index outside
// [0, s.Columns) is a caller error.
func ActivateByIndex(s State, i int) (State, error) {
	if i < 0 || i >= s.Columns {
		return s, fmt.Errorf("activate %d of %d columns: %w", i, s.Columns, ErrIndexOutOfRange)
	}
	s.Active = i
	return s, nil
}

// ColumnIndexOf resolves elem to the index of the column containing it. It
// returns -1 when elem is not inside any of columns.
func ColumnIndexOf[C Node](elem Node, columns []C) int {
	for n := elem; n != nil; n = n.Parent() {
		for i, c := range columns {
			if Node(c) == n {
				return i
			}
		}
	}
	return -1
}

// ActivateByElement returns s with the column containing elem active. An
// element outside every column activates column 0.
func ActivateByElement[C Node](s State, elem Node, columns []C) State {
	s.Active = max(0, ColumnIndexOf(elem, columns))
	return s
}

// FirstFullyVisible returns the lowest index whose extent lies within the
// viewport, or -1 when none does.
func FirstFullyVisible(vis []VisibilityResult, viewportWidth float64) int {
	for i, v := range vis {
		if v.FullyVisible(viewportWidth) {
			return i
		}
	}
	return -1
}

// ActivateByVisibilityScan returns s with the first fully visible column
// active. When no column is fully visible s is returned unchanged and the
// second result is false.
func ActivateByVisibilityScan(s State, vis []VisibilityResult, viewportWidth float64) (State, bool) {
	i := FirstFullyVisible(vis, viewportWidth)
	if i < 0 {
		return s, false
	}
	s.Active = i
	return s, true
}
