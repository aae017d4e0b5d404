package ui

// FocusManager tracks and rotates keyboard focus across the focusable items
// of every column, in column order.
type FocusManager struct {
	Current  *Item   // currently focused item, nil when nothing is focused
	Order    []*Item // Tab order for focus rotation
	OnChange func(from, to *Item)
}

// Next advances focus to the next item in order.
// Returns the new current item.
func (f *FocusManager) Next() *Item {
	if len(f.Order) == 0 {
		return nil
	}
	return f.move((f.index() + 1) % len(f.Order))
}

// Prev moves focus to the previous item in order.
func (f *FocusManager) Prev() *Item {
	if len(f.Order) == 0 {
		return nil
	}
	i := f.index() - 1
	if i < 0 {
		i = len(f.Order) - 1
	}
	return f.move(i)
}

// SetFocus focuses it.
// Returns true if it is in the order.
func (f *FocusManager) SetFocus(it *Item) bool {
	for i, o := range f.Order {
		if o == it {
			f.move(i)
			return true
		}
	}
	return false
}

// SetOrder replaces the focus order. The current item is kept when an item
// on the same line of the same column is still present.
func (f *FocusManager) SetOrder(order []*Item) {
	f.Order = order
	if f.Current == nil {
		return
	}
	for _, o := range order {
		if o.col == f.Current.col && o.line == f.Current.line {
			f.Current = o
			return
		}
	}
	f.Current = nil
}

func (f *FocusManager) index() int {
	for i, o := range f.Order {
		if o == f.Current {
			return i
		}
	}
	return -1
}

func (f *FocusManager) move(i int) *Item {
	from := f.Current
	f.Current = f.Order[i]
	if f.OnChange != nil && from != f.Current {
		f.OnChange(from, f.Current)
	}
	return f.Current
}
