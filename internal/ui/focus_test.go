package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocusManager_Rotation(t *testing.T) {
	c := &Column{}
	a, b := &Item{col: c, line: 0}, &Item{col: c, line: 3}
	var changes [][2]*Item
	f := &FocusManager{
		Order:    []*Item{a, b},
		OnChange: func(from, to *Item) { changes = append(changes, [2]*Item{from, to}) },
	}

	assert.Same(t, a, f.Next())
	assert.Same(t, b, f.Next())
	assert.Same(t, a, f.Next(), "wraps")
	assert.Same(t, b, f.Prev())
	assert.Len(t, changes, 4)
	assert.Nil(t, changes[0][0])

	assert.True(t, f.SetFocus(b), "already focused")
	assert.Len(t, changes, 4, "no change callback")
	assert.False(t, f.SetFocus(&Item{col: c}))
}

func TestFocusManager_PrevFromNothing(t *testing.T) {
	c := &Column{}
	a, b := &Item{col: c}, &Item{col: c, line: 1}
	f := &FocusManager{Order: []*Item{a, b}}
	assert.Same(t, b, f.Prev())
}

func TestFocusManager_Empty(t *testing.T) {
	f := &FocusManager{}
	assert.Nil(t, f.Next())
	assert.Nil(t, f.Prev())
}

func TestFocusManager_SetOrderKeepsLine(t *testing.T) {
	c := &Column{}
	f := &FocusManager{Order: []*Item{{col: c, line: 2}}}
	f.Next()

	fresh := &Item{col: c, line: 2}
	f.SetOrder([]*Item{{col: c, line: 0}, fresh})
	assert.Same(t, fresh, f.Current)

	f.SetOrder([]*Item{{col: c, line: 0}})
	assert.Nil(t, f.Current)
}
