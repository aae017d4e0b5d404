// Package ui renders documents as a horizontally paged strip of columns
// with Bubble Tea.
//
// The terminal plays the part of the page: cells are the unit of distance,
// the container is the screen above the help bar, and each document is a
// Column whose body scrolls on its own. StripView hit-tests mouse events
// against the node tree in nodes.go and hands them to a panel.Controller,
// which decides whether the strip or an inner body should move. Settle
// timers and column transitions run as tea.Tick messages so every callback
// executes inside Update.
package ui
