// Package panel is the navigation and layout engine for a horizontally
// paged strip of columns.
//
// Core pieces:
//   - Normalizer: turns the known wheel event shapes into one Delta
//   - ShouldAbsorb: decides whether an inner scrollable region gets the gesture
//   - ComputePositions / Measure: column geometry
//   - State + Activate*: which column is active
//   - Controller: wires input, settle debouncing, activation and layout
//   - Registry: maps containers to their controllers
//
// Rendering and event delivery live outside this package behind the Node,
// Sizer, Sink and Scheduler interfaces.
package panel
