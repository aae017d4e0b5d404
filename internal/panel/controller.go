package panel

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"hpanel/internal/metrics"
)

var (
	// ErrNoColumns is returned when a panel is built without columns.
	ErrNoColumns = errors.New("panel needs at least one column")
	// ErrNoScheduler is returned when a panel is built without a Scheduler.
	ErrNoScheduler = errors.New("panel needs a scheduler")
)

// Activation triggers, used for metrics and span attributes.
const (
	TriggerIndex   = "index"
	TriggerElement = "element"
	TriggerClick   = "click"
	TriggerFocus   = "focus"
	TriggerSettle  = "settle"
	TriggerKeyStep = "step"
)

// Frame is one layout result handed to the render sink.
type Frame struct {
	ContainerWidth  float64
	ContainerHeight float64
	PlaneHeight     float64
	PlaneMinWidth   float64
	PlaneOffset     float64   // translation of the whole plane
	Positions       []float64 // plane-relative left edge per column
	Widths          []float64
	MaxHeight       float64 // height cap for every column
	Active          int
	Animate         bool
}

// Sink applies frames to the rendering surface.
type Sink interface {
	Apply(Frame)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Frame)

// Apply implements Sink.
func (f SinkFunc) Apply(fr Frame) { f(fr) }

// Controller orchestrates input normalization, the scroll gate, layout and
// activation for one panel. All methods must be called from the single
// event-processing thread that also runs the Scheduler's callbacks.
type Controller struct {
	ID string

	container Node
	plane     Node
	columns   []Column
	sink      Sink

	opts       Options
	normalizer Normalizer
	settle     Debouncer
	tracer     oteltrace.Tracer
	metrics    *metrics.Panel

	state     State
	geom      Geometry
	positions []float64
	measuring bool
}

// Option customises a Controller.
type Option func(*Controller)

// WithOptions sets the layout options.
func WithOptions(o Options) Option {
	return func(c *Controller) { c.opts = o }
}

// WithScheduler sets the scheduler that drives settle detection.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.settle.Scheduler = s }
}

// WithTracer sets the tracer used for settle, activation and measurement
// spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Controller) { c.tracer = t }
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Panel) Option {
	return func(c *Controller) { c.metrics = m }
}

// NewController wraps an existing container, plane and ordered columns,
// measures the columns, activates column 0 and applies the initial layout.
// The container's box supplies the viewport size.
func NewController(container, plane Node, columns []Column, sink Sink, opts ...Option) (*Controller, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	c := &Controller{
		ID:        uuid.NewString(),
		container: container,
		plane:     plane,
		columns:   append([]Column(nil), columns...),
		sink:      sink,
		opts:      DefaultOptions(),
		tracer:    noop.NewTracerProvider().Tracer("hpanel/panel"),
		state:     State{Columns: len(columns)},
	}
	for _, o := range opts {
		o(c)
	}
	c.opts = c.opts.withDefaults()
	c.normalizer = NewNormalizer(c.opts.TickGranularity)
	c.settle.Delay = c.opts.SettleDelay
	if c.settle.Scheduler == nil {
		return nil, ErrNoScheduler
	}

	c.remeasure(context.Background())
	c.relayout(false)
	return c, nil
}

// Container returns the node the panel was built on.
func (c *Controller) Container() Node { return c.container }

// Columns returns the ordered columns.
func (c *Controller) Columns() []Column { return c.columns }

// State returns a copy of the navigation state.
func (c *Controller) State() State { return c.state }

// Active returns the active column index.
func (c *Controller) Active() int { return c.state.Active }

// Options returns the effective options.
func (c *Controller) Options() Options { return c.opts }

// Geometry returns the last measurement.
func (c *Controller) Geometry() Geometry { return c.geom }

// Positions returns the plane-relative column offsets of the last layout.
func (c *Controller) Positions() []float64 {
	return append([]float64(nil), c.positions...)
}

// SettlePending reports whether a settle is scheduled.
func (c *Controller) SettlePending() bool { return c.settle.Pending() }

// Visibility returns each column's extent in viewport coordinates.
func (c *Controller) Visibility() []VisibilityResult {
	return Visibility(c.positions, c.geom.Widths, c.state.PlaneOffset)
}

// IsFullyVisible reports whether column i lies entirely in the viewport.
func (c *Controller) IsFullyVisible(i int) bool {
	vis := c.Visibility()
	if i < 0 || i >= len(vis) {
		return false
	}
	return vis[i].FullyVisible(c.geom.ContainerWidth)
}

// HandleWheel feeds one raw wheel/swipe event aimed at target. It reports
// whether the panel consumed the event; when it returns false the host
// should let the event reach inner scrollable regions untouched.
func (c *Controller) HandleWheel(raw RawWheel, target Node) bool {
	return c.HandleDelta(c.normalizer.Normalize(raw), target)
}

// HandleDelta is HandleWheel for an already normalized delta.
func (c *Controller) HandleDelta(d Delta, target Node) bool {
	if !Contains(c.container, target) || (d.DX == 0 && d.DY == 0) {
		c.metrics.ObserveInput(metrics.OutcomeIgnored)
		return false
	}
	if ShouldAbsorb(d, target, c.container, c.plane) {
		c.metrics.ObserveInput(metrics.OutcomeAbsorbed)
		return false
	}
	c.metrics.ObserveInput(metrics.OutcomeConsumed)

	c.state.PlaneOffset += d.DX
	c.apply(false)
	c.settle.Trigger(c.AfterSettle)
	return true
}

// AfterSettle activates the first fully visible column, if any, and snaps
// the layout to the active column.
func (c *Controller) AfterSettle() {
	_, span := c.tracer.Start(context.Background(), "panel.settle",
		oteltrace.WithAttributes(attribute.String("panel.id", c.ID)))
	defer span.End()

	prev := c.state.Active
	next, ok := ActivateByVisibilityScan(c.state, c.Visibility(), c.geom.ContainerWidth)
	c.state = next
	c.metrics.ObserveSettle(ok)
	span.SetAttributes(
		attribute.Bool("panel.resolved", ok),
		attribute.Int("panel.active.from", prev),
		attribute.Int("panel.active.to", c.state.Active),
	)
	if ok {
		c.metrics.ObserveActivation(c.ID, TriggerSettle, c.state.Active)
	} else {
		log.Printf("panel.AfterSettle: no fully visible column in %s, keeping %d", c.ID, prev)
	}
	c.relayout(true)
}

// HandleClick activates the column containing target when it is not the
// active one. It reports whether the click was consumed.
func (c *Controller) HandleClick(target Node) bool {
	if !Contains(c.container, target) {
		return false
	}
	i := ColumnIndexOf(target, c.columns)
	if i < 0 || i == c.state.Active {
		return false
	}
	c.activateElement(target, TriggerClick)
	return true
}

// HandleFocus brings the column containing a newly focused element into
// view.
func (c *Controller) HandleFocus(target Node) {
	if !Contains(c.container, target) {
		return
	}
	i := ColumnIndexOf(target, c.columns)
	if i < 0 || i == c.state.Active {
		return
	}
	c.activateElement(target, TriggerFocus)
}

// ActivateElement makes the column containing elem active. Elements outside
// every column activate column 0.
func (c *Controller) ActivateElement(elem Node) {
	c.activateElement(elem, TriggerElement)
}

func (c *Controller) activateElement(elem Node, trigger string) {
	_, span := c.tracer.Start(context.Background(), "panel.activate",
		oteltrace.WithAttributes(
			attribute.String("panel.id", c.ID),
			attribute.String("panel.trigger", trigger),
		))
	defer span.End()

	if ColumnIndexOf(elem, c.columns) < 0 {
		log.Printf("panel.ActivateElement: element outside columns of %s, using column 0", c.ID)
	}
	c.state = ActivateByElement(c.state, elem, c.columns)
	span.SetAttributes(attribute.Int("panel.active.to", c.state.Active))
	c.metrics.ObserveActivation(c.ID, trigger, c.state.Active)
	c.settle.Cancel()
	c.relayout(true)
}

// ActivateIndex makes column i active. Out-of-range indices return an error
// wrapping ErrIndexOutOfRange and leave the state untouched.
func (c *Controller) ActivateIndex(i int, animate bool) error {
	return c.activateIndex(i, animate, TriggerIndex)
}

func (c *Controller) activateIndex(i int, animate bool, trigger string) error {
	next, err := ActivateByIndex(c.state, i)
	if err != nil {
		return err
	}
	c.state = next
	c.metrics.ObserveActivation(c.ID, trigger, i)
	c.settle.Cancel()
	c.relayout(animate)
	return nil
}

// Step activates the column delta positions away from the active one,
// stopping at either end.
func (c *Controller) Step(delta int) {
	i := min(max(c.state.Active+delta, 0), c.state.Columns-1)
	if i == c.state.Active {
		return
	}
	// i is clamped into range, so this cannot fail.
	_ = c.activateIndex(i, true, TriggerKeyStep)
}

// Resize remeasures columns and the container and re-applies the layout
// without changing the active column.
func (c *Controller) Resize() {
	ctx, span := c.tracer.Start(context.Background(), "panel.resize",
		oteltrace.WithAttributes(attribute.String("panel.id", c.ID)))
	defer span.End()

	c.remeasure(ctx)
	c.relayout(false)
}

// remeasure measures every column at its natural width and then pins that
// width on the column. It refuses to run while another measurement of the
// same panel is in progress.
func (c *Controller) remeasure(ctx context.Context) {
	if c.measuring {
		log.Printf("panel.remeasure: %s already measuring, skipped", c.ID)
		return
	}
	c.measuring = true
	defer func() { c.measuring = false }()

	_, span := c.tracer.Start(ctx, "panel.remeasure",
		oteltrace.WithAttributes(attribute.Int("panel.columns", len(c.columns))))
	defer span.End()

	box := c.container.Box()
	c.geom = Measure(c.columns, box.OffsetWidth, box.OffsetHeight)
	for i, col := range c.columns {
		w := c.geom.Widths[i]
		o := col.Overrides()
		o.Width = &w
		col.SetOverrides(o)
	}
}

// relayout recomputes positions for the active column and applies them.
func (c *Controller) relayout(animate bool) {
	c.positions = ComputePositions(c.geom.Widths, c.state.Active,
		c.opts.Padding, c.opts.PrevOverlap, c.state.PlaneOffset)
	for i, col := range c.columns {
		left := c.positions[i]
		o := col.Overrides()
		o.Left = &left
		col.SetOverrides(o)
	}
	c.apply(animate)
}

func (c *Controller) apply(animate bool) {
	if c.sink == nil {
		return
	}
	c.sink.Apply(Frame{
		ContainerWidth:  c.geom.ContainerWidth,
		ContainerHeight: c.geom.ContainerHeight,
		PlaneHeight:     c.geom.ContainerHeight,
		PlaneMinWidth:   c.geom.ContainerWidth,
		PlaneOffset:     c.state.PlaneOffset,
		Positions:       append([]float64(nil), c.positions...),
		Widths:          append([]float64(nil), c.geom.Widths...),
		MaxHeight:       c.geom.MaxHeight,
		Active:          c.state.Active,
		Animate:         animate,
	})
}
