package panel

// Registry maps container nodes to the controller that owns them. Whatever
// assembles the UI tree owns the registry.
type Registry struct {
	byContainer map[Node]*Controller
	order       []Node
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byContainer: make(map[Node]*Controller)}
}

// Register binds c to its container, replacing any previous binding.
func (r *Registry) Register(c *Controller) {
	k := c.Container()
	if _, ok := r.byContainer[k]; !ok {
		r.order = append(r.order, k)
	}
	r.byContainer[k] = c
}

// Unregister drops the controller bound to container.
func (r *Registry) Unregister(container Node) {
	if _, ok := r.byContainer[container]; !ok {
		return
	}
	delete(r.byContainer, container)
	for i, n := range r.order {
		if n == container {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Lookup returns the controller of the nearest registered container at or
// above target.
func (r *Registry) Lookup(target Node) (*Controller, bool) {
	for n := target; n != nil; n = n.Parent() {
		if c, ok := r.byContainer[n]; ok {
			return c, true
		}
	}
	return nil, false
}

// Len returns the number of registered controllers.
func (r *Registry) Len() int { return len(r.byContainer) }

// Each calls fn for every controller in registration order.
func (r *Registry) Each(fn func(*Controller)) {
	for _, n := range r.order {
		fn(r.byContainer[n])
	}
}

// ResizeAll remeasures and re-lays out every registered panel.
func (r *Registry) ResizeAll() {
	r.Each(func(c *Controller) { c.Resize() })
}

// DispatchWheel routes a wheel event to the panel containing target. Events
// outside every panel are ignored.
func (r *Registry) DispatchWheel(raw RawWheel, target Node) bool {
	c, ok := r.Lookup(target)
	if !ok {
		return false
	}
	return c.HandleWheel(raw, target)
}

// DispatchClick routes a click to the panel containing target.
func (r *Registry) DispatchClick(target Node) bool {
	c, ok := r.Lookup(target)
	if !ok {
		return false
	}
	return c.HandleClick(target)
}

// DispatchFocus routes a focus change to the panel containing target.
func (r *Registry) DispatchFocus(target Node) {
	if c, ok := r.Lookup(target); ok {
		c.HandleFocus(target)
	}
}
