// Package metrics exposes Prometheus instrumentation for panel navigation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Input outcomes recorded by Panel.ObserveInput.
const (
	OutcomeConsumed = "consumed"
	OutcomeAbsorbed = "absorbed"
	OutcomeIgnored  = "ignored"
)

// Panel holds the collectors for every panel in a process. A nil *Panel is
// valid and records nothing.
type Panel struct {
	inputs      *prometheus.CounterVec
	settles     *prometheus.CounterVec
	activations *prometheus.CounterVec
	active      *prometheus.GaugeVec
}

// New creates the collectors and registers them with reg. A nil reg leaves
// them unregistered.
func New(reg prometheus.Registerer) (*Panel, error) {
	p := &Panel{
		inputs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hpanel",
			Name:      "wheel_inputs_total",
			Help:      "Wheel and swipe inputs by outcome.",
		}, []string{"outcome"}),
		settles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hpanel",
			Name:      "settles_total",
			Help:      "Settle passes, labelled by whether a fully visible column was found.",
		}, []string{"resolved"}),
		activations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hpanel",
			Name:      "activations_total",
			Help:      "Column activations by trigger.",
		}, []string{"trigger"}),
		active: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "hpanel",
			Name:      "active_column",
			Help:      "Index of the active column per panel.",
		}, []string{"panel"}),
	}
	if reg == nil {
		return p, nil
	}
	for _, c := range p.Collectors() {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Collectors returns the inputs, settles, activations and active-column
// collectors, in that order.
func (p *Panel) Collectors() []prometheus.Collector {
	return []prometheus.Collector{p.inputs, p.settles, p.activations, p.active}
}

// ObserveInput counts one wheel input with the given outcome.
func (p *Panel) ObserveInput(outcome string) {
	if p == nil {
		return
	}
	p.inputs.WithLabelValues(outcome).Inc()
}

// ObserveSettle counts one settle pass.
func (p *Panel) ObserveSettle(resolved bool) {
	if p == nil {
		return
	}
	label := "false"
	if resolved {
		label = "true"
	}
	p.settles.WithLabelValues(label).Inc()
}

// ObserveActivation records a transition to index for panel id.
func (p *Panel) ObserveActivation(id, trigger string, index int) {
	if p == nil {
		return
	}
	p.activations.WithLabelValues(trigger).Inc()
	p.active.WithLabelValues(id).Set(float64(index))
}
