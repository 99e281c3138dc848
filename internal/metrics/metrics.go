// Package metrics counts simulations for the long-running front ends.
package metrics

import (
	"github.com/KirkDiggler/balanced-dice/internal/models"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "balanced_dice"

//go:generate mockgen -package=mocks -destination=mocks/mock_recorder.go github.com/KirkDiggler/balanced-dice/internal/metrics Recorder

// Recorder receives simulation events
type Recorder interface {
	// SimulationCompleted records one finished simulation run
	SimulationCompleted(strategy models.Strategy, rolls int, rebuilds int)

	// OverlayConflict records a simulate request rejected until a clear
	OverlayConflict()
}

// Nop discards every event
type Nop struct{}

// SimulationCompleted implements Recorder
func (Nop) SimulationCompleted(models.Strategy, int, int) {}

// OverlayConflict implements Recorder
func (Nop) OverlayConflict() {}

// Prometheus records events as Prometheus counters
type Prometheus struct {
	simulations      *prometheus.CounterVec
	rolls            *prometheus.CounterVec
	rebuilds         prometheus.Counter
	overlayConflicts prometheus.Counter
}

// NewPrometheus creates the counters and registers them with reg
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	p := &Prometheus{
		simulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulations_total",
			Help:      "Number of simulation runs by strategy.",
		}, []string{"strategy"}),
		rolls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rolls_total",
			Help:      "Number of simulated rolls by strategy.",
		}, []string{"strategy"}),
		rebuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycle_rebuilds_total",
			Help:      "Number of times a balanced queue refilled itself.",
		}),
		overlayConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "overlay_conflicts_total",
			Help:      "Number of simulate requests rejected until the chart is cleared.",
		}),
	}

	for _, c := range []prometheus.Collector{p.simulations, p.rolls, p.rebuilds, p.overlayConflicts} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// SimulationCompleted implements Recorder
func (p *Prometheus) SimulationCompleted(strategy models.Strategy, rolls int, rebuilds int) {
	p.simulations.WithLabelValues(string(strategy)).Inc()
	p.rolls.WithLabelValues(string(strategy)).Add(float64(rolls))
	p.rebuilds.Add(float64(rebuilds))
}

// OverlayConflict implements Recorder
func (p *Prometheus) OverlayConflict() {
	p.overlayConflicts.Inc()
}
