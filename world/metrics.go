package world

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics reports step timing and map sizes. A nil *Metrics records
// nothing.
type Metrics struct {
	steps     prometheus.Counter
	duration  prometheus.Histogram
	actors    prometheus.Gauge
	obstacles prometheus.Histogram
	respawns  prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "slopescroller",
			Subsystem: "world",
			Name:      "steps_total",
			Help:      "Simulation steps run.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "slopescroller",
			Subsystem: "world",
			Name:      "step_duration_seconds",
			Help:      "Wall time of one simulation step.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 2, 12),
		}),
		actors: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "slopescroller",
			Subsystem: "world",
			Name:      "actors",
			Help:      "Actors in the world.",
		}),
		obstacles: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "slopescroller",
			Subsystem: "world",
			Name:      "obstacles_per_actor",
			Help:      "Obstacles in an actor's map for one step.",
			Buckets:   prometheus.LinearBuckets(0, 8, 10),
		}),
		respawns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "slopescroller",
			Subsystem: "world",
			Name:      "respawns_total",
			Help:      "Actors respawned after falling out of the stage.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.steps, m.duration, m.actors, m.obstacles, m.respawns)
	}
	return m
}

func (m *Metrics) observeStep(start time.Time, actors int) {
	if m == nil {
		return
	}
	m.steps.Inc()
	m.duration.Observe(time.Since(start).Seconds())
	m.actors.Set(float64(actors))
}

func (m *Metrics) observeMap(obstacles int) {
	if m == nil {
		return
	}
	m.obstacles.Observe(float64(obstacles))
}

func (m *Metrics) observeRespawn() {
	if m == nil {
		return
	}
	m.respawns.Inc()
}
