package anneal

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exports annealing progress as Prometheus series.
type Metrics struct {
	iterations  prometheus.Counter
	accepted    prometheus.Counter
	runs        *prometheus.CounterVec
	temperature prometheus.Gauge
	energy      prometheus.Gauge
	bestLength  prometheus.Gauge
	step        prometheus.Histogram
}

// NewMetrics registers the annealing series with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		iterations: f.NewCounter(prometheus.CounterOpts{
			Name: "renormtsp_anneal_iterations_total",
			Help: "Total annealing iterations",
		}),
		accepted: f.NewCounter(prometheus.CounterOpts{
			Name: "renormtsp_anneal_accepted_total",
			Help: "Total accepted rotation proposals",
		}),
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "renormtsp_anneal_runs_total",
			Help: "Finished annealing runs by stop reason",
		}, []string{"stop"}),
		temperature: f.NewGauge(prometheus.GaugeOpts{
			Name: "renormtsp_anneal_temperature",
			Help: "Temperature of the last iteration",
		}),
		energy: f.NewGauge(prometheus.GaugeOpts{
			Name: "renormtsp_anneal_energy",
			Help: "Tour length at the last proposed rotation",
		}),
		bestLength: f.NewGauge(prometheus.GaugeOpts{
			Name: "renormtsp_anneal_best_length",
			Help: "Best tour length found",
		}),
		step: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "renormtsp_anneal_amplitude",
			Help:    "Brownian rotation step amplitude",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 10), // 0.01 to ~2600
		}),
	}
}

// Observe implements Observer.
func (m *Metrics) Observe(r Record) {
	m.iterations.Inc()
	if r.Accepted {
		m.accepted.Inc()
	}
	m.temperature.Set(r.Temperature)
	m.energy.Set(r.Energy)
	m.bestLength.Set(r.BestEnergy)
	m.step.Observe(r.Amplitude)
}

// Finish implements Finisher.
func (m *Metrics) Finish(res Result) {
	m.runs.WithLabelValues(string(res.Stop)).Inc()
	m.bestLength.Set(res.BestLength)
}
