// Package metrics exposes Prometheus collectors describing search runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "unisearch"

// Recorder groups the collectors updated after every engine run.
type Recorder struct {
	runs      *prometheus.CounterVec
	expanded  *prometheus.CounterVec
	generated *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		// Labels: strategy (UCTS, UCGS, IDTS), outcome (solved, exhausted, cutoff)
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Search runs by strategy and outcome",
		}, []string{"strategy", "outcome"}),

		expanded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expanded_nodes_total",
			Help:      "Nodes expanded across all runs",
		}, []string{"strategy"}),

		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generated_nodes_total",
			Help:      "Successors generated across all runs",
		}, []string{"strategy"}),

		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of search runs",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30, 120, 600, 3600},
		}, []string{"strategy"}),
	}

	for _, c := range []prometheus.Collector{r.runs, r.expanded, r.generated, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Observe records one finished run.
func (r *Recorder) Observe(strategy, outcome string, expanded, generated int, elapsed time.Duration) {
	r.runs.WithLabelValues(strategy, outcome).Inc()
	r.expanded.WithLabelValues(strategy).Add(float64(expanded))
	r.generated.WithLabelValues(strategy).Add(float64(generated))
	r.duration.WithLabelValues(strategy).Observe(elapsed.Seconds())
}

// WriteTextfile writes every metric gathered by g to path in the
// node-exporter textfile format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
