package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "multithread"

// Recorder collects Prometheus series for strategy runs on its own registry,
// so several recorders (one per test, for example) never collide.
type Recorder struct {
	registry *prometheus.Registry
	duration *prometheus.HistogramVec
	runs     *prometheus.CounterVec
	workers  *prometheus.GaugeVec
	gcCycles *prometheus.CounterVec
}

// NewRecorder creates a Recorder with the Go runtime collector registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of one strategy run.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}, []string{"strategy"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Strategy runs by outcome.",
		}, []string{"strategy", "status"}),
		workers: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "workers",
			Help:      "Worker goroutines forked by the strategy.",
		}, []string{"strategy"}),
		gcCycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gc_cycles_total",
			Help:      "GC cycles completed while the strategy ran.",
		}, []string{"strategy"}),
	}
	r.registry.MustRegister(
		collectors.NewGoCollector(),
		r.duration,
		r.runs,
		r.workers,
		r.gcCycles,
	)
	return r
}

// ObserveRun records one finished run. A non-nil err counts as a failure and
// skips the duration histogram.
func (r *Recorder) ObserveRun(strategy string, workers int, d time.Duration, gc uint32, err error) {
	r.workers.WithLabelValues(strategy).Set(float64(workers))
	r.gcCycles.WithLabelValues(strategy).Add(float64(gc))
	if err != nil {
		r.runs.WithLabelValues(strategy, "error").Inc()
		return
	}
	r.runs.WithLabelValues(strategy, "ok").Inc()
	r.duration.WithLabelValues(strategy).Observe(d.Seconds())
}

// Gatherer exposes the underlying registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes every series in the Prometheus text exposition format,
// suitable for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
