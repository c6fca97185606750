package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "progress_tracker"

// Lookup tiers reported by the collection adapters.
const (
	TierCache   = "cache"
	TierRemote  = "remote"
	TierTimeout = "timeout"
	TierMiss    = "miss"
)

// Recorder owns the prometheus instruments of the sync pipeline.
// A nil Recorder is valid and records nothing.
type Recorder struct {
	registry   *prometheus.Registry
	runs       *prometheus.CounterVec
	entities   *prometheus.CounterVec
	lookups    *prometheus.CounterVec
	retries    prometheus.Counter
	degraded   prometheus.Counter
	inProgress prometheus.Gauge
}

// NewRecorder registers every instrument on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_runs_total",
			Help:      "Progressive sync runs by result.",
		}, []string{"result"}),
		entities: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_entities_total",
			Help:      "Games processed by outcome.",
		}, []string{"outcome"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "adapter_lookups_total",
			Help:      "Per-game data lookups by kind and tier.",
		}, []string{"kind", "tier"}),
		retries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discovery_retries_total",
			Help:      "Discovery retries after an empty result.",
		}),
		degraded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discovery_degraded_total",
			Help:      "Discovery runs that fell back to the backend game list.",
		}),
		inProgress: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sync_in_progress",
			Help:      "1 while a progressive sync is running.",
		}),
	}
	reg.MustRegister(
		r.runs, r.entities, r.lookups, r.retries, r.degraded, r.inProgress,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Handler serves the registry in the prometheus text format.
func (r *Recorder) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
}

// RecordRun counts a finished run.
func (r *Recorder) RecordRun(success bool) {
	if r == nil {
		return
	}
	result := "success"
	if !success {
		result = "failure"
	}
	r.runs.WithLabelValues(result).Inc()
}

// RecordEntity counts one game outcome.
func (r *Recorder) RecordEntity(outcome string) {
	if r == nil {
		return
	}
	r.entities.WithLabelValues(outcome).Inc()
}

// RecordLookup counts one adapter lookup.
func (r *Recorder) RecordLookup(kind, tier string) {
	if r == nil {
		return
	}
	r.lookups.WithLabelValues(kind, tier).Inc()
}

// RecordDiscoveryRetry counts one retry of an empty discovery.
func (r *Recorder) RecordDiscoveryRetry() {
	if r == nil {
		return
	}
	r.retries.Inc()
}

// RecordDegraded counts a fallback to the backend game list.
func (r *Recorder) RecordDegraded() {
	if r == nil {
		return
	}
	r.degraded.Inc()
}

// SetInProgress flips the in-progress gauge.
func (r *Recorder) SetInProgress(running bool) {
	if r == nil {
		return
	}
	if running {
		r.inProgress.Set(1)
		return
	}
	r.inProgress.Set(0)
}
