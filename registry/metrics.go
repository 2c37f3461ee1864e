package registry

import "github.com/prometheus/client_golang/prometheus"

// MetricsRecorder observes registry traffic: cache effectiveness and remote
// fetch outcomes. Session's own Recorder (see the root package's metrics.go)
// covers resolution-time warnings; this one covers the separate concern of
// how hard the containers in this package had to work to answer a lookup.
type MetricsRecorder interface {
	CacheHit(gav string)
	CacheMiss(gav string)
	RemoteFetch(gav string, ok bool)
}

// NoopMetricsRecorder discards every observation; it is the default so the
// containers in this package never need a nil check.
type NoopMetricsRecorder struct{}

func (NoopMetricsRecorder) CacheHit(string)          {}
func (NoopMetricsRecorder) CacheMiss(string)         {}
func (NoopMetricsRecorder) RemoteFetch(string, bool) {}

// PrometheusMetrics is a MetricsRecorder backed by client_golang counters.
// Labels are intentionally coarse (no per-GAV label) to keep cardinality
// bounded under a large project universe; the gav argument exists in the
// interface for callers who want a differently-shaped recorder, but this
// implementation does not key on it.
type PrometheusMetrics struct {
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
	fetches     *prometheus.CounterVec
}

// NewPrometheusMetrics builds a PrometheusMetrics and registers its
// collectors against reg. Passing prometheus.DefaultRegisterer matches the
// common case of a single process-wide registry.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pomresolve",
			Subsystem: "registry",
			Name:      "cache_hits_total",
			Help:      "Number of project lookups served from the registry cache.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pomresolve",
			Subsystem: "registry",
			Name:      "cache_misses_total",
			Help:      "Number of project lookups not found in the registry cache.",
		}),
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pomresolve",
			Subsystem: "registry",
			Name:      "remote_fetches_total",
			Help:      "Number of remote repository fetch attempts, by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.cacheHits, m.cacheMisses, m.fetches)
	return m
}

func (m *PrometheusMetrics) CacheHit(string)  { m.cacheHits.Inc() }
func (m *PrometheusMetrics) CacheMiss(string) { m.cacheMisses.Inc() }

func (m *PrometheusMetrics) RemoteFetch(_ string, ok bool) {
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	m.fetches.WithLabelValues(outcome).Inc()
}
