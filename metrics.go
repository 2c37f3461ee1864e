package pomresolve

// Recorder observes resolution events for metrics collection. The core
// engine depends only on this small interface so that a concrete backend —
// Prometheus, a counter in a test, or nothing at all — never has to be
// imported here. NoopRecorder is the default. The registry package's
// PrometheusMetrics implements that package's own MetricsRecorder, not this
// interface.
type Recorder interface {
	// InterpolationCacheHit is called each time interpolate finds a cached
	// ValueResolution for a raw string.
	InterpolationCacheHit(project string)
	// WarningEmitted is called each time a class-2 resolution warning (§7)
	// is surfaced, tagged with its kind (e.g. "unresolved-property",
	// "missing-version", "missing-bom-project").
	WarningEmitted(project, kind string)
}

// NoopRecorder discards every event. It is the Recorder used when no
// WithRecorder option is supplied.
type NoopRecorder struct{}

func (NoopRecorder) InterpolationCacheHit(string)      {}
func (NoopRecorder) WarningEmitted(string, string) {}
