package pomresolve

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pomexplorer/pomresolve/pom"
)

// PomLoader is the thin, optional collaborator submodule enumeration uses
// to read a referenced POM file far enough to extract its GAV. Parsing the
// POM itself is out of scope for this engine (§1) — callers supply whatever
// reader their own toolchain already has.
type PomLoader interface {
	Load(path string) (*pom.Model, error)
}

// Warning is one class-2 resolution warning (§7): the computation proceeded
// with a partial answer, but a caller asked to be told why.
type Warning struct {
	// Project is the GAV string of the project the warning was raised
	// against.
	Project string
	// Kind is a short machine-readable tag: "unresolved-property",
	// "missing-bom-project", "missing-version", "unresolvable-plugin-version",
	// "illegal-shorthand-property", or "missing-parent".
	Kind string
	// Message is a short human-readable description, suitable for a log
	// line.
	Message string
}

// Option configures a Session.
type Option func(*sessionConfig) error

// sessionConfig holds all Session configuration.
type sessionConfig struct {
	maxDepth    int
	logger      *slog.Logger
	warningSink func(Warning)
	recorder    Recorder
	pomLoader   PomLoader
}

const defaultMaxDepth = 64

// WithMaxDepth overrides the recursion depth limit used as a safety net for
// property resolution and dependency-management composition. The default is
// 64; it is a safety net, not a correctness requirement, because the
// specification does not mandate cycle detection.
func WithMaxDepth(depth int) Option {
	return func(c *sessionConfig) error {
		c.maxDepth = depth
		return nil
	}
}

// WithLogger sets a structured logger for resolution diagnostics. Every
// class-2 warning (§7) is logged at slog.LevelWarn with the warning's
// Message as the log message and "project" and "kind" attributes. If not set, logging is disabled (silent mode) —
// libraries should be silent by default, and users opt in via WithLogger.
func WithLogger(l *slog.Logger) Option {
	return func(c *sessionConfig) error {
		c.logger = l
		return nil
	}
}

// WithWarningSink sets a callback invoked for every class-2 warning, in
// addition to (not instead of) the structured logger. This mirrors the
// single plain-string sink described for the engine's external interface:
// callers who only want short strings can format a Warning themselves.
func WithWarningSink(fn func(Warning)) Option {
	return func(c *sessionConfig) error {
		c.warningSink = fn
		return nil
	}
}

// WithRecorder sets a metrics Recorder. If not set, a NoopRecorder is used.
func WithRecorder(r Recorder) Option {
	return func(c *sessionConfig) error {
		c.recorder = r
		return nil
	}
}

// WithPomLoader sets the collaborator Submodules uses to read a referenced
// module's POM file far enough to extract its GAV. Without one, Submodules
// returns nothing.
func WithPomLoader(loader PomLoader) Option {
	return func(c *sessionConfig) error {
		c.pomLoader = loader
		return nil
	}
}

// validate checks the configuration for logical consistency.
func (c *sessionConfig) validate() error {
	if c.maxDepth < 0 {
		return errors.New("maxDepth must be non-negative")
	}
	return nil
}

// log returns the configured logger, or a no-op logger if none was set.
func (c *sessionConfig) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.New(discardHandler{})
}

// recorderOrNoop returns the configured Recorder, or NoopRecorder if none
// was set.
func (c *sessionConfig) recorderOrNoop() Recorder {
	if c.recorder != nil {
		return c.recorder
	}
	return NoopRecorder{}
}

// discardHandler is a slog.Handler that discards all log records, used when
// no logger is configured so internal code never needs a nil check.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// newSessionConfig applies opts over zero-value defaults and validates the
// result.
func newSessionConfig(opts ...Option) (*sessionConfig, error) {
	c := &sessionConfig{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// warn records a class-2 warning through the logger, the warning sink, and
// the metrics recorder.
func (c *sessionConfig) warn(w Warning) {
	c.log().Warn(w.Message, "project", w.Project, "kind", w.Kind)
	if c.warningSink != nil {
		c.warningSink(w)
	}
	c.recorderOrNoop().WarningEmitted(w.Project, w.Kind)
}
