package sortviz

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/sortviz/sortviz/internal/runtime"
	"github.com/sortviz/sortviz/pkg/domain"
	"github.com/sortviz/sortviz/pkg/observability"
)

// Version is the current Sortviz release. Overridable at build time via
// -ldflags "-X github.com/sortviz/sortviz.Version=...".
var Version = "0.3.0"

// Engine is the high-level entry point for the Sortviz library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	hooks   domain.LifecycleHooks
	metrics *observability.Metrics
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics attaches a Prometheus metrics recorder. Every completed sort
// is observed with its duration and step counts.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// New initializes a new Sortviz Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil to the runtime,
	// which would overwrite its default).
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	eng.runtime = runtime.NewEngine(
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
	)

	return eng
}

// Sort runs the instrumented bubble sort over a copy of arr and returns
// the ordered step trace. The input slice is never mutated; the sorted
// result is recoverable via Trace.Final.
func (e *Engine) Sort(ctx context.Context, arr []int) (domain.Trace, error) {
	start := time.Now()
	trace, err := e.runtime.Sort(ctx, arr)
	if err != nil {
		return nil, err
	}
	if e.metrics != nil {
		e.metrics.ObserveSort(trace, time.Since(start))
	}
	return trace, nil
}
