package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/sortviz/sortviz/pkg/domain"
)

// Engine runs instrumented sorts and records a step trace.
// It owns no state between runs; a single Engine is safe for concurrent
// use because every Sort call works on its own copy of the input.
type Engine struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks fired per recorded step.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates an engine with the given options.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Sort performs a bubble sort over a copy of arr and returns the full step
// trace: one compare step per comparison, one swap step per exchange (with
// a snapshot taken after the swap), and one pass_complete step per outer
// pass. The outer loop exits early when a pass records no swap. The
// caller's slice is never mutated.
//
// Inputs with fewer than two elements produce an empty trace; there is no
// pair to compare and no pass boundary worth recording.
//
// The context is checked between passes. Cancellation aborts the run and
// returns ctx.Err() with no partial trace.
func (e *Engine) Sort(ctx context.Context, arr []int) (domain.Trace, error) {
	n := len(arr)
	if n <= 1 {
		return domain.Trace{}, nil
	}

	working := domain.Snapshot(arr)
	trace := make(domain.Trace, 0, n*n)

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("sort aborted during pass %d: %w", i+1, err)
		}

		swapped := false
		for j := 0; j < n-i-1; j++ {
			step := domain.Step{
				Type:    domain.StepCompare,
				Indices: []int{j, j + 1},
				Array:   domain.Snapshot(working),
				Message: fmt.Sprintf("Comparing elements at indices %d and %d", j, j+1),
			}
			trace = append(trace, step)
			if e.hooks.OnCompare != nil {
				e.hooks.OnCompare(ctx, step)
			}

			if working[j] > working[j+1] {
				working[j], working[j+1] = working[j+1], working[j]
				swapped = true

				step := domain.Step{
					Type:    domain.StepSwap,
					Indices: []int{j, j + 1},
					Array:   domain.Snapshot(working),
					Message: fmt.Sprintf("Swapped elements at indices %d and %d", j, j+1),
				}
				trace = append(trace, step)
				if e.hooks.OnSwap != nil {
					e.hooks.OnSwap(ctx, step)
				}
			}
		}

		settled := n - i - 1
		step := domain.Step{
			Type:    domain.StepPassComplete,
			Indices: []int{settled},
			Array:   domain.Snapshot(working),
			Message: fmt.Sprintf("Pass %d complete. Element at index %d is in final position", i+1, settled),
		}
		trace = append(trace, step)
		if e.hooks.OnPassComplete != nil {
			e.hooks.OnPassComplete(ctx, step)
		}

		e.logger.Debug("pass complete", "pass", i+1, "settled_index", settled, "swapped", swapped)

		if !swapped {
			break
		}
	}

	e.logger.Debug("sort complete", "n", n, "steps", len(trace))
	return trace, nil
}
