package sortviz

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sortviz/sortviz/pkg/domain"
)

// Runner replays a recorded trace step by step using provided IO.
// This allows for easy testing and integration with different frontends
// (CLI, TUI, HTTP streaming).
type Runner struct {
	Output   io.Writer
	Headless bool
	JSON     bool
	Delay    time.Duration
	Renderer StepRenderer
}

// StepRenderer transforms a step into its display form before output.
// This allows for TUI rendering (colored array lines) without coupling the
// core package to a terminal library.
type StepRenderer func(domain.Step) (string, error)

// NewRunner creates a Runner with no output configured.
// Callers set Output explicitly (use os.Stdout for a CLI).
func NewRunner() *Runner {
	return &Runner{}
}

// Replay writes every step of the trace to the runner's output in order.
// In JSON mode each step is emitted as one NDJSON line. Otherwise steps go
// through the Renderer if set, falling back to the step message. Delay, if
// positive, paces the replay and is interruptible via ctx.
func (r *Runner) Replay(ctx context.Context, trace domain.Trace) error {
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	if !r.Headless && !r.JSON {
		fmt.Fprintf(r.Output, "--- Replaying %d steps ---\n", len(trace))
	}

	enc := json.NewEncoder(r.Output)
	for i, step := range trace {
		if r.Delay > 0 && i > 0 {
			select {
			case <-time.After(r.Delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if r.JSON {
			if err := enc.Encode(step); err != nil {
				return fmt.Errorf("encode step %d: %w", i, err)
			}
			continue
		}

		line := step.Message
		if r.Renderer != nil {
			rendered, err := r.Renderer(step)
			if err != nil {
				return fmt.Errorf("render step %d: %w", i, err)
			}
			line = rendered
		}
		fmt.Fprintln(r.Output, line)
	}

	if !r.Headless && !r.JSON {
		if final := trace.Final(); final != nil {
			fmt.Fprintf(r.Output, "--- Sorted: %v ---\n", final)
		}
	}
	return nil
}
