package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/sortviz/sortviz"
	"github.com/sortviz/sortviz/internal/adapters/file"
	"github.com/sortviz/sortviz/internal/presentation/tui"
)

// RunOptions controls a single sort run.
type RunOptions struct {
	Args     []string // the numbers to sort, as given on the command line
	JSON     bool     // emit the trace as NDJSON instead of rendered lines
	Headless bool     // suppress banner and summary chrome
	Replay   bool     // stream the steps after sorting
	Delay    time.Duration
	Debug    bool
	SaveDir  string // when set, persist the trace here and print its ID

	// Out defaults to os.Stdout; overridable for tests.
	Out io.Writer
}

// RunSort parses the arguments, runs one instrumented sort and presents
// the result. This is the illustrative driver around the core: it prints
// the original array and the number of recorded steps, and optionally
// replays or persists the trace.
func RunSort(ctx context.Context, opts RunOptions) error {
	logger := createLogger(opts.Debug)
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	arr, err := parseInts(opts.Args)
	if err != nil {
		return err
	}

	if !opts.JSON && !opts.Headless {
		tui.PrintBanner(sortviz.Version)
	}

	engine := sortviz.New(sortviz.WithLogger(logger))
	trace, err := engine.Sort(ctx, arr)
	if err != nil {
		return fmt.Errorf("sort failed: %w", err)
	}

	if !opts.JSON {
		fmt.Fprintf(out, "Original array: %v\n", arr)
		fmt.Fprintf(out, "Number of steps: %d\n", len(trace))
	}

	if opts.Replay || opts.JSON {
		runner := sortviz.NewRunner()
		runner.Output = out
		runner.Headless = opts.Headless
		runner.JSON = opts.JSON
		runner.Delay = opts.Delay
		if !opts.JSON && stdoutIsTerminal() {
			runner.Renderer = tui.NewStepRenderer()
		}
		if err := runner.Replay(ctx, trace); err != nil {
			return fmt.Errorf("replay failed: %w", err)
		}
	}

	if opts.SaveDir != "" {
		store, err := file.New(opts.SaveDir)
		if err != nil {
			return err
		}
		id := uuid.NewString()
		if err := store.Save(ctx, id, trace); err != nil {
			return fmt.Errorf("failed to save trace: %w", err)
		}
		if !opts.JSON {
			fmt.Fprintf(out, "Trace saved: %s\n", id)
		}
		logger.Debug("trace persisted", "id", id, "dir", opts.SaveDir)
	}

	return nil
}
