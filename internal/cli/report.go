package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sortviz/sortviz/internal/presentation/tui"
	"github.com/sortviz/sortviz/pkg/domain"
)

// Report loads a trace and prints a markdown summary, rendered to ANSI
// when stdout is a terminal.
func Report(ctx context.Context, opts ReplayOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	trace, err := loadTrace(ctx, opts)
	if err != nil {
		return err
	}

	original := originalOf(trace)
	md := tui.TraceReport(original, trace)

	if stdoutIsTerminal() {
		render := tui.NewMarkdownRenderer()
		rendered, err := render(md)
		if err == nil {
			fmt.Fprint(out, rendered)
			return nil
		}
		// Fall through to raw markdown on render failure.
	}
	fmt.Fprint(out, md)
	return nil
}

// originalOf reconstructs the input array from the first step's snapshot.
// The first recorded step always precedes any mutation, so its snapshot is
// the array as given. An empty trace yields nil.
func originalOf(trace domain.Trace) []int {
	if len(trace) == 0 {
		return nil
	}
	return domain.Snapshot(trace[0].Array)
}
