// Package cli wires the library, stores and presentation together for the
// sortviz command. Commands stay thin; the orchestration lives here.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/sortviz/sortviz/internal/logging"
	"github.com/sortviz/sortviz/pkg/domain"
)

// createLogger configures the application logger.
// In debug mode it writes to Stderr (to keep Stdout clean for replay output).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// stdoutIsTerminal reports whether stdout is an interactive terminal.
// Piped output gets plain text instead of ANSI.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// parseInts converts CLI arguments into sortable elements. A non-numeric
// argument fails the whole run before any sorting happens.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", a, domain.ErrNotComparable)
		}
		out[i] = n
	}
	return out, nil
}
