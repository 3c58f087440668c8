package tui

import (
	"fmt"
	"strings"

	"github.com/sortviz/sortviz/pkg/domain"
)

// TraceReport builds a markdown summary of a trace, suitable for glamour
// rendering or for dropping into documentation as-is.
func TraceReport(original []int, trace domain.Trace) string {
	var b strings.Builder

	b.WriteString("# Sort Trace Report\n\n")
	fmt.Fprintf(&b, "Original array: `%v`\n\n", original)
	if final := trace.Final(); final != nil {
		fmt.Fprintf(&b, "Sorted array: `%v`\n\n", final)
	} else {
		fmt.Fprintf(&b, "Sorted array: `%v` (fewer than two elements, nothing to do)\n\n", original)
	}

	b.WriteString("## Totals\n\n")
	b.WriteString("| Step type | Count |\n")
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| compare | %d |\n", trace.Count(domain.StepCompare))
	fmt.Fprintf(&b, "| swap | %d |\n", trace.Count(domain.StepSwap))
	fmt.Fprintf(&b, "| pass_complete | %d |\n", trace.Count(domain.StepPassComplete))
	fmt.Fprintf(&b, "\nSteps recorded: **%d** across **%d** pass(es).\n", len(trace), trace.Passes())

	if n := len(original); n >= 2 {
		maxCompares := n * (n - 1) / 2
		if trace.Count(domain.StepCompare) < maxCompares {
			b.WriteString("\nThe sort terminated early: a full pass completed without a swap.\n")
		}
	}

	return b.String()
}
