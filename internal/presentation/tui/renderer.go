package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/sortviz/sortviz/pkg/domain"
)

var profile = termenv.ColorProfile()

func colorize(s, color string) string {
	return termenv.String(s).Foreground(profile.Color(color)).String()
}

// NewStepRenderer returns a renderer that draws each step as a colored
// array line: compared elements in yellow, swapped elements in red, the
// element settled by a pass in green.
func NewStepRenderer() func(domain.Step) (string, error) {
	return func(step domain.Step) (string, error) {
		var color, label string
		switch step.Type {
		case domain.StepCompare:
			color, label = "#fbbf24", "compare"
		case domain.StepSwap:
			color, label = "#f87171", "swap   "
		case domain.StepPassComplete:
			color, label = "#34d399", "pass   "
		default:
			return "", fmt.Errorf("unknown step type %q", step.Type)
		}

		marked := make(map[int]bool, len(step.Indices))
		for _, idx := range step.Indices {
			marked[idx] = true
		}

		cells := make([]string, len(step.Array))
		for i, v := range step.Array {
			cell := fmt.Sprintf("%d", v)
			if marked[i] {
				cell = colorize(cell, color)
			}
			cells[i] = cell
		}

		return fmt.Sprintf("%s [%s]  %s", colorize(label, color), strings.Join(cells, " "), step.Message), nil
	}
}

// NewMarkdownRenderer returns a function that renders markdown using glamour.
// It auto-detects the terminal background for light/dark styling.
func NewMarkdownRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
