package tui

import (
	"fmt"
)

// PrintBanner outputs the Sortviz ASCII banner with a warm gradient.
func PrintBanner(version string) {
	lines := []string{
		`                 _         _     `,
		`  ___  ___  _ __| |___   _(_)____`,
		" / __|/ _ \\| '__| __\\ \\ / / |_  /",
		` \__ \ (_) | |  | |_ \ V /| |/ / `,
		` |___/\___/|_|   \__| \_/ |_/___|`,
	}
	colors := []string{"#fbbf24", "#fb923c", "#f87171", "#f472b6", "#c084fc"}

	fmt.Println()
	for i, line := range lines {
		fmt.Println(colorize(line, colors[i]))
	}
	fmt.Printf("\n  v%s — watch your array settle\n\n", version)
}
