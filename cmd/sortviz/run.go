package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sortviz/sortviz/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [numbers...]",
	Short: "Sort the given numbers and show the recorded trace",
	Long: `Runs one instrumented bubble sort over the numbers given as arguments,
prints the original array and the number of recorded steps, and optionally
replays the trace step by step.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		jsonMode, _ := cmd.Flags().GetBool("json")
		headless, _ := cmd.Flags().GetBool("headless")
		replay, _ := cmd.Flags().GetBool("replay")
		delay, _ := cmd.Flags().GetDuration("delay")
		saveDir, _ := cmd.Flags().GetString("save")

		opts := cli.RunOptions{
			Args:     args,
			JSON:     jsonMode,
			Headless: headless,
			Replay:   replay,
			Delay:    delay,
			Debug:    debug,
			SaveDir:  saveDir,
		}

		if err := cli.RunSort(context.Background(), opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("headless", false, "Suppress banner and summary output")
	runCmd.Flags().Bool("json", false, "Emit the trace as NDJSON")
	runCmd.Flags().Bool("replay", false, "Replay the trace step by step after sorting")
	runCmd.Flags().Duration("delay", 0*time.Millisecond, "Delay between replayed steps")
	runCmd.Flags().String("save", "", "Persist the trace as NDJSON under this directory")
}
