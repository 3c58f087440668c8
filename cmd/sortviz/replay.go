package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sortviz/sortviz/internal/cli"
	"github.com/sortviz/sortviz/internal/config"
)

var replayCmd = &cobra.Command{
	Use:   "replay [trace-id]",
	Short: "Replay a stored trace step by step",
	Long: `Replays a previously recorded trace. Traces can come from a file
(--file), from the filesystem store (trace ID), or from Redis (trace ID
with --redis).`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("file")
		useRedis, _ := cmd.Flags().GetBool("redis")
		jsonMode, _ := cmd.Flags().GetBool("json")
		headless, _ := cmd.Flags().GetBool("headless")
		delay, _ := cmd.Flags().GetDuration("delay")
		debug, _ := cmd.Flags().GetBool("debug")
		cfgPath, _ := cmd.Flags().GetString("config")

		cfg := config.Default()
		if cfgPath != "" {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				fmt.Printf("Error loading config: %v\n", err)
				os.Exit(1)
			}
		}

		id := ""
		if len(args) > 0 {
			id = args[0]
		}

		opts := cli.ReplayOptions{
			Path:     path,
			ID:       id,
			UseRedis: useRedis,
			Config:   cfg,
			JSON:     jsonMode,
			Headless: headless,
			Delay:    delay,
			Debug:    debug,
		}

		if err := cli.ReplayTrace(context.Background(), opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().String("file", "", "Replay an NDJSON trace file directly")
	replayCmd.Flags().Bool("redis", false, "Load the trace from Redis")
	replayCmd.Flags().Bool("json", false, "Emit the trace as NDJSON")
	replayCmd.Flags().Bool("headless", false, "Suppress summary output")
	replayCmd.Flags().Duration("delay", 250*time.Millisecond, "Delay between steps")
}
