package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sortviz/sortviz/internal/cli"
	"github.com/sortviz/sortviz/internal/config"
)

var reportCmd = &cobra.Command{
	Use:   "report [trace-id]",
	Short: "Summarize a stored trace as a markdown report",
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("file")
		useRedis, _ := cmd.Flags().GetBool("redis")
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
		}

		if err := cli.Report(context.Background(), opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().String("file", "", "Summarize an NDJSON trace file directly")
	reportCmd.Flags().Bool("redis", false, "Load the trace from Redis")
}
