package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sortviz/sortviz"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sortviz",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sortviz version %s\n", strings.TrimSpace(sortviz.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
