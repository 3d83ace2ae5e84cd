package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "communitycli",
	Short: "Multi-level graph community detection over PPM/DCPPM/ILFR/ILFRS",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(detectCmd, compareCmd, estimateCmd)
}
