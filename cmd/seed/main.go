// Command seed prepares a jobswipe database: it applies migrations and, unless
// told otherwise, loads the demo users, jobs and swipes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "seed",
	Short:        "Prepare the jobswipe database",
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
