package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "analytics",
	Short: "E-commerce analytics dashboard backend",
	Long: `analytics serves the e-commerce dashboard API over Snowflake marts
and bulk-loads the raw CSV datasets into the warehouse.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
