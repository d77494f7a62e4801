package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samhrndi/ecommerce-analytics/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	Long: `Start the HTTP server exposing the executive and sales dashboards.

Configuration comes from the environment: SNOWFLAKE_ACCOUNT and
SNOWFLAKE_USER are required, everything else has defaults.

Examples:
  analytics serve
  ADDR=:9000 analytics serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := app.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return app.Run(cfg)
}
