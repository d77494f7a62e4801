package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/samhrndi/ecommerce-analytics/internal/app"
	"github.com/samhrndi/ecommerce-analytics/internal/loader"
	"github.com/samhrndi/ecommerce-analytics/internal/snowflake"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Bulk-load the raw CSV datasets into Snowflake",
	Long: `Load the Olist CSV files from a local directory into the warehouse's
RAW schema. Each target table is recreated and fully replaced. Missing
files are skipped; a failure on one file does not stop the rest.

Examples:
  analytics load
  analytics load --dir /data/olist --schema RAW`,
	RunE: runLoad,
}

var (
	loadDir    string
	loadSchema string
)

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().StringVar(&loadDir, "dir", "data/raw", "Directory containing the source CSV files")
	loadCmd.Flags().StringVar(&loadSchema, "schema", snowflake.SchemaRaw, "Destination schema")
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg, err := app.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	connector := snowflake.NewConnector(snowflake.Config{
		Account:        cfg.Snowflake.Account,
		User:           cfg.Snowflake.User,
		Role:           cfg.Snowflake.Role,
		Warehouse:      cfg.Snowflake.Warehouse,
		Database:       cfg.Snowflake.Database,
		PrivateKeyPath: cfg.Snowflake.PrivateKeyPath,
	})

	info, err := connector.Check(cmd.Context())
	if err != nil {
		return fmt.Errorf("connection check: %w", err)
	}
	pterm.Info.Printfln("connected as %s (role %s, warehouse %s, database %s)",
		info.User, info.Role, info.Warehouse, info.Database)

	results := loader.New(connector).LoadAll(cmd.Context(), loadDir, loadSchema)
	if len(results) == 0 {
		pterm.Warning.Printfln("source directory %s not found, nothing to do", loadDir)
		return nil
	}

	loader.PrintReport(results)
	if loader.HasErrors(results) {
		return fmt.Errorf("one or more tables failed to load")
	}
	return nil
}
