package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMigrateCmd creates the migrate command. Table lifecycle is owned
// externally in production; this exists for dev and test environments.
func NewMigrateCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the staging and results tables if they do not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			columns, err := resolveColumns(cfg)
			if err != nil {
				return err
			}

			st, err := buildStore(ctx, cfg, columns)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Migrate(ctx); err != nil {
				return err
			}
			fmt.Printf("tables %s and %s ready\n", cfg.StagingTable, cfg.ResultsTable)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "paddock.yaml", "config file path")
	return cmd
}
