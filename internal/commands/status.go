package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewStatusCmd creates the status command.
func NewStatusCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show row counts for the staging and results tables",
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

			results, err := st.ResultCount(ctx)
			if err != nil {
				return err
			}
			staged, err := st.StagingCount(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("%s: %d rows\n", cfg.ResultsTable, results)
			fmt.Printf("%s: %d rows", cfg.StagingTable, staged)
			if staged > 0 {
				fmt.Print(" (expected 0 at rest; a run may be in progress or a crash left leftovers)")
			}
			fmt.Println()
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "paddock.yaml", "config file path")
	return cmd
}
