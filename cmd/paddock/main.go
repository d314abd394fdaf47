package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dwsmith1983/paddock/internal/commands"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "paddock",
		Short: "Idempotent CSV result loader for race data",
		Long: `Paddock ingests uploaded race-result CSV files, validates their column
layout against the expected schema, normalizes the identifier column, and
merges the rows into the permanent results table exactly once per unique row.`,
		Version: version,
	}

	root.AddCommand(
		commands.NewIngestCmd(),
		commands.NewMigrateCmd(),
		commands.NewStatusCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
