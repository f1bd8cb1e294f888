package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tansyhq/tansy/internal/interfaces/cli/migrate"
	"github.com/tansyhq/tansy/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tansy",
		Short: "Tansy - expiry notifications for hosting resellers",
		Long:  `Tansy watches hosting records for upcoming expiry dates and sends templated reminder emails and recurring reports from a reseller admin panel.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
