package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/conseccomms/conseccomms/internal/interfaces/cli/migrate"
	"github.com/conseccomms/conseccomms/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "conseccomms",
		Short: "Conseccomms - Desk, Drive and Quotes for small teams",
		Long:  `Conseccomms serves the Desk, Drive and Quotes apps and ships the database migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
