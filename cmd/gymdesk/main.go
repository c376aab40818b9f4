package main

import (
	"os"

	"github.com/spf13/cobra"

	"gymdesk/internal/interfaces/cli/migrate"
	"gymdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gymdesk",
		Short: "GymDesk - gym management back office",
		Long:  `GymDesk is the gym management back office with a built-in HTTP server, migration tools, and administrative commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
