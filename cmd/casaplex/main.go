package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/casaplex/casaplex/internal/interfaces/cli/migrate"
	"github.com/casaplex/casaplex/internal/interfaces/cli/seed"
	"github.com/casaplex/casaplex/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "casaplex",
		Short: "Casaplex - real estate listing marketplace",
		Long:  `Casaplex is a real estate marketplace backend with agent accounts, listing and article moderation, subscription plans and public search.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
