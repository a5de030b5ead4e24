// Package seed loads the catalog seed data (cities, categories, plans,
// site settings, FAQ entries) into the database.
package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/casaplex/casaplex/internal/infrastructure/config"
	"github.com/casaplex/casaplex/internal/infrastructure/database"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/seeds"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load catalog seed data",
		Long:  `Insert the default cities, article categories, subscription plans, site settings and FAQ entries. Existing rows are left untouched.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log.Infow("loading seed data", "environment", env)
	if err := seeds.Run(database.Get()); err != nil {
		log.Errorw("seeding failed", "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Infow("seed data loaded")
	return nil
}
