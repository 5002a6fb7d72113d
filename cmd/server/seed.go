package main

import (
	"context"
	"fmt"
	"time"

	dbpostgres "prison-jobs/internal/database/postgres"
	"prison-jobs/internal/database/seeder"

	"github.com/spf13/cobra"
)

var seedPasswordCost int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert development users, jobs, an application and a questionnaire response",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedPasswordCost, "bcrypt-cost", 0, "bcrypt cost for seeded passwords (0 uses the default)")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		return fmt.Errorf("refusing to seed a production environment")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	pool, err := dbpostgres.Connect(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() { _ = pool.Close() }()

	runner := seeder.Runner{Seeders: seeder.Defaults(seedPasswordCost), Logger: logger}
	return runner.Run(ctx, pool)
}
