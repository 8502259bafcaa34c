package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alimenta/backend/internal/infrastructure/config"
	"github.com/alimenta/backend/internal/infrastructure/logger"
	"github.com/alimenta/backend/internal/infrastructure/persistence"
	"github.com/alimenta/backend/internal/infrastructure/seed"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var adminPassword string

var rootCmd = &cobra.Command{
	Use:   "alimenta-seed",
	Short: "Populate the Alimenta database with fixture and demo data",
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the admin account, the food catalog and demo organizations with open needs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSeeder(func(ctx context.Context, s *seed.Seeder) error {
			return s.Seed(ctx, adminPassword)
		})
	},
}

var demoDonationsCmd = &cobra.Command{
	Use:   "demo-donations",
	Short: "Create pending demo donations against every open need",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSeeder(func(ctx context.Context, s *seed.Seeder) error {
			return s.DemoDonations(ctx)
		})
	},
}

var resetDonationsCmd = &cobra.Command{
	Use:   "reset-donations",
	Short: "Delete all donations and reopen every need (demo environments only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSeeder(func(ctx context.Context, s *seed.Seeder) error {
			return s.ResetDonations(ctx)
		})
	},
}

func withSeeder(fn func(context.Context, *seed.Seeder) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = log.Sync()
	}()

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	return fn(context.Background(), seed.NewSeeder(db.DB, log))
}

func init() {
	seedCmd.Flags().StringVar(&adminPassword, "admin-password", "change-me-please", "Initial password for the admin account")
	rootCmd.AddCommand(seedCmd, demoDonationsCmd, resetDonationsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
