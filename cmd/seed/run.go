package main

import (
	"context"
	"fmt"

	"jobswipe/internal/app"
	"jobswipe/internal/config"
	"jobswipe/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrationsDir string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending SQL migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return prepare(cmd.Context(), false)
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Apply migrations and load demo users, jobs and swipes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return prepare(cmd.Context(), true)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&migrationsDir, "dir", "", "migrations directory (defaults to MIGRATIONS_DIR)")
	rootCmd.AddCommand(migrateCmd, demoCmd)
}

func prepare(ctx context.Context, seed bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	lg, err := logger.New(cfg.App.Environment, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = lg.Sync() }()

	cfg.Database.RunMigrations = true
	cfg.Database.RunSeeders = seed
	if migrationsDir != "" {
		cfg.Database.MigrationsDir = migrationsDir
	}

	c, err := app.NewContainer(ctx, cfg, lg)
	if err != nil {
		return fmt.Errorf("init container: %w", err)
	}
	defer func() { _ = c.Close() }()

	if err := app.Prepare(ctx, c); err != nil {
		return err
	}
	lg.Info("database ready", zap.Bool("seeded", seed))
	return nil
}
