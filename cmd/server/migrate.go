package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-todo-service/internal/adapters/storage/gormstore"
	"github.com/jsamuelsen11/go-todo-service/internal/platform/logging"
)

func newMigrateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the todos table if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

			client, err := gormstore.Open(&cfg.Database, nil, logger)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer func() {
				if err := client.Close(); err != nil {
					logger.Warn("closing database", slog.Any("error", err))
				}
			}()

			if err := client.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("migrating database: %w", err)
			}

			logger.Info("migration complete", slog.String("driver", cfg.Database.Driver))
			return nil
		},
	}
}
