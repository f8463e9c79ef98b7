// Package main is the entry point for the todo service. The default command
// serves the HTTP API; "migrate" creates the todos table and exits.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-todo-service/internal/platform/config"
)

const envFile = ".env"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	profile   string
	configDir string
}

// resolveProfile falls back to APP_PROFILE from the .env file when neither
// the flag nor the environment named a profile.
func (f *globalFlags) resolveProfile() error {
	if f.profile != "" {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", envFile, err)
	}
	f.profile = os.Getenv("APP_PROFILE")
	return nil
}

func (f *globalFlags) loadConfig() (*config.Config, error) {
	if err := f.resolveProfile(); err != nil {
		return nil, err
	}
	if f.profile == "" {
		return nil, errors.New("a profile is required: pass --profile or set APP_PROFILE (e.g. local, dev, prod)")
	}
	cfg, err := config.Load(f.profile,
		config.WithConfigDir(f.configDir),
		config.WithEnvFile(envFile),
	)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	serve := newServeCmd(flags)

	root := &cobra.Command{
		Use:           "server",
		Short:         "Todo CRUD service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	root.PersistentFlags().StringVar(&flags.profile, "profile", os.Getenv("APP_PROFILE"),
		"configuration profile (configs/<profile>.yaml); defaults to $APP_PROFILE")
	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "configs",
		"directory holding base.yaml and the profile files")

	root.AddCommand(serve, newMigrateCmd(flags))
	return root
}
