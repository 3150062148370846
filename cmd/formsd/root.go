package main

import (
	"formsd/internal/config"
	"formsd/internal/logger"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "formsd",
		Short:        "Form builder backend: form definitions and responses over a JSON API",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "path to a YAML config file")
	root.PersistentFlags().String("log-level", "info", "debug, info, warn or error")

	root.AddCommand(newServeCmd(), newMigrateCmd())
	return root
}

// loadConfig resolves configuration for cmd and applies the log level.
func loadConfig(cmd *cobra.Command) (config.AppConfig, error) {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(file, cmd.Flags())
	if err != nil {
		return config.AppConfig{}, err
	}
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		return config.AppConfig{}, err
	}
	return cfg, nil
}
