package main

import (
	"formsd/internal/database"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply Postgres schema migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return database.Migrations(cfg.Database.URL)
		},
	}
	cmd.Flags().String("database-url", "", "Postgres connection URL")
	return cmd
}
