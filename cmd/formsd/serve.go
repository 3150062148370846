package main

import (
	"os/signal"
	"syscall"

	"formsd/internal/database"
	"formsd/internal/forms"
	"formsd/internal/logger"
	"formsd/internal/metrics"
	"formsd/internal/server"
	"formsd/internal/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.Storage.Driver == storage.DriverPostgres && cfg.Database.MigrateOnStart {
				if err := database.Migrations(cfg.Database.URL); err != nil {
					return err
				}
			}

			backend, err := storage.Open(ctx, storage.Options{
				Driver:      cfg.Storage.Driver,
				DataDir:     cfg.Storage.DataDir,
				SQLitePath:  cfg.Storage.SQLitePath,
				DatabaseURL: cfg.Database.URL,
				Redis: storage.RedisConfig{
					Addr:     cfg.Redis.Addr,
					Password: cfg.Redis.Password,
					DB:       cfg.Redis.DB,
					Prefix:   cfg.Redis.Prefix,
				},
			})
			if err != nil {
				logger.Error("unable to open storage", err, zap.String("driver", cfg.Storage.Driver))
				return err
			}
			defer func() {
				if err := storage.Close(backend); err != nil {
					logger.Error("closing storage", err)
				}
			}()
			logger.Info("storage ready", zap.String("driver", cfg.Storage.Driver))

			m := metrics.New()
			svc := forms.NewService(backend,
				forms.WithObserver(m),
				forms.WithResponseValidation(cfg.Forms.ValidateResponses),
			)

			return server.New(cfg, svc, m).Run(ctx)
		},
	}

	flags := cmd.Flags()
	flags.String("server-port", "3001", "HTTP listen port")
	flags.String("server-frontend-url", "*", "allowed CORS origin, * for any")
	flags.String("server-public-url", "http://localhost:5173", "base URL of shareable form links")
	flags.String("storage-driver", storage.DriverFile, "file, postgres, sqlite, redis or memory")
	flags.String("storage-data-dir", "data", "directory of the file driver")
	flags.String("storage-sqlite-path", "data/forms.db", "database file of the sqlite driver")
	flags.String("database-url", "", "Postgres connection URL")
	flags.Bool("database-migrate-on-start", false, "apply Postgres migrations before serving")
	flags.Bool("forms-validate-responses", false, "check responses against their form's fields")

	return cmd
}
