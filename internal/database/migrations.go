package database

import (
	"embed"
	"errors"
	"fmt"

	"formsd/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrations brings the schema at url up to date. A dirty version left behind by a
// failed run is rolled back to the previous version and retried.
func Migrations(url string) error {
	if url == "" {
		return ErrMissingURL
	}

	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}

	migration, err := migrate.NewWithSourceInstance("iofs", source, url)
	if err != nil {
		return fmt.Errorf("migration init: %w", err)
	}
	defer migration.Close()

	if version, dirty, _ := migration.Version(); dirty {
		previous := rollbackVersion(version)
		logger.Warn("database is dirty, forcing version", zap.Uint("dirty", version), zap.Int("forced", previous))
		if err := migration.Force(previous); err != nil {
			return fmt.Errorf("forcing migration version: %w", err)
		}
	}

	if err := migration.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("migrations applied")
	return nil
}

// rollbackVersion is the version a dirty schema at version is forced back to.
func rollbackVersion(version uint) int {
	if version <= 1 {
		return migratedb.NilVersion
	}
	return int(version) - 1
}
