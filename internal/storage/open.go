package storage

import (
	"context"
	"fmt"

	"formsd/internal/database"
)

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

type Options struct {
	Driver      string
	DataDir     string
	SQLitePath  string
	DatabaseURL string
	Redis       RedisConfig
}

// Open builds the backend named by opts.Driver. The returned Collection may also
// implement Closer.
func Open(ctx context.Context, opts Options) (Collection, error) {
	switch opts.Driver {
	case DriverFile, "":
		return NewFile(opts.DataDir)
	case DriverMemory:
		return NewMemory(), nil
	case DriverSQLite:
		return NewSQLite(ctx, opts.SQLitePath)
	case DriverRedis:
		return NewRedis(ctx, opts.Redis)
	case DriverPostgres:
		pool, err := database.Connection(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return NewPostgres(pool), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}

// Close releases c if it holds resources.
func Close(c Collection) error {
	if closer, ok := c.(Closer); ok {
		return closer.Close()
	}
	return nil
}
