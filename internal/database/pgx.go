package database

import (
	"context"
	"errors"
	"fmt"

	"formsd/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var ErrMissingURL = errors.New("database url not set")

// Connection opens a pgx pool for url and pings it once.
func Connection(ctx context.Context, url string) (*pgxpool.Pool, error) {
	if url == "" {
		return nil, ErrMissingURL
	}

	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parsing database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	logger.Info("connected to PostgreSQL", zap.String("host", config.ConnConfig.Host))
	return pool, nil
}
