package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres keeps each collection as one row of the collections table created by
// the database migrations.
type Postgres struct {
	pool *pgxpool.Pool
}

var _ Collection = &Postgres{}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) Load(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	var body []byte
	err := p.pool.QueryRow(ctx, `SELECT body FROM collections WHERE key = $1`, key).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("selecting %s: %w", key, err)
	}
	return body, nil
}

func (p *Postgres) Save(ctx context.Context, key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}

	_, err := p.pool.Exec(ctx, `
		INSERT INTO collections (key, body, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at
	`, key, string(data))
	if err != nil {
		return fmt.Errorf("upserting %s: %w", key, err)
	}
	return nil
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
