package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of *redis.Client the Redis backend needs.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// Prefix namespaces every collection key, e.g. "formsd:".
	Prefix string
}

// Redis stores each collection as one string value without expiry.
type Redis struct {
	client RedisClient
	prefix string
	closer func() error
}

var _ Collection = &Redis{}

// NewRedis dials the server described by config and verifies it answers PING.
func NewRedis(ctx context.Context, config RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis %s: %w", config.Addr, err)
	}
	r := NewRedisWithClient(client, config.Prefix)
	r.closer = client.Close
	return r, nil
}

func NewRedisWithClient(client RedisClient, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) Load(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", key, err)
	}
	return data, nil
}

func (r *Redis) Save(ctx context.Context, key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.prefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer()
}
