// Package storage persists whole serialized collections under a string key.
//
// A collection is always read and written in full; callers own the encoding. The
// concrete backends (flat files, Postgres, SQLite, Redis, memory) are interchangeable
// behind Collection.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotExist is returned by Load when nothing was ever saved under the key.
// It is an expected outcome, distinct from a failing backend.
var ErrNotExist = errors.New("collection does not exist")

type Collection interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// Closer is implemented by backends holding connections or handles.
type Closer interface {
	Close() error
}

func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("empty collection key")
	}
	return nil
}
