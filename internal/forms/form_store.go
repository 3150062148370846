package forms

import (
	"context"
	"encoding/json"
	"errors"

	"formsd/internal/storage"
)

const formsKey = "forms"

// FormStore keeps every form definition in a single collection.
type FormStore struct {
	backend storage.Collection
	locks   *storage.KeyedMutex
}

func NewFormStore(backend storage.Collection, locks *storage.KeyedMutex) *FormStore {
	return &FormStore{backend: backend, locks: locks}
}

// Upsert replaces the form with the same id in place, or appends it. The whole
// collection is rewritten.
func (s *FormStore) Upsert(ctx context.Context, form Form) (Form, error) {
	unlock := s.locks.Lock(formsKey)
	defer unlock()

	all, err := s.load(ctx)
	if err != nil {
		return Form{}, err
	}

	replaced := false
	for i := range all {
		if all[i].ID == form.ID {
			all[i] = form
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, form)
	}

	if err := save(ctx, s.backend, formsKey, all); err != nil {
		return Form{}, err
	}
	return form, nil
}

func (s *FormStore) GetByID(ctx context.Context, id string) (Form, error) {
	all, err := s.load(ctx)
	if err != nil {
		return Form{}, err
	}
	for _, f := range all {
		if f.ID == id {
			return f, nil
		}
	}
	return Form{}, ErrNotFound
}

// GetAll returns forms in storage order; never nil.
func (s *FormStore) GetAll(ctx context.Context) ([]Form, error) {
	return s.load(ctx)
}

func (s *FormStore) load(ctx context.Context) ([]Form, error) {
	all := []Form{}
	if err := load(ctx, s.backend, formsKey, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// load decodes key into dst, leaving dst untouched when the collection was never
// written.
func load(ctx context.Context, backend storage.Collection, key string, dst any) error {
	data, err := backend.Load(ctx, key)
	if errors.Is(err, storage.ErrNotExist) {
		return nil
	}
	if err != nil {
		return storageError("load "+key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return storageError("decode "+key, err)
	}
	return nil
}

func save(ctx context.Context, backend storage.Collection, key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return storageError("encode "+key, err)
	}
	if err := backend.Save(ctx, key, data); err != nil {
		return storageError("save "+key, err)
	}
	return nil
}
