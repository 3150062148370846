package forms

import (
	"context"
	"time"

	"formsd/internal/storage"
)

// ResponseStore keeps one append-only collection of responses per form id. It does
// not check that the form exists.
type ResponseStore struct {
	backend storage.Collection
	locks   *storage.KeyedMutex
	now     func() time.Time
}

func NewResponseStore(backend storage.Collection, locks *storage.KeyedMutex) *ResponseStore {
	return &ResponseStore{backend: backend, locks: locks, now: time.Now}
}

// ResponsesKey names the collection holding formID's responses.
func ResponsesKey(formID string) string {
	return "responses_" + formID
}

// Append stamps submittedAt and adds values to the end of formID's responses.
func (s *ResponseStore) Append(ctx context.Context, formID string, values map[string]any) (Response, error) {
	key := ResponsesKey(formID)
	unlock := s.locks.Lock(key)
	defer unlock()

	all, err := s.GetAll(ctx, formID)
	if err != nil {
		return Response{}, err
	}

	r := Response{Values: values, SubmittedAt: s.now().UTC().Truncate(time.Millisecond)}
	if n := len(all); n > 0 && r.SubmittedAt.Before(all[n-1].SubmittedAt) {
		// wall clock stepped back; keep the log ordered by submission
		r.SubmittedAt = all[n-1].SubmittedAt
	}
	all = append(all, r)

	if err := save(ctx, s.backend, key, all); err != nil {
		return Response{}, err
	}
	return r, nil
}

// GetAll returns formID's responses in append order, empty if there are none.
func (s *ResponseStore) GetAll(ctx context.Context, formID string) ([]Response, error) {
	all := []Response{}
	if err := load(ctx, s.backend, ResponsesKey(formID), &all); err != nil {
		return nil, err
	}
	return all, nil
}
