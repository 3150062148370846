package forms

import (
	"context"
	"maps"
	"net/url"
	"time"

	"formsd/internal/storage"

	"github.com/google/uuid"
)

// Observer is told about successful writes.
type Observer interface {
	FormSaved(formID string)
	ResponseSubmitted(formID string)
}

type nopObserver struct{}

func (nopObserver) FormSaved(string)         {}
func (nopObserver) ResponseSubmitted(string) {}

// Service is the operation surface the HTTP handlers call. It composes the form
// and response stores over one backend and gates response writes on form existence.
type Service struct {
	forms             *FormStore
	responses         *ResponseStore
	validator         *Validator
	validateResponses bool
	observer          Observer
	now               func() time.Time
	newID             func() string
}

type Option func(*Service)

func WithObserver(o Observer) Option {
	return func(s *Service) { s.observer = o }
}

// WithResponseValidation toggles checking responses against their form's fields.
// Off by default.
func WithResponseValidation(enabled bool) Option {
	return func(s *Service) { s.validateResponses = enabled }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
		s.responses.now = now
	}
}

func NewService(backend storage.Collection, opts ...Option) *Service {
	locks := storage.NewKeyedMutex()
	s := &Service{
		forms:             NewFormStore(backend, locks),
		responses:         NewResponseStore(backend, locks),
		validator:         NewValidator(),
		validateResponses: false,
		observer:          nopObserver{},
		now:               time.Now,
		newID:             func() string { return "form_" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveForm upserts form. Disabled fields are dropped; a missing id or createdAt
// is filled in. Everything else is stored as given.
func (s *Service) SaveForm(ctx context.Context, form Form) (Form, error) {
	if form.ID == "" {
		form.ID = s.newID()
	}
	if form.CreatedAt == "" {
		form.CreatedAt = s.now().UTC().Format(TimestampLayout)
	}

	if form.Fields != nil {
		enabled := make([]Field, 0, len(form.Fields))
		for _, f := range form.Fields {
			if f.IsEnabled() {
				enabled = append(enabled, f)
			}
		}
		form.Fields = enabled
	}

	saved, err := s.forms.Upsert(ctx, form)
	if err != nil {
		return Form{}, err
	}
	s.observer.FormSaved(saved.ID)
	return saved, nil
}

func (s *Service) GetForm(ctx context.Context, id string) (Form, error) {
	return s.forms.GetByID(ctx, id)
}

func (s *Service) ListForms(ctx context.Context) ([]Form, error) {
	return s.forms.GetAll(ctx)
}

// SubmitResponse records values against formID. Nothing is written when the form
// is unknown or the values fail validation.
func (s *Service) SubmitResponse(ctx context.Context, formID string, values map[string]any) (Response, error) {
	form, err := s.forms.GetByID(ctx, formID)
	if err != nil {
		return Response{}, err
	}

	if s.validateResponses {
		if err := s.validator.Response(form, values); err != nil {
			return Response{}, err
		}
	}
	values = maps.Clone(values)
	if values == nil {
		values = map[string]any{}
	}
	delete(values, submittedAtKey)

	r, err := s.responses.Append(ctx, formID, values)
	if err != nil {
		return Response{}, err
	}
	s.observer.ResponseSubmitted(formID)
	return r, nil
}

// ListResponses does not check that the form exists: an unknown id has no
// responses.
func (s *Service) ListResponses(ctx context.Context, formID string) ([]Response, error) {
	return s.responses.GetAll(ctx, formID)
}

// ShareLink returns the public link for formID under base, pre-filled from prefill.
func (s *Service) ShareLink(ctx context.Context, base, formID string, prefill url.Values) (string, error) {
	form, err := s.forms.GetByID(ctx, formID)
	if err != nil {
		return "", err
	}
	return PublicLink(base, form.ID, form.Fields, prefill), nil
}
