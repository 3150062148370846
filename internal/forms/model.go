package forms

import (
	"encoding/json"
	"fmt"
	"maps"
	"time"
)

// TimestampLayout is the ISO-8601 form used for createdAt and submittedAt:
// UTC with millisecond precision, e.g. 2024-01-01T00:00:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldNumber   FieldType = "number"
)

// Form is a form definition. Field order is render and submit order.
//
// Forms are stored as received: keys without a typed field, and known keys whose
// value is empty, null or of another JSON type, are kept in Extra and written back
// unchanged.
type Form struct {
	ID          string
	Title       string
	Description string
	Fields      []Field
	CreatedAt   string
	Extra       map[string]json.RawMessage
}

func (f Form) MarshalJSON() ([]byte, error) {
	out := object{}
	maps.Copy(out, f.Extra)
	if err := out.put("id", f.ID, f.ID != ""); err != nil {
		return nil, err
	}
	if err := out.put("title", f.Title, f.Title != ""); err != nil {
		return nil, err
	}
	if err := out.put("description", f.Description, f.Description != ""); err != nil {
		return nil, err
	}
	if err := out.put("fields", f.Fields, f.Fields != nil); err != nil {
		return nil, err
	}
	if err := out.put("createdAt", f.CreatedAt, f.CreatedAt != ""); err != nil {
		return nil, err
	}
	return json.Marshal(map[string]json.RawMessage(out))
}

func (f *Form) UnmarshalJSON(data []byte) error {
	var in object
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in == nil {
		return fmt.Errorf("form must be a JSON object")
	}

	*f = Form{}
	in.takeString("id", &f.ID)
	in.takeString("title", &f.Title)
	in.takeString("description", &f.Description)
	in.takeString("createdAt", &f.CreatedAt)
	if raw, ok := in["fields"]; ok {
		var fields []Field
		if json.Unmarshal(raw, &fields) == nil && fields != nil {
			f.Fields = fields
			delete(in, "fields")
		}
	}
	f.Extra = in.rest()
	return nil
}

// Field is one input of a Form. Its ID keys response values and pre-fill query
// parameters. Extra works as in Form.
type Field struct {
	ID      string
	Label   string
	Type    FieldType
	Enabled *bool
	Options []string
	Extra   map[string]json.RawMessage
}

func (f Field) MarshalJSON() ([]byte, error) {
	out := object{}
	maps.Copy(out, f.Extra)
	if err := out.put("id", f.ID, f.ID != ""); err != nil {
		return nil, err
	}
	if err := out.put("label", f.Label, f.Label != ""); err != nil {
		return nil, err
	}
	if err := out.put("type", f.Type, f.Type != ""); err != nil {
		return nil, err
	}
	if err := out.put("enabled", f.Enabled, f.Enabled != nil); err != nil {
		return nil, err
	}
	if err := out.put("options", f.Options, f.Options != nil); err != nil {
		return nil, err
	}
	return json.Marshal(map[string]json.RawMessage(out))
}

func (f *Field) UnmarshalJSON(data []byte) error {
	var in object
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in == nil {
		return fmt.Errorf("field must be a JSON object")
	}

	*f = Field{}
	in.takeString("id", &f.ID)
	in.takeString("label", &f.Label)
	var typ string
	in.takeString("type", &typ)
	f.Type = FieldType(typ)
	if raw, ok := in["enabled"]; ok {
		var enabled *bool
		if json.Unmarshal(raw, &enabled) == nil && enabled != nil {
			f.Enabled = enabled
			delete(in, "enabled")
		}
	}
	if raw, ok := in["options"]; ok {
		var options []string
		if json.Unmarshal(raw, &options) == nil && options != nil {
			f.Options = options
			delete(in, "options")
		}
	}
	f.Extra = in.rest()
	return nil
}

type object map[string]json.RawMessage

// takeString moves a non-empty string value of key into dst. Anything else stays
// in o.
func (o object) takeString(key string, dst *string) {
	raw, ok := o[key]
	if !ok {
		return
	}
	var s string
	if json.Unmarshal(raw, &s) == nil && s != "" {
		*dst = s
		delete(o, key)
	}
}

func (o object) put(key string, v any, set bool) error {
	if !set {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	o[key] = raw
	return nil
}

func (o object) rest() map[string]json.RawMessage {
	if len(o) == 0 {
		return nil
	}
	return o
}

// IsEnabled treats a missing flag as enabled.
func (f Field) IsEnabled() bool {
	return f.Enabled == nil || *f.Enabled
}

// Response is one submission. On the wire it is a flat object: the submitted values
// plus "submittedAt".
type Response struct {
	Values      map[string]any
	SubmittedAt time.Time
}

const submittedAtKey = "submittedAt"

func (r Response) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Values)+1)
	maps.Copy(out, r.Values)
	out[submittedAtKey] = r.SubmittedAt.UTC().Format(TimestampLayout)
	return json.Marshal(out)
}

func (r *Response) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.SubmittedAt = time.Time{}
	if v, ok := raw[submittedAtKey]; ok {
		s, _ := v.(string)
		at, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("parsing %s %q: %w", submittedAtKey, s, err)
		}
		r.SubmittedAt = at
		delete(raw, submittedAtKey)
	}
	r.Values = raw
	return nil
}
