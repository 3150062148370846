package forms

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks submitted values against the fields of their form.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Response returns a *ValidationError for the first field, in form order, whose
// value is missing or malformed. Values for ids the form does not declare are
// ignored.
func (v *Validator) Response(form Form, values map[string]any) error {
	for _, field := range form.Fields {
		value := strings.TrimSpace(stringify(values[field.ID]))
		if value == "" {
			return &ValidationError{FieldID: field.ID, Message: fmt.Sprintf("Please fill in the %s field", labelOf(field))}
		}

		switch field.Type {
		case FieldEmail:
			if v.validate.Var(value, "email") != nil {
				return &ValidationError{FieldID: field.ID, Message: "Please enter a valid email address"}
			}
		case FieldNumber:
			if v.validate.Var(value, "numeric") != nil {
				return &ValidationError{FieldID: field.ID, Message: fmt.Sprintf("Please enter a number in the %s field", labelOf(field))}
			}
		case FieldSelect:
			if len(field.Options) > 0 && !slices.Contains(field.Options, value) {
				return &ValidationError{FieldID: field.ID, Message: fmt.Sprintf("Please choose one of the %s options", labelOf(field))}
			}
		}
	}
	return nil
}

func labelOf(f Field) string {
	if f.Label != "" {
		return f.Label
	}
	return f.ID
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		// objects and arrays are never a valid field value
		return ""
	}
}
