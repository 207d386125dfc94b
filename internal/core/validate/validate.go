// Package validate checks request payloads before they reach the
// network, converting go-playground/validator failures into per-field
// messages the UI can show inline.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// FieldError is a single failed field with a human-readable message.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors aggregates all failed fields of one payload.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, f := range fe {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// Struct validates i against its `validate` tags. On failure it returns
// a FieldErrors value; any other error is returned as-is.
func Struct(i any) error {
	err := v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	out := make(FieldErrors, 0, len(ve))
	for _, fe := range ve {
		out = append(out, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return out
}

// fieldMessage converts a single validator.FieldError into a
// human-readable message.
func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
