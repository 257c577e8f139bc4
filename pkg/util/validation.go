package util

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that reports fields by their json names.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return validate
}

// FieldMessages maps "field.tag" or "field" to a user-facing message.
type FieldMessages map[string]string

func (m FieldMessages) lookup(field, tag string) string {
	if msg, ok := m[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := m[field]; ok {
		return msg
	}
	return "Valor inválido"
}

// FromValidationError converts validator failures into a VALIDATION_FAILED DomainError
// whose details carry one message per field, first failure wins. Other errors become internal errors.
func FromValidationError(err error, message string, messages FieldMessages) error {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return NewInternalError(err)
	}

	details := make(map[string]any, len(ve))
	for _, fe := range ve {
		field := fe.Field()
		if _, seen := details[field]; seen {
			continue
		}
		details[field] = messages.lookup(field, fe.Tag())
	}
	return NewValidationError(message, details)
}
