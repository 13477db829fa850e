package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks request structs against their validate tags.
type Validator struct {
	validate *validator.Validate
}

var validate *Validator

// InitValidator builds the shared validator. Handlers reach it through
// GetValidator, which initializes on first use; tests call this directly
// for a clean instance.
func InitValidator() {
	validate = &Validator{validate: validator.New()}
}

// GetValidator returns the shared validator, creating it if needed.
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct runs tag validation on s.
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError converts a validation failure into a field→message
// map safe to hand to the browser. Field names are lowercased so responses
// match the JSON casing rather than Go identifiers.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"error": "Invalid request format"}
	}

	msgs := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs[strings.ToLower(fe.Field())] = fieldMessage(fe)
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	default:
		return "Invalid value"
	}
}
