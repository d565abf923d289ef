package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validatorOnce sync.Once
	validate      *Validator
)

// GetValidator returns the shared validator, building it on first use
func GetValidator() *Validator {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("itemid", validateItemID)
		validate = &Validator{validate: v}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// jsonFieldName reports fields by their JSON name so error keys match the
// request body
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// fieldMessages renders one message per validation tag
var fieldMessages = map[string]func(param string) string{
	"required": func(string) string { return "This field is required" },
	"itemid":   func(string) string { return "Item id must not be blank or padded with spaces" },
	"max":      func(p string) string { return fmt.Sprintf("Must be at most %s characters", p) },
	"min":      func(p string) string { return fmt.Sprintf("Must be at least %s", p) },
	"oneof":    func(p string) string { return fmt.Sprintf("Must be one of: %s", p) },
}

// FormatValidationError maps each failed field to a readable message
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"error": "Invalid request format"}
	}

	errs := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		msg := "Invalid value"
		if render, ok := fieldMessages[e.Tag()]; ok {
			msg = render(e.Param())
		}
		errs[strings.ToLower(e.Field())] = msg
	}
	return errs
}

// validateItemID rejects blank ids and ids with surrounding whitespace.
// Empty values pass; use 'required' to forbid them.
func validateItemID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	return id == "" || strings.TrimSpace(id) == id
}
