package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldMessages holds the localized message per validation tag
var fieldMessages = map[string]string{
	"required":    "es obligatorio",
	"email":       "debe ser un correo electrónico válido",
	"min":         "es demasiado corto o pequeño",
	"max":         "es demasiado largo o grande",
	"gte":         "debe ser mayor o igual que %s",
	"lte":         "debe ser menor o igual que %s",
	"gt":          "debe ser mayor que %s",
	"oneof":       "debe ser uno de: %s",
	"url":         "debe ser una URL válida",
	TagCUPS:       "no es un CUPS válido",
	TagPostalCode: "debe tener 5 dígitos",
	TagPhoneES:    "no es un teléfono válido",
}

// Struct validates s with the custom tags registered and returns an error
// whose message lists every failing field in Spanish.
func Struct(s interface{}) error {
	err := New().Struct(s)
	if err == nil {
		return nil
	}
	return Localize(err)
}

// Localize converts validator errors into a single localized error.
func Localize(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("error de validación: %w", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s %s", fieldErr.Field(), describe(fieldErr)))
	}
	return fmt.Errorf("validación fallida: %s", strings.Join(messages, "; "))
}

func describe(fieldErr validator.FieldError) string {
	msg, ok := fieldMessages[fieldErr.Tag()]
	if !ok {
		return fmt.Sprintf("no es válido (%s)", fieldErr.Tag())
	}
	if strings.Contains(msg, "%s") {
		return fmt.Sprintf(msg, fieldErr.Param())
	}
	return msg
}
