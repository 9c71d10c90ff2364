package validators

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation tags registered by Register
const (
	TagCUPS       = "cups"
	TagPostalCode = "postalcode"
	TagPhoneES    = "phone_es"
)

var (
	cupsPattern       = regexp.MustCompile(`^ES[0-9]{16}[A-Z]{2}([0-9][A-Z])?$`)
	postalCodePattern = regexp.MustCompile(`^[0-9]{5}$`)
	phonePattern      = regexp.MustCompile(`^[6789][0-9]{8}$`)
)

// ValidateCUPS reports whether s is a well formed CUPS supply point code:
// "ES", sixteen digits and two control letters, optionally followed by a
// digit and a letter for the border point. Case and surrounding spaces are
// ignored.
func ValidateCUPS(s string) bool {
	return cupsPattern.MatchString(NormalizeCUPS(s))
}

// NormalizeCUPS trims and upper-cases a CUPS code.
func NormalizeCUPS(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ValidatePostalCode reports whether s is exactly five digits.
func ValidatePostalCode(s string) bool {
	return postalCodePattern.MatchString(s)
}

// ValidatePhone reports whether s is a Spanish phone number, with or without
// the +34 prefix. Spaces are ignored.
func ValidatePhone(s string) bool {
	return phonePattern.MatchString(NormalizePhone(s))
}

// NormalizePhone strips spaces and the +34 / 0034 prefix.
func NormalizePhone(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	for _, prefix := range []string{"+34", "0034"} {
		if strings.HasPrefix(s, prefix) {
			return strings.TrimPrefix(s, prefix)
		}
	}
	return s
}

// CUPSValidation is the validator.Func behind the "cups" tag.
func CUPSValidation(fl validator.FieldLevel) bool {
	return ValidateCUPS(fl.Field().String())
}

// PostalCodeValidation is the validator.Func behind the "postalcode" tag.
func PostalCodeValidation(fl validator.FieldLevel) bool {
	return ValidatePostalCode(fl.Field().String())
}

// PhoneValidation is the validator.Func behind the "phone_es" tag.
func PhoneValidation(fl validator.FieldLevel) bool {
	return ValidatePhone(fl.Field().String())
}

// Register adds the custom tags to validate.
func Register(validate *validator.Validate) error {
	for tag, fn := range map[string]validator.Func{
		TagCUPS:       CUPSValidation,
		TagPostalCode: PostalCodeValidation,
		TagPhoneES:    PhoneValidation,
	} {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validator: %w", tag, err)
		}
	}
	return nil
}

// New returns a validator with the custom tags registered.
func New() *validator.Validate {
	validate := validator.New()
	if err := Register(validate); err != nil {
		// tags are constant and functions non-nil, registration cannot fail
		panic(err)
	}
	return validate
}
