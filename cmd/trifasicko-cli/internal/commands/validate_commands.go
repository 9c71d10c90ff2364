package commands

import (
	"errors"
	"fmt"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/validators"

	"github.com/spf13/cobra"
)

// ErrInvalidValue is returned when a validated value is malformed
var ErrInvalidValue = errors.New("valor no válido")

type valueCheck struct {
	use       string
	short     string
	label     string
	valid     func(string) bool
	normalize func(string) string
}

// InitValidateCommands registers the "validar" command group
func InitValidateCommands(rootCmd *cobra.Command) {
	validateCmd := &cobra.Command{
		Use:   "validar",
		Short: "Validate Spanish identifiers",
	}

	checks := []valueCheck{
		{"cups <codigo>", "Validate a CUPS supply point code", "CUPS", validators.ValidateCUPS, validators.NormalizeCUPS},
		{"cp <codigo>", "Validate a postal code", "Código postal", validators.ValidatePostalCode, nil},
		{"telefono <numero>", "Validate a phone number", "Teléfono", validators.ValidatePhone, validators.NormalizePhone},
	}
	for _, check := range checks {
		validateCmd.AddCommand(check.command())
	}

	rootCmd.AddCommand(validateCmd)
}

func (c valueCheck) command() *cobra.Command {
	return &cobra.Command{
		Use:   c.use,
		Short: c.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := args[0]
			if !c.valid(value) {
				return fmt.Errorf("%w: %s %q", ErrInvalidValue, c.label, value)
			}
			if c.normalize != nil {
				value = c.normalize(value)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s válido: %s\n", c.label, value)
			return err
		},
	}
}
