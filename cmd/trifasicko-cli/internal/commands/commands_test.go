//go:build unit
// +build unit

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd := &cobra.Command{Use: "trifasicko-cli", SilenceUsage: true, SilenceErrors: true}
	require.NoError(t, InitTariffCommands(rootCmd))
	InitValidateCommands(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestElectricityCostCmd(t *testing.T) {
	out, err := execute(t, "luz", "coste", "--potencia", "4.6", "--consumo", "250", "--termino-fijo", "0.1", "--precio-energia", "0.15")
	require.NoError(t, err)

	assert.Contains(t, out, "Factura mensual estimada")
	assert.Contains(t, out, "13.80")
	assert.Contains(t, out, "37.50")
	assert.Contains(t, out, "65.25")
}

func TestElectricityCostCmd_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing power", []string{"luz", "coste", "--consumo", "250"}},
		{"discount out of range", []string{"luz", "coste", "--potencia", "3", "--descuento", "150"}},
		{"negative price", []string{"luz", "coste", "--potencia", "3", "--precio-energia", "-1"}},
		{"peak share out of range", []string{"luz", "coste", "--potencia", "3", "--punta", "120"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestCompareElectricityCmd_GreenOnly(t *testing.T) {
	out, err := execute(t, "luz", "comparar", "--potencia", "4.6", "--consumo", "250", "--verde", "--factura", "90")
	require.NoError(t, err)

	assert.Contains(t, out, "Holaluz")
	assert.NotContains(t, out, "Iberdrola")
	assert.NotContains(t, out, "Endesa")
}

func TestCompareElectricityCmd_Discrimination(t *testing.T) {
	out, err := execute(t, "luz", "comparar", "--potencia", "4.6", "--consumo", "250", "--discriminacion", "si")
	require.NoError(t, err)
	assert.Contains(t, out, "Endesa")
	assert.NotContains(t, out, "Plan Estable")

	_, err = execute(t, "luz", "comparar", "--potencia", "4.6", "--consumo", "250", "--discriminacion", "quizas")
	assert.Error(t, err)
}

func TestCompareElectricityCmd_ExportsWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "luz.xlsx")

	_, err := execute(t, "luz", "comparar", "--potencia", "4.6", "--consumo", "250", "--xlsx", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("PK"), data[:2])
}

func TestCompareInternetCmd(t *testing.T) {
	out, err := execute(t, "internet", "comparar", "--orden", "speed", "--limite", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Comparativa de tarifas de internet")

	_, err = execute(t, "internet", "comparar", "--orden", "nombre")
	assert.Error(t, err)

	_, err = execute(t, "internet", "comparar", "--velocidad-min", "-5")
	assert.Error(t, err)
}

func TestSavingsCmd(t *testing.T) {
	out, err := execute(t, "ahorro", "--actual", "80", "--nuevo", "60.25")
	require.NoError(t, err)
	assert.Contains(t, out, "19.75")
	assert.Contains(t, out, "237.00")

	out, err = execute(t, "ahorro", "--actual", "50", "--nuevo", "60")
	require.NoError(t, err)
	assert.Contains(t, out, "-120.00")

	_, err = execute(t, "ahorro", "--actual", "50")
	assert.Error(t, err)
}

func TestValidateCmds(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"valid cups normalized", []string{"validar", "cups", " es0021000000000000ab"}, "CUPS válido: ES0021000000000000AB", false},
		{"invalid cups", []string{"validar", "cups", "ES123"}, "", true},
		{"valid postal code", []string{"validar", "cp", "28001"}, "Código postal válido: 28001", false},
		{"invalid postal code", []string{"validar", "cp", "2800"}, "", true},
		{"valid phone normalized", []string{"validar", "telefono", "+34 612 345 678"}, "Teléfono válido: 612345678", false},
		{"invalid phone", []string{"validar", "telefono", "512345678"}, "", true},
		{"missing argument", []string{"validar", "cp"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestValidateCmds_ErrInvalidValue(t *testing.T) {
	_, err := execute(t, "validar", "cp", "abcde")
	assert.ErrorIs(t, err, ErrInvalidValue)
}
