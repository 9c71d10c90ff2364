// Package main is the entry point for the trifasicko-cli application.
// It registers the tariff comparison, savings and validation commands and
// runs them against the catalog embedded in the binary.
package main

import (
	"fmt"
	"os"

	commands "github.com/Montakatonix/trifasicko-conecta-sub000/cmd/trifasicko-cli/internal/commands"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "trifasicko-cli:", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "trifasicko-cli",
		Short: "Tariff comparison tool for electricity and internet",
		Long: `trifasicko-cli compares the electricity and internet tariffs of the built-in
catalog, estimates monthly bills and yearly savings and validates CUPS codes,
postal codes and phone numbers.

Comparisons can be exported to an XLSX workbook with --xlsx.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitTariffCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize tariff commands: %w", err)
	}

	commands.InitValidateCommands(rootCmd)

	return nil
}
