package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/tariffs"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/infrastructure/export"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/infrastructure/seed"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/utils"

	"github.com/spf13/cobra"
)

// Values accepted by --discriminacion
const (
	discriminationYes = "si"
	discriminationNo  = "no"
)

// TariffCommandHandler runs the comparators and calculators against the
// embedded tariff catalog
type TariffCommandHandler struct {
	catalog  *seed.TariffCatalog
	exporter tariffs.QuoteExporter
	logger   logger.Logger
}

// NewTariffCommandHandler loads the embedded catalog and sets up the logger
func NewTariffCommandHandler() (*TariffCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	catalog, err := seed.Tariffs()
	if err != nil {
		return nil, fmt.Errorf("failed to load tariff catalog: %w", err)
	}

	return &TariffCommandHandler{
		catalog:  catalog,
		exporter: export.NewXLSXExporter(),
		logger:   loggerInstance,
	}, nil
}

// ElectricityCostCmd estimates the monthly bill of an ad hoc tariff
func (commandHandler *TariffCommandHandler) ElectricityCostCmd(cmd *cobra.Command, _ []string) error {
	usage, err := usageFromFlags(cmd)
	if err != nil {
		return err
	}

	fixedRate, _ := cmd.Flags().GetFloat64("termino-fijo")
	energyRate, _ := cmd.Flags().GetFloat64("precio-energia")
	tariff := &tariffs.ElectricityTariff{FixedRate: fixedRate, FlatRate: &energyRate}
	if cmd.Flags().Changed("descuento") {
		discount, _ := cmd.Flags().GetFloat64("descuento")
		if discount < 0 || discount > 100 {
			return fmt.Errorf("descuento must be between 0 and 100")
		}
		tariff.DiscountPercent = &discount
	}
	if fixedRate < 0 || energyRate < 0 {
		return fmt.Errorf("termino-fijo and precio-energia must not be negative")
	}

	cost := tariffs.ElectricityCost(tariff, usage)
	rows := [][]string{
		{"Término de potencia", euros(cost.FixedTerm)},
		{"Término de energía", euros(cost.EnergyTerm)},
		{"Descuento", euros(cost.Discount)},
		{"Impuesto eléctrico", euros(cost.ElectricityTax)},
		{"IVA", euros(cost.VAT)},
		{"Total", euros(cost.Total)},
	}
	return renderTable(cmd.OutOrStdout(), "Factura mensual estimada", []string{"Concepto", "Euros"}, rows)
}

// CompareElectricityCmd ranks the catalog's electricity tariffs for the
// given supply
func (commandHandler *TariffCommandHandler) CompareElectricityCmd(cmd *cobra.Command, _ []string) error {
	usage, err := usageFromFlags(cmd)
	if err != nil {
		return err
	}

	req := tariffs.ElectricityComparisonRequest{Usage: usage}
	req.GreenOnly, _ = cmd.Flags().GetBool("verde")
	req.Limit, _ = cmd.Flags().GetInt("limite")
	if cmd.Flags().Changed("factura") {
		bill, _ := cmd.Flags().GetFloat64("factura")
		req.CurrentMonthlyBill = &bill
	}

	discrimination, _ := cmd.Flags().GetString("discriminacion")
	switch discrimination {
	case "":
	case discriminationYes, discriminationNo:
		v := discrimination == discriminationYes
		req.TimeDiscrimination = &v
	default:
		return fmt.Errorf("discriminacion must be %q or %q", discriminationYes, discriminationNo)
	}

	quotes := tariffs.CompareElectricity(commandHandler.catalog.Electricity, req)

	rows := make([][]string, 0, len(quotes))
	for i, q := range quotes {
		rows = append(rows, []string{
			strconv.Itoa(i + 1), q.Tariff.Provider, q.Tariff.Name, yesNo(q.Tariff.GreenEnergy),
			euros(q.Cost.Total), optionalEuros(q.MonthlySavings), optionalEuros(q.AnnualSavings),
		})
	}
	if err := renderTable(cmd.OutOrStdout(), "Comparativa de tarifas de luz",
		[]string{"#", "Comercializadora", "Tarifa", "Verde", "Total/mes", "Ahorro/mes", "Ahorro/año"}, rows); err != nil {
		return err
	}

	return commandHandler.writeExport(cmd, func() ([]byte, error) {
		return commandHandler.exporter.ExportElectricity(quotes)
	})
}

// CompareInternetCmd ranks the catalog's internet tariffs
func (commandHandler *TariffCommandHandler) CompareInternetCmd(cmd *cobra.Command, _ []string) error {
	var req tariffs.InternetComparisonRequest
	req.Type, _ = cmd.Flags().GetString("tipo")
	req.MinSpeedMbps, _ = cmd.Flags().GetInt("velocidad-min")
	req.MaxPrice, _ = cmd.Flags().GetFloat64("precio-max")
	req.SortBy, _ = cmd.Flags().GetString("orden")
	req.Limit, _ = cmd.Flags().GetInt("limite")
	if cmd.Flags().Changed("actual") {
		current, _ := cmd.Flags().GetFloat64("actual")
		req.CurrentMonthlyPrice = &current
	}

	switch req.SortBy {
	case "", tariffs.SortByPrice, tariffs.SortBySpeed:
	default:
		return fmt.Errorf("orden must be %q or %q", tariffs.SortByPrice, tariffs.SortBySpeed)
	}
	if req.MinSpeedMbps < 0 || req.MaxPrice < 0 || req.Limit < 0 {
		return fmt.Errorf("velocidad-min, precio-max and limite must not be negative")
	}

	quotes := tariffs.CompareInternet(commandHandler.catalog.Internet, req)

	rows := make([][]string, 0, len(quotes))
	for i, q := range quotes {
		rows = append(rows, []string{
			strconv.Itoa(i + 1), q.Tariff.Provider, q.Tariff.Name, q.Tariff.Type, strconv.Itoa(q.Tariff.SpeedMbps),
			euros(q.EffectivePrice), euros(q.FirstYearCost), optionalEuros(q.AnnualSavings),
		})
	}
	if err := renderTable(cmd.OutOrStdout(), "Comparativa de tarifas de internet",
		[]string{"#", "Operador", "Tarifa", "Tipo", "Mbps", "Precio/mes", "Primer año", "Ahorro/año"}, rows); err != nil {
		return err
	}

	return commandHandler.writeExport(cmd, func() ([]byte, error) {
		return commandHandler.exporter.ExportInternet(quotes)
	})
}

// SavingsCmd prints the monthly and yearly difference between two bills
func (commandHandler *TariffCommandHandler) SavingsCmd(cmd *cobra.Command, _ []string) error {
	current, _ := cmd.Flags().GetFloat64("actual")
	proposed, _ := cmd.Flags().GetFloat64("nuevo")
	if current < 0 || proposed < 0 {
		return fmt.Errorf("actual and nuevo must not be negative")
	}

	rows := [][]string{
		{"Ahorro mensual", euros(utils.Round2(current - proposed))},
		{"Ahorro anual", euros(tariffs.AnnualSavings(current, proposed))},
	}
	return renderTable(cmd.OutOrStdout(), "Calculadora de ahorro", []string{"Concepto", "Euros"}, rows)
}

func (commandHandler *TariffCommandHandler) writeExport(cmd *cobra.Command, build func() ([]byte, error)) error {
	path, _ := cmd.Flags().GetString("xlsx")
	if path == "" {
		return nil
	}

	data, err := build()
	if err != nil {
		return fmt.Errorf("failed to build workbook: %w", err)
	}
	if err := os.WriteFile(filepath.Clean(path), data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	commandHandler.logger.Info("Comparison exported to ", path)
	return nil
}

func usageFromFlags(cmd *cobra.Command) (tariffs.ElectricityUsage, error) {
	var usage tariffs.ElectricityUsage
	usage.ContractedPowerKW, _ = cmd.Flags().GetFloat64("potencia")
	usage.MonthlyConsumptionKWh, _ = cmd.Flags().GetFloat64("consumo")
	if cmd.Flags().Changed("punta") {
		peak, _ := cmd.Flags().GetFloat64("punta")
		usage.PeakSharePercent = &peak
	}

	if usage.ContractedPowerKW <= 0 {
		return usage, fmt.Errorf("potencia must be greater than 0")
	}
	if err := usage.Validate(); err != nil {
		return usage, err
	}
	return usage, nil
}

func addUsageFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("potencia", 0, "Contracted power in kW")
	cmd.Flags().Float64("consumo", 0, "Monthly consumption in kWh")
	cmd.Flags().Float64("punta", tariffs.DefaultPeakSharePercent, "Share of consumption in the peak band, in percent")
}

// InitTariffCommands registers the comparator and calculator commands
func InitTariffCommands(rootCmd *cobra.Command) error {
	handler, err := NewTariffCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create tariff command handler: %w", err)
	}

	electricityCmd := &cobra.Command{
		Use:   "luz",
		Short: "Electricity tariffs",
	}

	costCmd := &cobra.Command{
		Use:   "coste",
		Short: "Estimate the monthly bill of a flat-rate tariff",
		Args:  cobra.NoArgs,
		RunE:  handler.ElectricityCostCmd,
	}
	addUsageFlags(costCmd)
	costCmd.Flags().Float64("termino-fijo", 0, "Power term in euros per kW and day")
	costCmd.Flags().Float64("precio-energia", 0, "Energy price in euros per kWh")
	costCmd.Flags().Float64("descuento", 0, "Discount in percent")
	electricityCmd.AddCommand(costCmd)

	compareElectricityCmd := &cobra.Command{
		Use:   "comparar",
		Short: "Rank the electricity tariffs of the catalog, cheapest first",
		Args:  cobra.NoArgs,
		RunE:  handler.CompareElectricityCmd,
	}
	addUsageFlags(compareElectricityCmd)
	compareElectricityCmd.Flags().Float64("factura", 0, "Current monthly bill, enables savings columns")
	compareElectricityCmd.Flags().Bool("verde", false, "Only tariffs with certified renewable energy")
	compareElectricityCmd.Flags().String("discriminacion", "", "Time-of-use tariffs only (si) or flat tariffs only (no)")
	compareElectricityCmd.Flags().Int("limite", 0, "Maximum number of tariffs, 0 for all")
	compareElectricityCmd.Flags().String("xlsx", "", "Also write the comparison to this XLSX file")
	electricityCmd.AddCommand(compareElectricityCmd)

	rootCmd.AddCommand(electricityCmd)

	internetCmd := &cobra.Command{
		Use:   "internet",
		Short: "Internet tariffs",
	}

	compareInternetCmd := &cobra.Command{
		Use:   "comparar",
		Short: "Rank the internet tariffs of the catalog",
		Args:  cobra.NoArgs,
		RunE:  handler.CompareInternetCmd,
	}
	compareInternetCmd.Flags().String("tipo", "", "Connection type: fibra, movil, fibra_movil or adsl")
	compareInternetCmd.Flags().Int("velocidad-min", 0, "Minimum speed in Mbps")
	compareInternetCmd.Flags().Float64("precio-max", 0, "Maximum effective monthly price, 0 for no bound")
	compareInternetCmd.Flags().String("orden", tariffs.SortByPrice, "Ranking: price or speed")
	compareInternetCmd.Flags().Float64("actual", 0, "Current monthly price, enables the savings column")
	compareInternetCmd.Flags().Int("limite", 0, "Maximum number of tariffs, 0 for all")
	compareInternetCmd.Flags().String("xlsx", "", "Also write the comparison to this XLSX file")
	internetCmd.AddCommand(compareInternetCmd)

	rootCmd.AddCommand(internetCmd)

	savingsCmd := &cobra.Command{
		Use:   "ahorro",
		Short: "Monthly and yearly savings between two bills",
		Args:  cobra.NoArgs,
		RunE:  handler.SavingsCmd,
	}
	savingsCmd.Flags().Float64("actual", 0, "Current monthly amount")
	savingsCmd.Flags().Float64("nuevo", 0, "New monthly amount")
	_ = savingsCmd.MarkFlagRequired("actual")
	_ = savingsCmd.MarkFlagRequired("nuevo")
	rootCmd.AddCommand(savingsCmd)

	return nil
}
