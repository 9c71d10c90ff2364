package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/tariffs"
)

// XLSXContentType is the MIME type of the generated workbooks
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet names
const (
	ElectricitySheet = "Luz"
	InternetSheet    = "Internet"
)

// ElectricityHeader lists the columns of the electricity comparison sheet
var ElectricityHeader = []string{
	"Posición", "Comercializadora", "Tarifa", "Verde", "Término fijo (€)", "Término energía (€)",
	"Descuento (€)", "Impuesto eléctrico (€)", "IVA (€)", "Total mensual (€)", "Ahorro mensual (€)", "Ahorro anual (€)",
}

// InternetHeader lists the columns of the internet comparison sheet
var InternetHeader = []string{
	"Posición", "Operador", "Tarifa", "Tipo", "Velocidad (Mbps)", "Datos (GB)",
	"Precio mensual (€)", "Coste primer año (€)", "Permanencia (meses)", "Ahorro anual (€)",
}

type xlsxExporter struct{}

// NewXLSXExporter creates a tariffs.QuoteExporter producing Excel workbooks
func NewXLSXExporter() tariffs.QuoteExporter {
	return &xlsxExporter{}
}

func (e *xlsxExporter) ContentType() string {
	return XLSXContentType
}

func (e *xlsxExporter) FileExtension() string {
	return ".xlsx"
}

func (e *xlsxExporter) ExportElectricity(quotes []tariffs.ElectricityQuote) ([]byte, error) {
	rows := make([][]any, 0, len(quotes))
	for i, q := range quotes {
		rows = append(rows, []any{
			i + 1, q.Tariff.Provider, q.Tariff.Name, yesNo(q.Tariff.GreenEnergy),
			q.Cost.FixedTerm, q.Cost.EnergyTerm, q.Cost.Discount, q.Cost.ElectricityTax, q.Cost.VAT, q.Cost.Total,
			optional(q.MonthlySavings), optional(q.AnnualSavings),
		})
	}
	return writeWorkbook(ElectricitySheet, ElectricityHeader, rows)
}

func (e *xlsxExporter) ExportInternet(quotes []tariffs.InternetQuote) ([]byte, error) {
	rows := make([][]any, 0, len(quotes))
	for i, q := range quotes {
		var data any = q.Tariff.MobileDataGB
		if q.Tariff.UnlimitedData {
			data = "Ilimitados"
		}
		rows = append(rows, []any{
			i + 1, q.Tariff.Provider, q.Tariff.Name, q.Tariff.Type, q.Tariff.SpeedMbps, data,
			q.EffectivePrice, q.FirstYearCost, q.Tariff.PermanenceMonths, optional(q.AnnualSavings),
		})
	}
	return writeWorkbook(InternetSheet, InternetHeader, rows)
}

func writeWorkbook(sheetName string, header []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return nil, fmt.Errorf("failed to convert column number: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}
	if err := f.SetColWidth(sheetName, "A", lastCol, 18); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func yesNo(v bool) string {
	if v {
		return "Sí"
	}
	return "No"
}

// optional leaves the cell empty when there is no value
func optional(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
