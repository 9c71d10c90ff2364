package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/config"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

// setupLogger keeps the CLI quiet below warning so tables stay readable.
func setupLogger() (logger.Logger, error) {
	err := logger.InitLogger(&config.LoggerSettings{
		LogLevel:    config.LogLevelWarning,
		LogType:     config.LogTypeConsole,
		ServiceName: "trifasicko-cli",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.GetLogger()
}

// renderTable writes a titled table to w
func renderTable(w io.Writer, title string, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	_, err := fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render(title), t.String())
	return err
}

func euros(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func optionalEuros(v *float64) string {
	if v == nil {
		return "-"
	}
	return euros(*v)
}

func yesNo(v bool) string {
	if v {
		return "sí"
	}
	return "no"
}
