package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"worktime/internal/domain"
	"worktime/internal/errors"
)

// Output formats accepted by --format
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// parseFormat resolves the --format flag, falling back to the configured default
func parseFormat(flag string, fallback string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(flag))
	if format == "" {
		format = fallback
	}
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return format, nil
	default:
		return "", errors.NewInvalidInputError("format", flag, "must be table, json or yaml")
	}
}

// writeStructured writes v as JSON or YAML
func writeStructured(w io.Writer, format string, v interface{}) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported structured format: %s", format)
	}
}

// newTable starts a table with the given headers. Borders and header styling
// follow colorEnabled; plain tables are space-aligned columns with no border.
func newTable(headers ...string) *table.Table {
	t := table.New().Headers(headers...)

	if colorEnabled {
		cell := lipgloss.NewStyle().Padding(0, 1)
		return t.Border(lipgloss.RoundedBorder()).
			BorderStyle(silentStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle.Padding(0, 1)
				}
				return cell
			})
	}

	last := len(headers) - 1
	return t.BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == last {
				return lipgloss.NewStyle()
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})
}

// formatMoney renders an amount with the currency symbol in front
func formatMoney(currency domain.Currency, amount float64) string {
	return fmt.Sprintf("%s%.2f", currency.Symbol, amount)
}

// formatWorked renders minutes as "6h 05m"
func formatWorked(totalMinutes int) string {
	return fmt.Sprintf("%dh %02dm", totalMinutes/60, totalMinutes%60)
}

// formatClock renders a stored HH:MM value in the configured time format
func formatClock(value string, timeFormat string) string {
	if timeFormat != "12h" {
		return value
	}
	offset, err := domain.ParseClock(value)
	if err != nil {
		return value
	}

	hours, minutes := offset/60, offset%60
	suffix := "AM"
	if hours >= 12 {
		suffix = "PM"
	}
	hours %= 12
	if hours == 0 {
		hours = 12
	}
	return fmt.Sprintf("%d:%02d %s", hours, minutes, suffix)
}

// formatSlots renders a record's intervals in the configured time format
func formatSlots(records []domain.TimeRecord, timeFormat string) string {
	parts := make([]string, len(records))
	for i, tr := range records {
		parts[i] = formatClock(tr.StartTime, timeFormat) + "-" + formatClock(tr.EndTime, timeFormat)
	}
	return strings.Join(parts, ", ")
}

// formatSlotSummary reformats a "HH:MM-HH:MM, ..." summary in the configured time format
func formatSlotSummary(summary string, timeFormat string) string {
	if timeFormat != "12h" || summary == "" {
		return summary
	}
	parts := strings.Split(summary, ", ")
	for i, part := range parts {
		start, end, found := strings.Cut(part, "-")
		if !found {
			continue
		}
		parts[i] = formatClock(start, timeFormat) + "-" + formatClock(end, timeFormat)
	}
	return strings.Join(parts, ", ")
}
