package cli

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

func (a *App) newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(a.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	return table
}

// paint colors a job or session status
func (a *App) paint(status string) string {
	if !a.colors {
		return status
	}
	switch status {
	case "completed":
		return color.FgGreen.Render(status)
	case "failed":
		return color.FgRed.Render(status)
	case "cancelled":
		return color.FgYellow.Render(status)
	default:
		return color.FgCyan.Render(status)
	}
}

// progressLine rewrites the current terminal line, plain newlines otherwise
func (a *App) progressLine(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if a.colors {
		fmt.Fprintf(a.out, "\r\033[K%s", line)
		return
	}
	fmt.Fprintln(a.out, line)
}

func (a *App) endProgress() {
	if a.colors {
		fmt.Fprintln(a.out)
	}
}

func formatDuration(seconds float64) string {
	if seconds <= 0 {
		return "-"
	}
	total := int(seconds + 0.5)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
