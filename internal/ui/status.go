package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// StatusRow is one host in the status table.
type StatusRow struct {
	Host   string
	Target string // The address that was probed
	Online bool
	Tags   []string
}

// RenderStatusTable renders fleet reachability as a formatted table.
// Rows are sorted by host name for stable output.
func RenderStatusTable(rows []StatusRow) string {
	if len(rows) == 0 {
		return "No hosts configured"
	}

	sorted := make([]StatusRow, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Host < sorted[j].Host })

	successStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ColorError)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ColorMuted)

	// Clamp rows to the terminal so long targets don't wrap mid-row
	clamp := lipgloss.NewStyle()
	if IsInteractive() {
		clamp = clamp.MaxWidth(TerminalWidth())
	}

	var output string
	output += headerStyle.Render("  STATUS   HOST             TARGET") + "\n"

	for _, row := range sorted {
		var statusIcon, state string
		if row.Online {
			statusIcon = successStyle.Render(SymbolOnline)
			state = successStyle.Render("online ")
		} else {
			statusIcon = errorStyle.Render(SymbolOffline)
			state = errorStyle.Render("offline")
		}

		output += clamp.Render("  "+statusIcon+" "+state+"  "+
			padRight(row.Host, 17)+
			mutedStyle.Render(row.Target)) + "\n"
	}

	return output
}

// padRight pads a string to the specified width, ignoring ANSI codes.
func padRight(s string, width int) string {
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	padding := width - visibleLen
	for i := 0; i < padding; i++ {
		s += " "
	}
	return s
}
