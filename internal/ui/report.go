package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fleetdeck/fleetdeck/internal/report"
)

// RenderReport renders a parsed diagnostic report: the summary items,
// then a detailed section for anything that failed.
func RenderReport(rep *report.Report) string {
	successStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ColorError)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	var b strings.Builder

	b.WriteString(headerStyle.Render("Checks") + "\n")
	if len(rep.Summary) == 0 {
		b.WriteString("  " + mutedStyle.Render("No check results in output") + "\n")
	}
	for _, item := range rep.Summary {
		icon := successStyle.Render(SymbolSuccess)
		if item.Status == report.StatusFail {
			icon = errorStyle.Render(SymbolFail)
		}
		line := "  " + icon + " " + padRight(item.Name, 21) + item.Description
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}

	wroteDetailsHeader := false
	for _, item := range rep.Summary {
		if item.Status != report.StatusFail || item.Details == "" {
			continue
		}
		if !wroteDetailsHeader {
			b.WriteString("\n" + headerStyle.Render("Details") + "\n")
			wroteDetailsHeader = true
		}
		b.WriteString("  " + errorStyle.Render(item.Name) + "\n")
		for _, line := range strings.Split(item.Details, "\n") {
			b.WriteString("    " + mutedStyle.Render(line) + "\n")
		}
	}

	b.WriteString("\n")
	if rep.Passed() {
		b.WriteString(successStyle.Render(SymbolSuccess+" All checks passed") + "\n")
	} else {
		b.WriteString(errorStyle.Render(SymbolFail+" "+plural(rep.Failures(), "check")+" failed") + "\n")
	}

	return b.String()
}

// DoctorRow represents a row in the doctor results listing.
type DoctorRow struct {
	Status     string // "pass", "warn", "fail"
	Category   string
	Message    string
	Suggestion string
}

// RenderDoctorTable renders doctor check results grouped by category.
func RenderDoctorTable(rows []DoctorRow) string {
	if len(rows) == 0 {
		return "No checks to display"
	}

	successStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ColorError)
	warnStyle := lipgloss.NewStyle().Foreground(ColorWarning)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	categories := make(map[string][]DoctorRow)
	var categoryOrder []string
	for _, row := range rows {
		if _, exists := categories[row.Category]; !exists {
			categoryOrder = append(categoryOrder, row.Category)
		}
		categories[row.Category] = append(categories[row.Category], row)
	}

	var output string
	for _, cat := range categoryOrder {
		output += headerStyle.Render(cat) + "\n"

		for _, row := range categories[cat] {
			var statusIcon string
			switch row.Status {
			case "pass":
				statusIcon = successStyle.Render(SymbolSuccess)
			case "warn":
				statusIcon = warnStyle.Render(SymbolWarn)
			default:
				statusIcon = errorStyle.Render(SymbolFail)
			}

			output += "  " + statusIcon + " " + row.Message + "\n"

			if row.Suggestion != "" && row.Status != "pass" {
				output += "    " + mutedStyle.Render(row.Suggestion) + "\n"
			}
		}
		output += "\n"
	}

	return output
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
