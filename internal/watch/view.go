package watch

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fleetdeck/fleetdeck/internal/ui"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary)
	onlineStyle  = lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	offlineStyle = lipgloss.NewStyle().Foreground(ui.ColorError)
	pendingStyle = lipgloss.NewStyle().Foreground(ui.ColorMuted)
	footerStyle  = lipgloss.NewStyle().Foreground(ui.ColorMuted)
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	header := titleStyle.Render("fleetdeck watch")
	if m.refreshing {
		header += "  " + m.spinner.View()
	}
	b.WriteString(header + "\n\n")

	if len(m.hosts) == 0 {
		b.WriteString(pendingStyle.Render("No hosts configured") + "\n")
		return b.String()
	}

	clamp := lipgloss.NewStyle()
	if m.width > 0 {
		clamp = clamp.MaxWidth(m.width)
	}

	online := 0
	for _, name := range m.hosts {
		b.WriteString(clamp.Render("  "+m.renderHost(name)) + "\n")
		if m.online[name] {
			online++
		}
	}

	b.WriteString("\n")
	if m.probed {
		b.WriteString(footerStyle.Render(fmt.Sprintf(
			"%d/%d online · updated %s · r refresh · q quit",
			online, len(m.hosts), m.lastUpdate.Format("15:04:05"))) + "\n")
	} else {
		b.WriteString(footerStyle.Render("probing fleet · q quit") + "\n")
	}

	return b.String()
}

func (m Model) renderHost(name string) string {
	target := pendingStyle.Render(m.targets[name])
	padded := padRight(name, 17)

	if !m.probed {
		return pendingStyle.Render(ui.SymbolOffline) + " " + padded + " " + target
	}
	if m.online[name] {
		return onlineStyle.Render(ui.SymbolOnline) + " " + padded + " " + target
	}
	return offlineStyle.Render(ui.SymbolOffline) + " " + offlineStyle.Render(padded) + " " + target
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
