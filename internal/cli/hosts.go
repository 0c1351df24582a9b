package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/errors"
	"github.com/fleetdeck/fleetdeck/internal/remote"
	"github.com/fleetdeck/fleetdeck/internal/ui"
)

// hostsCommand lists the configured hosts, optionally filtered by tag.
func hostsCommand(tag string) error {
	cfg, err := config.MustLoad(Config())
	if err != nil {
		return err
	}

	hosts := cfg.Hosts
	if tag != "" {
		hosts = cfg.HostsByTag(tag)
		if len(hosts) == 0 {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("No hosts carry the tag '%s'", tag),
				"Run 'fleetdeck hosts' without --tag to see the inventory")
		}
	}

	names := make([]string, 0, len(hosts))
	for name := range hosts {
		names = append(names, name)
	}
	sort.Strings(names)

	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	infoStyle := lipgloss.NewStyle().Foreground(ui.ColorInfo)

	for _, name := range names {
		h := hosts[name]

		line := "  " + name
		if remote.IsLocal(h.SSHTarget(), h.IP) {
			line += " " + infoStyle.Render("(local)")
		}
		fmt.Println(line)

		if h.Hostname != "" {
			fmt.Println("    " + mutedStyle.Render("hostname: "+h.Hostname))
		}
		if h.IP != "" {
			fmt.Println("    " + mutedStyle.Render("ip:       "+h.IP))
		}
		if h.Startup != "" {
			fmt.Println("    " + mutedStyle.Render("startup:  "+h.Startup))
		}
		if len(h.Tags) > 0 {
			fmt.Println("    " + mutedStyle.Render("tags:     "+strings.Join(h.Tags, ", ")))
		}
	}

	return nil
}
