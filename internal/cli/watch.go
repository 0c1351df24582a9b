package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/errors"
	"github.com/fleetdeck/fleetdeck/internal/netcheck"
	"github.com/fleetdeck/fleetdeck/internal/ui"
	"github.com/fleetdeck/fleetdeck/internal/watch"
)

// watchCommand starts the live reachability dashboard.
func watchCommand(hostsFilter string, interval time.Duration) error {
	if !ui.IsInteractive() {
		return errors.New(errors.ErrExec,
			"watch needs an interactive terminal",
			"Use 'fleetdeck status' for scriptable output")
	}

	cfg, err := config.MustLoad(Config())
	if err != nil {
		return err
	}

	hosts, err := filterHosts(cfg, hostsFilter)
	if err != nil {
		return err
	}

	targets := make(map[string]string, len(hosts))
	for name, h := range hosts {
		targets[name] = h.PingTarget()
	}

	checker := netcheck.New(cfg.PingTimeout)
	model := watch.NewModel(targets, checker, interval)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrExec,
			"Dashboard exited with an error",
			"Check that your terminal supports interactive programs")
	}
	return nil
}

// filterHosts narrows the inventory to a comma-separated host list.
func filterHosts(cfg *config.Config, filter string) (map[string]config.Host, error) {
	if filter == "" {
		return cfg.Hosts, nil
	}

	selected := make(map[string]config.Host)
	for _, name := range strings.Split(filter, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		h, ok := cfg.Hosts[name]
		if !ok {
			return nil, errors.New(errors.ErrConfig,
				fmt.Sprintf("Unknown host '%s' in --hosts", name),
				"Run 'fleetdeck hosts' to see the inventory")
		}
		selected[name] = h
	}

	if len(selected) == 0 {
		return nil, errors.New(errors.ErrConfig,
			"No hosts selected",
			"Pass host names like --hosts rover-1,rover-2")
	}
	return selected, nil
}
