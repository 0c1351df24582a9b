package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/errors"
	"github.com/fleetdeck/fleetdeck/internal/netcheck"
	"github.com/fleetdeck/fleetdeck/internal/ui"
)

// PingResult is one probe in the ping command's JSON output.
type PingResult struct {
	Name   string `json:"name"`
	Target string `json:"target"`
	Online bool   `json:"online"`
}

// pingCommand probes the given hosts and prints one line per host.
// Arguments that match config host names resolve to their targets;
// anything else is probed as a raw address. A zero timeout uses the
// config value.
func pingCommand(args []string, asJSON bool, timeout time.Duration) error {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return err
	}
	if timeout <= 0 {
		timeout = cfg.PingTimeout
	}

	targets := resolvePingTargets(cfg, args)
	checker := netcheck.New(timeout)

	probeList := make([]string, 0, len(targets))
	for _, target := range targets {
		probeList = append(probeList, target)
	}
	probes := checker.PingAll(probeList)

	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]PingResult, 0, len(names))
	offline := 0
	for _, name := range names {
		target := targets[name]
		online := probes[target]
		results = append(results, PingResult{Name: name, Target: target, Online: online})
		if !online {
			offline++
		}
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		printPingResults(results)
	}

	if offline > 0 {
		return errors.New(errors.ErrPing,
			fmt.Sprintf("%d of %d hosts did not respond", offline, len(results)),
			"Hosts may be powered off, still booting, or on another network")
	}
	return nil
}

func printPingResults(results []PingResult) {
	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ui.ColorError)
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)

	for _, r := range results {
		label := r.Name
		if r.Target != r.Name {
			label = fmt.Sprintf("%s %s", r.Name, mutedStyle.Render("("+r.Target+")"))
		}

		if r.Online {
			fmt.Printf("%s %s is online\n", successStyle.Render(ui.SymbolOnline), label)
		} else {
			fmt.Printf("%s %s is offline\n", errorStyle.Render(ui.SymbolOffline), label)
		}
	}
}

// resolvePingTargets maps each argument to its probe address.
func resolvePingTargets(cfg *config.Config, args []string) map[string]string {
	targets := make(map[string]string, len(args))
	for _, arg := range args {
		if h, ok := cfg.Hosts[arg]; ok && h.PingTarget() != "" {
			targets[arg] = h.PingTarget()
		} else {
			targets[arg] = arg
		}
	}
	return targets
}
