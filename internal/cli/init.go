package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/errors"
	"github.com/fleetdeck/fleetdeck/internal/netcheck"
	"github.com/fleetdeck/fleetdeck/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Name     string // Pre-specified host name
	Hostname string // Pre-specified SSH hostname
	IP       string // Pre-specified IP address
	Force    bool   // Overwrite existing config without asking
}

// initCommand creates a new .fleetdeck.yaml in the current directory.
// When name and one of hostname/ip are pre-specified, no prompts run.
func initCommand(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !opts.Force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	name, hostname, ip := opts.Name, opts.Hostname, opts.IP
	var startup string

	nonInteractive := name != "" && (hostname != "" || ip != "")
	if !nonInteractive {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Host name").
					Description("A friendly name for this host in your config").
					Placeholder("rover-1").
					Value(&name).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("host name is required")
						}
						if strings.ContainsAny(s, " \t\n") {
							return fmt.Errorf("host name cannot contain whitespace")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("SSH hostname").
					Description("Hostname, user@host, or SSH config alias").
					Placeholder("rover-1.local").
					Value(&hostname),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("IP address").
					Description("Used for reachability checks; 127.0.0.1 marks the host as local").
					Placeholder("192.168.10.21").
					Value(&ip),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Startup command (optional)").
					Description("Command run inside new sessions with --startup").
					Placeholder("cd ~/fleet && ./bringup.sh").
					Value(&startup),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Pass --name and --hostname/--ip for non-interactive use")
		}
	}

	if hostname == "" && ip == "" {
		return errors.New(errors.ErrConfig,
			"Host needs a hostname or an ip",
			"Provide at least one so the host can be reached")
	}

	cfg := config.DefaultConfig()
	cfg.Hosts[name] = config.Host{
		Hostname: hostname,
		IP:       ip,
		Startup:  startup,
	}

	// Quick reachability probe; an offline host is worth a warning but
	// shouldn't block saving the config.
	target := cfg.Hosts[name].PingTarget()
	warnStyle := lipgloss.NewStyle().Foreground(ui.ColorWarning)
	if !netcheck.New(cfg.PingTimeout).Ping(target) {
		fmt.Printf("%s %s did not respond to ping — saving anyway\n",
			warnStyle.Render(ui.SymbolWarn), target)
	}

	if err := writeConfigWithHeader(cfg, configPath); err != nil {
		return err
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  fleetdeck status   - Check fleet reachability")
	fmt.Println("  fleetdeck shell " + name + " - Open a session")
	fmt.Println("  fleetdeck doctor   - Verify your setup")

	return nil
}

// writeConfigWithHeader marshals the config and prepends a usage comment.
func writeConfigWithHeader(cfg *config.Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# fleetdeck host inventory
# Run 'fleetdeck status' to check reachability
# Run 'fleetdeck shell <host>' to open a session

`
	if err := os.WriteFile(path, []byte(header+string(data)), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", path),
			"Check directory permissions")
	}
	return nil
}
