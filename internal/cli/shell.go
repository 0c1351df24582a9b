package cli

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/errors"
	"github.com/fleetdeck/fleetdeck/internal/remote"
	"github.com/fleetdeck/fleetdeck/internal/terminal"
)

// newLauncher builds the platform terminal launcher. Swapped in tests.
var newLauncher = func() terminal.Launcher {
	return terminal.New(runtime.GOOS)
}

// shellCommand opens an interactive terminal session to the named host.
func shellCommand(hostName, windowFlag string, startup bool, commandOverride string) error {
	cfg, err := config.MustLoad(Config())
	if err != nil {
		return err
	}

	h, err := lookupHost(cfg, hostName)
	if err != nil {
		return err
	}

	mode, err := resolveWindowMode(cfg, windowFlag)
	if err != nil {
		return err
	}

	startupCmd := h.Startup
	if commandOverride != "" {
		startupCmd = commandOverride
		startup = true
	}
	if startup && startupCmd == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Host '%s' has no startup command", hostName),
			"Set 'startup' for the host in your config, or pass --command")
	}

	shellCmd := remote.SSHCommand(h.SSHTarget(), h.IP, startup, startupCmd)

	if err := newLauncher().Launch(shellCmd, mode); err != nil {
		return err
	}

	fmt.Printf("Opened session to %s (%s)\n", hostName, mode)
	return nil
}

// lookupHost finds a host by name, suggesting the inventory on a miss.
func lookupHost(cfg *config.Config, name string) (config.Host, error) {
	h, ok := cfg.Hosts[name]
	if !ok {
		names := cfg.HostNames()
		sort.Strings(names)
		return config.Host{}, errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown host '%s'", name),
			"Configured hosts: "+strings.Join(names, ", "))
	}
	return h, nil
}

// resolveWindowMode picks the window mode from the flag, falling back to config.
func resolveWindowMode(cfg *config.Config, flag string) (terminal.WindowMode, error) {
	value := flag
	if value == "" {
		value = cfg.Terminal.Window
	}
	return terminal.ParseWindowMode(value)
}
