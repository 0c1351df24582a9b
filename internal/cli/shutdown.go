package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/errors"
	"github.com/fleetdeck/fleetdeck/internal/remote"
	"github.com/fleetdeck/fleetdeck/internal/terminal"
)

// shutdownCommand powers a remote host down. The shutdown runs inside a
// terminal session so the operator can answer the sudo prompt.
func shutdownCommand(hostName string, yes bool) error {
	cfg, err := config.MustLoad(Config())
	if err != nil {
		return err
	}

	h, err := lookupHost(cfg, hostName)
	if err != nil {
		return err
	}

	if remote.IsLocal(h.SSHTarget(), h.IP) {
		return errors.New(errors.ErrExec,
			fmt.Sprintf("'%s' is the local machine", hostName),
			"fleetdeck won't shut down the machine it is running on")
	}

	if !yes {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New(errors.ErrExec,
				"Shutdown needs confirmation",
				"Pass --yes when running non-interactively")
		}

		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Shut down '%s'?", hostName)).
					Description("The host will need physical access or wake-on-LAN to come back.").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrExec,
				"Failed to read confirmation",
				"Pass --yes to skip the prompt")
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	// Always a dedicated window: the session dies with the host, and a
	// closing tab is easy to miss.
	shellCmd := remote.ShutdownCommand(h.SSHTarget())
	if err := newLauncher().Launch(shellCmd, terminal.ModeNewWindow); err != nil {
		return err
	}

	fmt.Printf("Shutdown session opened for %s — enter the sudo password there.\n", hostName)
	return nil
}
