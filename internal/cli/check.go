package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/diag"
	"github.com/fleetdeck/fleetdeck/internal/ui"
)

// checkCommand runs the remote diagnostic on a host and renders the report.
func checkCommand(hostName string, asJSON, raw bool) error {
	cfg, err := config.MustLoad(Config())
	if err != nil {
		return err
	}

	h, err := lookupHost(cfg, hostName)
	if err != nil {
		return err
	}

	runner := diag.New(cfg)
	rep, err := runner.Run(h.SSHTarget())
	if err != nil {
		return err
	}

	if raw {
		fmt.Println(rep.Raw)
		return nil
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	fmt.Print(ui.RenderReport(rep))
	return nil
}
