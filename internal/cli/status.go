package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/netcheck"
	"github.com/fleetdeck/fleetdeck/internal/ui"
)

// StatusOutput is the JSON shape of the status command.
type StatusOutput struct {
	Hosts  []HostStatus `json:"hosts"`
	Online int          `json:"online"`
	Total  int          `json:"total"`
}

// HostStatus is a single host's probe result.
type HostStatus struct {
	Name   string   `json:"name"`
	Target string   `json:"target"`
	Online bool     `json:"online"`
	Tags   []string `json:"tags,omitempty"`
}

// statusCommand probes every configured host and reports reachability.
func statusCommand() error {
	cfg, err := config.MustLoad(Config())
	if err != nil {
		return err
	}

	checker := netcheck.New(cfg.PingTimeout)

	targets := make([]string, 0, len(cfg.Hosts))
	for _, h := range cfg.Hosts {
		targets = append(targets, h.PingTarget())
	}
	results := checker.PingAll(targets)

	statuses := make([]HostStatus, 0, len(cfg.Hosts))
	for name, h := range cfg.Hosts {
		target := h.PingTarget()
		statuses = append(statuses, HostStatus{
			Name:   name,
			Target: target,
			Online: results[target],
			Tags:   h.Tags,
		})
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Name < statuses[j].Name })

	if statusJSONFlag {
		return outputStatusJSON(statuses)
	}
	return outputStatusText(statuses)
}

func outputStatusJSON(statuses []HostStatus) error {
	output := StatusOutput{
		Hosts: statuses,
		Total: len(statuses),
	}
	for _, s := range statuses {
		if s.Online {
			output.Online++
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputStatusText(statuses []HostStatus) error {
	rows := make([]ui.StatusRow, 0, len(statuses))
	online := 0
	for _, s := range statuses {
		rows = append(rows, ui.StatusRow{
			Host:   s.Name,
			Target: s.Target,
			Online: s.Online,
			Tags:   s.Tags,
		})
		if s.Online {
			online++
		}
	}

	fmt.Println(ui.RenderStatusTable(rows))
	fmt.Printf("%d/%d hosts online\n", online, len(statuses))
	return nil
}
