package doctor

import (
	"fmt"

	"github.com/fleetdeck/fleetdeck/internal/config"
)

// Pinger probes a single target. Satisfied by *netcheck.Checker.
type Pinger interface {
	Ping(target string) bool
}

// HostReachabilityCheck probes a single fleet host.
type HostReachabilityCheck struct {
	HostName string
	Host     config.Host
	Pinger   Pinger
}

func (c *HostReachabilityCheck) Name() string     { return fmt.Sprintf("host_%s", c.HostName) }
func (c *HostReachabilityCheck) Category() string { return "FLEET" }

func (c *HostReachabilityCheck) Run() CheckResult {
	target := c.Host.PingTarget()
	if target == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s: no hostname or ip configured", c.HostName),
			Suggestion: "Add a hostname or ip to the host configuration",
		}
	}

	if !c.Pinger.Ping(target) {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s (%s) is not responding", c.HostName, target),
			Suggestion: "Host may be powered off, still booting, or on another network",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%s (%s)", c.HostName, target),
	}
}

// NewFleetChecks creates reachability checks for all configured hosts.
// Run these with RunAllParallel; each one waits on a network probe.
func NewFleetChecks(hosts map[string]config.Host, pinger Pinger) []Check {
	checks := make([]Check, 0, len(hosts))
	for name := range hosts {
		checks = append(checks, &HostReachabilityCheck{
			HostName: name,
			Host:     hosts[name],
			Pinger:   pinger,
		})
	}
	return checks
}
