package doctor

import (
	"fmt"
	"path/filepath"

	"github.com/fleetdeck/fleetdeck/internal/config"
)

// ConfigFileCheck verifies that a config file exists.
type ConfigFileCheck struct {
	ConfigPath string // Explicit path, or empty to search
}

func (c *ConfigFileCheck) Name() string     { return "config_file" }
func (c *ConfigFileCheck) Category() string { return "CONFIG" }

func (c *ConfigFileCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Error finding config: %v", err),
			Suggestion: "Check file permissions or run 'fleetdeck init' to create a config",
		}
	}

	if path == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "No config file found",
			Suggestion: "Run 'fleetdeck init' to create a .fleetdeck.yaml config file",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Config file: %s", filepath.Base(path)),
	}
}

// ConfigHostsCheck verifies hosts are configured and have usable targets.
type ConfigHostsCheck struct {
	ConfigPath string
}

func (c *ConfigHostsCheck) Name() string     { return "config_hosts" }
func (c *ConfigHostsCheck) Category() string { return "CONFIG" }

func (c *ConfigHostsCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil || path == "" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: "Cannot check hosts: no config file",
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Failed to load config: %v", err),
			Suggestion: "Check the YAML syntax in your config file",
		}
	}

	if len(cfg.Hosts) == 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "No hosts configured",
			Suggestion: "Add at least one host under 'hosts:' in your .fleetdeck.yaml",
		}
	}

	var incomplete []string
	for name, h := range cfg.Hosts {
		if h.Hostname == "" && h.IP == "" {
			incomplete = append(incomplete, name)
		}
	}
	if len(incomplete) > 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Hosts missing hostname and ip: %v", incomplete),
			Suggestion: "Every host needs at least a hostname or an ip",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%d host%s configured", len(cfg.Hosts), pluralize(len(cfg.Hosts))),
	}
}

// ConfigCheckCommandCheck warns when no diagnostic command is set.
type ConfigCheckCommandCheck struct {
	ConfigPath string
}

func (c *ConfigCheckCommandCheck) Name() string     { return "config_check_command" }
func (c *ConfigCheckCommandCheck) Category() string { return "CONFIG" }

func (c *ConfigCheckCommandCheck) Run() CheckResult {
	cfg, err := config.LoadOrDefault(c.ConfigPath)
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass, // Other checks report load errors
			Message: "Config load error",
		}
	}

	if cfg.Check.Command == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No diagnostic command configured",
			Suggestion: "Set check.command to enable 'fleetdeck check'",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Diagnostic command configured",
	}
}

// NewConfigChecks creates all config-related checks.
func NewConfigChecks(configPath string) []Check {
	return []Check{
		&ConfigFileCheck{ConfigPath: configPath},
		&ConfigHostsCheck{ConfigPath: configPath},
		&ConfigCheckCommandCheck{ConfigPath: configPath},
	}
}
