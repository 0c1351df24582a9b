package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .fleetdeck.yaml configuration file.
type Config struct {
	Version     int             `yaml:"version" mapstructure:"version"`
	Hosts       map[string]Host `yaml:"hosts" mapstructure:"hosts"`
	PingTimeout time.Duration   `yaml:"ping_timeout" mapstructure:"ping_timeout"`
	Check       CheckConfig     `yaml:"check" mapstructure:"check"`
	Terminal    TerminalConfig  `yaml:"terminal" mapstructure:"terminal"`
}

// Host defines a fleet machine and its connection settings.
type Host struct {
	// Hostname is the SSH target: a hostname, user@host, or SSH config alias.
	Hostname string `yaml:"hostname" mapstructure:"hostname"`

	// IP is the address used for reachability checks. The loopback address
	// marks the host as local and bypasses SSH for terminal sessions.
	IP string `yaml:"ip" mapstructure:"ip"`

	// Startup is the command run inside new terminal sessions when the
	// operator asks for the host environment to be brought up.
	Startup string `yaml:"startup" mapstructure:"startup"`

	// Tags for filtering hosts with --hosts style flags.
	Tags []string `yaml:"tags" mapstructure:"tags"`
}

// PingTarget returns the address used for reachability probes.
// The IP wins when both are set; probing shouldn't depend on DNS.
func (h Host) PingTarget() string {
	if h.IP != "" {
		return h.IP
	}
	return h.Hostname
}

// SSHTarget returns the address used for SSH sessions.
func (h Host) SSHTarget() string {
	if h.Hostname != "" {
		return h.Hostname
	}
	return h.IP
}

// CheckConfig controls the remote diagnostic run.
type CheckConfig struct {
	// Command is the remote command whose output is parsed into a report.
	Command string `yaml:"command" mapstructure:"command"`

	// Timeout bounds the whole diagnostic run, dial included.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// StartMarker, EndMarker, and SplitMarker delimit the report window and
	// its summary/detailed sections in the captured output.
	StartMarker string `yaml:"start_marker" mapstructure:"start_marker"`
	EndMarker   string `yaml:"end_marker" mapstructure:"end_marker"`
	SplitMarker string `yaml:"split_marker" mapstructure:"split_marker"`
}

// TerminalConfig controls how interactive sessions are opened.
type TerminalConfig struct {
	// Window mode for new sessions: "tab" or "window".
	Window string `yaml:"window" mapstructure:"window"`
}

// Default markers match the remote diagnostic script's output framing.
const (
	DefaultStartMarker = "=== Check Start ==="
	DefaultEndMarker   = "======================="
	DefaultSplitMarker = "=== Detailed Report ==="
)

// DefaultPingTimeout bounds a single reachability probe.
const DefaultPingTimeout = 1 * time.Second

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:     CurrentConfigVersion,
		Hosts:       make(map[string]Host),
		PingTimeout: DefaultPingTimeout,
		Check: CheckConfig{
			Timeout:     2 * time.Minute,
			StartMarker: DefaultStartMarker,
			EndMarker:   DefaultEndMarker,
			SplitMarker: DefaultSplitMarker,
		},
		Terminal: TerminalConfig{
			Window: "tab",
		},
	}
}

// HostNames returns the configured host names in sorted-stable map order.
// Callers that need deterministic ordering should sort the result.
func (c *Config) HostNames() []string {
	names := make([]string, 0, len(c.Hosts))
	for name := range c.Hosts {
		names = append(names, name)
	}
	return names
}

// HostsByTag returns hosts carrying the given tag.
func (c *Config) HostsByTag(tag string) map[string]Host {
	matched := make(map[string]Host)
	for name, h := range c.Hosts {
		for _, t := range h.Tags {
			if t == tag {
				matched[name] = h
				break
			}
		}
	}
	return matched
}
