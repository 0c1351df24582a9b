package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fleetdeck/fleetdeck/internal/errors"
)

// Command-specific flags
var (
	pingJSONFlag      bool
	pingTimeoutFlag   string
	statusJSONFlag    bool
	shellWindowFlag   string
	shellStartupFlag  bool
	shellCommandFlag  string
	shutdownYesFlag   bool
	checkJSONFlag     bool
	checkRawFlag      bool
	watchHostsFlag    string
	watchIntervalFlag string
	doctorJSONFlag    bool
	initForceFlag     bool
	initNameFlag      string
	initHostnameFlag  string
	initIPFlag        string
	hostsTagFlag      string
)

// pingCmd probes one or more hosts for reachability.
var pingCmd = &cobra.Command{
	Use:   "ping <host>...",
	Short: "Check whether hosts respond to ping",
	Long: `Probe hosts with a single ping packet and report reachability.

Arguments can be host names from your config or raw addresses.
Multiple hosts are probed concurrently.

Examples:
  fleetdeck ping rover-1
  fleetdeck ping rover-1 rover-2 base
  fleetdeck ping 192.168.10.21 --timeout 3s`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout, err := parsePingTimeout(pingTimeoutFlag)
		if err != nil {
			return err
		}
		return pingCommand(args, pingJSONFlag, timeout)
	},
}

// statusCmd shows reachability for the whole fleet.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show reachability of all configured hosts",
	Long: `Probe every host in the config concurrently and show which are online.

Examples:
  fleetdeck status
  fleetdeck status --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statusCommand()
	},
}

// shellCmd opens an interactive terminal session to a host.
var shellCmd = &cobra.Command{
	Use:   "shell <host>",
	Short: "Open a terminal session to a host",
	Long: `Open an interactive SSH session in your terminal emulator.

Local hosts (loopback IP or hostname "localhost") get a plain local
shell instead of SSH. With --startup, the host's configured startup
command runs inside the session.

Examples:
  fleetdeck shell rover-1
  fleetdeck shell rover-1 --window window
  fleetdeck shell rover-1 --startup
  fleetdeck shell rover-1 --command "ros2 topic list"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return shellCommand(args[0], shellWindowFlag, shellStartupFlag, shellCommandFlag)
	},
}

// shutdownCmd powers a remote host down.
var shutdownCmd = &cobra.Command{
	Use:   "shutdown <host>",
	Short: "Power a remote host down",
	Long: `Open a terminal running 'sudo shutdown -h now' on the host, so you
can answer the sudo prompt.

Asks for confirmation unless --yes is given.

Examples:
  fleetdeck shutdown rover-1
  fleetdeck shutdown rover-1 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return shutdownCommand(args[0], shutdownYesFlag)
	},
}

// checkCmd runs the remote diagnostic and renders the parsed report.
var checkCmd = &cobra.Command{
	Use:   "check <host>",
	Short: "Run the diagnostic command on a host",
	Long: `Run the configured diagnostic command on a host over SSH, parse its
output, and show a pass/fail report.

Examples:
  fleetdeck check rover-1
  fleetdeck check rover-1 --json
  fleetdeck check rover-1 --raw`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkCommand(args[0], checkJSONFlag, checkRawFlag)
	},
}

// watchCmd starts the live reachability dashboard.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live fleet reachability dashboard",
	Long: `Start an interactive dashboard that re-probes the fleet on an interval.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  r           Force refresh

Examples:
  fleetdeck watch
  fleetdeck watch --hosts rover-1,rover-2
  fleetdeck watch --interval 10s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, err := parseWatchInterval(watchIntervalFlag)
		if err != nil {
			return err
		}
		return watchCommand(watchHostsFlag, interval)
	},
}

// doctorCmd diagnoses config and environment issues.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose config and environment issues",
	Long: `Run diagnostic checks against your config, local tools, and fleet.

Checks:
  - Config file presence and host inventory
  - ssh, ping, and terminal emulator availability
  - Fleet reachability

Examples:
  fleetdeck doctor
  fleetdeck doctor --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand(doctorJSONFlag)
	},
}

// hostsCmd lists the configured hosts.
var hostsCmd = &cobra.Command{
	Use:   "hosts",
	Short: "List configured hosts",
	Long: `List hosts from the config with their targets and tags.

Examples:
  fleetdeck hosts
  fleetdeck hosts --tag rover`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return hostsCommand(hostsTagFlag)
	},
}

// initCmd creates a new .fleetdeck.yaml configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .fleetdeck.yaml configuration",
	Long: `Create a new fleetdeck configuration file in the current directory.

Prompts for the first host interactively; flags pre-fill the answers
for scripted use.

Examples:
  fleetdeck init
  fleetdeck init --name rover-1 --hostname rover-1.local --ip 192.168.10.21
  fleetdeck init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(InitOptions{
			Name:     initNameFlag,
			Hostname: initHostnameFlag,
			IP:       initIPFlag,
			Force:    initForceFlag,
		})
	},
}

// completionCmd generates shell completion scripts.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for fleetdeck.

Examples:
  # Bash
  fleetdeck completion bash > /etc/bash_completion.d/fleetdeck

  # Zsh
  fleetdeck completion zsh > "${fpath[1]}/_fleetdeck"

  # Fish
  fleetdeck completion fish > ~/.config/fish/completions/fleetdeck.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrExec,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

// parsePingTimeout validates the ping --timeout flag.
// Empty means "use the config value".
func parsePingTimeout(flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil
	}

	parsed, err := time.ParseDuration(flag)
	if err != nil || parsed <= 0 {
		return 0, errors.New(errors.ErrConfig,
			"Invalid timeout: "+flag,
			"Use a positive duration like 1s, 3s, or 500ms")
	}
	return parsed, nil
}

// parseWatchInterval validates the --interval flag.
func parseWatchInterval(flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil
	}

	parsed, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid interval: "+flag,
			"Use a valid duration like 5s, 10s, or 1m")
	}
	if parsed < 500*time.Millisecond {
		return 0, errors.New(errors.ErrConfig,
			"Interval too short",
			"Minimum interval is 500ms to avoid flooding hosts with probes")
	}
	return parsed, nil
}

func init() {
	pingCmd.Flags().BoolVar(&pingJSONFlag, "json", false, "output in JSON format")
	pingCmd.Flags().StringVar(&pingTimeoutFlag, "timeout", "", "probe timeout (default from config)")

	statusCmd.Flags().BoolVar(&statusJSONFlag, "json", false, "output in JSON format")

	shellCmd.Flags().StringVar(&shellWindowFlag, "window", "", "open in 'tab' or 'window' (default from config)")
	shellCmd.Flags().BoolVar(&shellStartupFlag, "startup", false, "run the host's startup command in the session")
	shellCmd.Flags().StringVar(&shellCommandFlag, "command", "", "run this command in the session instead")

	shutdownCmd.Flags().BoolVarP(&shutdownYesFlag, "yes", "y", false, "skip confirmation prompt")

	checkCmd.Flags().BoolVar(&checkJSONFlag, "json", false, "output the parsed report as JSON")
	checkCmd.Flags().BoolVar(&checkRawFlag, "raw", false, "print the raw report window instead of parsing")

	watchCmd.Flags().StringVar(&watchHostsFlag, "hosts", "", "filter to specific hosts (comma-separated)")
	watchCmd.Flags().StringVar(&watchIntervalFlag, "interval", "5s", "refresh interval (e.g., 5s, 10s, 1m)")

	doctorCmd.Flags().BoolVar(&doctorJSONFlag, "json", false, "output in JSON format")

	hostsCmd.Flags().StringVar(&hostsTagFlag, "tag", "", "only show hosts carrying this tag")

	initCmd.Flags().BoolVarP(&initForceFlag, "force", "f", false, "overwrite existing config")
	initCmd.Flags().StringVar(&initNameFlag, "name", "", "pre-specify host name")
	initCmd.Flags().StringVar(&initHostnameFlag, "hostname", "", "pre-specify SSH hostname")
	initCmd.Flags().StringVar(&initIPFlag, "ip", "", "pre-specify IP address")

	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(shutdownCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(hostsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
