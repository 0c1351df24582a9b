package doctor

import (
	"fmt"
	"os/exec"
	"runtime"
)

// lookPath is exec.LookPath, swappable in tests.
var lookPath = exec.LookPath

// BinaryCheck verifies a binary is available on PATH.
type BinaryCheck struct {
	Binary     string
	Purpose    string // What fleetdeck uses it for
	Suggestion string
	Optional   bool // Missing optional binaries warn instead of fail
}

func (c *BinaryCheck) Name() string     { return fmt.Sprintf("binary_%s", c.Binary) }
func (c *BinaryCheck) Category() string { return "TOOLS" }

func (c *BinaryCheck) Run() CheckResult {
	path, err := lookPath(c.Binary)
	if err != nil {
		status := StatusFail
		if c.Optional {
			status = StatusWarn
		}
		return CheckResult{
			Name:       c.Name(),
			Status:     status,
			Message:    fmt.Sprintf("%s not found (%s)", c.Binary, c.Purpose),
			Suggestion: c.Suggestion,
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%s: %s", c.Binary, path),
	}
}

// terminalBinary returns the terminal emulator fleetdeck launches on this OS.
func terminalBinary(goos string) (binary, suggestion string) {
	switch goos {
	case "windows":
		return "wt", "Install Windows Terminal from the Microsoft Store"
	case "darwin":
		return "osascript", "osascript ships with macOS; check your PATH"
	case "linux":
		return "gnome-terminal", "Install gnome-terminal: apt install gnome-terminal"
	default:
		return "", ""
	}
}

// NewToolsChecks creates checks for the local binaries fleetdeck shells out to.
func NewToolsChecks() []Check {
	return newToolsChecks(runtime.GOOS)
}

func newToolsChecks(goos string) []Check {
	checks := []Check{
		&BinaryCheck{
			Binary:     "ssh",
			Purpose:    "remote shells and shutdown",
			Suggestion: "Install an OpenSSH client",
		},
		&BinaryCheck{
			Binary:     "ping",
			Purpose:    "reachability checks",
			Suggestion: "Install iputils-ping (or equivalent)",
		},
	}

	if binary, suggestion := terminalBinary(goos); binary != "" {
		checks = append(checks, &BinaryCheck{
			Binary:     binary,
			Purpose:    "terminal sessions",
			Suggestion: suggestion,
			Optional:   true,
		})
	}

	return checks
}
