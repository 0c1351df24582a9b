// Package terminal opens interactive shell commands in the operator's
// terminal emulator. One Launcher implementation exists per supported
// platform; the right one is picked once from runtime.GOOS. The launched
// process is detached: its output is never observed and spawn failure is the
// only error surface.
package terminal

import (
	"os"
	"os/exec"
	"strings"

	"github.com/fleetdeck/fleetdeck/internal/errors"
)

// WindowMode selects whether a session opens in a new tab of an existing
// terminal window or in an entirely new window.
type WindowMode int

const (
	ModeTab WindowMode = iota
	ModeNewWindow
)

// String returns the config-file spelling of the mode.
func (m WindowMode) String() string {
	if m == ModeNewWindow {
		return "window"
	}
	return "tab"
}

// ParseWindowMode parses a config or flag value into a WindowMode.
func ParseWindowMode(s string) (WindowMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "tab":
		return ModeTab, nil
	case "window", "new-window":
		return ModeNewWindow, nil
	default:
		return ModeTab, errors.New(errors.ErrConfig,
			"Unknown window mode: "+s,
			"Use 'tab' or 'window'")
	}
}

// Launcher spawns a terminal emulator showing the given shell command.
type Launcher interface {
	Launch(shellCmd string, mode WindowMode) error
}

// startFunc spawns the prepared command without waiting for it.
// Replaced in tests to capture the invocation.
type startFunc func(cmd *exec.Cmd) error

func startDetached(cmd *exec.Cmd) error {
	return cmd.Start()
}

// New returns the Launcher for the given GOOS value.
// Unsupported platforms get a launcher that always fails.
func New(goos string) Launcher {
	switch goos {
	case "windows":
		return &windowsLauncher{start: startDetached}
	case "darwin":
		return &darwinLauncher{start: startDetached}
	case "linux":
		return &linuxLauncher{start: startDetached}
	default:
		return &unsupportedLauncher{goos: goos}
	}
}

// windowsLauncher drives Windows Terminal. Window flag -w 0 reuses the
// current window (tab), -w -1 forces a new one.
type windowsLauncher struct {
	start startFunc
}

func (l *windowsLauncher) Launch(shellCmd string, mode WindowMode) error {
	flag := "0"
	if mode == ModeNewWindow {
		flag = "-1"
	}

	cmd := exec.Command("wt", "-w", flag, "new-tab", "cmd", "/k", shellCmd)
	if err := l.start(cmd); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerm,
			"Couldn't launch Windows Terminal",
			"Make sure Windows Terminal (wt) is installed")
	}
	return nil
}

// darwinLauncher automates Terminal.app through osascript. Opening a tab
// needs a keystroke through System Events before the script lands in the
// front window.
type darwinLauncher struct {
	start startFunc
}

func (l *darwinLauncher) Launch(shellCmd string, mode WindowMode) error {
	var script string
	if mode == ModeTab {
		script = `tell application "Terminal" to activate
tell application "System Events" to keystroke "t" using command down
delay 0.2
tell application "Terminal" to do script "` + shellCmd + `" in front window`
	} else {
		script = `tell application "Terminal" to do script "` + shellCmd + `"`
	}

	cmd := exec.Command("osascript", "-e", script)
	if err := l.start(cmd); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerm,
			"Couldn't launch Terminal.app",
			"Check that osascript is available and automation is permitted")
	}
	return nil
}

// linuxLauncher spawns gnome-terminal. The environment is scrubbed of
// bundled-runtime variables that leak from AppImage-style packaging and
// break the spawned shell.
type linuxLauncher struct {
	start startFunc
}

// scrubbedEnvVars are removed from the child environment before spawning.
var scrubbedEnvVars = []string{
	"PYTHONHOME",
	"PYTHONPATH",
	"LD_LIBRARY_PATH",
	"GIO_MODULE_DIR",
}

func (l *linuxLauncher) Launch(shellCmd string, mode WindowMode) error {
	flag := "--tab"
	if mode == ModeNewWindow {
		flag = "--window"
	}

	// Keep the shell alive after the command finishes
	cmd := exec.Command("gnome-terminal", flag, "--", "bash", "-c", shellCmd+"; exec bash")
	cmd.Env = scrubEnv(os.Environ())

	if err := l.start(cmd); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerm,
			"Couldn't launch gnome-terminal",
			"Make sure gnome-terminal is installed")
	}
	return nil
}

// scrubEnv filters the scrubbed variables out of an environment list.
func scrubEnv(env []string) []string {
	out := make([]string, 0, len(env))
	for _, kv := range env {
		scrubbed := false
		for _, name := range scrubbedEnvVars {
			if strings.HasPrefix(kv, name+"=") {
				scrubbed = true
				break
			}
		}
		if !scrubbed {
			out = append(out, kv)
		}
	}
	return out
}

// unsupportedLauncher fails every launch with a fixed error.
type unsupportedLauncher struct {
	goos string
}

func (l *unsupportedLauncher) Launch(string, WindowMode) error {
	return errors.New(errors.ErrTerm,
		"Unsupported OS: "+l.goos,
		"Terminal sessions are supported on windows, darwin, and linux")
}
