package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/errors"
	"github.com/fleetdeck/fleetdeck/internal/terminal"
)

func testFleetConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Hosts["rover-1"] = config.Host{
		Hostname: "rover-1.local",
		IP:       "192.168.10.21",
		Startup:  "cd ~/fleet && ./bringup.sh",
		Tags:     []string{"rover"},
	}
	cfg.Hosts["base"] = config.Host{
		Hostname: "localhost",
		IP:       "127.0.0.1",
	}
	return cfg
}

// writeTestConfig saves a config to a temp dir and points --config at it.
func writeTestConfig(t *testing.T, cfg *config.Config) {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".fleetdeck.yaml")
	require.NoError(t, config.Save(cfg, path))

	orig := cfgFlag
	cfgFlag = path
	t.Cleanup(func() { cfgFlag = orig })
}

// captureLauncher records Launch calls.
type captureLauncher struct {
	cmds  []string
	modes []terminal.WindowMode
	err   error
}

func (l *captureLauncher) Launch(shellCmd string, mode terminal.WindowMode) error {
	l.cmds = append(l.cmds, shellCmd)
	l.modes = append(l.modes, mode)
	return l.err
}

func withLauncher(t *testing.T, l terminal.Launcher) {
	t.Helper()
	orig := newLauncher
	newLauncher = func() terminal.Launcher { return l }
	t.Cleanup(func() { newLauncher = orig })
}

func TestCommandRegistration(t *testing.T) {
	expected := []string{
		"ping", "status", "shell", "shutdown", "check",
		"watch", "doctor", "hosts", "init", "version", "completion",
	}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, registered[name], "command %q should be registered", name)
	}
}

func TestParseWatchInterval(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		want    time.Duration
		wantErr bool
	}{
		{"empty uses default", "", 0, false},
		{"valid seconds", "10s", 10 * time.Second, false},
		{"valid minutes", "1m", time.Minute, false},
		{"garbage", "soon", 0, true},
		{"too short", "100ms", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWatchInterval(tt.flag)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePingTimeout(t *testing.T) {
	got, err := parsePingTimeout("")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), got)

	got, err = parsePingTimeout("3s")
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, got)

	_, err = parsePingTimeout("later")
	require.Error(t, err)

	_, err = parsePingTimeout("-1s")
	require.Error(t, err)
}

func TestResolvePingTargets(t *testing.T) {
	cfg := testFleetConfig()

	targets := resolvePingTargets(cfg, []string{"rover-1", "10.0.0.5"})

	assert.Equal(t, "192.168.10.21", targets["rover-1"], "config host resolves to its ip")
	assert.Equal(t, "10.0.0.5", targets["10.0.0.5"], "unknown arg is probed as-is")
}

func TestLookupHost(t *testing.T) {
	cfg := testFleetConfig()

	h, err := lookupHost(cfg, "rover-1")
	require.NoError(t, err)
	assert.Equal(t, "rover-1.local", h.Hostname)

	_, err = lookupHost(cfg, "nope")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "rover-1", "suggestion should list the inventory")
}

func TestResolveWindowMode(t *testing.T) {
	cfg := testFleetConfig()

	mode, err := resolveWindowMode(cfg, "")
	require.NoError(t, err)
	assert.Equal(t, terminal.ModeTab, mode, "config default is tab")

	mode, err = resolveWindowMode(cfg, "window")
	require.NoError(t, err)
	assert.Equal(t, terminal.ModeNewWindow, mode, "flag overrides config")

	_, err = resolveWindowMode(cfg, "popover")
	require.Error(t, err)
}

func TestFilterHosts(t *testing.T) {
	cfg := testFleetConfig()

	all, err := filterHosts(cfg, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	one, err := filterHosts(cfg, "rover-1")
	require.NoError(t, err)
	assert.Len(t, one, 1)

	_, err = filterHosts(cfg, "rover-1,ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")

	_, err = filterHosts(cfg, " , ")
	require.Error(t, err)
}

func TestShellCommand_RemoteHost(t *testing.T) {
	writeTestConfig(t, testFleetConfig())
	launcher := &captureLauncher{}
	withLauncher(t, launcher)

	err := shellCommand("rover-1", "", false, "")
	require.NoError(t, err)

	require.Len(t, launcher.cmds, 1)
	assert.Equal(t, "ssh rover-1.local", launcher.cmds[0])
	assert.Equal(t, terminal.ModeTab, launcher.modes[0])
}

func TestShellCommand_StartupAndWindow(t *testing.T) {
	writeTestConfig(t, testFleetConfig())
	launcher := &captureLauncher{}
	withLauncher(t, launcher)

	err := shellCommand("rover-1", "window", true, "")
	require.NoError(t, err)

	require.Len(t, launcher.cmds, 1)
	assert.Equal(t, `ssh -t rover-1.local "bash -i -c 'cd ~/fleet && ./bringup.sh'"`, launcher.cmds[0])
	assert.Equal(t, terminal.ModeNewWindow, launcher.modes[0])
}

func TestShellCommand_LocalHost(t *testing.T) {
	writeTestConfig(t, testFleetConfig())
	launcher := &captureLauncher{}
	withLauncher(t, launcher)

	err := shellCommand("base", "", false, "")
	require.NoError(t, err)

	require.Len(t, launcher.cmds, 1)
	assert.Equal(t, "echo 'Starting Local Terminal'", launcher.cmds[0])
}

func TestShellCommand_CommandOverride(t *testing.T) {
	writeTestConfig(t, testFleetConfig())
	launcher := &captureLauncher{}
	withLauncher(t, launcher)

	err := shellCommand("rover-1", "", false, "ros2 topic list")
	require.NoError(t, err)

	require.Len(t, launcher.cmds, 1)
	assert.Equal(t, `ssh -t rover-1.local "bash -i -c 'ros2 topic list'"`, launcher.cmds[0])
}

func TestShellCommand_StartupWithoutCommand(t *testing.T) {
	cfg := testFleetConfig()
	h := cfg.Hosts["rover-1"]
	h.Startup = ""
	cfg.Hosts["rover-1"] = h
	writeTestConfig(t, cfg)
	withLauncher(t, &captureLauncher{})

	err := shellCommand("rover-1", "", true, "")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestShellCommand_UnknownHost(t *testing.T) {
	writeTestConfig(t, testFleetConfig())
	withLauncher(t, &captureLauncher{})

	err := shellCommand("ghost", "", false, "")
	require.Error(t, err)
}

func TestShutdownCommand_LocalHostRefused(t *testing.T) {
	writeTestConfig(t, testFleetConfig())
	withLauncher(t, &captureLauncher{})

	err := shutdownCommand("base", true)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrExec))
}

func TestShutdownCommand_Yes(t *testing.T) {
	writeTestConfig(t, testFleetConfig())
	launcher := &captureLauncher{}
	withLauncher(t, launcher)

	err := shutdownCommand("rover-1", true)
	require.NoError(t, err)

	require.Len(t, launcher.cmds, 1)
	assert.Equal(t, `ssh -t rover-1.local "sudo shutdown -h now"`, launcher.cmds[0])
	assert.Equal(t, terminal.ModeNewWindow, launcher.modes[0], "shutdown always opens a new window")
}

func TestFormatVersion(t *testing.T) {
	assert.Equal(t, "dev", formatVersion("dev"))
	assert.Equal(t, "v1.2.3", formatVersion("1.2.3"))
	assert.Equal(t, "v1.2.3", formatVersion("v1.2.3"))
	assert.Equal(t, "", formatVersion(""))
}

func TestSetVersionInfo(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer func() { version, commit, date = origV, origC, origD }()

	SetVersionInfo("2.0.0", "def5678", "2026-01-15T10:00:00Z")
	assert.Equal(t, "2.0.0", GetVersion())
	assert.Equal(t, "def5678", commit)
}

func TestWriteConfigWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".fleetdeck.yaml")

	require.NoError(t, writeConfigWithHeader(testFleetConfig(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# fleetdeck host inventory")
	assert.Contains(t, string(data), "rover-1")

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, loaded.Hosts, 2)
}
