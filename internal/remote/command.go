// Package remote builds the shell command strings handed to the terminal
// launcher. Hostnames come from the operator's own config and are trusted
// as-is; startup commands are quoted so shell metacharacters survive the
// trip through bash and ssh.
package remote

import (
	"fmt"

	"github.com/fleetdeck/fleetdeck/internal/util"
)

// IsLocal reports whether a host should bypass SSH entirely.
// Either a loopback IP or the literal hostname "localhost" takes the local
// path; no DNS resolution is attempted.
func IsLocal(hostname, ip string) bool {
	return ip == "127.0.0.1" || hostname == "localhost"
}

// SSHCommand builds the interactive session command for a host.
//
// Local hosts get a bare interactive shell, or the startup command run in
// one. Remote hosts get a plain ssh, or ssh -t wrapping the startup command
// so the remote shell stays attached to the terminal.
func SSHCommand(hostname, ip string, runStartup bool, startupCmd string) string {
	if IsLocal(hostname, ip) {
		if runStartup {
			return "bash -i -c " + util.ShellQuote(startupCmd)
		}
		return "echo 'Starting Local Terminal'"
	}

	if runStartup {
		inner := "bash -i -c " + util.ShellQuote(startupCmd)
		return fmt.Sprintf("ssh -t %s \"%s\"", hostname, util.EscapeDoubleQuotes(inner))
	}
	return fmt.Sprintf("ssh %s", hostname)
}

// ShutdownCommand builds the remote shutdown invocation.
// Runs in a terminal so the operator can answer the sudo prompt.
func ShutdownCommand(hostname string) string {
	return fmt.Sprintf("ssh -t %s \"sudo shutdown -h now\"", hostname)
}
