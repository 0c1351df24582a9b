// Package sshutil provides a small SSH client for non-interactive remote
// execution: alias resolution through ~/.ssh/config, agent and key file
// authentication, and command execution with captured output.
//
// Interactive sessions are deliberately out of scope; those go through the
// operator's terminal emulator and the system ssh binary.
package sshutil

// Runner executes commands on an established SSH connection.
// *Client satisfies this; tests substitute a mock.
type Runner interface {
	// Exec runs a command and returns stdout, stderr, and the exit code.
	// Exit code is -1 when the command couldn't be executed at all.
	Exec(cmd string) (stdout, stderr []byte, exitCode int, err error)

	// Close tears down the connection.
	Close() error
}
