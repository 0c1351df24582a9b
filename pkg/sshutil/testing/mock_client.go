// Package sshtesting provides test doubles for the sshutil interfaces.
package sshtesting

// MockRunner implements sshutil.Runner with canned responses.
type MockRunner struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Err      error

	// Cmds records every command passed to Exec.
	Cmds   []string
	Closed bool
}

// Exec returns the canned response and records the command.
func (m *MockRunner) Exec(cmd string) ([]byte, []byte, int, error) {
	m.Cmds = append(m.Cmds, cmd)
	if m.Err != nil {
		return nil, nil, -1, m.Err
	}
	return m.Stdout, m.Stderr, m.ExitCode, nil
}

// Close marks the runner closed.
func (m *MockRunner) Close() error {
	m.Closed = true
	return nil
}
