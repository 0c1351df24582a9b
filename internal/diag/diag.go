// Package diag runs the fleet diagnostic command on a remote host and
// turns its output into a structured report.
package diag

import (
	"fmt"
	"strings"
	"time"

	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/errors"
	"github.com/fleetdeck/fleetdeck/internal/logger"
	"github.com/fleetdeck/fleetdeck/internal/report"
	"github.com/fleetdeck/fleetdeck/pkg/sshutil"
)

// DialFunc opens an SSH connection to a host. The default uses sshutil.Dial;
// tests inject a fake.
type DialFunc func(host string, timeout time.Duration) (sshutil.Runner, error)

// Runner executes diagnostic checks against fleet hosts.
type Runner struct {
	cfg  *config.Config
	dial DialFunc
	log  logger.Logger
}

// New creates a Runner backed by a real SSH connection.
func New(cfg *config.Config) *Runner {
	return &Runner{
		cfg: cfg,
		dial: func(host string, timeout time.Duration) (sshutil.Runner, error) {
			return sshutil.Dial(host, timeout)
		},
		log: logger.NewEnvLogger("[diag]"),
	}
}

// SetDial replaces the connection factory. Used by tests.
func (r *Runner) SetDial(dial DialFunc) {
	r.dial = dial
}

// SetLogger replaces the default logger.
func (r *Runner) SetLogger(log logger.Logger) {
	r.log = log
}

// Run executes the configured diagnostic command on the host and parses
// the captured output into a report.
//
// A non-zero exit from the diagnostic command is an error: the output is
// not trusted enough to parse, so the error carries the exit code and
// whatever landed on stderr instead.
func (r *Runner) Run(host string) (*report.Report, error) {
	command := r.cfg.Check.Command
	if command == "" {
		return nil, errors.New(errors.ErrReport,
			"No diagnostic command configured",
			"Set check.command in your config file.")
	}

	r.log.Debug("dialing %s for diagnostic run", host)
	conn, err := r.dial(host, r.cfg.Check.Timeout)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	r.log.Debug("running diagnostic on %s: %s", host, command)
	stdout, stderr, exitCode, err := conn.Exec(command)
	if err != nil {
		return nil, err
	}
	if exitCode != 0 {
		runErr := errors.New(errors.ErrReport,
			fmt.Sprintf("Diagnostic on '%s' exited with status %d", host, exitCode),
			suggestionForFailedRun(stderr))
		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			runErr.Cause = fmt.Errorf("stderr: %s", msg)
		}
		return nil, runErr
	}

	parser := &report.Parser{
		StartMarker: r.cfg.Check.StartMarker,
		EndMarker:   r.cfg.Check.EndMarker,
		SplitMarker: r.cfg.Check.SplitMarker,
	}
	rep := parser.Parse(string(stdout))
	r.log.Debug("diagnostic on %s: %d summary items, %d failures",
		host, len(rep.Summary), rep.Failures())
	return rep, nil
}

func suggestionForFailedRun(stderr []byte) string {
	msg := strings.TrimSpace(string(stderr))
	if msg == "" {
		return "Run the diagnostic command manually over ssh to see what failed."
	}
	// Keep suggestions to a single line; stderr can be a wall of text
	if idx := strings.IndexByte(msg, '\n'); idx != -1 {
		msg = msg[:idx]
	}
	return "Remote stderr: " + msg
}
