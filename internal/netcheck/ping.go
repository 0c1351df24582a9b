// Package netcheck provides coarse reachability checks for fleet hosts.
//
// A check is a single probe through the platform ping utility with a short
// timeout. Exit status is the whole contract: zero means reachable,
// anything else (including a ping binary that can't be spawned) means not.
// Failures are never surfaced as errors.
package netcheck

import (
	"fmt"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/fleetdeck/fleetdeck/internal/logger"
)

// Checker runs reachability probes against fleet hosts.
type Checker struct {
	timeout time.Duration
	log     logger.Logger

	// run executes the probe command and returns nil on zero exit.
	// Replaced in tests to avoid real network traffic.
	run func(name string, args ...string) error
}

// New creates a Checker with the given probe timeout.
// A zero or negative timeout falls back to one second.
func New(timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = 1 * time.Second
	}
	return &Checker{
		timeout: timeout,
		log:     logger.NewEnvLogger("[netcheck]"),
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// SetLogger replaces the checker's logger.
func (c *Checker) SetLogger(l logger.Logger) {
	c.log = l
}

// Ping probes a single target and reports whether it responded.
func (c *Checker) Ping(target string) bool {
	args := pingArgs(target, c.timeout)
	err := c.run("ping", args...)
	if err != nil {
		c.log.Debug("probe %s failed: %v", target, err)
		return false
	}
	return true
}

// PingAll probes every target concurrently and returns a target -> reachable
// map. A probe whose worker does not complete (panic in the runner) is
// omitted from the result rather than reported as an error.
func (c *Checker) PingAll(targets []string) map[string]bool {
	results := make(map[string]bool, len(targets))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, target := range targets {
		wg.Add(1)
		go func(target string) {
			defer wg.Done()
			// A misbehaving runner must not take down the whole batch;
			// the target is simply left out of the map.
			defer func() {
				if r := recover(); r != nil {
					c.log.Warn("probe %s panicked: %v", target, r)
				}
			}()

			online := c.Ping(target)

			mu.Lock()
			results[target] = online
			mu.Unlock()
		}(target)
	}

	wg.Wait()
	return results
}

// pingArgs builds the one-packet probe invocation for the current platform.
// Windows ping takes the timeout in milliseconds, everything else in seconds.
func pingArgs(target string, timeout time.Duration) []string {
	if runtime.GOOS == "windows" {
		ms := timeout.Milliseconds()
		if ms < 1 {
			ms = 1
		}
		return []string{"-n", "1", "-w", fmt.Sprintf("%d", ms), target}
	}

	secs := int(timeout.Seconds())
	if secs < 1 {
		secs = 1
	}
	return []string{"-c", "1", "-W", fmt.Sprintf("%d", secs), target}
}
