package netcheck

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/fleetdeck/fleetdeck/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records invocations and returns canned results per target.
type fakeRunner struct {
	mu      sync.Mutex
	calls   [][]string
	results map[string]error
}

func (f *fakeRunner) run(name string, args ...string) error {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string{name}, args...))
	f.mu.Unlock()

	target := args[len(args)-1]
	if err, ok := f.results[target]; ok {
		return err
	}
	return nil
}

func newTestChecker(f *fakeRunner) *Checker {
	c := New(1 * time.Second)
	c.SetLogger(logger.Noop())
	c.run = f.run
	return c
}

func TestPing_Success(t *testing.T) {
	f := &fakeRunner{results: map[string]error{}}
	c := newTestChecker(f)

	assert.True(t, c.Ping("192.168.10.21"))
	require.Len(t, f.calls, 1)
	assert.Equal(t, "ping", f.calls[0][0])
	assert.Equal(t, "192.168.10.21", f.calls[0][len(f.calls[0])-1])
}

func TestPing_NonZeroExit(t *testing.T) {
	f := &fakeRunner{results: map[string]error{
		"10.0.0.9": fmt.Errorf("exit status 1"),
	}}
	c := newTestChecker(f)

	assert.False(t, c.Ping("10.0.0.9"))
}

func TestPing_SpawnFailure(t *testing.T) {
	f := &fakeRunner{results: map[string]error{
		"10.0.0.9": fmt.Errorf(`exec: "ping": executable file not found in $PATH`),
	}}
	c := newTestChecker(f)

	assert.False(t, c.Ping("10.0.0.9"))
}

func TestPingAll_MixedResults(t *testing.T) {
	f := &fakeRunner{results: map[string]error{
		"rover-2": fmt.Errorf("exit status 1"),
	}}
	c := newTestChecker(f)

	got := c.PingAll([]string{"rover-1", "rover-2", "rover-3"})

	assert.Equal(t, map[string]bool{
		"rover-1": true,
		"rover-2": false,
		"rover-3": true,
	}, got)
}

func TestPingAll_NeverMoreKeysThanInput(t *testing.T) {
	f := &fakeRunner{results: map[string]error{}}
	c := newTestChecker(f)

	targets := []string{"a", "b", "c", "d"}
	got := c.PingAll(targets)

	assert.LessOrEqual(t, len(got), len(targets))
	for target := range got {
		assert.Contains(t, targets, target)
	}
}

func TestPingAll_PanickedProbeOmitted(t *testing.T) {
	c := New(1 * time.Second)
	c.SetLogger(logger.Noop())
	c.run = func(name string, args ...string) error {
		if args[len(args)-1] == "bad" {
			panic("runner blew up")
		}
		return nil
	}

	got := c.PingAll([]string{"good", "bad"})

	assert.Equal(t, map[string]bool{"good": true}, got)
	assert.NotContains(t, got, "bad")
}

func TestPingAll_Empty(t *testing.T) {
	c := newTestChecker(&fakeRunner{})
	assert.Empty(t, c.PingAll(nil))
}

func TestPingArgs(t *testing.T) {
	args := pingArgs("rover-1", 1*time.Second)

	if runtime.GOOS == "windows" {
		assert.Equal(t, []string{"-n", "1", "-w", "1000", "rover-1"}, args)
	} else {
		assert.Equal(t, []string{"-c", "1", "-W", "1", "rover-1"}, args)
	}
}

func TestPingArgs_SubSecondTimeoutClamped(t *testing.T) {
	args := pingArgs("rover-1", 200*time.Millisecond)

	// Unix ping -W takes whole seconds; never emit 0
	if runtime.GOOS != "windows" {
		assert.Equal(t, []string{"-c", "1", "-W", "1", "rover-1"}, args)
	}
}

func TestPingAll_ConcurrentCallsComplete(t *testing.T) {
	f := &fakeRunner{results: map[string]error{}}
	c := newTestChecker(f)

	var targets []string
	for i := 0; i < 50; i++ {
		targets = append(targets, fmt.Sprintf("host-%02d", i))
	}

	got := c.PingAll(targets)
	require.Len(t, got, 50)

	var keys []string
	for k := range got {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	assert.Equal(t, targets, keys)
}
