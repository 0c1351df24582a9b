// Package watch implements the live fleet reachability dashboard.
package watch

import (
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fleetdeck/fleetdeck/internal/ui"
)

// Pinger probes a batch of targets. Satisfied by *netcheck.Checker.
type Pinger interface {
	PingAll(targets []string) map[string]bool
}

// DefaultInterval is the refresh period between probe cycles.
const DefaultInterval = 5 * time.Second

// Model is the Bubble Tea model for the reachability dashboard.
type Model struct {
	hosts    []string          // Sorted host names
	targets  map[string]string // Host name -> probe target
	online   map[string]bool   // Host name -> last probe result
	probed   bool              // At least one cycle has completed
	interval time.Duration
	pinger   Pinger

	spinner    spinner.Model
	refreshing bool
	lastUpdate time.Time
	width      int
	quitting   bool
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// resultsMsg carries a completed probe cycle.
type resultsMsg struct {
	results map[string]bool // Keyed by probe target
	time    time.Time
}

// NewModel creates a dashboard model for the given hosts.
// targets maps host names to the addresses that get probed.
func NewModel(targets map[string]string, pinger Pinger, interval time.Duration) Model {
	if interval <= 0 {
		interval = DefaultInterval
	}

	hosts := make([]string, 0, len(targets))
	for name := range targets {
		hosts = append(hosts, name)
	}
	sort.Strings(hosts)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ui.ColorInfo)

	return Model{
		hosts:    hosts,
		targets:  targets,
		online:   make(map[string]bool),
		interval: interval,
		pinger:   pinger,
		spinner:  s,
	}
}

// Init kicks off the spinner and the first probe cycle.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.probeCmd())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			if !m.refreshing {
				return m, m.probeCmd()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tickMsg:
		if m.refreshing {
			// Previous cycle still running; just rearm the timer
			return m, m.tickCmd()
		}
		return m, m.probeCmd()

	case resultsMsg:
		m.refreshing = false
		m.probed = true
		m.lastUpdate = msg.time
		for name, target := range m.targets {
			if online, ok := msg.results[target]; ok {
				m.online[name] = online
			}
		}
		return m, m.tickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// probeCmd returns a command that runs one probe cycle.
func (m *Model) probeCmd() tea.Cmd {
	m.refreshing = true
	targets := make([]string, 0, len(m.targets))
	for _, target := range m.targets {
		targets = append(targets, target)
	}

	pinger := m.pinger
	return func() tea.Msg {
		return resultsMsg{
			results: pinger.PingAll(targets),
			time:    time.Now(),
		}
	}
}
