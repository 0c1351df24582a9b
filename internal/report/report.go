// Package report parses the text stream produced by a remote diagnostic run
// into a structured report. Parsing never fails: marker-less input degrades
// to treating the whole text as the report window, and lines that match no
// known shape are dropped.
package report

// Check item statuses as they appear in the script output.
const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

// Default markers framing the diagnostic script's output.
const (
	DefaultStartMarker = "=== Check Start ==="
	DefaultEndMarker   = "======================="
	DefaultSplitMarker = "=== Detailed Report ==="
)

// CheckItem is a single pass/fail entry from the report summary.
// Details carry the accumulated log lines for the same check name from the
// detailed section, empty if none were reported.
type CheckItem struct {
	Status      string `json:"status"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Details     string `json:"details"`
}

// Report is the parsed result of one diagnostic run.
type Report struct {
	// Summary holds the pass/fail items in output order.
	Summary []CheckItem `json:"summary"`

	// Detailed is the cleaned full text of the detailed section.
	Detailed string `json:"detailed"`

	// Raw is the unmodified window between the start and end markers,
	// markers inclusive.
	Raw string `json:"raw"`
}

// Failures returns the number of failed summary items.
func (r *Report) Failures() int {
	n := 0
	for _, item := range r.Summary {
		if item.Status == StatusFail {
			n++
		}
	}
	return n
}

// Passed reports whether every summary item passed.
func (r *Report) Passed() bool {
	return r.Failures() == 0
}
