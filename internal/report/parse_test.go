package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOutput = `booting remote environment...
=== Check Start ===
[PASS] Battery, voltage nominal
[FAIL] Lidar, no points received
[PASS] IMU, calibrated
=== Detailed Report ===
Lidar,timeout after 5s
Lidar,retrying
IMU,bias within tolerance
=======================
trailing shell noise`

func TestParse_RawWindowVerbatim(t *testing.T) {
	r := Parse(sampleOutput)

	assert.True(t, strings.HasPrefix(r.Raw, DefaultStartMarker))
	assert.True(t, strings.HasSuffix(r.Raw, DefaultEndMarker))
	assert.NotContains(t, r.Raw, "booting remote")
	assert.NotContains(t, r.Raw, "trailing shell noise")
}

func TestParse_SummaryItems(t *testing.T) {
	r := Parse(sampleOutput)

	require.Len(t, r.Summary, 3)

	assert.Equal(t, CheckItem{
		Status:      StatusPass,
		Name:        "Battery",
		Description: "voltage nominal",
		Details:     "",
	}, r.Summary[0])

	assert.Equal(t, StatusFail, r.Summary[1].Status)
	assert.Equal(t, "Lidar", r.Summary[1].Name)
	assert.Equal(t, "no points received", r.Summary[1].Description)
}

func TestParse_DetailAccumulation(t *testing.T) {
	r := Parse(sampleOutput)

	// Two Lidar detail lines joined with a newline
	assert.Equal(t, "timeout after 5s\nretrying", r.Summary[1].Details)
	assert.Equal(t, "bias within tolerance", r.Summary[2].Details)
}

func TestParse_MissingMarkersWholeText(t *testing.T) {
	text := "[PASS] Battery, voltage nominal\nsome noise\n"
	r := Parse(text)

	assert.Equal(t, text, r.Raw)
	require.Len(t, r.Summary, 1)
	assert.Equal(t, "Battery", r.Summary[0].Name)
}

func TestParse_MissingEndMarker(t *testing.T) {
	text := "noise\n=== Check Start ===\n[FAIL] Radio, silent\n"
	r := Parse(text)

	assert.True(t, strings.HasPrefix(r.Raw, DefaultStartMarker))
	require.Len(t, r.Summary, 1)
	assert.Equal(t, StatusFail, r.Summary[0].Status)
}

func TestParse_NoDetailedSection(t *testing.T) {
	text := "=== Check Start ===\n[PASS] Battery, ok\n======================="
	r := Parse(text)

	assert.Empty(t, r.Detailed)
	require.Len(t, r.Summary, 1)
	assert.Empty(t, r.Summary[0].Details)
}

func TestParse_SummaryLineWithoutComma(t *testing.T) {
	r := Parse("[PASS] Battery\n")

	require.Len(t, r.Summary, 1)
	assert.Equal(t, "Battery", r.Summary[0].Name)
	assert.Empty(t, r.Summary[0].Description)
}

func TestParse_AnsiStrippedFromSummary(t *testing.T) {
	r := Parse("\x1b[32m[PASS]\x1b[0m Battery, voltage nominal\n")

	require.Len(t, r.Summary, 1)
	assert.Equal(t, "Battery", r.Summary[0].Name)
	assert.Equal(t, "voltage nominal", r.Summary[0].Description)
}

func TestParse_UnrecognizedLinesDropped(t *testing.T) {
	text := `=== Check Start ===
starting checks now
[PASS] Battery, ok
INFO something unrelated
=======================`
	r := Parse(text)

	require.Len(t, r.Summary, 1)
}

func TestParse_PluginError(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantName string
	}{
		{
			name:     "class type extracted",
			line:     "Plugin error: failed to load class type foo_bar::Widget",
			wantName: "foo_bar::Widget",
		},
		{
			name:     "class type extracted with trailing text",
			line:     "Plugin error: failed to load class type nav::Lidar in container",
			wantName: "nav::Lidar",
		},
		{
			name:     "no class type substring",
			line:     "Plugin error: library not found",
			wantName: "Plugin Load Error",
		},
		{
			name:     "class type with nothing after",
			line:     "Plugin error: failed to load class type ",
			wantName: "Plugin Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Parse(tt.line + "\n")

			require.Len(t, r.Summary, 1)
			item := r.Summary[0]
			assert.Equal(t, StatusFail, item.Status)
			assert.Equal(t, tt.wantName, item.Name)
			assert.Equal(t, tt.line, item.Description)
			assert.Equal(t, "Raw Error: "+tt.line, item.Details)
		})
	}
}

func TestParse_DetailLineWithCommasInLog(t *testing.T) {
	text := `=== Check Start ===
[FAIL] Camera, dark frames
=== Detailed Report ===
Camera,exposure low, gain maxed, lens cap?
=======================`
	r := Parse(text)

	require.Len(t, r.Summary, 1)
	// Only the first comma splits; the rest is log text
	assert.Equal(t, "exposure low, gain maxed, lens cap?", r.Summary[0].Details)
}

func TestParse_DetailedKeepsHeading(t *testing.T) {
	r := Parse(sampleOutput)
	assert.True(t, strings.HasPrefix(r.Detailed, DefaultSplitMarker))
}

func TestStripAnsiAndSymbols_Idempotent(t *testing.T) {
	inputs := []string{
		"\x1b[32m[PASS]\x1b[0m Battery",
		"plain text",
		"\x1b[1;31mbold red\x1b[0m  prompt",
		"",
	}

	for _, in := range inputs {
		once := stripAnsiAndSymbols(in)
		twice := stripAnsiAndSymbols(once)
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestStripAnsiAndSymbols(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"\x1b[32mgreen\x1b[0m", "green"},
		{"  padded  ", "padded"},
		{"prompt  arrow", "prompt  arrow"},
		{"\x1b[0;36m[PASS]\x1b[0m Battery, ok", "[PASS] Battery, ok"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, stripAnsiAndSymbols(tt.input))
	}
}

func TestParse_CustomMarkers(t *testing.T) {
	p := &Parser{
		StartMarker: "<<BEGIN>>",
		EndMarker:   "<<END>>",
		SplitMarker: "<<DETAILS>>",
	}

	text := "junk\n<<BEGIN>>\n[PASS] Battery, ok\n<<DETAILS>>\nBattery,charged\n<<END>>\njunk"
	r := p.Parse(text)

	assert.True(t, strings.HasPrefix(r.Raw, "<<BEGIN>>"))
	assert.True(t, strings.HasSuffix(r.Raw, "<<END>>"))
	require.Len(t, r.Summary, 1)
	assert.Equal(t, "charged", r.Summary[0].Details)
}

func TestReport_Failures(t *testing.T) {
	r := Parse(sampleOutput)

	assert.Equal(t, 1, r.Failures())
	assert.False(t, r.Passed())

	ok := Parse("[PASS] Battery, ok\n")
	assert.True(t, ok.Passed())
}

func TestParse_EmptyInput(t *testing.T) {
	r := Parse("")

	assert.Empty(t, r.Summary)
	assert.Empty(t, r.Detailed)
	assert.Empty(t, r.Raw)
}
