package report

import (
	"regexp"
	"strings"
)

// ansiRe matches CSI escape sequences left in the stream by the remote
// script's colored output. Compiled once, read-only afterward.
var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// symbolArtifact is the Powerline separator glyph (U+E0B0) that the remote
// shell prompt leaks into captured output; it carries no information and is
// removed outright.
const symbolArtifact = "\ue0b0"

// pluginErrorPrefix marks loader failures that never reach the pass/fail
// framing, e.g. "Plugin error: failed to load class type nav::Lidar".
const (
	pluginErrorPrefix = "Plugin error:"
	classTypeToken    = "class type "
)

// Parser extracts a Report from raw diagnostic output. The zero value is
// not useful; construct with NewParser or set all three markers.
type Parser struct {
	StartMarker string
	EndMarker   string
	SplitMarker string
}

// NewParser returns a Parser using the default script markers.
func NewParser() *Parser {
	return &Parser{
		StartMarker: DefaultStartMarker,
		EndMarker:   DefaultEndMarker,
		SplitMarker: DefaultSplitMarker,
	}
}

// Parse is a convenience for parsing with the default markers.
func Parse(text string) *Report {
	return NewParser().Parse(text)
}

// Parse converts raw remote output into a Report.
func (p *Parser) Parse(text string) *Report {
	window := p.extractWindow(text)

	summaryPart, detailedRaw := p.splitSections(window)
	detailedClean := stripAnsiAndSymbols(detailedRaw)

	details := p.parseDetails(detailedClean)
	summary := p.parseSummary(summaryPart, details)

	return &Report{
		Summary:  summary,
		Detailed: detailedClean,
		Raw:      window,
	}
}

// extractWindow returns the substring between the start marker and the last
// end marker, both inclusive. A missing marker defaults to the respective
// edge of the text; when both are missing the whole text is the window.
func (p *Parser) extractWindow(text string) string {
	start := strings.Index(text, p.StartMarker)
	if start < 0 {
		start = 0
	}

	end := len(text)
	if idx := strings.LastIndex(text, p.EndMarker); idx >= 0 && idx+len(p.EndMarker) > start {
		end = idx + len(p.EndMarker)
	}

	return text[start:end]
}

// splitSections splits the window at the detailed-report marker. The marker
// itself stays on the detailed side so the cleaned log keeps its heading.
func (p *Parser) splitSections(window string) (summary, detailed string) {
	parts := strings.SplitN(window, p.SplitMarker, 2)
	summary = parts[0]
	if len(parts) > 1 {
		detailed = p.SplitMarker + parts[1]
	}
	return summary, detailed
}

// parseDetails builds the check name -> accumulated log mapping from the
// detailed section. Each line is a "name,log" pair split at the first comma;
// repeated names get their logs joined with a newline.
func (p *Parser) parseDetails(detailedClean string) map[string]string {
	details := make(map[string]string)

	for _, line := range strings.Split(detailedClean, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, p.SplitMarker) {
			continue
		}

		name, log, found := strings.Cut(line, ",")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		log = strings.TrimSpace(log)

		if existing, ok := details[name]; ok {
			details[name] = existing + "\n" + log
		} else {
			details[name] = log
		}
	}

	return details
}

// parseSummary extracts the pass/fail items from the summary section.
// Lines matching neither the status tags nor the plugin-error prefix are
// dropped.
func (p *Parser) parseSummary(summaryPart string, details map[string]string) []CheckItem {
	var items []CheckItem

	for _, line := range strings.Split(summaryPart, "\n") {
		clean := stripAnsiAndSymbols(line)

		switch {
		case strings.Contains(clean, "[PASS]") || strings.Contains(clean, "[FAIL]"):
			items = append(items, parseStatusLine(clean, details))
		case strings.HasPrefix(clean, pluginErrorPrefix):
			items = append(items, parsePluginError(clean))
		}
	}

	return items
}

// parseStatusLine parses a "[PASS] Name, description" style line.
func parseStatusLine(clean string, details map[string]string) CheckItem {
	status := StatusFail
	if strings.Contains(clean, "[PASS]") {
		status = StatusPass
	}

	content := strings.ReplaceAll(clean, "["+status+"]", "")

	name, desc, found := strings.Cut(content, ",")
	if found {
		name = strings.TrimSpace(name)
		desc = strings.TrimSpace(desc)
	} else {
		name = strings.TrimSpace(content)
		desc = ""
	}

	return CheckItem{
		Status:      status,
		Name:        name,
		Description: desc,
		Details:     details[name],
	}
}

// parsePluginError turns a plugin loader failure into a FAIL item named
// after the class type it couldn't load, falling back to generic
// placeholders when the error text has no extractable name.
func parsePluginError(clean string) CheckItem {
	name := "Plugin Load Error"
	if idx := strings.Index(clean, classTypeToken); idx >= 0 {
		rest := clean[idx+len(classTypeToken):]
		fields := strings.Fields(rest)
		if len(fields) > 0 {
			name = fields[0]
		} else {
			name = "Plugin Error"
		}
	}

	return CheckItem{
		Status:      StatusFail,
		Name:        name,
		Description: clean,
		Details:     "Raw Error: " + clean,
	}
}

// stripAnsiAndSymbols removes ANSI escape sequences and the stray symbol
// artifact, then trims surrounding whitespace. Idempotent.
func stripAnsiAndSymbols(s string) string {
	noAnsi := ansiRe.ReplaceAllString(s, "")
	return strings.TrimSpace(strings.ReplaceAll(noAnsi, symbolArtifact, ""))
}
