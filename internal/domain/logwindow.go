// Package domain contains the core build-output analysis and test result
// aggregation logic.
package domain

import (
	"log/slog"
	"regexp"
)

// LinePredicate decides whether a log line terminates a window.
type LinePredicate func(line string) bool

// LineWindow is a half-open [Start, End) range of lines between two markers.
// Both marker lines are excluded from the range.
type LineWindow struct {
	Start int
	End   int
}

// Lines returns the windowed slice of the given log.
func (w LineWindow) Lines(lines []string) []string {
	return lines[w.Start:w.End]
}

// findWindow scans the log once, top to bottom. The start marker is the first
// line the pattern matches in full (not as a substring); the end marker is the
// first subsequent line satisfying any end predicate. A start without an end
// before EOF means the window is absent, which callers must treat as "no
// diagnostics", not as an error. Truncated output from a crashed build is the
// steady state here.
//
// skipAfterStart lines directly after the start marker are exempt from end
// matching, for banners whose own continuation would otherwise look like an
// end marker.
func findWindow(lines []string, startPattern *regexp.Regexp, skipAfterStart int, endPredicates ...LinePredicate) (LineWindow, bool) {
	start := -1

	for i, line := range lines {
		if start < 0 {
			if matchesWholeLine(startPattern, line) {
				start = i + 1
			}

			continue
		}

		if i-start < skipAfterStart {
			continue
		}

		for _, isEnd := range endPredicates {
			if isEnd(line) {
				slog.Debug("log window resolved", "pattern", startPattern.String(), "start", start, "end", i)
				return LineWindow{Start: start, End: i}, true
			}
		}
	}

	return LineWindow{}, false
}

// matchesWholeLine reports whether the pattern matches the entire line, not
// just a substring of it.
func matchesWholeLine(pattern *regexp.Regexp, line string) bool {
	loc := pattern.FindStringIndex(line)
	return loc != nil && loc[0] == 0 && loc[1] == len(line)
}

