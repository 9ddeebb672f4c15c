package domain

import (
	"fmt"
	"strings"

	m "grademill.dev/pkg/grademill/internal/model"
)

// Summarize folds the runs of one visibility category into a summary. It
// returns nil when no run matches the requested visibility, so callers can
// tell "no tests of this kind" apart from "tests ran and all passed". The
// mandatory pass/fail split is only accounted when a non-empty suffix is
// configured.
func Summarize(runs []m.TestRun, visibility m.TestVisibility, resolver VisibilityResolver, mandatorySuffix string) *m.TestSummary {
	var summary m.TestSummary

	matched := false

	for _, run := range runs {
		category, ok := Classify(run, resolver)
		if !ok || category != visibility {
			continue
		}

		matched = true
		summary.Total++
		summary.ElapsedSeconds += run.ElapsedSeconds

		switch run.Status {
		case m.StatusFailure:
			summary.Failures++
		case m.StatusError:
			summary.Errors++
		case m.StatusIgnored:
			summary.Skipped++
		case m.StatusSuccess:
		}

		if mandatorySuffix != "" && strings.HasSuffix(run.MethodName, mandatorySuffix) {
			if run.Passed() {
				summary.MandatoryPassed++
			} else {
				summary.MandatoryFailed++
			}
		}
	}

	if !matched {
		return nil
	}

	return &summary
}

// MandatoryFailureNote is a secondary view over a summary: a warning naming
// the mandatory-failure count when a suffix is configured and at least one
// mandatory test did not pass, empty otherwise.
func MandatoryFailureNote(summary *m.TestSummary, mandatorySuffix string) string {
	if mandatorySuffix == "" || summary == nil || summary.MandatoryFailed == 0 {
		return ""
	}

	return fmt.Sprintf("%d mandatory test(s) did not pass", summary.MandatoryFailed)
}

// CombinedElapsed adds the elapsed time of the hidden category onto the
// public one. No total exists when the first summary is absent, even if the
// second is present; a total over a partially undefined pair would be
// misleading. The asymmetry is intentional and covered by tests.
func CombinedElapsed(first, second *m.TestSummary) *float64 {
	if first == nil {
		return nil
	}

	total := first.ElapsedSeconds
	if second != nil {
		total += second.ElapsedSeconds
	}

	return &total
}
