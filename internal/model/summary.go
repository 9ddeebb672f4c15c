package model

// TestSummary aggregates the runs of one visibility category. A summary is
// only ever produced when at least one run matched, so callers can tell "no
// tests of this kind" (nil summary) apart from "tests ran and all passed"
// (present summary with zero failures).
type TestSummary struct {
	Total          int     `yaml:"total"`
	Failures       int     `yaml:"failures"`
	Errors         int     `yaml:"errors"`
	Skipped        int     `yaml:"skipped"`
	ElapsedSeconds float64 `yaml:"elapsed_seconds"`

	// Mandatory counts are only populated when the assignment configures a
	// mandatory test-name suffix.
	MandatoryPassed int `yaml:"mandatory_passed"`
	MandatoryFailed int `yaml:"mandatory_failed"`
}

// Passed returns the number of runs that completed successfully.
func (s TestSummary) Passed() int {
	return s.Total - s.Failures - s.Errors - s.Skipped
}
