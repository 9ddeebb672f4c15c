package model

// TestStatus represents the outcome of a single test method execution.
type TestStatus string

const (
	// StatusSuccess indicates the test passed.
	StatusSuccess TestStatus = "success"
	// StatusFailure indicates an assertion failed.
	StatusFailure TestStatus = "failure"
	// StatusError indicates the test aborted with an unexpected exception.
	StatusError TestStatus = "error"
	// StatusIgnored indicates the test was skipped.
	StatusIgnored TestStatus = "ignored"
)

// TestVisibility is the audience a test belongs to.
type TestVisibility string

const (
	// VisibilityStudent marks tests authored by the submitting group.
	VisibilityStudent TestVisibility = "student"
	// VisibilityTeacherPublic marks teacher tests whose results students see.
	VisibilityTeacherPublic TestVisibility = "teacher-public"
	// VisibilityTeacherHidden marks teacher tests withheld until after the deadline.
	VisibilityTeacherHidden TestVisibility = "teacher-hidden"
)

// TestRun is one executed test method as reported by the XML test reports.
// Runs are produced by the report adapter and treated as read-only input by
// the engine.
type TestRun struct {
	MethodName     string     `yaml:"method"`
	ClassName      string     `yaml:"class"`
	Status         TestStatus `yaml:"status"`
	ElapsedSeconds float64    `yaml:"elapsed_seconds"`
	StackTrace     string     `yaml:"stack_trace,omitempty"`
}

// PlaceholderRun stands in for an expected test that produced no run at all.
// The matrix reconciler emits it so positional alignment with the expected
// test list is never broken by a hole.
var PlaceholderRun = TestRun{}

// IsPlaceholder reports whether the run is the "no result found" stand-in.
func (r TestRun) IsPlaceholder() bool {
	return r.MethodName == "" && r.ClassName == ""
}

// Passed reports whether the run completed without failure or error.
func (r TestRun) Passed() bool {
	return r.Status == StatusSuccess
}

// ExpectedTest is one entry of the assignment's declared test list. The
// declared order defines the column order of the result matrix.
type ExpectedTest struct {
	ClassName  string `yaml:"class"`
	MethodName string `yaml:"method"`
}
