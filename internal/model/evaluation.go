package model

// Evaluation is the complete analysis result for one submission. It is what
// the result store persists and what the controllers render.
type Evaluation struct {
	GroupID string `yaml:"group"`

	CompilationErrors []Diagnostic `yaml:"compilation_errors,omitempty"`
	StyleFindings     []Diagnostic `yaml:"style_findings,omitempty"`
	StyleCheckActive  bool         `yaml:"style_check_active"`

	StudentSummary *TestSummary `yaml:"student_summary,omitempty"`
	PublicSummary  *TestSummary `yaml:"public_summary,omitempty"`
	HiddenSummary  *TestSummary `yaml:"hidden_summary,omitempty"`

	// Runs keeps every parsed test run for downstream consumers that need
	// more than the summaries (the matrix view, failure clustering).
	Runs []TestRun `yaml:"runs,omitempty"`
}

// Compiled reports whether the submission built without compilation errors.
func (e Evaluation) Compiled() bool {
	return len(e.CompilationErrors) == 0
}

// FailedTestNames returns the names of all failed or errored runs, used to
// build the group's failure fingerprint.
func (e Evaluation) FailedTestNames() []string {
	var names []string

	for _, run := range e.Runs {
		if run.Status == StatusFailure || run.Status == StatusError {
			names = append(names, run.MethodName)
		}
	}

	return names
}
