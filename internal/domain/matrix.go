package domain

import (
	m "grademill.dev/pkg/grademill/internal/model"
)

// Reconcile aligns the actual runs against the assignment's declared test
// list. The result has exactly one entry per expected test, in declared
// order; an expected test without a matching run yields the explicit
// placeholder, never a hole, so downstream matrix rendering can rely on
// positional alignment. Candidates are expected to be restricted to the
// teacher-public and teacher-hidden categories by the caller.
//
// An empty expected list is a misconfiguration and returns
// ErrNoExpectedTests; it must not be conflated with a genuinely test-free
// assignment.
func Reconcile(expected []m.ExpectedTest, candidates []m.TestRun) ([]m.TestRun, error) {
	if len(expected) == 0 {
		return nil, ErrNoExpectedTests
	}

	matrix := make([]m.TestRun, 0, len(expected))

	for _, want := range expected {
		matrix = append(matrix, findRun(want, candidates))
	}

	return matrix, nil
}

func findRun(want m.ExpectedTest, candidates []m.TestRun) m.TestRun {
	for _, run := range candidates {
		if run.MethodName == want.MethodName && run.ClassName == want.ClassName {
			return run
		}
	}

	return m.PlaceholderRun
}
