package domain

import "errors"

// Contract-violation sentinels. Parsing-level absence (a window that never
// resolves) is always recovered into an empty result instead; only caller
// misuse and misconfiguration surface as errors.
var (
	// ErrUnsupportedLanguage is returned when a language-branching operation
	// receives a language it has no toolchain rules for. Deliberately not
	// defaulted to any branch, so assignment misconfiguration stays visible.
	ErrUnsupportedLanguage = errors.New("unsupported assignment language")

	// ErrStudentTestsNotAllowed is returned when a student-test summary is
	// requested for an assignment that forbids student tests.
	ErrStudentTestsNotAllowed = errors.New("assignment does not allow student tests")

	// ErrNoExpectedTests is returned when a result matrix is requested but
	// the assignment declares no expected tests. Distinct from an assignment
	// that genuinely has zero tests worth of results.
	ErrNoExpectedTests = errors.New("no expected tests configured")
)
