package domain

import (
	m "grademill.dev/pkg/grademill/internal/model"
)

// VisibilityResolver supplies the naming-convention predicates that decide
// which audience a test run belongs to. The conventions are owned by the
// assignment configuration; the engine stays agnostic to how they are
// implemented.
type VisibilityResolver interface {
	IsStudentTest(run m.TestRun) bool
	IsTeacherPublicTest(run m.TestRun) bool
	IsTeacherHiddenTest(run m.TestRun) bool
}

// Classify tags a test run with its visibility category. The second return
// value is false when no predicate claims the run.
func Classify(run m.TestRun, resolver VisibilityResolver) (m.TestVisibility, bool) {
	switch {
	case resolver.IsStudentTest(run):
		return m.VisibilityStudent, true
	case resolver.IsTeacherPublicTest(run):
		return m.VisibilityTeacherPublic, true
	case resolver.IsTeacherHiddenTest(run):
		return m.VisibilityTeacherHidden, true
	default:
		return "", false
	}
}
