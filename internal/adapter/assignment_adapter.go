// Package adapter provides the filesystem and report I/O boundaries around
// the evaluation engine.
package adapter

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
	m "grademill.dev/pkg/grademill/internal/model"
)

// AssignmentAdapter abstracts loading the per-assignment configuration.
type AssignmentAdapter interface {
	Load(path m.Path) (m.Assignment, error)
}

// LocalAssignmentAdapter reads assignment.yaml files from disk.
type LocalAssignmentAdapter struct{}

// NewLocalAssignmentAdapter constructs a LocalAssignmentAdapter.
func NewLocalAssignmentAdapter() *LocalAssignmentAdapter {
	return &LocalAssignmentAdapter{}
}

// Load reads and validates the assignment configuration at path.
func (a *LocalAssignmentAdapter) Load(path m.Path) (m.Assignment, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return m.Assignment{}, fmt.Errorf("failed to read assignment config %s: %w", path, err)
	}

	var assignment m.Assignment
	if err := yaml.Unmarshal(content, &assignment); err != nil {
		return m.Assignment{}, fmt.Errorf("failed to parse assignment config %s: %w", path, err)
	}

	if !assignment.Language.Valid() {
		return m.Assignment{}, fmt.Errorf("assignment config %s: unknown language %q", path, assignment.Language)
	}

	return assignment, nil
}

// ClassListResolver implements the visibility predicates from the class
// lists of the assignment configuration.
type ClassListResolver struct {
	assignment m.Assignment
}

// NewClassListResolver constructs a resolver over the given assignment.
func NewClassListResolver(assignment m.Assignment) *ClassListResolver {
	return &ClassListResolver{assignment: assignment}
}

// IsStudentTest reports whether the run belongs to a student-authored class.
func (r *ClassListResolver) IsStudentTest(run m.TestRun) bool {
	return slices.Contains(r.assignment.StudentTestClasses, run.ClassName)
}

// IsTeacherPublicTest reports whether the run belongs to a public teacher class.
func (r *ClassListResolver) IsTeacherPublicTest(run m.TestRun) bool {
	return slices.Contains(r.assignment.PublicTestClasses, run.ClassName)
}

// IsTeacherHiddenTest reports whether the run belongs to a hidden teacher class.
func (r *ClassListResolver) IsTeacherHiddenTest(run m.TestRun) bool {
	return slices.Contains(r.assignment.HiddenTestClasses, run.ClassName)
}
