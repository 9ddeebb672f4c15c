package model

// Assignment is the per-assignment configuration read from assignment.yaml.
// It carries everything the engine needs to interpret one submission: the
// toolchain, the naming conventions behind test visibility, and the declared
// test list.
type Assignment struct {
	Language Language `yaml:"language"`

	// MandatorySuffix flags tests whose failure is specially surfaced to
	// students. Empty disables mandatory accounting.
	MandatorySuffix string `yaml:"mandatory_suffix,omitempty"`

	// StudentTestsAllowed controls whether a student-test summary may be
	// requested at all.
	StudentTestsAllowed bool `yaml:"student_tests_allowed"`

	// StudentTestClasses names the classes the submitting group authors
	// itself.
	StudentTestClasses []string `yaml:"student_test_classes,omitempty"`
	// PublicTestClasses names teacher test classes visible to students.
	PublicTestClasses []string `yaml:"public_test_classes,omitempty"`
	// HiddenTestClasses names teacher test classes withheld until after the
	// deadline.
	HiddenTestClasses []string `yaml:"hidden_test_classes,omitempty"`

	// ExpectedTests is the declared, ordered test list defining the matrix
	// columns.
	ExpectedTests []ExpectedTest `yaml:"expected_tests,omitempty"`
}
