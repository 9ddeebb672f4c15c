package adapter

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	m "grademill.dev/pkg/grademill/internal/model"
)

// ReportFileAdapter abstracts reading the XML test reports of a submission.
type ReportFileAdapter interface {
	// LoadRuns parses all TEST-*.xml reports under dir into test runs.
	LoadRuns(dir m.Path) ([]m.TestRun, error)
}

// LocalReportFileAdapter reads surefire-style JUnit XML reports from disk.
type LocalReportFileAdapter struct{}

// NewLocalReportFileAdapter constructs a LocalReportFileAdapter.
func NewLocalReportFileAdapter() *LocalReportFileAdapter {
	return &LocalReportFileAdapter{}
}

// junitSuite mirrors the subset of the surefire XML schema the engine needs.
type junitSuite struct {
	XMLName xml.Name    `xml:"testsuite"`
	Cases   []junitCase `xml:"testcase"`
}

type junitCase struct {
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr"`
	Time      float64       `xml:"time,attr"`
	Failure   *junitProblem `xml:"failure"`
	Error     *junitProblem `xml:"error"`
	Skipped   *junitProblem `xml:"skipped"`
}

type junitProblem struct {
	Message string `xml:"message,attr"`
	Body    string `xml:",chardata"`
}

// LoadRuns parses every TEST-*.xml file under dir. A missing report
// directory yields no runs rather than an error: a submission that failed to
// compile produces no reports at all.
func (a *LocalReportFileAdapter) LoadRuns(dir m.Path) ([]m.TestRun, error) {
	pattern := filepath.Join(string(dir), "TEST-*.xml")

	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports in %s: %w", dir, err)
	}

	sort.Strings(paths)

	runs := make([]m.TestRun, 0)

	for _, path := range paths {
		suiteRuns, err := a.loadReport(path)
		if err != nil {
			return nil, err
		}

		runs = append(runs, suiteRuns...)
	}

	slog.Debug("loaded test reports", "dir", dir, "files", len(paths), "runs", len(runs))

	return runs, nil
}

func (a *LocalReportFileAdapter) loadReport(path string) ([]m.TestRun, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %s: %w", path, err)
	}

	var suite junitSuite
	if err := xml.Unmarshal(content, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}

	runs := make([]m.TestRun, 0, len(suite.Cases))

	for _, testCase := range suite.Cases {
		runs = append(runs, m.TestRun{
			MethodName:     testCase.Name,
			ClassName:      testCase.ClassName,
			Status:         caseStatus(testCase),
			ElapsedSeconds: testCase.Time,
			StackTrace:     caseStackTrace(testCase),
		})
	}

	return runs, nil
}

func caseStatus(testCase junitCase) m.TestStatus {
	switch {
	case testCase.Failure != nil:
		return m.StatusFailure
	case testCase.Error != nil:
		return m.StatusError
	case testCase.Skipped != nil:
		return m.StatusIgnored
	default:
		return m.StatusSuccess
	}
}

func caseStackTrace(testCase junitCase) string {
	switch {
	case testCase.Failure != nil:
		return testCase.Failure.Body
	case testCase.Error != nil:
		return testCase.Error.Body
	default:
		return ""
	}
}
