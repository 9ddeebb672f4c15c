package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
	"grademill.dev/pkg/grademill/internal/adapter"
	"grademill.dev/pkg/grademill/internal/controller"
	m "grademill.dev/pkg/grademill/internal/model"
)

// EvaluateArgs contains the inputs for analyzing one submission.
type EvaluateArgs struct {
	GroupID    string
	Assignment m.Assignment
	LogPath    m.Path
	ReportsDir m.Path
	// PathPrefix is the absolute project path the build ran under; it gets
	// stripped or rewritten out of every diagnostic.
	PathPrefix string
}

// BatchArgs contains the inputs for analyzing all submissions of an
// assignment.
type BatchArgs struct {
	Root       m.Path
	Assignment m.Assignment
	// LogName and ReportsDirName are resolved relative to each group
	// directory.
	LogName        string
	ReportsDirName string
	Threads        int
}

// BatchResult is the cross-group outcome of a batch run.
type BatchResult struct {
	Evaluations []m.Evaluation
	Statistics  m.AssignmentStatistics
	Outliers    map[string]struct{}
	Clusters    []m.FailureCluster
}

// Workflow wires the adapters and the pure engine into the operations the
// CLI exposes.
type Workflow interface {
	Evaluate(ctx context.Context, args EvaluateArgs) (m.Evaluation, error)
	EvaluateAll(ctx context.Context, args BatchArgs) (BatchResult, error)
}

type workflow struct {
	adapter.BuildLogAdapter
	adapter.ReportFileAdapter
	adapter.SubmissionFSAdapter
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	logs adapter.BuildLogAdapter,
	reports adapter.ReportFileAdapter,
	submissions adapter.SubmissionFSAdapter,
	ui controller.UI,
) Workflow {
	return &workflow{
		BuildLogAdapter:     logs,
		ReportFileAdapter:   reports,
		SubmissionFSAdapter: submissions,
		UI:                  ui,
	}
}

// Evaluate analyzes one submission: build log diagnostics, style findings
// and per-visibility test summaries.
func (w *workflow) Evaluate(ctx context.Context, args EvaluateArgs) (m.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return m.Evaluation{}, err
	}

	lines, err := w.ReadLines(args.LogPath)
	if err != nil {
		return m.Evaluation{}, fmt.Errorf("read build log: %w", err)
	}

	language := args.Assignment.Language

	compilationErrors, err := ExtractCompilationErrors(lines, language, args.PathPrefix)
	if err != nil {
		return m.Evaluation{}, fmt.Errorf("extract compilation errors: %w", err)
	}

	styleActive, err := IsStyleCheckActive(lines, language)
	if err != nil {
		return m.Evaluation{}, fmt.Errorf("detect style check: %w", err)
	}

	styleFindings, err := ExtractStyleFindings(lines, language, args.PathPrefix)
	if err != nil {
		return m.Evaluation{}, fmt.Errorf("extract style findings: %w", err)
	}

	runs, err := w.LoadRuns(args.ReportsDir)
	if err != nil {
		return m.Evaluation{}, fmt.Errorf("load test reports: %w", err)
	}

	resolver := adapter.NewClassListResolver(args.Assignment)
	suffix := args.Assignment.MandatorySuffix

	evaluation := m.Evaluation{
		GroupID:           args.GroupID,
		CompilationErrors: compilationErrors,
		StyleFindings:     styleFindings,
		StyleCheckActive:  styleActive,
		PublicSummary:     Summarize(runs, m.VisibilityTeacherPublic, resolver, suffix),
		HiddenSummary:     Summarize(runs, m.VisibilityTeacherHidden, resolver, suffix),
		Runs:              runs,
	}

	if args.Assignment.StudentTestsAllowed {
		evaluation.StudentSummary = Summarize(runs, m.VisibilityStudent, resolver, suffix)
	}

	slog.Debug("evaluated submission",
		"group", args.GroupID,
		"compilation_errors", len(compilationErrors),
		"style_findings", len(styleFindings),
		"runs", len(runs),
	)

	return evaluation, nil
}

// StudentSummary recomputes the student-test summary of a submission. It is
// a contract violation to ask for it on an assignment that forbids student
// tests.
func StudentSummary(runs []m.TestRun, assignment m.Assignment, resolver VisibilityResolver) (*m.TestSummary, error) {
	if !assignment.StudentTestsAllowed {
		return nil, ErrStudentTestsNotAllowed
	}

	return Summarize(runs, m.VisibilityStudent, resolver, assignment.MandatorySuffix), nil
}

// TeacherRuns filters the runs down to the public and hidden categories, the
// candidate set for matrix reconciliation.
func TeacherRuns(runs []m.TestRun, resolver VisibilityResolver) []m.TestRun {
	teacherRuns := make([]m.TestRun, 0, len(runs))

	for _, run := range runs {
		category, ok := Classify(run, resolver)
		if !ok {
			continue
		}

		if category == m.VisibilityTeacherPublic || category == m.VisibilityTeacherHidden {
			teacherRuns = append(teacherRuns, run)
		}
	}

	return teacherRuns
}

// EvaluateAll analyzes every group directory under the root concurrently and
// derives the cohort statistics, the outlier set and the identical-failure
// clusters.
func (w *workflow) EvaluateAll(ctx context.Context, args BatchArgs) (BatchResult, error) {
	dirs, err := w.ListGroupDirs(args.Root)
	if err != nil {
		return BatchResult{}, fmt.Errorf("list submissions: %w", err)
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	evaluations := make([]m.Evaluation, len(dirs))

	var (
		mu   sync.Mutex
		done int
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, dir := range dirs {
		i, dir := i, dir
		group.Go(func() error {
			groupID := adapter.GroupID(dir)

			evaluation, err := w.Evaluate(groupCtx, EvaluateArgs{
				GroupID:    groupID,
				Assignment: args.Assignment,
				LogPath:    m.Path(filepath.Join(string(dir), args.LogName)),
				ReportsDir: m.Path(filepath.Join(string(dir), args.ReportsDirName)),
				PathPrefix: string(dir),
			})
			if err != nil {
				return fmt.Errorf("evaluate %s: %w", groupID, err)
			}

			evaluations[i] = evaluation

			mu.Lock()
			done++
			w.DisplayProgress(groupCtx, groupID, done, len(dirs))
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return BatchResult{}, err
	}

	return w.aggregate(args.Assignment, evaluations), nil
}

// aggregate folds the per-group evaluations into cohort statistics. Only
// groups that compiled contribute samples; failure fingerprints are built
// from the teacher-facing runs.
func (w *workflow) aggregate(assignment m.Assignment, evaluations []m.Evaluation) BatchResult {
	resolver := adapter.NewClassListResolver(assignment)

	samples := make([]m.GroupStatistic, 0, len(evaluations))
	failuresByGroup := make(map[string][]string)

	for _, evaluation := range evaluations {
		if !evaluation.Compiled() {
			continue
		}

		teacherRuns := TeacherRuns(evaluation.Runs, resolver)

		passed := 0
		var failed []string

		for _, run := range teacherRuns {
			switch run.Status {
			case m.StatusSuccess:
				passed++
			case m.StatusFailure, m.StatusError:
				failed = append(failed, run.MethodName)
			case m.StatusIgnored:
			}
		}

		samples = append(samples, m.GroupStatistic{
			GroupID:     evaluation.GroupID,
			PassedTests: passed,
			Submissions: 1,
		})

		failuresByGroup[evaluation.GroupID] = failed
	}

	stats := ComputeStatistics(samples)

	return BatchResult{
		Evaluations: evaluations,
		Statistics:  stats,
		Outliers:    IdentifyOutliers(stats, samples),
		Clusters:    ClusterByFailures(failuresByGroup),
	}
}
