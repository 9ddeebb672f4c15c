package controller

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "grademill.dev/pkg/grademill/internal/model"
)

func captureUI() (*SimpleUI, *bytes.Buffer) {
	out := &bytes.Buffer{}

	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetErr(out)

	return NewSimpleUI(cmd), out
}

func TestSimpleUI_DisplayEvaluation(t *testing.T) {
	ui, out := captureUI()

	evaluation := m.Evaluation{
		GroupID: "group-a",
		CompilationErrors: []m.Diagnostic{
			{Message: "Foo.java:3: error: ';' expected", Origin: m.OriginCompilation},
		},
		StyleCheckActive: true,
		StyleFindings: []m.Diagnostic{
			{Message: "Foo.java:12: Missing a Javadoc comment.", Origin: m.OriginStyle},
		},
		PublicSummary: &m.TestSummary{Total: 3, Failures: 1, ElapsedSeconds: 0.42},
	}

	err := ui.DisplayEvaluation(context.Background(), evaluation, []string{"1 mandatory test(s) did not pass"})
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Foo.java:3: error: ';' expected")
	assert.Contains(t, output, "Missing a Javadoc comment.")
	assert.Contains(t, output, "public")
	assert.Contains(t, output, "1 mandatory test(s) did not pass")
}

func TestSimpleUI_DisplayEvaluation_AbsentSummariesRenderDashes(t *testing.T) {
	ui, out := captureUI()

	err := ui.DisplayEvaluation(context.Background(), m.Evaluation{GroupID: "group-a"}, nil)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "-")
}

func TestSimpleUI_DisplayMatrix(t *testing.T) {
	ui, out := captureUI()

	expected := []m.ExpectedTest{
		{ClassName: "PublicTests", MethodName: "testAdd"},
		{ClassName: "PublicTests", MethodName: "testSub"},
	}

	matrix := []m.TestRun{
		{MethodName: "testAdd", ClassName: "PublicTests", Status: m.StatusSuccess, ElapsedSeconds: 0.1},
		m.PlaceholderRun,
	}

	err := ui.DisplayMatrix(context.Background(), expected, matrix)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "PublicTests.testAdd")
	assert.Contains(t, output, "success")
	assert.Contains(t, output, "not run")
}

func TestSimpleUI_DisplayStatistics(t *testing.T) {
	ui, out := captureUI()

	stats := m.AssignmentStatistics{Average: 6.5, StdDev: 2.6, Count: 4}
	outliers := map[string]struct{}{"group-d": {}}
	clusters := []m.FailureCluster{{Groups: []string{"group-a", "group-b"}, FailedTests: []string{"t1", "t2"}}}

	err := ui.DisplayStatistics(context.Background(), stats, outliers, clusters)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "6.50")
	assert.Contains(t, output, "group-d")
	assert.Contains(t, output, "group-a, group-b")
	assert.Contains(t, output, "t1, t2")
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	ui, _ := captureUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ui.DisplayEvaluation(ctx, m.Evaluation{}, nil)
	assert.Error(t, err)
}
