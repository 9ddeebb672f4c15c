package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "grademill.dev/pkg/grademill/internal/model"
)

// SimpleUI implements UI using cobra Command's Println.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI (no-op for SimpleUI).
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayProgress prints a one-line progress note per completed group.
func (s *SimpleUI) DisplayProgress(ctx context.Context, groupID string, done, total int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.cmd.Printf("[%d/%d] %s\n", done, total, groupID)
}

// DisplayEvaluation prints diagnostics and the per-visibility summary table.
func (s *SimpleUI) DisplayEvaluation(ctx context.Context, evaluation m.Evaluation, notes []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(evaluation.CompilationErrors) > 0 {
		s.cmd.Printf("\nCompilation errors (%s):\n", evaluation.GroupID)

		for _, diagnostic := range evaluation.CompilationErrors {
			s.cmd.Printf("  %s\n", diagnostic.Message)
		}
	}

	if evaluation.StyleCheckActive && len(evaluation.StyleFindings) > 0 {
		s.cmd.Printf("\nStyle findings (%s):\n", evaluation.GroupID)

		for _, diagnostic := range evaluation.StyleFindings {
			s.cmd.Printf("  %s\n", diagnostic.Message)
		}
	}

	s.cmd.Printf("\n%s", renderSummaryTable(evaluation))

	for _, note := range notes {
		s.cmd.Printf("\n%s\n", note)
	}

	return nil
}

// DisplayMatrix prints the expected-vs-actual result matrix.
func (s *SimpleUI) DisplayMatrix(ctx context.Context, expected []m.ExpectedTest, matrix []m.TestRun) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buffer bytes.Buffer

	table := tablewriter.NewWriter(&buffer)
	table.SetHeader([]string{"Expected Test", "Result", "Elapsed (s)"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT})

	for i, want := range expected {
		run := matrix[i]
		table.Append([]string{
			want.ClassName + "." + want.MethodName,
			matrixCell(run),
			fmt.Sprintf("%.3f", run.ElapsedSeconds),
		})
	}

	table.Render()
	s.cmd.Printf("\n%s", buffer.String())

	return nil
}

func matrixCell(run m.TestRun) string {
	if run.IsPlaceholder() {
		return "not run"
	}

	return string(run.Status)
}

// DisplayStatistics prints the cohort statistics, the outlier set and the
// identical-failure clusters.
func (s *SimpleUI) DisplayStatistics(ctx context.Context, stats m.AssignmentStatistics, outliers map[string]struct{}, clusters []m.FailureCluster) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cmd.Printf("\nGroups: %d  Average passed: %.2f  Std dev: %.2f\n", stats.Count, stats.Average, stats.StdDev)

	if len(outliers) > 0 {
		names := make([]string, 0, len(outliers))
		for groupID := range outliers {
			names = append(names, groupID)
		}

		sort.Strings(names)
		s.cmd.Printf("Underperforming groups: %s\n", strings.Join(names, ", "))
	}

	if len(clusters) > 0 {
		s.cmd.Printf("\n%s", renderClusterTable(clusters))
	}

	return nil
}

func renderSummaryTable(evaluation m.Evaluation) string {
	var buffer bytes.Buffer

	table := tablewriter.NewWriter(&buffer)
	table.SetHeader([]string{"Category", "Total", "Failures", "Errors", "Skipped", "Elapsed (s)"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	appendSummaryRow(table, "student", evaluation.StudentSummary)
	appendSummaryRow(table, "public", evaluation.PublicSummary)
	appendSummaryRow(table, "hidden", evaluation.HiddenSummary)

	table.Render()

	return buffer.String()
}

func appendSummaryRow(table *tablewriter.Table, category string, summary *m.TestSummary) {
	if summary == nil {
		table.Append([]string{category, "-", "-", "-", "-", "-"})
		return
	}

	table.Append([]string{
		category,
		fmt.Sprintf("%d", summary.Total),
		fmt.Sprintf("%d", summary.Failures),
		fmt.Sprintf("%d", summary.Errors),
		fmt.Sprintf("%d", summary.Skipped),
		fmt.Sprintf("%.3f", summary.ElapsedSeconds),
	})
}

func renderClusterTable(clusters []m.FailureCluster) string {
	var buffer bytes.Buffer

	table := tablewriter.NewWriter(&buffer)
	table.SetHeader([]string{"Groups", "Shared Failed Tests"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, cluster := range clusters {
		table.Append([]string{
			strings.Join(cluster.Groups, ", "),
			strings.Join(cluster.FailedTests, ", "),
		})
	}

	table.Render()

	return buffer.String()
}
