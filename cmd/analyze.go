package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"grademill.dev/pkg/grademill/internal/adapter"
	"grademill.dev/pkg/grademill/internal/domain"
	m "grademill.dev/pkg/grademill/internal/model"
)

// analyzeCmd represents the analyze command.
var analyzeCmd = newAnalyzeCmd()

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <submission-dir>",
		Short: "Analyze one submission",
		Long: `Analyze a single submission directory: parse the captured build log into
compilation and style diagnostics, aggregate the XML test reports into
per-visibility summaries and store the evaluation result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runAnalyze(context.Background(), m.Path(args[0]))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(ctx context.Context, dir m.Path) error {
	assignment, err := assignmentAdapter.Load(m.Path(viper.GetString(assignmentFlagName)))
	if err != nil {
		return err
	}

	evaluation, err := workflow.Evaluate(ctx, domain.EvaluateArgs{
		GroupID:    adapter.GroupID(dir),
		Assignment: assignment,
		LogPath:    m.Path(filepath.Join(string(dir), viper.GetString(logNameConfigKey))),
		ReportsDir: m.Path(filepath.Join(string(dir), viper.GetString(reportsDirConfigKey))),
		PathPrefix: string(dir),
	})
	if err != nil {
		return err
	}

	if err := saveEvaluation(evaluation); err != nil {
		return err
	}

	return ui.DisplayEvaluation(ctx, evaluation, evaluationNotes(evaluation, assignment))
}

// evaluationNotes collects the secondary warnings shown under the summary
// table.
func evaluationNotes(evaluation m.Evaluation, assignment m.Assignment) []string {
	var notes []string

	for _, summary := range []*m.TestSummary{evaluation.StudentSummary, evaluation.PublicSummary, evaluation.HiddenSummary} {
		if note := domain.MandatoryFailureNote(summary, assignment.MandatorySuffix); note != "" {
			notes = append(notes, note)
		}
	}

	if total := domain.CombinedElapsed(evaluation.PublicSummary, evaluation.HiddenSummary); total != nil {
		notes = append(notes, fmt.Sprintf("teacher tests took %.3f s in total", *total))
	}

	return notes
}

func saveEvaluation(evaluation m.Evaluation) error {
	outputDir := viper.GetString(outputFlagName)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	return resultStore.Save(m.Path(filepath.Join(outputDir, evaluation.GroupID+".yaml")), evaluation)
}
