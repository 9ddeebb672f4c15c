package cmd

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"grademill.dev/pkg/grademill/internal/adapter"
	"grademill.dev/pkg/grademill/internal/domain"
	m "grademill.dev/pkg/grademill/internal/model"
)

// matrixCmd represents the matrix command.
var matrixCmd = newMatrixCmd()

func newMatrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix <submission-dir>",
		Short: "Show the expected-vs-actual test matrix",
		Long: `Align the submission's test results against the assignment's declared test
list. Every expected test appears in declared order; tests without a result
show as "not run".`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runMatrix(context.Background(), m.Path(args[0]))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(matrixCmd)
}

func runMatrix(ctx context.Context, dir m.Path) error {
	assignment, err := assignmentAdapter.Load(m.Path(viper.GetString(assignmentFlagName)))
	if err != nil {
		return err
	}

	runs, err := reportAdapter.LoadRuns(m.Path(filepath.Join(string(dir), viper.GetString(reportsDirConfigKey))))
	if err != nil {
		return err
	}

	resolver := adapter.NewClassListResolver(assignment)

	matrix, err := domain.Reconcile(assignment.ExpectedTests, domain.TeacherRuns(runs, resolver))
	if err != nil {
		return err
	}

	return ui.DisplayMatrix(ctx, assignment.ExpectedTests, matrix)
}
