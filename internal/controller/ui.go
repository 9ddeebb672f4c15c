// Package controller provides output adapters for displaying evaluation
// results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "grademill.dev/pkg/grademill/internal/model"
)

// UI defines the interface for presenting evaluation output. Implementations
// can use different output methods (simple text, TUI).
type UI interface {
	Start(ctx context.Context) error
	Close(ctx context.Context)
	DisplayEvaluation(ctx context.Context, evaluation m.Evaluation, notes []string) error
	DisplayMatrix(ctx context.Context, expected []m.ExpectedTest, matrix []m.TestRun) error
	DisplayStatistics(ctx context.Context, stats m.AssignmentStatistics, outliers map[string]struct{}, clusters []m.FailureCluster) error
	DisplayProgress(ctx context.Context, groupID string, done, total int)
}

// NewUI selects the TUI for interactive terminals and the simple printer
// otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether the file is an interactive terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
