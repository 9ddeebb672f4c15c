package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "grademill.dev/pkg/grademill/internal/model"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive display. Progress of a
// batch run is animated; final results are printed once the program exits.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress program.
func (t *TUI) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.program = tea.NewProgram(newBatchModel(), tea.WithOutput(t.output))
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		if _, err := t.program.Run(); err != nil {
			fmt.Fprintf(t.output, "display error: %v\n", err)
		}
	}()

	return nil
}

// Close stops the progress program and waits for it to finish.
func (t *TUI) Close(ctx context.Context) {
	if t.program == nil {
		return
	}

	t.program.Quit()

	select {
	case <-t.done:
	case <-ctx.Done():
	}

	t.program = nil
}

// DisplayProgress feeds one completed group into the progress program.
func (t *TUI) DisplayProgress(ctx context.Context, groupID string, done, total int) {
	if t.program == nil || ctx.Err() != nil {
		return
	}

	t.program.Send(progressMsg{groupID: groupID, done: done, total: total})
}

// DisplayEvaluation prints diagnostics and summaries with terminal styling.
func (t *TUI) DisplayEvaluation(ctx context.Context, evaluation m.Evaluation, notes []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(evaluation.CompilationErrors) > 0 {
		fmt.Fprintln(t.output, headingStyle.Render("Compilation errors ("+evaluation.GroupID+")"))

		for _, diagnostic := range evaluation.CompilationErrors {
			fmt.Fprintln(t.output, errorStyle.Render("  "+diagnostic.Message))
		}
	}

	if evaluation.StyleCheckActive && len(evaluation.StyleFindings) > 0 {
		fmt.Fprintln(t.output, headingStyle.Render("Style findings ("+evaluation.GroupID+")"))

		for _, diagnostic := range evaluation.StyleFindings {
			fmt.Fprintln(t.output, warnStyle.Render("  "+diagnostic.Message))
		}
	}

	fmt.Fprintf(t.output, "\n%s", renderSummaryTable(evaluation))

	for _, note := range notes {
		fmt.Fprintln(t.output, warnStyle.Render(note))
	}

	return nil
}

// DisplayMatrix prints the expected-vs-actual result matrix.
func (t *TUI) DisplayMatrix(ctx context.Context, expected []m.ExpectedTest, matrix []m.TestRun) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fmt.Fprintln(t.output, headingStyle.Render("Result matrix"))

	for i, want := range expected {
		cell := matrixCell(matrix[i])

		style := faintStyle
		switch matrix[i].Status {
		case m.StatusSuccess:
			style = lipgloss.NewStyle()
		case m.StatusFailure, m.StatusError:
			style = errorStyle
		case m.StatusIgnored:
			style = warnStyle
		}

		fmt.Fprintf(t.output, "  %s %s\n", want.ClassName+"."+want.MethodName, style.Render(cell))
	}

	return nil
}

// DisplayStatistics prints cohort statistics, outliers and clusters.
func (t *TUI) DisplayStatistics(ctx context.Context, stats m.AssignmentStatistics, outliers map[string]struct{}, clusters []m.FailureCluster) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fmt.Fprintln(t.output, headingStyle.Render("Assignment statistics"))
	fmt.Fprintf(t.output, "  groups %d, average passed %.2f, std dev %.2f\n", stats.Count, stats.Average, stats.StdDev)

	for _, cluster := range clusters {
		fmt.Fprintf(t.output, "  identical failures: %s -> %s\n",
			strings.Join(cluster.Groups, ", "), strings.Join(cluster.FailedTests, ", "))
	}

	if len(outliers) > 0 {
		fmt.Fprintln(t.output, warnStyle.Render(fmt.Sprintf("  %d group(s) below the outlier threshold", len(outliers))))
	}

	return nil
}

// progressMsg reports one finished group to the batch model.
type progressMsg struct {
	groupID string
	done    int
	total   int
}

// batchModel animates a spinner and a progress bar over submission groups.
type batchModel struct {
	spinner spinner.Model
	bar     progress.Model
	current string
	done    int
	total   int
}

func newBatchModel() batchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return batchModel{
		spinner: s,
		bar:     progress.New(progress.WithDefaultGradient()),
	}
}

// Init implements tea.Model.
func (b batchModel) Init() tea.Cmd {
	return b.spinner.Tick
}

// Update implements tea.Model.
func (b batchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		b.current = msg.groupID
		b.done = msg.done
		b.total = msg.total

		return b, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return b, tea.Quit
		}

		return b, nil
	default:
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)

		return b, cmd
	}
}

// View implements tea.Model.
func (b batchModel) View() string {
	if b.total == 0 {
		return b.spinner.View() + " collecting submissions...\n"
	}

	ratio := float64(b.done) / float64(b.total)

	return fmt.Sprintf("%s analyzing %s\n%s %d/%d\n",
		b.spinner.View(), b.current, b.bar.ViewAs(ratio), b.done, b.total)
}
