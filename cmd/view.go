package cmd

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	m "grademill.dev/pkg/grademill/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <group-id>",
		Short: "View a stored evaluation result",
		Long:  "View a previously stored evaluation result from the output directory.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runView(context.Background(), args[0])
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(ctx context.Context, groupID string) error {
	path := m.Path(filepath.Join(viper.GetString(outputFlagName), groupID+".yaml"))

	evaluation, err := resultStore.Load(path)
	if err != nil {
		return err
	}

	return ui.DisplayEvaluation(ctx, evaluation, nil)
}
