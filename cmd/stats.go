package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"grademill.dev/pkg/grademill/internal/domain"
	m "grademill.dev/pkg/grademill/internal/model"
)

var statsParallelFlag int

// statsCmd represents the stats command.
var statsCmd = newStatsCmd()

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <submissions-root>",
		Short: "Compute cross-group statistics",
		Long: `Analyze every group directory under the submissions root and report the
cohort average, underperforming groups and clusters of groups that failed
exactly the same tests.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runStats(context.Background(), m.Path(args[0]))
		},
	}

	configureStatsFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func configureStatsFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&statsParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of submissions analyzed in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)
}

func runStats(ctx context.Context, root m.Path) error {
	assignment, err := assignmentAdapter.Load(m.Path(viper.GetString(assignmentFlagName)))
	if err != nil {
		return err
	}

	if err := ui.Start(ctx); err != nil {
		return err
	}

	result, err := workflow.EvaluateAll(ctx, domain.BatchArgs{
		Root:           root,
		Assignment:     assignment,
		LogName:        viper.GetString(logNameConfigKey),
		ReportsDirName: viper.GetString(reportsDirConfigKey),
		Threads:        viper.GetInt(parallelConfigKey),
	})

	ui.Close(ctx)

	if err != nil {
		return err
	}

	for _, evaluation := range result.Evaluations {
		if err := saveEvaluation(evaluation); err != nil {
			return err
		}
	}

	return ui.DisplayStatistics(ctx, result.Statistics, result.Outliers, result.Clusters)
}
