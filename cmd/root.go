// Package cmd provides the root command and CLI setup for grademill.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"grademill.dev/pkg/grademill/internal/adapter"
	"grademill.dev/pkg/grademill/internal/controller"
	"grademill.dev/pkg/grademill/internal/domain"
)

var assignmentAdapter adapter.AssignmentAdapter
var buildLogAdapter adapter.BuildLogAdapter
var reportAdapter adapter.ReportFileAdapter
var submissionAdapter adapter.SubmissionFSAdapter
var resultStore adapter.ResultStore
var workflow domain.Workflow
var ui controller.UI

// assignmentFileFlag points at the assignment.yaml of the assignment being
// graded.
var assignmentFileFlag string

// outputDirFlag is where evaluation results are stored.
var outputDirFlag string

// logFileFlag overrides the tool's own log file location.
var logFileFlag string

// verboseFlag switches tool logging to debug level.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	assignmentAdapter = adapter.NewLocalAssignmentAdapter()
	buildLogAdapter = adapter.NewLocalBuildLogAdapter()
	reportAdapter = adapter.NewLocalReportFileAdapter()
	submissionAdapter = adapter.NewLocalSubmissionFSAdapter()
	resultStore = adapter.NewYAMLResultStore()
	workflow = domain.NewWorkflow(buildLogAdapter, reportAdapter, submissionAdapter, ui)
}

const rootLongDescription = `Grademill evaluates programming-assignment submissions from the artifacts
a build run leaves behind: the captured console log and the XML test
reports. It extracts compilation and style diagnostics, aggregates test
results by audience visibility, aligns them against the assignment's
declared test list and computes cross-group statistics.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grademill",
		Short: "Programming-assignment submission evaluator",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&assignmentFileFlag, assignmentFlagName, "a",
			viper.GetString(assignmentFlagName),
			"assignment configuration file",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(assignmentFlagName), assignmentFlagName)

	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for evaluation results",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVar(&logFileFlag, "log", "", "tool log file (defaults to config)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", viper.GetBool(logVerboseKey), "enable debug logging")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
