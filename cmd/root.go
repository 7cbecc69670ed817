// Package cmd provides the root command and CLI setup for gafeval.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/gafeval/internal/adapter"
	"github.com/mouse-blink/gafeval/internal/config"
	"github.com/mouse-blink/gafeval/internal/controller"
	"github.com/mouse-blink/gafeval/internal/domain"
	m "github.com/mouse-blink/gafeval/internal/model"
)

var gafReader adapter.AlignmentSource
var mappingLoader adapter.MappingSource
var reportStore adapter.ReportStore
var metricsSink adapter.MetricsSink
var logLevel = new(slog.LevelVar)
var logger *slog.Logger
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	gafReader = adapter.NewLocalGAFReader()
	mappingLoader = adapter.NewLocalMappingLoader()
	reportStore = adapter.NewReportStore()
	metricsSink = adapter.NewTextfileMetricsSink()
	workflow = domain.NewWorkflow(
		gafReader,
		mappingLoader,
		reportStore,
		metricsSink,
		ui,
		logger,
	)
}

var configFlag string
var reportsOutputDirFlag string
var verboseFlag bool

var rootFlags compareFlags

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gafeval GAF MAPPINGS REFERENCE_PATH",
		Short: "Evaluate the accuracy of sequence-to-graph alignments",
		Long: `Gafeval measures how much of each alignment in a GAF file lies on a
reference path of the graph, and classifies every alignment as correct when
that share is strictly greater than the threshold.

MAPPINGS is a JSON document mapping every reference path to the coordinates
of its nodes:
  {"<path>": {"<node>": {"start": 0, "end": 10}, ...}, ...}

Unaligned reads ("*" path) are left out of the totals.`,
		Args: cobra.ExactArgs(3),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verboseFlag {
				logLevel.Set(slog.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args, &rootFlags)
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "YAML config file with threshold, tool, reports and metrics defaults")
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "reports", "r", "", "directory where run reports are stored (empty disables saving)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	addCompareFlags(cmd, &rootFlags)

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies the flags set on cmd.
func loadConfig(cmd *cobra.Command, flags *compareFlags) (config.Config, error) {
	cfg, err := config.Load(m.Path(configFlag))
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("reports") {
		cfg.Reports = m.Path(reportsOutputDirFlag)
	}

	if flags == nil {
		return cfg, nil
	}

	if cmd.Flags().Changed("threshold") {
		cfg.Threshold = flags.threshold
	}

	if cmd.Flags().Changed("tool") {
		tool, err := adapter.ParseTool(flags.tool)
		if err != nil {
			return config.Config{}, err
		}

		cfg.Tool = tool
	}

	if cmd.Flags().Changed("metrics") {
		cfg.Metrics = m.Path(flags.metrics)
	}

	return cfg, cfg.Validate()
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

func commandLine() string {
	return strings.Join(os.Args, " ")
}
