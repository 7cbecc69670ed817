package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/gafeval/internal/config"
	"github.com/mouse-blink/gafeval/internal/domain"
	m "github.com/mouse-blink/gafeval/internal/model"
)

type compareFlags struct {
	threshold float64
	tool      string
	metrics   string
	nodes     bool
}

var compareCmdFlags compareFlags

// compareCmd represents the compare command.
var compareCmd = newCompareCmd()

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare GAF MAPPINGS REFERENCE_PATH",
		Short: "Score GAF alignments against a reference path",
		Long: `Score every alignment of GAF against REFERENCE_PATH, whose node
coordinates are read from MAPPINGS. Incorrect alignments are listed as they
are found, followed by the summary.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args, &compareCmdFlags)
		},
	}
	addCompareFlags(cmd, &compareCmdFlags)

	return cmd
}

func addCompareFlags(cmd *cobra.Command, flags *compareFlags) {
	cmd.Flags().Float64VarP(&flags.threshold, "threshold", "t", config.DefaultThreshold, "overlap ratio an alignment must exceed to be correct")
	cmd.Flags().StringVarP(&flags.tool, "tool", "T", string(m.ToolVGAligner), "aligner the GAF was obtained from (vgaligner, graphaligner, vgmap)")
	cmd.Flags().StringVarP(&flags.metrics, "metrics", "m", "", "write run metrics in Prometheus text format to this file")
	cmd.Flags().BoolVarP(&flags.nodes, "nodes", "n", false, "list the nodes of the reference path before scoring")
}

func runCompare(cmd *cobra.Command, args []string, flags *compareFlags) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	return workflow.Compare(commandContext(cmd), domain.CompareArgs{
		GAF:           m.Path(args[0]),
		Mappings:      m.Path(args[1]),
		ReferencePath: args[2],
		Tool:          cfg.Tool,
		Threshold:     cfg.Threshold,
		Reports:       cfg.Reports,
		Metrics:       cfg.Metrics,
		Command:       commandLine(),
		ShowNodes:     flags.nodes,
	})
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
