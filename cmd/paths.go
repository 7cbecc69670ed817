package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/gafeval/internal/domain"
	m "github.com/mouse-blink/gafeval/internal/model"
)

var pathsNodesFlag string

// pathsCmd represents the paths command.
var pathsCmd = newPathsCmd()

func newPathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths MAPPINGS",
		Short: "List the reference paths of a mapping file",
		Long:  "List the reference paths of a mapping file with their node count and covered span.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Paths(commandContext(cmd), domain.PathsArgs{
				Mappings: m.Path(args[0]),
				Path:     pathsNodesFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&pathsNodesFlag, "nodes", "n", "", "also list the sorted node ids of this path")

	return cmd
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}
