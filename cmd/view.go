package cmd

import (
	"github.com/mouse-blink/gafeval/internal/domain"
	"github.com/spf13/cobra"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved run reports",
		Long:  "View previously saved run reports from a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}

			return workflow.View(domain.ViewArgs{Reports: cfg.Reports})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
