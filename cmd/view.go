package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"myspec.dev/pkg/myspec/internal/domain"
	m "myspec.dev/pkg/myspec/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the last saved run report",
		Long:  "View the run report saved by the last \"myspec run\" in the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))
			return workflow.View(cmd.Context(), domain.ViewArgs{Reports: reportsPath})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
