package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"myspec.dev/pkg/myspec/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [suites...]",
		Short: "List suites and example counts",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{
				SelectArgs: domain.SelectArgs{
					Suites:  args,
					Exclude: viper.GetStringSlice(excludeConfigKey),
				},
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
