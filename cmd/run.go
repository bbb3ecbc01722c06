package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"myspec.dev/pkg/myspec/internal/controller"
	"myspec.dev/pkg/myspec/internal/domain"
	m "myspec.dev/pkg/myspec/internal/model"
)

var runFormatFlag string
var runNoSaveFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [suites...]",
		Short: "Run specification suites",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := controller.ParseFormat(viper.GetString(formatFlagName))
			if err != nil {
				return err
			}

			return workflow.Run(cmd.Context(), domain.RunArgs{
				SelectArgs: domain.SelectArgs{
					Suites:  args,
					Exclude: viper.GetStringSlice(excludeConfigKey),
				},
				Reports: m.Path(viper.GetString(outputFlagName)),
				Save:    !viper.GetBool(noSaveFlagName),
				Format:  format,
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&runFormatFlag, formatFlagName, "f", viper.GetString(formatFlagName), "output format: plain, documentation or progress")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatFlagName)

	cmd.Flags().BoolVar(&runNoSaveFlag, noSaveFlagName, viper.GetBool(noSaveFlagName), "do not write the run report")
	bindFlagToConfig(cmd.Flags().Lookup(noSaveFlagName), noSaveFlagName)
}
