package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// unknownVersion is reported when the binary carries no module version,
// e.g. when built from a working tree with go run.
const unknownVersion = "(devel)"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the myspec version",
		Long:  "Displays the myspec module version and the Go version used to build it.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version, goVersion := buildVersions()

			cmd.Printf("myspec version %s\n", version)
			cmd.Printf("go version %s\n", goVersion)
		},
	}
}

// buildVersions reads the module and toolchain versions from the build info.
func buildVersions() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return unknownVersion, "unknown"
	}

	version := info.Main.Version
	if version == "" {
		version = unknownVersion
	}

	return version, info.GoVersion
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
