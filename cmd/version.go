package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is stamped with -ldflags on release builds. When empty, the
// module version from build info is used instead.
var version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the aprovado version",
	Run: func(cmd *cobra.Command, args []string) {
		v := version
		if v == "" {
			v = "(devel)"
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
				v = info.Main.Version
			}
		}
		fmt.Println("aprovado", v)
	},
}
