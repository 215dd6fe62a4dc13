package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// BuildVersion is set at build time with -ldflags "-X ...cli.BuildVersion=...".
var BuildVersion = "dev"

func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Version information",
		Long:  `Print the version information of particle-rings`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "particle-rings %s (Go version: %s)\n", BuildVersion, runtime.Version())
		},
	}
}
