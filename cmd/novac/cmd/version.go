package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information
const Version = "0.1.0-dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "novac version %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "go version %s\n", runtime.Version())
		},
	}
}
