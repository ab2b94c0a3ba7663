package cmd

import (
	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags
var Version = "dev"

// newVersionCmd builds the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the depscout version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("depscout " + Version)
		},
	}
}
