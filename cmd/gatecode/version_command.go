package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	libVersion    = "0.3.0"
	formatVersion = "1.0"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gatecode %s (format %s)\n", libVersion, formatVersion)
		},
	}
}
