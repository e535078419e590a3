package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mediagate/gatecode/gatecode"
)

func newFmtCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt [file]",
		Short: "Parse and re-emit the canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			d, err := gatecode.Parse(input)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), gatecode.Serialize(d))
			return nil
		},
	}
}
