package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mediagate/gatecode/gatecode"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a canonical string",
		Long: "Parse a canonical gate-code string, running every active payload through " +
			"its registry validator. Exits non-zero with a precise diagnostic on the " +
			"first error.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			ctx.log().Debug("validating", "bytes", len(input))

			d, err := gatecode.Parse(input)
			if err != nil {
				return err
			}

			active := d.ActiveGates()
			fmt.Fprintf(cmd.OutOrStdout(), "valid: %d active gate(s)\n", len(active))
			for _, g := range active {
				value, _ := g.Value()
				fmt.Fprintf(cmd.OutOrStdout(), "  gate %s: %s %s\n", g.Position(), g.Type(), value)
			}
			return nil
		},
	}
}
