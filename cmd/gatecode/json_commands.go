package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mediagate/gatecode/gatecode"
)

func newToJSONCommand(ctx *commandContext) *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "to-json [file]",
		Short: "Convert a canonical string to JSON",
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
			var data []byte
			if compact {
				data, err = gatecode.ToJSON(d)
			} else {
				data, err = gatecode.ToJSONIndent(d, "  ")
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "Emit compact JSON on one line")
	return cmd
}

func newFromJSONCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "from-json [file]",
		Short: "Convert JSON to the canonical string",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			d, err := gatecode.FromJSON([]byte(input))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), gatecode.Serialize(d))
			return nil
		},
	}
}
