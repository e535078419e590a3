package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mediagate/gatecode/gatecode"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the ten gates of a document as a table",
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
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			headers := []string{"POS", "LABEL", "ACTIVE", "TYPE", "VALUE", "META"}
			rows := make([][]string, 0, gatecode.DocumentGates)
			for _, g := range d.Gates() {
				rows = append(rows, inspectRow(g))
			}

			var out string
			if cfg.Output.Format == "plain" {
				out = renderPlain(headers, rows)
			} else {
				out = renderTable(cfg, headers, rows)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func inspectRow(g gatecode.Gate) []string {
	position := fmt.Sprintf("%d", int(g.Position()))
	label := g.Position().Label()
	if g.Position().Reserved() {
		label += " (reserved)"
	}
	if !g.Active() {
		return []string{position, label, "no", "", "", ""}
	}

	value, _ := g.Value()
	var extras []string
	for _, p := range g.Meta() {
		if p.Key == gatecode.MetaKeyType {
			continue
		}
		extras = append(extras, p.Key+"="+p.Value)
	}
	return []string{position, label, "yes", g.Type(), value, strings.Join(extras, ",")}
}
