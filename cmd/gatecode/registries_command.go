package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mediagate/gatecode/registry"
)

func newRegistriesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "registries",
		Short: "List gate positions and their registry tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			headers := []string{"POS", "LABEL", "TAGS", "STATUS"}
			var rows [][]string
			for _, info := range registry.Positions() {
				status := "open"
				if info.Reserved {
					status = "reserved"
				}
				rows = append(rows, []string{
					fmt.Sprintf("%d", info.Position),
					info.Label,
					strings.Join(info.Tags, ", "),
					status,
				})
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
