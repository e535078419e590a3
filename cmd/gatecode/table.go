package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// renderTable renders rows with go-pretty. Rounded borders and color only
// show up on a terminal (or when forced by output.color); piped output falls
// back to the plain ASCII style so it stays grep-friendly.
func renderTable(cfg *cliConfig, headers []string, rows [][]string) string {
	tw := table.NewWriter()
	if useDecoratedOutput(cfg) {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range header {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, len(headers))
	for i := range configs {
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			AlignHeader: text.AlignLeft,
		}
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// renderPlain renders rows as tab-separated lines for output.format=plain.
func renderPlain(headers []string, rows [][]string) string {
	out := joinColumns(headers)
	for _, row := range rows {
		out += "\n" + joinColumns(row)
	}
	return out
}

func joinColumns(cols []string) string {
	line := ""
	for i, col := range cols {
		if i > 0 {
			line += "\t"
		}
		line += col
	}
	return line
}

func useDecoratedOutput(cfg *cliConfig) bool {
	switch cfg.Output.Color {
	case "always":
		return true
	case "never":
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
