// gatecode - canonical gate-code codec CLI
//
// Usage:
//
//	gatecode validate [file]     Check a canonical string, reporting precise errors
//	gatecode fmt [file]          Parse and re-emit the canonical form
//	gatecode to-json [file]      Convert a canonical string to JSON
//	gatecode from-json [file]    Convert JSON to the canonical string
//	gatecode inspect [file]      Show the ten gates as a table
//	gatecode registries          List gate positions and registry tags
//	gatecode version             Print version info
//
// If no file is given (or the file is "-"), input is read from stdin.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
