package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var verboseFlag bool

	ctx := newCommandContext(&configFlag, &verboseFlag)

	rootCmd := &cobra.Command{
		Use:           "gatecode",
		Short:         "Canonical gate-code codec",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(newValidateCommand(ctx))
	rootCmd.AddCommand(newFmtCommand(ctx))
	rootCmd.AddCommand(newToJSONCommand(ctx))
	rootCmd.AddCommand(newFromJSONCommand(ctx))
	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newRegistriesCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
