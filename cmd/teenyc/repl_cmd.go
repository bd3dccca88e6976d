package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"teeny/repl"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Translate teeny to C interactively",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "teeny %s. Enter a program, then a blank line to translate it.\n", version)
			repl.Start(cmd.InOrStdin(), out, compilerOptions()...)
		},
	}
}
