package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"teeny/grammar"
)

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Format teeny source code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")
			path := args[0]

			source, err := readSource(path)
			if err != nil {
				return err
			}
			formatted, err := formatSource(path, source)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), grammar.FormatError(source, err))
				return fmt.Errorf("%s: cannot format: %w", path, err)
			}

			if write {
				if formatted == source {
					return nil
				}
				return os.WriteFile(path, []byte(formatted), 0o644)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatted)
			return nil
		},
	}
	cmd.Flags().BoolP("write", "w", false, "Write result to source file")
	return cmd
}

func formatSource(path, source string) (string, error) {
	program, err := grammar.ParseString(path, source)
	if err != nil {
		return "", err
	}
	return program.String(), nil
}
