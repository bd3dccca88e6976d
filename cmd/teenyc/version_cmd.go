package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			out := cmd.OutOrStdout()
			switch output {
			case "json":
				data, err := marshalJSON(map[string]interface{}{
					"version": version,
					"commit":  commit,
					"date":    date,
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			case "", "text":
				fmt.Fprintf(out, "teenyc %s (commit %s, built %s)\n", version, commit, date)
			default:
				return fmt.Errorf("unknown output format: %s", output)
			}
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
	return cmd
}
