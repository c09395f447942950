package main

import (
	"github.com/spf13/cobra"

	"github.com/revlog/bdiff/bdiff"
)

func fixwsCmd() *cobra.Command {
	var allWS bool
	var out string

	cmd := &cobra.Command{
		Use:   "fixws <file>",
		Short: "normalize whitespace: collapse runs to one space, or drop it all with --all",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			return writeOutput(out, "", bdiff.Fixws(data, allWS))
		},
	}

	cmd.Flags().BoolVarP(&allWS, "all", "a", false, "drop all whitespace instead of collapsing runs")
	cmd.Flags().StringVarP(&out, "output", "o", "-", "output path, - for stdout")
	return cmd
}
