package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/revlog/bdiff/bdiff"
)

func diffCmd() *cobra.Command {
	var out, compress string

	cmd := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "compute the binary delta transforming a into b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readInput(args[0])
			if err != nil {
				return err
			}
			b, err := readInput(args[1])
			if err != nil {
				return err
			}

			delta, err := bdiff.Diff(context.Background(), a, b)
			if err != nil {
				return err
			}
			log.Printf("bdiff: diff produced a %d-byte delta", len(delta))
			return writeOutput(out, compress, delta)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "-", "output path, - for stdout")
	cmd.Flags().StringVarP(&compress, "compress", "z", "", "compress output (gz, bz2, xz, lzo)")
	return cmd
}
