package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/revlog/bdiff/bdiff"
)

func blocksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocks <a> <b>",
		Short: "print the matching-block list between a and b",
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

			hunks, err := bdiff.Blocks(context.Background(), a, b)
			if err != nil {
				return err
			}
			log.Printf("bdiff: blocks found %d matching hunk(s)", len(hunks))
			for _, h := range hunks {
				fmt.Fprintf(cmd.OutOrStdout(), "a[%d:%d] == b[%d:%d]\n", h.A1, h.A2, h.B1, h.B2)
			}
			return nil
		},
	}
	return cmd
}
