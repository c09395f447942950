package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/revlog/bdiff/mpatch"
)

func patchedSizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patchedsize <original> <delta>",
		Short: "print the size a delta would produce, without applying it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			orig, err := readInput(args[0])
			if err != nil {
				return err
			}
			delta, err := readInput(args[1])
			if err != nil {
				return err
			}

			size, err := mpatch.PatchedSize(len(orig), delta)
			if err != nil {
				return err
			}
			log.Printf("bdiff: patchedsize computed %d bytes", size)
			fmt.Fprintln(cmd.OutOrStdout(), size)
			return nil
		},
	}
	return cmd
}
