package main

import (
	"encoding/binary"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/revlog/bdiff/mpatch"
)

func patchCmd() *cobra.Command {
	var out, compress string

	cmd := &cobra.Command{
		Use:   "patch <original> <delta...>",
		Short: "apply one or more deltas, in sequence, to original",
		Long: "apply one or more deltas, in sequence, to original.\n" +
			"Each delta argument is one whole delta, such as the output of\n" +
			"diff: all of its records address the buffer the previous delta\n" +
			"produced (original, for the first delta), so the records of one\n" +
			"file are applied together, not one after another.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			orig, err := readInput(args[0])
			if err != nil {
				return err
			}

			var deltas [][]byte
			for _, path := range args[1:] {
				bin, err := readInput(path)
				if err != nil {
					return err
				}
				records, err := splitDeltaRecords(bin)
				if err != nil {
					return fmt.Errorf("patch: %s: %w", path, err)
				}
				log.Printf("bdiff: %s holds %d delta record(s)", path, len(records))
				deltas = append(deltas, bin)
			}

			patched, err := mpatch.Patches(orig, deltas)
			if err != nil {
				return err
			}
			log.Printf("bdiff: applied %d delta(s), patched output is %d bytes", len(deltas), len(patched))
			return writeOutput(out, compress, patched)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "-", "output path, - for stdout")
	cmd.Flags().StringVarP(&compress, "compress", "z", "", "compress output (gz, bz2, xz, lzo)")
	return cmd
}

// splitDeltaRecords splits bin, a concatenation of zero or more binary
// delta records, into one []byte per record. Each record is self-
// delimited by its own 12-byte (orig_start, orig_end, data_len) header, so
// the records composing bin need no outer framing: this walks the same
// header layout mpatch.Decode does, but only to find record boundaries,
// returning each record (header and data together) as its own slice.
// patch uses it to check and count the records of each delta argument.
func splitDeltaRecords(bin []byte) ([][]byte, error) {
	const headerSize = 12

	var records [][]byte
	pos := 0
	for pos < len(bin) {
		if pos+headerSize > len(bin) {
			return nil, fmt.Errorf("truncated record header at offset %d", pos)
		}
		length := int(binary.BigEndian.Uint32(bin[pos+8 : pos+12]))
		end := pos + headerSize + length
		if end > len(bin) {
			return nil, fmt.Errorf("truncated record data at offset %d", pos)
		}
		records = append(records, bin[pos:end])
		pos = end
	}
	return records, nil
}
