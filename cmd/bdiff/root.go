package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/revlog/bdiff/internal/zipio"
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bdiff",
		Short:         "line-granular binary diff and patch",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(diffCmd(), blocksCmd(), patchCmd(), patchedSizeCmd(), fixwsCmd())
	return root
}

// readInput opens path through zipio (so "foo.txt.gz" etc. is transparently
// decompressed) and reads it fully: every bdiff/mpatch entry point takes a
// whole buffer, so there's nothing to gain from streaming here.
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		log.Printf("bdiff: read %d bytes from stdin", len(data))
		return data, nil
	}

	f, err := zipio.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	log.Printf("bdiff: read %d bytes from %s", len(data), path)
	return data, nil
}

// writeOutput writes data to path, compressing it first if format is set.
// path "-" means stdout.
func writeOutput(path, format string, data []byte) error {
	dest := path
	if path == "-" || path == "" {
		dest = "stdout"
	}
	if format != "" {
		log.Printf("bdiff: writing %d bytes to %s, compressed with %s", len(data), dest, format)
	} else {
		log.Printf("bdiff: writing %d bytes to %s, uncompressed", len(data), dest)
	}

	var out io.WriteCloser
	if path == "-" || path == "" {
		out = os.Stdout
	} else {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if format == "" {
		_, err := out.Write(data)
		return err
	}

	zw, err := zipio.NewWriter(out, format)
	if err != nil {
		return err
	}
	if _, err := zw.Write(data); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
