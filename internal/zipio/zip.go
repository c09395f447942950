// Package zipio is the CLI's "process-launch utility (shell wrapper)"
// collaborator: it opens a path trying the raw file, then known
// compression suffixes, shelling out to a native (de)compressor when one
// is on PATH and falling back to the standard library otherwise. Since a
// shelled-out decompressor (or compress/gzip, compress/bzip2) only
// produces a forward-only io.Reader, Open wraps it in readerAt so callers
// still get a seekable Stream.
package zipio

import (
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"
	"os/exec"
	"strings"
)

var suffixes = []string{"", ".lzo", ".gz", ".bz2", ".xz"}
var programs = map[string]string{
	"lzo": "lzop",
	"gz":  "pigz gzip",
	"bz2": "lbzip2 bzip2",
	"xz":  "xz",
}
var canonicalFormatNames = map[string]string{
	"bzip2": "bz2",
	"gzip":  "gz",
}

// UnzippedName strips any known compression suffix from path.
func UnzippedName(path string) string {
	previousPath := ""
	for previousPath != path {
		previousPath = path
		for _, suffix := range suffixes[1:] {
			if strings.HasSuffix(path, suffix) {
				path = path[:len(path)-len(suffix)]
			}
		}
	}
	return path
}

func CanonicalFormatName(compression string) string {
	if canonicalFormatNames[compression] != "" {
		return canonicalFormatNames[compression]
	}
	return compression
}

func IsKnown(compression string) bool {
	return programs[compression] != ""
}

// Open tries path, then path+suffix for each known compression suffix,
// and returns a seekable stream with any compression transparently
// undone.
func Open(path string) (Stream, error) {
	var reader *os.File
	var err error
	for _, suffix := range suffixes {
		reader, err = os.Open(path + suffix)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		path = path + suffix
		break
	}
	if err != nil {
		return nil, err
	}

	var compressedReader io.Reader
	for _, suffix := range suffixes {
		if suffix == "" || !strings.HasSuffix(path, suffix) {
			continue
		}
		compressedReader, err = NewReader(reader, suffix[1:])
		if err != nil {
			return nil, err
		}
		break
	}

	if compressedReader == nil {
		return reader, nil
	}
	return newReaderAt(compressedReader), nil
}

type cmdPipe struct {
	cmd    *exec.Cmd
	writer io.WriteCloser
}

func (c *cmdPipe) Write(p []byte) (n int, err error) {
	return c.writer.Write(p)
}

func (c *cmdPipe) Close() error {
	err := c.writer.Close()
	if err != nil {
		c.cmd.Wait()
		return err
	}
	return c.cmd.Wait()
}

func findZipper(format string) string {
	choicesStr := programs[format]
	if choicesStr == "" {
		return ""
	}
	for _, cmd := range strings.Fields(choicesStr) {
		if cmdPath, err := exec.LookPath(cmd); err == nil {
			return cmdPath
		}
	}
	return ""
}

func CanWrite(format string) bool {
	if format == "gz" {
		return true
	}
	return findZipper(format) != ""
}

// NewWriter compresses to out in the given format, preferring a native
// binary on PATH and falling back to compress/gzip.
func NewWriter(out io.Writer, format string) (io.WriteCloser, error) {
	cmdPath := findZipper(format)
	if cmdPath == "" {
		if format == "gz" {
			return gzip.NewWriter(out), nil
		}
		return nil, UnsupportedFormatError{format}
	}
	cmd := exec.Command(cmdPath, "-c")
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	writer, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &cmdPipe{cmd, writer}, nil
}

type UnsupportedFormatError struct {
	Format string
}

func (e UnsupportedFormatError) Error() string {
	return "unsupported compression format " + e.Format
}

// NewReader decompresses in from the given format, preferring a native
// binary on PATH and falling back to the standard library decompressors.
func NewReader(in io.Reader, format string) (io.Reader, error) {
	cmdPath := findZipper(format)
	if cmdPath == "" {
		switch format {
		case "gz":
			return gzip.NewReader(in)
		case "bz2":
			return bzip2.NewReader(in), nil
		default:
			return nil, UnsupportedFormatError{format}
		}
	}
	cmd := exec.Command(cmdPath, "-dc")
	cmd.Stdin = in
	cmd.Stderr = os.Stderr
	reader, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return reader, nil
}
