// Package bdiff computes a line-granular binary delta between two byte
// buffers and enumerates the matching block structure behind it. It's a
// line-oriented port of Mercurial's bdiff.c: lines are hashed into
// equivalence classes, the longest common run is found by chasing hash
// chains with memoization, and the recursion that bisects around each
// match produces a monotone list of matching blocks that DeltaEncoder
// turns into the wire delta format mpatch.Decode reads back.
package bdiff

import (
	"context"
	"encoding/binary"
)

// Blocks returns the matching-block list between a and b, including the
// terminal sentinel (len(a), len(a), len(b), len(b)). Every hunk with
// A1<A2 satisfies a[A1:A2] == b[B1:B2] byte for byte, and the list is
// strictly monotone in both (A1, B1).
func Blocks(ctx context.Context, a, b []byte) ([]Hunk, error) {
	var d Differ
	return d.Blocks(ctx, a, b)
}

// Diff returns the binary delta transforming a into b: a sequence of
// 12-byte-header records (orig_start, orig_end, data_len, data), each
// saying "replace a[orig_start:orig_end] with the following data_len
// bytes". An empty result means a and b are identical.
func Diff(ctx context.Context, a, b []byte) ([]byte, error) {
	var d Differ
	return d.Diff(ctx, a, b)
}

// encode walks the gaps between consecutive matching hunks and emits one
// replacement record per non-empty gap, per spec.md §4.5. Byte offsets
// come from each line's start pointer, never from the line index itself.
func encode(aLines, bLines []line, a, b []byte, hunks []Hunk) []byte {
	out := make([]byte, 0, 64)
	var header [12]byte

	la, lb := 0, 0
	for _, h := range hunks {
		if h.A1 != la || h.B1 != lb {
			origStart := aLines[la].start
			origEnd := aLines[h.A1].start
			data := b[bLines[lb].start:bLines[h.B1].start]

			binary.BigEndian.PutUint32(header[0:4], uint32(origStart))
			binary.BigEndian.PutUint32(header[4:8], uint32(origEnd))
			binary.BigEndian.PutUint32(header[8:12], uint32(len(data)))

			out = append(out, header[:]...)
			out = append(out, data...)
		}
		la, lb = h.A2, h.B2
	}

	return out
}
