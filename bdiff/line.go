package bdiff

import "bytes"

// lineRef indexes a line within a side's line array, or is noLine if
// there's nothing to point at. It replaces the C source's bare -1/INT_MAX
// sentinels with a type that can't silently be treated as a real index.
type lineRef int32

const noLine lineRef = -1

func (r lineRef) valid() bool { return r >= 0 }

// line is a non-owning view into a caller-provided buffer: start/length
// locate the bytes, hash speeds up comparison, chainNext links to the
// next-older line in the same equivalence class (always a B-side index,
// even when the line is on the A side), and eqClass names the
// equivalence-table slot both sides use for O(1) equality.
type line struct {
	hash      uint32
	start     int
	length    int
	chainNext lineRef
	eqClass   int32
}

func (l line) slice(buf []byte) []byte {
	return buf[l.start : l.start+l.length]
}

// splitLines partitions buf into lines, each ending at a newline or at
// end-of-buffer (the terminator, if present, stays part of the line), and
// appends a zero-length sentinel line one past the end of buf. The hash
// is Leonid Yuriev's congruential mixer, chosen (per the original C
// source) for good dispersion on short strings.
func splitLines(buf []byte) []line {
	n := len(buf)
	lines := make([]line, 0, n/32+2)

	var h uint32
	start := 0
	for i := 0; i < n; i++ {
		h = h*1664525 + uint32(buf[i]) + 1013904223
		if buf[i] == '\n' || i == n-1 {
			lines = append(lines, line{
				hash:      h,
				start:     start,
				length:    i + 1 - start,
				chainNext: noLine,
				eqClass:   -1,
			})
			h = 0
			start = i + 1
		}
	}

	lines = append(lines, line{hash: 0, start: n, length: 0, chainNext: noLine, eqClass: -1})
	return lines
}

// equalBytes is the comparator equateLines uses to resolve hash
// collisions: equal hash and length aren't enough on their own.
func equalBytes(a line, aBuf []byte, b line, bBuf []byte) bool {
	if a.hash != b.hash || a.length != b.length {
		return false
	}
	return bytes.Equal(a.slice(aBuf), b.slice(bBuf))
}
