package bdiff

import "context"

// Hunk is a matching block. As returned by Blocks, its fields are byte
// offsets: a[A1:A2) and b[B1:B2) are byte-identical, the list is strictly
// monotone in both A1 and B1, and it ends with a terminal sentinel hunk
// (len(a), len(a), len(b), len(b)). Inside this package (recurseBlocks,
// normalizeHunks, encode) the same fields hold line indices, and the
// sentinel is (line count of a, same, line count of b, same).
type Hunk struct {
	A1, A2, B1, B2 int
}

// recurseBlocks finds the matching block list for a[a1:a2) x b[b1:b2) by
// finding the longest match, recursing on the left remainder, appending
// the match, and iterating (rather than tail-recursing) into the right
// remainder. hunks is appended to and returned.
func recurseBlocks(ctx context.Context, a, b []line, pos matchMemo, a1, a2, b1, b2 int, hunks []Hunk) ([]Hunk, error) {
	for {
		i, j, k, err := longestMatch(ctx, a, b, pos, a1, a2, b1, b2)
		if err != nil {
			return nil, err
		}
		if k == 0 {
			return hunks, nil
		}

		hunks, err = recurseBlocks(ctx, a, b, pos, a1, i, b1, j, hunks)
		if err != nil {
			return nil, err
		}
		hunks = append(hunks, Hunk{A1: i, A2: i + k, B1: j, B2: j + k})

		a1, b1 = i+k, j+k
	}
}

// normalizeHunks pushes each hunk's trailing boundary as far right as
// possible when it's adjacent to the next hunk, canonicalizing where a
// run of identical bytes that could belong to either hunk ends up. This
// keeps delta placement stable across successive diffs of similar input.
func normalizeHunks(a, b []line, aBuf, bBuf []byte, an, bn int, hunks []Hunk) {
	for idx := 0; idx+1 < len(hunks); idx++ {
		curr := &hunks[idx]
		next := &hunks[idx+1]

		if curr.A2 != next.A1 && curr.B2 != next.B1 {
			continue
		}

		for curr.A2 < an && curr.B2 < bn &&
			next.A1 < next.A2 && next.B1 < next.B2 &&
			bytesEqualAt(a, aBuf, curr.A2, b, bBuf, curr.B2) {
			curr.A2++
			next.A1++
			curr.B2++
			next.B1++
		}
	}
}

func bytesEqualAt(a []line, aBuf []byte, ai int, b []line, bBuf []byte, bi int) bool {
	return equalBytes(a[ai], aBuf, b[bi], bBuf)
}

// blocks runs the full match → recurse → sentinel → normalize pipeline,
// reusing d's scratch buffers across calls. The hunks it returns hold
// line indices.
func blocks(ctx context.Context, d *Differ, a, b []line, aBuf, bBuf []byte) ([]Hunk, error) {
	an, bn := len(a)-1, len(b)-1 // exclude the sentinel line from each

	equateLines(a, aBuf, b, bBuf)

	pos := d.memo(bn + 1) // +1: spec requires room even when bn==0

	hunks, err := recurseBlocks(ctx, a, b, pos, 0, an, 0, bn, nil)
	if err != nil {
		return nil, err
	}
	hunks = append(hunks, Hunk{A1: an, A2: an, B1: bn, B2: bn})

	normalizeHunks(a, b, aBuf, bBuf, an, bn, hunks)
	return hunks, nil
}
