package bdiff

import (
	"context"

	"github.com/revlog/bdiff/internal/alloc"
)

// Differ holds the match-finder's scratch memory across repeated Diff or
// Blocks calls, so diffing a long series of revisions (as a revision-log
// walker would) doesn't reallocate the memo buffers on every step. The
// zero value is ready to use; a Differ is not safe for concurrent use.
type Differ struct {
	posMemo []int
	lenMemo []int
}

// memo returns scratch buffers sized for n, zeroed exactly as Mercurial's
// bdiff.c calloc'd them: a never-touched slot's pos compares equal to 0,
// which is an intentional quirk of the reference algorithm (spec.md §9),
// not a bug to be designed away.
func (d *Differ) memo(n int) matchMemo {
	d.posMemo = alloc.Ints(d.posMemo, n)
	d.lenMemo = alloc.Ints(d.lenMemo, n)
	for i := range d.posMemo[:n] {
		d.posMemo[i] = 0
		d.lenMemo[i] = 0
	}
	return matchMemo{pos: d.posMemo, len: d.lenMemo}
}

// Blocks is the Differ-scoped equivalent of the package-level Blocks,
// reusing d's scratch memory.
func (d *Differ) Blocks(ctx context.Context, a, b []byte) ([]Hunk, error) {
	if err := checkInputSize(a, b); err != nil {
		return nil, err
	}
	aLines := splitLines(a)
	bLines := splitLines(b)
	hunks, err := blocks(ctx, d, aLines, bLines, a, b)
	if err != nil {
		return nil, err
	}
	// blocks works in line indices; report byte offsets into a and b.
	for i, h := range hunks {
		hunks[i] = Hunk{
			A1: aLines[h.A1].start, A2: aLines[h.A2].start,
			B1: bLines[h.B1].start, B2: bLines[h.B2].start,
		}
	}
	return hunks, nil
}

// Diff is the Differ-scoped equivalent of the package-level Diff, reusing
// d's scratch memory across calls instead of allocating a fresh memo
// buffer every time.
func (d *Differ) Diff(ctx context.Context, a, b []byte) ([]byte, error) {
	if err := checkInputSize(a, b); err != nil {
		return nil, err
	}
	aLines := splitLines(a)
	bLines := splitLines(b)

	hunks, err := blocks(ctx, d, aLines, bLines, a, b)
	if err != nil {
		return nil, err
	}
	return encode(aLines, bLines, a, b, hunks), nil
}
