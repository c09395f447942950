package bdiff

import "context"

// posMemo/lenMemo record, per B-side position, the longest match that was
// found ending there during the current outer walk, so later i values can
// absorb an already-scanned run instead of rescanning it line by line.
// They're two parallel slices rather than a struct slice so callers can
// grow them with alloc.Ints.
type matchMemo struct {
	pos []int
	len []int
}

const matchWindow = 30000

// longestMatch finds the longest run of equivalent lines within
// a[a1:a2) x b[b1:b2), returning its start in each side and its length.
// It implements Mercurial's bdiff.c longest_match verbatim, including the
// window clamp on oversized regions and the midpoint-bias tie-break,
// which is part of the wire-compatible contract (spec.md §9): changing it
// produces a different, still-correct, delta.
//
// ctx is checked once at the top, the only cooperative-cancellation
// point spec.md §5 allows: a long diff can be aborted between outer
// match-finder calls without leaving any internal state half-built.
func longestMatch(ctx context.Context, a, b []line, pos matchMemo, a1, a2, b1, b2 int) (mi, mj, mk int, err error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, 0, err
	}

	mi, mj, mk = a1, b1, 0

	// window our search on large regions to bound worst-case performance;
	// a window at the end reduces skipping overhead on the B chains.
	if a2-a1 > matchWindow {
		a1 = a2 - matchWindow
	}
	half := (a1 + a2) / 2

	for i := a1; i < a2; i++ {
		j := a[i].chainNext
		for j.valid() && int(j) >= b2 {
			j = b[j].chainNext
		}

		for ; j.valid() && int(j) >= b1; j = b[j].chainNext {
			jj := int(j)
			k := 1
			for jj-k >= b1 && i-k >= a1 {
				if pos.pos[jj-k] == i-k {
					k += pos.len[jj-k]
					break
				}
				if a[i-k].eqClass != b[jj-k].eqClass {
					break
				}
				k++
			}

			pos.pos[jj] = i
			pos.len[jj] = k

			if k > mk || (k == mk && (i <= mi || i < half)) {
				mi, mj, mk = i, jj, k
			}
		}
	}

	if mk > 0 {
		mi = mi - mk + 1
		mj = mj - mk + 1
	}

	// extend the match to include subsequent popular lines: they carry a
	// valid eqClass even though they're never chased via chainNext.
	for mi+mk < a2 && mj+mk < b2 && a[mi+mk].eqClass == b[mj+mk].eqClass {
		mk++
	}

	return mi, mj, mk, nil
}
