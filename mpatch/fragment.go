// Package mpatch decodes binary deltas produced by bdiff, composes any
// number of them into one equivalent delta via a divide-and-conquer tree
// fold, and applies the result to an original buffer. It's a Go port of
// Mercurial's mpatch.c: O(m + n log n) for m the output size and n the
// number of deltas, because deltas are combined pairwise rather than
// applied one after another.
package mpatch

// Fragment is a single edit: replace original[Start:End) with Data (of
// length Length). A decoded delta is a Fragment slice, strictly
// monotone in Start and non-overlapping.
type Fragment struct {
	Start, End, Length int
	Data               []byte
}
