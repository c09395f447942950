package mpatch

// fold combines deltas[start:end] into one equivalent fragment list by
// recursively splitting the range in half and combining the two halves'
// results, rather than folding left-to-right. This keeps the total work
// at O(m + n log n) instead of O(m*n): a left-to-right fold re-walks the
// whole growing fragment list on every step.
func fold(deltas [][]byte, start, end int) ([]Fragment, error) {
	if end-start == 1 {
		return Decode(deltas[start])
	}
	if end == start {
		return nil, nil
	}

	mid := start + (end-start)/2
	left, err := fold(deltas, start, mid)
	if err != nil {
		return nil, err
	}
	right, err := fold(deltas, mid, end)
	if err != nil {
		return nil, err
	}
	return Combine(left, right), nil
}

// Patches applies a chain of deltas to original in sequence, as if each
// had been applied one after another, but without materializing the
// intermediate buffers: the deltas are folded into a single fragment
// list first, then applied once.
func Patches(original []byte, deltas [][]byte) ([]byte, error) {
	if len(deltas) == 0 {
		out := make([]byte, len(original))
		copy(out, original)
		return out, nil
	}

	frags, err := fold(deltas, 0, len(deltas))
	if err != nil {
		return nil, err
	}
	return Apply(original, frags)
}

// PatchedSize returns the length Patches would produce for a single
// delta applied to a buffer of length originalLength, without
// materializing the result.
func PatchedSize(originalLength int, delta []byte) (int, error) {
	frags, err := Decode(delta)
	if err != nil {
		return 0, err
	}
	return CalcSize(originalLength, frags)
}
