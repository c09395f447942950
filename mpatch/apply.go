package mpatch

// CalcSize returns the length of the buffer Apply would produce for
// fragments frags applied to a buffer of length origLen, without
// materializing it.
func CalcSize(origLen int, frags []Fragment) (int, error) {
	outLen := 0
	last := 0

	for i, f := range frags {
		if f.Start < last || f.End > origLen {
			return 0, &InvalidPatchError{Index: i, Reason: "fragment range outside original or non-monotone"}
		}
		outLen += f.Start - last
		last = f.End
		outLen += f.Length
	}
	outLen += origLen - last
	return outLen, nil
}

// Apply materializes the result of replacing, in orig, each fragment's
// [Start,End) span with its Data.
func Apply(orig []byte, frags []Fragment) ([]byte, error) {
	outLen, err := CalcSize(len(orig), frags)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, outLen)
	last := 0
	for _, f := range frags {
		out = append(out, orig[last:f.Start]...)
		out = append(out, f.Data...)
		last = f.End
	}
	out = append(out, orig[last:]...)
	return out, nil
}
